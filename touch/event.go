package touch

// evdev event types and codes the tracker cares about. Values match
// <linux/input-event-codes.h>; everything else arriving on the wire is
// ignored.
const (
	EvSyn = 0x00
	EvKey = 0x01
	EvAbs = 0x03

	SynReport = 0x00

	AbsMtSlot       = 0x2f
	AbsMtPositionX  = 0x35
	AbsMtPositionY  = 0x36
	AbsMtTrackingID = 0x39
)

// LiftSentinel is the tracking id a slot reports when its contact leaves the
// screen. It must never be stored as a live tracking id.
const LiftSentinel = -1

// InputEvent is one fixed-size record read from an evdev character device,
// using the 64-bit kernel layout: a 16-byte timeval followed by
// type/code/value.
type InputEvent struct {
	Sec   int64
	Usec  int64
	Type  uint16
	Code  uint16
	Value int32
}

// EventSize is the encoded size of InputEvent in bytes.
const EventSize = 24
