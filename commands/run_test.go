package commands

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evtap/evtap/gesture"
	"github.com/evtap/evtap/touch"
)

type recordingDispatcher struct {
	commands []string
}

func (d *recordingDispatcher) Dispatch(command string) error {
	d.commands = append(d.commands, command)
	return nil
}

func encodeEvents(t *testing.T, events []touch.InputEvent) []byte {
	t.Helper()
	var buf bytes.Buffer
	for _, ev := range events {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, ev))
	}
	return buf.Bytes()
}

func abs(code uint16, value int32) touch.InputEvent {
	return touch.InputEvent{Type: touch.EvAbs, Code: code, Value: value}
}

func syn() touch.InputEvent {
	return touch.InputEvent{Type: touch.EvSyn, Code: touch.SynReport}
}

func TestPumpEvents_ThreeFingerTapEndToEnd(t *testing.T) {
	events := []touch.InputEvent{
		abs(touch.AbsMtSlot, 0),
		abs(touch.AbsMtTrackingID, 5),
		abs(touch.AbsMtPositionX, 100),
		abs(touch.AbsMtPositionY, 100),
		abs(touch.AbsMtSlot, 1),
		abs(touch.AbsMtTrackingID, 6),
		abs(touch.AbsMtPositionX, 200),
		abs(touch.AbsMtPositionY, 200),
		abs(touch.AbsMtSlot, 2),
		abs(touch.AbsMtTrackingID, 7),
		abs(touch.AbsMtPositionX, 300),
		abs(touch.AbsMtPositionY, 300),
		syn(),
		// a second frame with no changes must not re-dispatch
		syn(),
	}

	dispatcher := &recordingDispatcher{}
	rules := []gesture.Rule{{Kind: gesture.KindTap, Fingers: 3, Command: "notify"}}
	engine := gesture.NewEngine(rules, dispatcher, 30)

	src := bytes.NewReader(encodeEvents(t, events))
	frames := PumpEvents(src, touch.NewTracker(), engine.OnFrame)

	assert.Equal(t, uint64(2), frames)
	assert.Equal(t, []string{"notify"}, dispatcher.commands)
}

func TestPumpEvents_TruncatedStreamEndsGracefully(t *testing.T) {
	data := encodeEvents(t, []touch.InputEvent{
		abs(touch.AbsMtSlot, 0),
		abs(touch.AbsMtTrackingID, 5),
		syn(),
	})
	// device disappears mid-record
	data = append(data, 0xde, 0xad, 0xbe)

	var counts []int
	frames := PumpEvents(bytes.NewReader(data), touch.NewTracker(), func(count int) {
		counts = append(counts, count)
	})

	assert.Equal(t, uint64(1), frames)
	assert.Equal(t, []int{1}, counts)
}

func TestPumpEvents_ReleaseThenRetouchFiresTwice(t *testing.T) {
	var events []touch.InputEvent

	press := func(slot, id int32) {
		events = append(events,
			abs(touch.AbsMtSlot, slot),
			abs(touch.AbsMtTrackingID, id),
			abs(touch.AbsMtPositionX, 100*slot+50),
			abs(touch.AbsMtPositionY, 100*slot+60),
		)
	}
	lift := func(slot int32) {
		events = append(events,
			abs(touch.AbsMtSlot, slot),
			abs(touch.AbsMtTrackingID, touch.LiftSentinel),
		)
	}

	// two fingers down
	press(0, 10)
	press(1, 11)
	events = append(events, syn())

	// hold past the cooldown
	for i := 0; i < 35; i++ {
		events = append(events, syn())
	}

	// full release, then touch down again
	lift(0)
	lift(1)
	events = append(events, syn())
	press(0, 12)
	press(1, 13)
	events = append(events, syn())

	dispatcher := &recordingDispatcher{}
	rules := []gesture.Rule{{Kind: gesture.KindTap, Fingers: 2, Command: "toggle"}}
	engine := gesture.NewEngine(rules, dispatcher, 30)

	PumpEvents(bytes.NewReader(encodeEvents(t, events)), touch.NewTracker(), engine.OnFrame)

	assert.Equal(t, []string{"toggle", "toggle"}, dispatcher.commands)
}

func TestRunCommand_MissingRulesFile(t *testing.T) {
	response := RunCommand(RunRequest{
		DevicePath: "/dev/input/event2",
		RulesPath:  "/nonexistent/rules.conf",
	})

	assert.Equal(t, "error", response.Status)
	assert.Contains(t, response.Error, "rules")
}
