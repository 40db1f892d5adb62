package touch

import (
	"bytes"
	"encoding/binary"
	"io"
)

// EventReader reads input_event records one at a time from a raw event
// stream.
type EventReader struct {
	src io.Reader
	buf [EventSize]byte
}

func NewEventReader(src io.Reader) *EventReader {
	return &EventReader{src: src}
}

// ReadEvent blocks until a full record is available. A partial record means
// the device went away mid-report (or the source was never an event device)
// and is reported as io.EOF so the read loop winds down instead of crashing.
func (r *EventReader) ReadEvent() (InputEvent, error) {
	var ev InputEvent

	if _, err := io.ReadFull(r.src, r.buf[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return ev, io.EOF
		}
		return ev, err
	}

	if err := binary.Read(bytes.NewReader(r.buf[:]), binary.LittleEndian, &ev); err != nil {
		return ev, io.EOF
	}

	return ev, nil
}
