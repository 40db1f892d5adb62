package touch

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventReader_RoundTrip(t *testing.T) {
	events := []InputEvent{
		{Sec: 1700000000, Usec: 123456, Type: EvAbs, Code: AbsMtTrackingID, Value: 42},
		{Type: EvSyn, Code: SynReport},
	}

	var buf bytes.Buffer
	for _, ev := range events {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, ev))
	}

	reader := NewEventReader(&buf)
	for _, want := range events {
		got, err := reader.ReadEvent()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := reader.ReadEvent()
	assert.Equal(t, io.EOF, err)
}

func TestEventReader_PartialRecordIsEOF(t *testing.T) {
	// half a record
	reader := NewEventReader(bytes.NewReader(make([]byte, EventSize/2)))

	_, err := reader.ReadEvent()
	assert.Equal(t, io.EOF, err)
}

func TestEventReader_EmptySource(t *testing.T) {
	reader := NewEventReader(bytes.NewReader(nil))

	_, err := reader.ReadEvent()
	assert.Equal(t, io.EOF, err)
}
