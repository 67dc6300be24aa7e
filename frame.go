package veil

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// frameMarker distinguishes a genuine payload from the natural
// pseudo-randomness of the low-order bits in an untouched image. An unmarked
// carrier must decode to "no message", never to garbage.
var frameMarker = []byte{'I', 'M', 'S', 'G', 0x00}

const frameLengthSize = 4

func frameOverhead() int {
	return len(frameMarker) + frameLengthSize
}

// buildFrame wraps a message in a self-delimiting frame: marker, big-endian
// u32 body length, body.
func buildFrame(message []byte) ([]byte, error) {
	if len(message) <= 0 {
		return nil, &InvalidInputError{"The message to embed is empty."}
	}
	if uint64(len(message)) > math.MaxUint32 {
		return nil, &InvalidInputError{fmt.Sprintf("The message is too long to frame: %d bytes.", len(message))}
	}

	frame := make([]byte, 0, frameOverhead()+len(message))
	frame = append(frame, frameMarker...)
	frame = binary.BigEndian.AppendUint32(frame, uint32(len(message)))
	frame = append(frame, message...)
	return frame, nil
}

// parseFrame recovers the message body from framed data. It returns a
// NoMessageError when the marker is absent, or when the declared length runs
// past the available data (a truncated or corrupted carrier).
func parseFrame(data []byte) ([]byte, error) {
	if len(data) < frameOverhead() {
		return nil, &NoMessageError{}
	}
	if !bytes.Equal(data[:len(frameMarker)], frameMarker) {
		return nil, &NoMessageError{}
	}

	bodyLen := int64(binary.BigEndian.Uint32(data[len(frameMarker):frameOverhead()]))
	body := data[frameOverhead():]
	// A zero length cannot come from buildFrame, so it is noise too.
	if bodyLen <= 0 || bodyLen > int64(len(body)) {
		return nil, &NoMessageError{}
	}
	return body[:bodyLen], nil
}
