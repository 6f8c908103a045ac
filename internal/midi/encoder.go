package midi

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/mizrahidaniel/api-sonification/internal/score"
)

// ErrInvalidSequence marks a sequence whose tempo or time division cannot
// be represented in the file format.
var ErrInvalidSequence = errors.New("invalid sequence")

// Chunk identifiers from the Standard MIDI File format.
var (
	headerMagic = []byte("MThd")
	trackMagic  = []byte("MTrk")
)

const (
	statusNoteOff       = 0x80
	statusNoteOn        = 0x90
	statusProgramChange = 0xC0

	metaPrefix     = 0xFF
	metaTempo      = 0x51
	metaEndOfTrack = 0x2F

	formatMultiTrack = 1

	microsecondsPerMinute = 60_000_000
	maxTempoMicros        = 0xFFFFFF
)

// Encode serializes the sequence into a format 1 Standard MIDI File: one
// MThd header chunk followed by one MTrk chunk per track, with the tempo
// meta event embedded in the first track. The output is a pure function of
// the sequence; identical inputs produce identical bytes.
func Encode(seq *score.Sequence) ([]byte, error) {
	// The tempo meta event stores microseconds per beat in three bytes,
	// which puts the slowest representable tempo at 4 BPM.
	if seq.Tempo <= 0 || microsecondsPerMinute/seq.Tempo > maxTempoMicros {
		return nil, fmt.Errorf("%w: tempo %d", ErrInvalidSequence, seq.Tempo)
	}
	// The division field carries metric ticks in 15 bits.
	if seq.TicksPerBeat <= 0 || seq.TicksPerBeat > 0x7FFF {
		return nil, fmt.Errorf("%w: ticks per beat %d", ErrInvalidSequence, seq.TicksPerBeat)
	}

	buf := new(bytes.Buffer)

	// 1. Header Chunk
	buf.Write(headerMagic)
	binary.Write(buf, binary.BigEndian, uint32(6))
	binary.Write(buf, binary.BigEndian, uint16(formatMultiTrack))
	binary.Write(buf, binary.BigEndian, uint16(len(seq.Tracks)))
	binary.Write(buf, binary.BigEndian, uint16(seq.TicksPerBeat))

	// 2. Track Chunks
	for i := range seq.Tracks {
		body := encodeTrack(&seq.Tracks[i], seq, i == 0)
		buf.Write(trackMagic)
		binary.Write(buf, binary.BigEndian, uint32(len(body)))
		buf.Write(body)
	}

	return buf.Bytes(), nil
}

// encodeTrack renders one track body: the tempo meta event (first track
// only), the program select, then note on/off pairs in timeline order, and
// the end-of-track marker. All multi-byte values are big-endian.
func encodeTrack(track *score.Track, seq *score.Sequence, withTempo bool) []byte {
	var body []byte

	if withTempo {
		usPerBeat := microsecondsPerMinute / seq.Tempo
		body = AppendVLQ(body, 0)
		body = append(body, metaPrefix, metaTempo, 0x03,
			byte(usPerBeat>>16), byte(usPerBeat>>8), byte(usPerBeat))
	}

	// Channel n carries track n; program numbers pass through unchanged.
	channel := byte(track.ID & 0x0F)
	body = AppendVLQ(body, 0)
	body = append(body, statusProgramChange|channel, byte(track.Instrument&0x7F))

	prevTick := uint32(0)
	for _, ev := range track.Events {
		on := beatTick(ev.StartBeat, seq.TicksPerBeat)
		off := beatTick(ev.StartBeat+ev.Duration, seq.TicksPerBeat)
		if on < prevTick {
			// Sequenced tracks never overlap; hand-built ones are
			// serialized back-to-back rather than rejected.
			on = prevTick
		}
		if off < on {
			off = on
		}

		body = AppendVLQ(body, on-prevTick)
		body = append(body, statusNoteOn|channel, byte(ev.Pitch&0x7F), byte(ev.Velocity&0x7F))

		body = AppendVLQ(body, off-on)
		body = append(body, statusNoteOff|channel, byte(ev.Pitch&0x7F), 0x00)

		prevTick = off
	}

	body = AppendVLQ(body, 0)
	body = append(body, metaPrefix, metaEndOfTrack, 0x00)
	return body
}

// beatTick converts a beat position into absolute ticks, rounding to the
// nearest tick so successive float sums stay stable.
func beatTick(beat float64, ticksPerBeat int) uint32 {
	return uint32(math.Round(beat * float64(ticksPerBeat)))
}
