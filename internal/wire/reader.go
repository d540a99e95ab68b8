// Package wire implements the little-endian cursor the codec reads and
// writes build templates through.
package wire

import (
	"encoding/binary"
	"fmt"
)

// Reader provides sequential reads over a fixed byte buffer.
// Uses Little-Endian byte order for all multi-byte values.
//
// The buffer is treated as immutable for the lifetime of the Reader;
// SliceAt hands out additional Readers over the same bytes.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a new reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{
		data: data,
		pos:  0,
	}
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, fmt.Errorf("ReadByte: not enough data (pos=%d, len=%d)", r.pos, len(r.data))
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadUint16 reads a uint16 (2 bytes, LE).
func (r *Reader) ReadUint16() (uint16, error) {
	if r.pos+2 > len(r.data) {
		return 0, fmt.Errorf("ReadUint16: not enough data (pos=%d, len=%d)", r.pos, len(r.data))
	}
	val := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return val, nil
}

// ReadUint32 reads a uint32 (4 bytes, LE).
func (r *Reader) ReadUint32() (uint32, error) {
	if r.pos+4 > len(r.data) {
		return 0, fmt.Errorf("ReadUint32: not enough data (pos=%d, len=%d)", r.pos, len(r.data))
	}
	val := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return val, nil
}

// PeekByte reads the byte at the given offset from the current position
// without advancing.
func (r *Reader) PeekByte(offset int) (byte, error) {
	idx := r.pos + offset
	if idx < 0 || idx >= len(r.data) {
		return 0, fmt.Errorf("PeekByte: offset %d out of range (pos=%d, len=%d)", offset, r.pos, len(r.data))
	}
	return r.data[idx], nil
}

// Skip advances the position by n bytes without reading.
func (r *Reader) Skip(n int) error {
	if n < 0 {
		return fmt.Errorf("Skip: negative count %d", n)
	}
	if r.pos+n > len(r.data) {
		return fmt.Errorf("Skip: not enough data (pos=%d, need=%d, len=%d)", r.pos, n, len(r.data))
	}
	r.pos += n
	return nil
}

// SliceAt returns an independent Reader positioned offset bytes past the
// current position. Both readers share the underlying buffer; neither
// advancing one moves the other.
func (r *Reader) SliceAt(offset int) (*Reader, error) {
	idx := r.pos + offset
	if idx < 0 || idx > len(r.data) {
		return nil, fmt.Errorf("SliceAt: offset %d out of range (pos=%d, len=%d)", offset, r.pos, len(r.data))
	}
	return &Reader{data: r.data, pos: idx}, nil
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Position returns the current read position.
func (r *Reader) Position() int {
	return r.pos
}

// Len returns the total buffer length.
func (r *Reader) Len() int {
	return len(r.data)
}
