// Package textbuf provides bounded-capacity text assembly primitives.
//
// A Buffer never grows past the capacity it was created with. Appends that
// would overflow fail with ErrOverflow instead of truncating silently; the
// content beyond the pre-append prefix is then unspecified, but the
// capacity is never exceeded.
package textbuf

import (
	"errors"
	"fmt"
)

var (
	// ErrNilBuffer reports an absent destination buffer.
	ErrNilBuffer = errors.New("textbuf: nil buffer")

	// ErrOverflow reports that a result would exceed the buffer's capacity.
	ErrOverflow = errors.New("textbuf: capacity exceeded")
)

// Buffer is a text destination with a fixed capacity.
type Buffer struct {
	buf []byte
	cap int
}

// New returns a Buffer that holds at most capacity bytes.
func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{
		buf: make([]byte, 0, capacity),
		cap: capacity,
	}
}

// Append adds s to the buffer.
func (b *Buffer) Append(s string) error {
	if b == nil {
		return ErrNilBuffer
	}
	if len(b.buf)+len(s) > b.cap {
		return fmt.Errorf("%w: need %d bytes, %d remaining", ErrOverflow, len(s), b.Remaining())
	}
	b.buf = append(b.buf, s...)
	return nil
}

// Appendf formats its arguments per fmt.Sprintf and appends the result.
func (b *Buffer) Appendf(format string, args ...any) error {
	if b == nil {
		return ErrNilBuffer
	}
	return b.Append(fmt.Sprintf(format, args...))
}

// Len returns the current content length.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.buf)
}

// Remaining returns how many more bytes the buffer can take.
func (b *Buffer) Remaining() int {
	if b == nil {
		return 0
	}
	return b.cap - len(b.buf)
}

// Reset empties the buffer, keeping its capacity.
func (b *Buffer) Reset() {
	if b == nil {
		return
	}
	b.buf = b.buf[:0]
}

// String returns the current content.
func (b *Buffer) String() string {
	if b == nil {
		return ""
	}
	return string(b.buf)
}
