package fragments

import (
	"fmt"
	"io"
)

// A Buffer is an in-memory Sink, for callers that just want the
// encoded bytes back rather than streaming them somewhere seekable of
// their own (a file, a pipe-backed temp file, and so on).
type Buffer struct {
	buf []byte
	pos int64
}

// Write appends p at the current position, overwriting existing bytes
// there and growing the buffer as needed.
func (b *Buffer) Write(p []byte) (int, error) {
	end := b.pos + int64(len(p))
	if end > int64(len(b.buf)) {
		grown := make([]byte, end)
		copy(grown, b.buf)
		b.buf = grown
	}
	copy(b.buf[b.pos:end], p)
	b.pos = end
	return len(p), nil
}

// Seek repositions the buffer's write cursor.
func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = b.pos + offset
	case io.SeekEnd:
		abs = int64(len(b.buf)) + offset
	default:
		return 0, fmt.Errorf("fragments.Buffer.Seek: invalid whence %d", whence)
	}
	if abs < 0 {
		return 0, fmt.Errorf("fragments.Buffer.Seek: negative position %d", abs)
	}
	b.pos = abs
	return abs, nil
}

// Bytes returns the buffer's contents.
func (b *Buffer) Bytes() []byte {
	return b.buf
}
