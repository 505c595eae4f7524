package fragments

import "io"

// A Sink is the destination for encoded bytes. It must support
// appending (via Write) and seeking to an absolute offset, so that an
// array's length prefix can be back-patched once the array's body has
// been written (see OffsetSink.PatchUint32).
type Sink interface {
	io.Writer
	io.Seeker
}

// An OffsetSink wraps a Sink and tracks the number of bytes ever
// appended to it, independent of the Sink's own seek position.
//
// The distinction matters for padding: alignment decisions are made
// against the logical count of bytes written so far, which must not
// change when PatchUint32 seeks backwards to fix up an array length
// and then returns to the end of the stream.
type OffsetSink struct {
	Sink Sink

	// Written is the number of bytes ever appended via Write. Unlike
	// the Sink's own seek position, it never moves backwards.
	Written int64
}

// Write appends p to the sink and advances Written by len(p).
func (o *OffsetSink) Write(p []byte) (int, error) {
	n, err := o.Sink.Write(p)
	o.Written += int64(n)
	return n, err
}

// PatchUint32 overwrites the 4 bytes at absolute offset at with u32,
// encoded in the given byte order, then restores the sink's position
// to the end of the stream so that subsequent Write calls continue to
// append. Written is not affected: the patched bytes were already
// counted when the placeholder was first written.
func (o *OffsetSink) PatchUint32(at int64, order ByteOrder, u32 uint32) error {
	if _, err := o.Sink.Seek(at, io.SeekStart); err != nil {
		return err
	}
	var buf [4]byte
	order.PutUint32(buf[:], u32)
	if _, err := o.Sink.Write(buf[:]); err != nil {
		return err
	}
	_, err := o.Sink.Seek(o.Written, io.SeekStart)
	return err
}
