// Package fragments provides the low-level, signature-unaware pieces
// of the D-Bus wire encoder: a seekable output sink that tracks the
// number of bytes written (for alignment math and array length
// back-patching), a zero-byte padding helper, and endianness-aware
// primitive writers.
//
// Package fragments has no notion of a type signature. Callers are
// responsible for deciding when to pad and what to write; this
// package just gets the bytes onto the wire in the right order.
package fragments

// An Encoder appends primitive D-Bus wire values to a Sink.
//
// Encoder does not insert alignment padding on its own — callers must
// call Pad with the appropriate alignment before each value, since the
// correct alignment depends on the type signature being walked, which
// this package does not know about.
type Encoder struct {
	Order ByteOrder
	Sink  *OffsetSink
}

// Pad appends zero bytes until Sink.Written is a multiple of align.
// It returns the number of padding bytes written.
func (e *Encoder) Pad(align int) (int, error) {
	n := PaddingFor(e.Sink.Written, align)
	if n == 0 {
		return 0, nil
	}
	var zero [8]byte
	if _, err := e.Sink.Write(zero[:n]); err != nil {
		return 0, err
	}
	return n, nil
}

// PaddingFor returns the number of zero bytes needed to bring offset
// up to the next multiple of align.
func PaddingFor(offset int64, align int) int {
	a := int64(align)
	return int(((-offset)%a + a) % a)
}

// Write appends p verbatim, with no padding or framing.
func (e *Encoder) Write(p []byte) error {
	_, err := e.Sink.Write(p)
	return err
}

// Uint8 appends a single byte. Its alignment is 1, so it never needs
// padding.
func (e *Encoder) Uint8(v uint8) error {
	_, err := e.Sink.Write([]byte{v})
	return err
}

// Uint16 appends v in the encoder's byte order.
func (e *Encoder) Uint16(v uint16) error {
	var buf [2]byte
	e.Order.PutUint16(buf[:], v)
	return e.Write(buf[:])
}

// Uint32 appends v in the encoder's byte order.
func (e *Encoder) Uint32(v uint32) error {
	var buf [4]byte
	e.Order.PutUint32(buf[:], v)
	return e.Write(buf[:])
}

// Uint64 appends v in the encoder's byte order.
func (e *Encoder) Uint64(v uint64) error {
	var buf [8]byte
	e.Order.PutUint64(buf[:], v)
	return e.Write(buf[:])
}
