package dbuswire

import (
	"math"

	"github.com/telemetered/dbuswire/fragments"
)

// An Encoder drives the production of one top-level D-Bus value. It
// is created fresh for each value; it is not safe to share across
// goroutines, since it mutates its signature cursor, pending variant
// signature, and the shared sink's offset counter as it goes.
type Encoder struct {
	format Format
	order  fragments.ByteOrder
	sink   *fragments.OffsetSink
	cursor *cursor

	pendingVariantSignature string
	havePendingVariant      bool
}

// EncodeToSink encodes value against signature into sink, using
// format's alignment rules and the given byte order. sink must
// support seeking, so that array length prefixes can be patched in
// once their body is known. It returns the number of bytes appended
// to sink.
func EncodeToSink(sink fragments.Sink, format Format, order fragments.ByteOrder, signature string, value Value) (int, error) {
	e := &Encoder{
		format: format,
		order:  order,
		sink:   &fragments.OffsetSink{Sink: sink},
		cursor: newCursor(signature),
	}
	err := value.EncodeDBus(e)
	return int(e.sink.Written), err
}

// EncodeToBuffer encodes value into an in-memory buffer, using
// value's own Signature, and returns the buffer's contents.
func EncodeToBuffer(format Format, order fragments.ByteOrder, value Value) ([]byte, error) {
	buf := &fragments.Buffer{}
	if _, err := EncodeToSink(buf, format, order, value.Signature(), value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *Encoder) lowLevel() *fragments.Encoder {
	return &fragments.Encoder{Order: e.order, Sink: e.sink}
}

func (e *Encoder) pad(align int) error {
	_, err := e.lowLevel().Pad(align)
	if err != nil {
		return errIO(err)
	}
	return nil
}

// takePendingVariantSignature returns and clears the signature most
// recently captured by EncodeString while writing a variant's
// embedded signature.
func (e *Encoder) takePendingVariantSignature() (string, bool) {
	if !e.havePendingVariant {
		return "", false
	}
	sig := e.pendingVariantSignature
	e.pendingVariantSignature = ""
	e.havePendingVariant = false
	return sig, true
}

// EncodeBool writes a D-Bus boolean: a u32, 1 for true and 0 for
// false.
func (e *Encoder) EncodeBool(v bool) error {
	if err := e.cursor.expect('b'); err != nil {
		return err
	}
	if err := e.pad(4); err != nil {
		return err
	}
	u := uint32(0)
	if v {
		u = 1
	}
	if err := e.lowLevel().Uint32(u); err != nil {
		return errIO(err)
	}
	return nil
}

// EncodeInt8 writes v widened to a signed 16-bit integer ('n'), with
// sign extension. D-Bus has no 8-bit signed type.
func (e *Encoder) EncodeInt8(v int8) error {
	return e.EncodeInt16(int16(v))
}

// EncodeInt16 writes a signed 16-bit integer ('n').
func (e *Encoder) EncodeInt16(v int16) error {
	if err := e.cursor.expect('n'); err != nil {
		return err
	}
	if err := e.pad(2); err != nil {
		return err
	}
	if err := e.lowLevel().Uint16(uint16(v)); err != nil {
		return errIO(err)
	}
	return nil
}

// EncodeUint8 writes an unsigned 8-bit integer ('y'). It never needs
// padding.
func (e *Encoder) EncodeUint8(v uint8) error {
	if err := e.cursor.expect('y'); err != nil {
		return err
	}
	if err := e.lowLevel().Uint8(v); err != nil {
		return errIO(err)
	}
	return nil
}

// EncodeUint16 writes an unsigned 16-bit integer ('q').
func (e *Encoder) EncodeUint16(v uint16) error {
	if err := e.cursor.expect('q'); err != nil {
		return err
	}
	if err := e.pad(2); err != nil {
		return err
	}
	if err := e.lowLevel().Uint16(v); err != nil {
		return errIO(err)
	}
	return nil
}

// EncodeInt32 writes a signed 32-bit integer ('i').
func (e *Encoder) EncodeInt32(v int32) error {
	if err := e.cursor.expect('i'); err != nil {
		return err
	}
	if err := e.pad(4); err != nil {
		return err
	}
	if err := e.lowLevel().Uint32(uint32(v)); err != nil {
		return errIO(err)
	}
	return nil
}

// EncodeUint32 writes an unsigned 32-bit integer ('u').
func (e *Encoder) EncodeUint32(v uint32) error {
	if err := e.cursor.expect('u'); err != nil {
		return err
	}
	if err := e.pad(4); err != nil {
		return err
	}
	if err := e.lowLevel().Uint32(v); err != nil {
		return errIO(err)
	}
	return nil
}

// EncodeInt64 writes a signed 64-bit integer ('x').
func (e *Encoder) EncodeInt64(v int64) error {
	if err := e.cursor.expect('x'); err != nil {
		return err
	}
	if err := e.pad(8); err != nil {
		return err
	}
	if err := e.lowLevel().Uint64(uint64(v)); err != nil {
		return errIO(err)
	}
	return nil
}

// EncodeUint64 writes an unsigned 64-bit integer ('t').
func (e *Encoder) EncodeUint64(v uint64) error {
	if err := e.cursor.expect('t'); err != nil {
		return err
	}
	if err := e.pad(8); err != nil {
		return err
	}
	if err := e.lowLevel().Uint64(v); err != nil {
		return errIO(err)
	}
	return nil
}

// EncodeFloat32 writes v widened to a binary64 float ('d'). D-Bus has
// no 32-bit float type.
func (e *Encoder) EncodeFloat32(v float32) error {
	return e.EncodeFloat64(float64(v))
}

// EncodeFloat64 writes an IEEE-754 binary64 float ('d').
func (e *Encoder) EncodeFloat64(v float64) error {
	if err := e.cursor.expect('d'); err != nil {
		return err
	}
	if err := e.pad(8); err != nil {
		return err
	}
	if err := e.lowLevel().Uint64(math.Float64bits(v)); err != nil {
		return errIO(err)
	}
	return nil
}

// EncodeRune writes v as a single-scalar UTF-8 string ('s'). D-Bus
// has no scalar character type.
func (e *Encoder) EncodeRune(v rune) error {
	return e.EncodeString(string(v))
}

// EncodeString writes a string-shaped value. Which of the four
// string-shaped wire types is produced — 's', 'o', 'g', or a
// variant's embedded 'v' signature — is decided entirely by the
// signature cursor's next character, not by the caller.
//
// For 'v', s is captured as the pending variant signature, to be
// consumed by the next StructEncoder.Field call tagged with
// VariantValueField.
func (e *Encoder) EncodeString(s string) error {
	c, err := e.cursor.peek()
	if err != nil {
		return err
	}
	switch c {
	case 's', 'o':
		if err := e.pad(4); err != nil {
			return err
		}
		if len(s) > math.MaxUint32 {
			return errValueOutOfRange("string exceeds 2^32-1 bytes")
		}
		ll := e.lowLevel()
		if err := ll.Uint32(uint32(len(s))); err != nil {
			return errIO(err)
		}
		if err := ll.Write([]byte(s)); err != nil {
			return errIO(err)
		}
		if err := ll.Uint8(0); err != nil {
			return errIO(err)
		}
		e.cursor.advance()
		return nil
	case 'g', 'v':
		if len(s) > 255 {
			return errSignatureTooLong(len(s))
		}
		ll := e.lowLevel()
		if err := ll.Uint8(uint8(len(s))); err != nil {
			return errIO(err)
		}
		if err := ll.Write([]byte(s)); err != nil {
			return errIO(err)
		}
		if err := ll.Uint8(0); err != nil {
			return errIO(err)
		}
		if c == 'v' {
			e.pendingVariantSignature = s
			e.havePendingVariant = true
		}
		e.cursor.advance()
		return nil
	default:
		return errMismatch('s', c, e.cursor.position())
	}
}

// EncodeBytes writes a contiguous run of bytes as an array of 'y'.
func (e *Encoder) EncodeBytes(bs []byte) error {
	if err := e.cursor.expect('a'); err != nil {
		return err
	}
	if err := e.cursor.expect('y'); err != nil {
		return err
	}
	if err := e.pad(4); err != nil {
		return err
	}
	if len(bs) > math.MaxUint32 {
		return errArrayTooLong(int64(len(bs)))
	}
	ll := e.lowLevel()
	if err := ll.Uint32(uint32(len(bs))); err != nil {
		return errIO(err)
	}
	if err := ll.Write(bs); err != nil {
		return errIO(err)
	}
	return nil
}

// EncodeNone encodes an absent optional value. D-Bus has no optional
// type and GVariant's Maybe framing is not implemented, so this
// always fails with UnsupportedShape, whatever the format.
func (e *Encoder) EncodeNone() error {
	return errUnsupportedShape("optional (None)")
}

// EncodeSome writes a present optional value. Under DBus there is no
// wire representation for "optional" as a concept distinct from the
// value itself, so this just encodes inner directly; under GVariant
// it would need Maybe framing, which is not yet implemented.
func (e *Encoder) EncodeSome(inner Value) error {
	if e.format == GVariant {
		return errUnsupportedShape("optional (Some) under GVariant")
	}
	return inner.EncodeDBus(e)
}

// EncodeUnit writes a unit value. D-Bus has nothing to write for
// "no value"; this always fails.
func (e *Encoder) EncodeUnit() error {
	return errUnsupportedShape("unit")
}

// EncodeUnitStruct writes a unit struct. The reference implementation
// this encoder is modeled on encodes the struct's type name as a
// string, which conflates a compile-time identifier with wire data;
// this implementation treats it as unsupported instead.
func (e *Encoder) EncodeUnitStruct() error {
	return errUnsupportedShape("unit struct")
}

// EncodeUnitVariant writes an enum's discriminant index as a u32.
func (e *Encoder) EncodeUnitVariant(index uint32) error {
	return e.EncodeUint32(index)
}

// EncodeNewtypeStruct writes inner directly: a newtype's identity is
// not observable on the wire.
func (e *Encoder) EncodeNewtypeStruct(inner Value) error {
	return inner.EncodeDBus(e)
}

// EncodeNewtypeVariant writes inner directly: an enum variant's
// identity is not observable on the wire, only its payload.
func (e *Encoder) EncodeNewtypeVariant(inner Value) error {
	return inner.EncodeDBus(e)
}

// BeginSeq opens a D-Bus array: sequence, byte string, and map all
// share this framing at the wire level, but
// BeginSeq itself handles the homogeneous-element case (everything
// except maps, which need the dict-entry bracket bookkeeping in
// BeginMap).
//
// Wire layout: pad-to-4, u32 length placeholder, pad-to-element-
// alignment, elements. The length field counts only the element
// bytes, not the padding between the length field and the first
// element.
func (e *Encoder) BeginSeq() (*SeqEncoder, error) {
	if err := e.cursor.expect('a'); err != nil {
		return nil, err
	}
	if err := e.pad(4); err != nil {
		return nil, err
	}
	lengthPatchOffset := e.sink.Written
	if err := e.lowLevel().Uint32(0); err != nil {
		return nil, errIO(err)
	}
	elemChar, err := e.cursor.peek()
	if err != nil {
		return nil, err
	}
	elemAlign, err := alignmentFor(e.format, elemChar)
	if err != nil {
		return nil, err
	}
	elemSig, err := e.cursor.completeType()
	if err != nil {
		return nil, err
	}
	start := e.sink.Written
	firstPadding, err := e.lowLevel().Pad(elemAlign)
	if err != nil {
		return nil, errIO(err)
	}
	return &SeqEncoder{
		enc:               e,
		elemSig:           elemSig,
		lengthPatchOffset: lengthPatchOffset,
		start:             start,
		firstPadding:      firstPadding,
	}, nil
}

// BeginMap opens a D-Bus dict, `a{kv}`: an array whose element type
// is a dict entry. Per-key bracket and alignment bookkeeping is
// different enough from a homogeneous array (see MapEncoder) that it
// is not built on top of BeginSeq.
func (e *Encoder) BeginMap() (*MapEncoder, error) {
	if err := e.cursor.expect('a'); err != nil {
		return nil, err
	}
	if err := e.pad(4); err != nil {
		return nil, err
	}
	lengthPatchOffset := e.sink.Written
	if err := e.lowLevel().Uint32(0); err != nil {
		return nil, errIO(err)
	}
	if c, err := e.cursor.peek(); err != nil {
		return nil, err
	} else if c != '{' {
		return nil, errMismatch('{', c, e.cursor.position())
	}
	elemSig, err := e.cursor.completeType()
	if err != nil {
		return nil, err
	}
	e.cursor.advance() // consume '{'; the matching '}' is consumed once, in MapEncoder.End
	start := e.sink.Written
	firstPadding, err := e.lowLevel().Pad(dictEntryAlignment)
	if err != nil {
		return nil, errIO(err)
	}
	return &MapEncoder{
		enc:               e,
		elemSig:           elemSig,
		lengthPatchOffset: lengthPatchOffset,
		start:             start,
		firstPadding:      firstPadding,
	}, nil
}

// BeginStruct opens a struct, dict entry, or variant, depending on
// the signature cursor's next character: '(' for a struct/tuple,
// '{' for a bare dict entry, or 'v' for a variant. A variant does not
// consume its 'v' character here; see StructEncoder and
// Encoder.EncodeString.
func (e *Encoder) BeginStruct() (*StructEncoder, error) {
	c, err := e.cursor.peek()
	if err != nil {
		return nil, err
	}
	switch c {
	case '(':
		e.cursor.advance()
		if err := e.pad(8); err != nil {
			return nil, err
		}
		return &StructEncoder{enc: e, closeChar: ')'}, nil
	case '{':
		e.cursor.advance()
		if err := e.pad(8); err != nil {
			return nil, err
		}
		return &StructEncoder{enc: e, closeChar: '}'}, nil
	case 'v':
		return &StructEncoder{enc: e, closeChar: 0}, nil
	default:
		return nil, errMismatch('(', c, e.cursor.position())
	}
}
