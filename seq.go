package dbuswire

import "math"

// A SeqEncoder drives one array's worth of elements: byte-sequences
// aside (which go through Encoder.EncodeBytes directly), every D-Bus
// array — including the ones backing a Go slice, a tuple repeated
// N times, or anything else shaped like a homogeneous sequence — is
// framed through this type.
//
// Obtained from Encoder.BeginSeq, which has already written the
// length placeholder and the first element's leading padding by the
// time a SeqEncoder is returned.
type SeqEncoder struct {
	enc               *Encoder
	elemSig           string
	lengthPatchOffset int64
	start             int64
	firstPadding      int
	count             int
}

// Element encodes one array element through v. Every call after the
// first rewinds the signature cursor back to the start of the
// element type, since the cursor only ever holds one copy of it.
func (s *SeqEncoder) Element(v Value) error {
	if s.count > 0 {
		s.enc.cursor.rewind(len(s.elemSig))
	}
	if err := v.EncodeDBus(s.enc); err != nil {
		return err
	}
	s.count++
	return nil
}

// End closes the array, back-patching its length placeholder. If no
// element was ever written, the element type is skipped in the
// signature cursor instead of being re-parsed.
func (s *SeqEncoder) End() error {
	if s.count == 0 {
		if err := s.enc.cursor.skip(len(s.elemSig)); err != nil {
			return err
		}
	}
	bodyLen := s.enc.sink.Written - s.start - int64(s.firstPadding)
	if bodyLen > math.MaxUint32 {
		return errArrayTooLong(bodyLen)
	}
	if err := s.enc.sink.PatchUint32(s.lengthPatchOffset, s.enc.order, uint32(bodyLen)); err != nil {
		return errIO(err)
	}
	return nil
}

// A MapEncoder drives one dict's worth of key/value pairs, wire-
// compatible with a D-Bus array of dict entries (`a{kv}`). Obtained
// from Encoder.BeginMap.
//
// Unlike SeqEncoder, the two bracket characters of the dict-entry type
// are consumed once for the whole map rather than once per entry:
// Encoder.BeginMap consumes '{' (and unconditionally emits the
// dict-entry alignment padding that follows it, empty map or not,
// mirroring BeginSeq's unconditional first-element padding), and End
// consumes '}'. The key and value types in between are re-parsed per
// entry exactly like an array element.
type MapEncoder struct {
	enc               *Encoder
	elemSig           string
	lengthPatchOffset int64
	start             int64
	firstPadding      int
	count             int
}

// Key encodes one entry's key through v. The key's type character
// must be one of the D-Bus basic types; anything else is
// InvalidMapKey.
func (m *MapEncoder) Key(v Value) error {
	if m.count > 0 {
		m.enc.cursor.rewind(len(m.elemSig) - 2)
		if _, err := m.enc.lowLevel().Pad(dictEntryAlignment); err != nil {
			return errIO(err)
		}
	}
	c, err := m.enc.cursor.peek()
	if err != nil {
		return err
	}
	if !isBasicType(c) {
		return errInvalidMapKey(c, m.enc.cursor.position())
	}
	return v.EncodeDBus(m.enc)
}

// Value encodes one entry's value through v. The dict-entry's closing
// brace is not consumed here; see End.
func (m *MapEncoder) Value(v Value) error {
	if err := v.EncodeDBus(m.enc); err != nil {
		return err
	}
	m.count++
	return nil
}

// End closes the map, consuming the dict-entry's closing brace (if
// any entry was ever written; otherwise the remaining key, value, and
// closing-brace characters are skipped unconsumed) and back-patching
// the length placeholder BeginMap wrote.
func (m *MapEncoder) End() error {
	if m.count == 0 {
		if err := m.enc.cursor.skip(len(m.elemSig) - 1); err != nil {
			return err
		}
	} else if err := m.enc.cursor.expect('}'); err != nil {
		return err
	}
	bodyLen := m.enc.sink.Written - m.start - int64(m.firstPadding)
	if bodyLen > math.MaxUint32 {
		return errArrayTooLong(bodyLen)
	}
	if err := m.enc.sink.PatchUint32(m.lengthPatchOffset, m.enc.order, uint32(bodyLen)); err != nil {
		return errIO(err)
	}
	return nil
}
