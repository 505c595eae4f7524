package dbuswire

// A StructEncoder drives one struct, tuple, dict entry, or variant's
// worth of fields. Obtained from Encoder.BeginStruct, which has
// already consumed the opening bracket and emitted 8-byte padding for
// everything except a variant, which is transparent: it contributes
// no padding and no bracket of its own.
type StructEncoder struct {
	enc *Encoder
	// closeChar is the bracket BeginStruct consumed ')' or '}', or 0
	// for a variant, which has none to require on close.
	closeChar byte
}

// Field encodes one field's value through v. name is ignored unless
// it is exactly VariantValueField, in which case this call is
// understood to be a variant's value slot: the signature most
// recently captured by Encoder.EncodeString is taken as the value's
// type, and v is encoded through a sub-encoder scoped to just that
// signature.
//
// The sub-encoder shares this encoder's sink, so the running offset
// stays in sync with no explicit hand-back needed.
func (s *StructEncoder) Field(name string, v Value) error {
	if name != VariantValueField {
		return v.EncodeDBus(s.enc)
	}
	sig, ok := s.enc.takePendingVariantSignature()
	if !ok {
		return errMissingVariantSignature()
	}
	sub := &Encoder{
		format: s.enc.format,
		order:  s.enc.order,
		sink:   s.enc.sink,
		cursor: newCursor(sig),
	}
	return v.EncodeDBus(sub)
}

// End closes the struct, requiring and consuming the matching close
// bracket unless this is a variant, which has none.
func (s *StructEncoder) End() error {
	if s.closeChar == 0 {
		return nil
	}
	return s.enc.cursor.expect(s.closeChar)
}
