package dbuswire

// VariantValueField is the struct-field-name sentinel that marks a
// field as a variant's value slot, as opposed to an ordinary named
// field. A StructEncoder recognizes it as the in-band signal to open
// a nested encoder against the signature most recently captured by
// EncodeString for a variant (see Encoder.EncodeString and
// StructEncoder.Field).
//
// Every Value implementation that represents a D-Bus variant must use
// exactly this name for its value field; any other name is treated as
// an ordinary struct field and forwarded to the parent encoder
// unchanged.
const VariantValueField = "__variant_value__"

// A Value announces its own shape to the encoder by calling back into
// the Encoder it's handed, the way encoding/gob's GobEncoder or
// serde's Serialize announce a type's shape to a generic encoder. The
// core does not derive this from reflection: callers supply both the
// signature and the traversal.
type Value interface {
	// Signature returns the D-Bus type signature this value encodes
	// as. Composite values compose theirs from their parts.
	Signature() string
	// EncodeDBus writes the value to e by calling exactly one of e's
	// Encode*/Begin* methods, matching the shape Signature describes.
	EncodeDBus(e *Encoder) error
}
