package dbuswire

import "fmt"

// Bool is a ready-made Value wrapping a D-Bus boolean ('b').
type Bool bool

func (Bool) Signature() string            { return "b" }
func (v Bool) EncodeDBus(e *Encoder) error { return e.EncodeBool(bool(v)) }

// Uint8 is a ready-made Value wrapping a D-Bus byte ('y').
type Uint8 uint8

func (Uint8) Signature() string            { return "y" }
func (v Uint8) EncodeDBus(e *Encoder) error { return e.EncodeUint8(uint8(v)) }

// Int8 is a ready-made Value wrapping a signed 8-bit integer, widened
// on the wire to D-Bus's int16 ('n'). D-Bus has no signed 8-bit type.
type Int8 int8

func (Int8) Signature() string             { return "n" }
func (v Int8) EncodeDBus(e *Encoder) error { return e.EncodeInt8(int8(v)) }

// Int16 is a ready-made Value wrapping a D-Bus int16 ('n').
type Int16 int16

func (Int16) Signature() string            { return "n" }
func (v Int16) EncodeDBus(e *Encoder) error { return e.EncodeInt16(int16(v)) }

// Uint16 is a ready-made Value wrapping a D-Bus uint16 ('q').
type Uint16 uint16

func (Uint16) Signature() string             { return "q" }
func (v Uint16) EncodeDBus(e *Encoder) error { return e.EncodeUint16(uint16(v)) }

// Int32 is a ready-made Value wrapping a D-Bus int32 ('i').
type Int32 int32

func (Int32) Signature() string             { return "i" }
func (v Int32) EncodeDBus(e *Encoder) error { return e.EncodeInt32(int32(v)) }

// Uint32 is a ready-made Value wrapping a D-Bus uint32 ('u').
type Uint32 uint32

func (Uint32) Signature() string             { return "u" }
func (v Uint32) EncodeDBus(e *Encoder) error { return e.EncodeUint32(uint32(v)) }

// Int64 is a ready-made Value wrapping a D-Bus int64 ('x').
type Int64 int64

func (Int64) Signature() string             { return "x" }
func (v Int64) EncodeDBus(e *Encoder) error { return e.EncodeInt64(int64(v)) }

// Uint64 is a ready-made Value wrapping a D-Bus uint64 ('t').
type Uint64 uint64

func (Uint64) Signature() string             { return "t" }
func (v Uint64) EncodeDBus(e *Encoder) error { return e.EncodeUint64(uint64(v)) }

// Float32 is a ready-made Value wrapping a 32-bit float, widened on
// the wire to D-Bus's double ('d'). D-Bus has no 32-bit float type.
type Float32 float32

func (Float32) Signature() string             { return "d" }
func (v Float32) EncodeDBus(e *Encoder) error { return e.EncodeFloat32(float32(v)) }

// Float64 is a ready-made Value wrapping a D-Bus double ('d').
type Float64 float64

func (Float64) Signature() string             { return "d" }
func (v Float64) EncodeDBus(e *Encoder) error { return e.EncodeFloat64(float64(v)) }

// Rune is a ready-made Value wrapping a single Unicode scalar,
// encoded on the wire as a single-scalar UTF-8 string ('s'). D-Bus
// has no scalar character type.
type Rune rune

func (Rune) Signature() string             { return "s" }
func (v Rune) EncodeDBus(e *Encoder) error { return e.EncodeRune(rune(v)) }

// String is a ready-made Value wrapping a D-Bus string ('s').
type String string

func (String) Signature() string             { return "s" }
func (v String) EncodeDBus(e *Encoder) error { return e.EncodeString(string(v)) }

// ObjectPath is a ready-made Value wrapping a D-Bus object path ('o').
// An object path has the same wire encoding as String; only the
// signature character differs.
type ObjectPath string

func (ObjectPath) Signature() string             { return "o" }
func (v ObjectPath) EncodeDBus(e *Encoder) error { return e.EncodeString(string(v)) }

// SignatureValue is a ready-made Value wrapping a D-Bus type
// signature ('g') as a first-class value, distinct from Encoder's own
// internal cursor over the signature it is walking.
type SignatureValue string

func (SignatureValue) Signature() string             { return "g" }
func (v SignatureValue) EncodeDBus(e *Encoder) error { return e.EncodeString(string(v)) }

// Bytes is a ready-made Value wrapping a D-Bus byte array ('ay').
type Bytes []byte

func (Bytes) Signature() string             { return "ay" }
func (v Bytes) EncodeDBus(e *Encoder) error { return e.EncodeBytes([]byte(v)) }

// Array is a ready-made Value wrapping a homogeneous D-Bus array.
// Elem describes the element type; an empty Array still needs Elem
// set, since the element's signature must be known even when there
// are no elements to encode.
type Array struct {
	Elem     Value
	Elements []Value
}

func (a Array) Signature() string {
	return "a" + a.Elem.Signature()
}

func (a Array) EncodeDBus(e *Encoder) error {
	seq, err := e.BeginSeq()
	if err != nil {
		return err
	}
	for _, el := range a.Elements {
		if err := seq.Element(el); err != nil {
			return err
		}
	}
	return seq.End()
}

// Struct is a ready-made Value wrapping a D-Bus struct or tuple.
// Fields are encoded in order.
type Struct struct {
	Fields []Value
}

func (s Struct) Signature() string {
	sig := "("
	for _, f := range s.Fields {
		sig += f.Signature()
	}
	return sig + ")"
}

func (s Struct) EncodeDBus(e *Encoder) error {
	st, err := e.BeginStruct()
	if err != nil {
		return err
	}
	for _, f := range s.Fields {
		if err := st.Field("", f); err != nil {
			return err
		}
	}
	return st.End()
}

// MapEntry is one key/value pair of a Map.
type MapEntry struct {
	Key   Value
	Value Value
}

// Map is a ready-made Value wrapping a D-Bus dictionary ('a{kv}').
// KeySig and ValueSig describe the entry's key and value types; they
// must be supplied even for an empty map.
type Map struct {
	KeySig   string
	ValueSig string
	Entries  []MapEntry
}

func (m Map) Signature() string {
	return fmt.Sprintf("a{%s%s}", m.KeySig, m.ValueSig)
}

func (m Map) EncodeDBus(e *Encoder) error {
	me, err := e.BeginMap()
	if err != nil {
		return err
	}
	for _, ent := range m.Entries {
		if err := me.Key(ent.Key); err != nil {
			return err
		}
		if err := me.Value(ent.Value); err != nil {
			return err
		}
	}
	return me.End()
}

// Variant is a ready-made Value wrapping a D-Bus variant ('v'): an
// inner value plus the signature it should be encoded under, which
// may differ from Inner's own Signature() when the caller wants to
// encode it as a different (but compatible) wire shape.
type Variant struct {
	InnerSignature string
	Inner          Value
}

func (Variant) Signature() string { return "v" }

func (v Variant) EncodeDBus(e *Encoder) error {
	st, err := e.BeginStruct()
	if err != nil {
		return err
	}
	if err := st.Field("", SignatureValue(v.InnerSignature)); err != nil {
		return err
	}
	if err := st.Field(VariantValueField, v.Inner); err != nil {
		return err
	}
	return st.End()
}
