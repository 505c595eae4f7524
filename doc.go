// Package dbuswire implements the core of a D-Bus wire-format
// encoder: a signature-driven writer that turns typed values into the
// byte-exact marshalled form the D-Bus protocol specifies (with
// GVariant recognized as a sibling [Format], though today only its
// alignment table is wired up).
//
// The package does not open connections, send or receive messages, or
// decode wire bytes back into values; it does not derive a value's
// signature from Go's reflect package either. What it provides is
// everything needed to turn one value, plus its signature, into
// bytes: [EncodeToSink] and [EncodeToBuffer] are the two entry
// points, and [Value] is the interface a caller's types implement to
// describe their own shape and walk themselves across an [Encoder].
//
// A minimal caller looks like:
//
//	v := dbuswire.Struct{Fields: []dbuswire.Value{
//		dbuswire.ObjectPath("/org/example/Object"),
//		dbuswire.Uint32(42),
//	}}
//	b, err := dbuswire.EncodeToBuffer(dbuswire.DBus, fragments.LittleEndian, v)
//
// Most callers that already have generated or hand-written
// signature-aware types will implement [Value] directly instead of
// using the ready-made wrapper types; the wrappers exist so the
// package is usable without a code generator, much the way
// encoding/json remains usable via map[string]any even though most
// production code generates struct tags instead.
package dbuswire
