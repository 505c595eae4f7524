package dbuswire

import "github.com/creachadair/mds/mapset"

// A Format selects the alignment and framing rules the encoder
// applies. Only DBus is fully implemented; GVariant is recognized as
// a format but its container framing (offset arrays, Maybe) is not
// yet specified here — see the package doc.
type Format int

const (
	// DBus is the wire format used by the D-Bus IPC protocol.
	DBus Format = iota
	// GVariant selects GVariant's alignment rules. Its container
	// framing differs from D-Bus's in ways this package does not
	// implement. Only EncodeSome checks the format (it returns an
	// UnsupportedShape error under GVariant); arrays, dicts, structs
	// and variants are framed exactly as under DBus.
	GVariant
)

// basicTypeChars is the alphabet of D-Bus basic types: every type
// that may legally appear as a dict-entry's key.
var basicTypeChars = mapset.New[byte]('y', 'b', 'n', 'q', 'i', 'u', 'x', 't', 'd', 's', 'o', 'g')

// singleCharTypes is the alphabet of type characters that are, on
// their own, a complete type (as opposed to 'a', '(' and '{', which
// open a composite type that continues in the signature).
var singleCharTypes = mapset.New[byte]('y', 'b', 'n', 'q', 'i', 'u', 'x', 't', 'd', 's', 'o', 'g', 'v')

// isBasicType reports whether c is one of the D-Bus basic types
// legal as a dict-entry key.
func isBasicType(c byte) bool { return basicTypeChars.Has(c) }

// alignmentFor returns the alignment, in bytes, required for a value
// whose signature starts with c, under the given format.
func alignmentFor(format Format, c byte) (int, error) {
	// GVariant's alignment table matches DBus's for every type this
	// package implements; the two formats diverge in container
	// framing, not in the alignment of individual type characters.
	switch c {
	case 'y', 'g':
		return 1, nil
	case 'n', 'q':
		return 2, nil
	case 'b', 'i', 'u', 's', 'o', 'a':
		return 4, nil
	case 'x', 't', 'd', '(', '{':
		return 8, nil
	case 'v':
		return 1, nil
	default:
		return 0, errUnknownChar(c, -1)
	}
}

// dictEntryAlignment is the alignment of a dict-entry, which is the
// same as a struct's regardless of its key/value types.
const dictEntryAlignment = 8
