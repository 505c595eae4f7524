package dbuswire

import (
	"testing"

	"github.com/telemetered/dbuswire/fragments"
)

// TestSeqEncoderArrayTooLong exercises the ArrayTooLong path directly
// against SeqEncoder's bookkeeping, rather than actually writing
// 2^32 bytes through the public API.
func TestSeqEncoderArrayTooLong(t *testing.T) {
	buf := &fragments.Buffer{}
	sink := &fragments.OffsetSink{Sink: buf}
	e := &Encoder{format: DBus, order: fragments.LittleEndian, sink: sink, cursor: newCursor("ay")}

	seq, err := e.BeginSeq()
	if err != nil {
		t.Fatalf("BeginSeq: %v", err)
	}
	// Fake a gigantic body without actually writing it.
	seq.start = 0
	seq.firstPadding = 0
	sink.Written = int64(1) << 33

	err = seq.End()
	derr, ok := err.(*Error)
	if !ok || derr.Kind != ArrayTooLong {
		t.Fatalf("End() with an oversized body: got %v, want ArrayTooLong", err)
	}
}

func TestCursorCompleteType(t *testing.T) {
	tests := []struct {
		sig, want string
	}{
		{"y", "y"},
		{"ay", "ay"},
		{"a{sv}", "a{sv}"},
		{"(yai)", "(yai)"},
		{"a(ya{sv})rest", "a(ya{sv})"},
	}
	for _, tt := range tests {
		c := newCursor(tt.sig)
		got, err := c.completeType()
		if err != nil {
			t.Fatalf("completeType(%q): %v", tt.sig, err)
		}
		if got != tt.want {
			t.Errorf("completeType(%q) = %q, want %q", tt.sig, got, tt.want)
		}
		if c.position() != 0 {
			t.Errorf("completeType(%q) advanced the cursor to %d, want 0", tt.sig, c.position())
		}
	}
}

func TestCursorUnbalancedBrackets(t *testing.T) {
	c := newCursor("(yu")
	_, err := c.completeType()
	derr, ok := err.(*Error)
	if !ok || derr.Kind != UnbalancedBrackets {
		t.Fatalf("completeType(\"(yu\") = %v, want UnbalancedBrackets", err)
	}
}

func TestPaddingFor(t *testing.T) {
	tests := []struct {
		offset int64
		align  int
		want   int
	}{
		{0, 4, 0},
		{1, 4, 3},
		{4, 4, 0},
		{5, 8, 3},
		{0, 1, 0},
	}
	for _, tt := range tests {
		got := fragments.PaddingFor(tt.offset, tt.align)
		if got != tt.want {
			t.Errorf("PaddingFor(%d, %d) = %d, want %d", tt.offset, tt.align, got, tt.want)
		}
	}
}

func TestSignatureTooLong(t *testing.T) {
	buf := &fragments.Buffer{}
	sink := &fragments.OffsetSink{Sink: buf}
	e := &Encoder{format: DBus, order: fragments.LittleEndian, sink: sink, cursor: newCursor("g")}

	long := make([]byte, 256)
	for i := range long {
		long[i] = 'y'
	}
	err := e.EncodeString(string(long))
	derr, ok := err.(*Error)
	if !ok || derr.Kind != SignatureTooLong {
		t.Fatalf("EncodeString with a 256-byte signature: got %v, want SignatureTooLong", err)
	}
}

func TestSignatureMismatch(t *testing.T) {
	buf := &fragments.Buffer{}
	sink := &fragments.OffsetSink{Sink: buf}
	e := &Encoder{format: DBus, order: fragments.LittleEndian, sink: sink, cursor: newCursor("u")}

	err := e.EncodeBool(true)
	derr, ok := err.(*Error)
	if !ok || derr.Kind != SignatureMismatch {
		t.Fatalf("EncodeBool against signature \"u\": got %v, want SignatureMismatch", err)
	}
}

func TestSignatureExhausted(t *testing.T) {
	buf := &fragments.Buffer{}
	sink := &fragments.OffsetSink{Sink: buf}
	e := &Encoder{format: DBus, order: fragments.LittleEndian, sink: sink, cursor: newCursor("")}

	err := e.EncodeUint8(1)
	derr, ok := err.(*Error)
	if !ok || derr.Kind != SignatureExhausted {
		t.Fatalf("EncodeUint8 against an empty signature: got %v, want SignatureExhausted", err)
	}
}

func TestUnsupportedShape(t *testing.T) {
	buf := &fragments.Buffer{}
	sink := &fragments.OffsetSink{Sink: buf}
	e := &Encoder{format: DBus, order: fragments.LittleEndian, sink: sink, cursor: newCursor("")}

	err := e.EncodeUnit()
	derr, ok := err.(*Error)
	if !ok || derr.Kind != UnsupportedShape {
		t.Fatalf("EncodeUnit(): got %v, want UnsupportedShape", err)
	}
}
