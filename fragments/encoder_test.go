package fragments_test

import (
	"bytes"
	"testing"

	"github.com/telemetered/dbuswire/fragments"
)

func newEncoder(order fragments.ByteOrder) (*fragments.Encoder, *fragments.Buffer) {
	buf := &fragments.Buffer{}
	return &fragments.Encoder{
		Order: order,
		Sink:  &fragments.OffsetSink{Sink: buf},
	}, buf
}

func TestEncoderPrimitives(t *testing.T) {
	tests := []struct {
		name string
		in   func(*fragments.Encoder)
		want []byte
	}{
		{
			"raw bytes",
			func(e *fragments.Encoder) { e.Write([]byte{1, 2, 3}) },
			[]byte{0x01, 0x02, 0x03},
		},
		{
			"uints, no implicit padding",
			func(e *fragments.Encoder) {
				e.Uint8(0x2a)
				e.Uint16(0x0102)
				e.Uint32(0x01020304)
				e.Uint64(0x0102030405060708)
			},
			[]byte{
				0x2a,
				0x01, 0x02,
				0x01, 0x02, 0x03, 0x04,
				0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
			},
		},
		{
			"explicit pad",
			func(e *fragments.Encoder) {
				e.Uint8(1)
				e.Pad(4)
				e.Uint32(2)
			},
			[]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, buf := newEncoder(fragments.BigEndian)
			tc.in(e)
			if got := buf.Bytes(); !bytes.Equal(got, tc.want) {
				t.Errorf("incorrect encode:\n  got:  % x\n want: % x", got, tc.want)
			}
		})
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
		{3, 4, 1},
		{4, 4, 0},
		{7, 8, 1},
		{0, 1, 0},
	}
	for _, tc := range tests {
		if got := fragments.PaddingFor(tc.offset, tc.align); got != tc.want {
			t.Errorf("PaddingFor(%d, %d) = %d, want %d", tc.offset, tc.align, got, tc.want)
		}
	}
}

func TestPatchUint32(t *testing.T) {
	e, buf := newEncoder(fragments.LittleEndian)
	e.Uint8(0xff)
	placeholder := e.Sink.Written
	e.Uint32(0)
	e.Write([]byte{1, 2, 3, 4, 5})

	if err := e.Sink.PatchUint32(placeholder, fragments.LittleEndian, 0xaabbccdd); err != nil {
		t.Fatalf("PatchUint32: %v", err)
	}
	e.Uint8(0x99)

	want := []byte{0xff, 0xdd, 0xcc, 0xbb, 0xaa, 1, 2, 3, 4, 5, 0x99}
	if got := buf.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("after patch:\n  got:  % x\n want: % x", got, want)
	}
	if e.Sink.Written != int64(len(want)) {
		t.Errorf("Written = %d, want %d", e.Sink.Written, len(want))
	}
}
