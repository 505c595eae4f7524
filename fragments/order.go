package fragments

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// ByteOrder is the subset of encoding/binary's byte order interfaces
// the encoder needs: reading/writing multi-byte integers, in either
// direction.
type ByteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// LittleEndian and BigEndian select the wire byte order for
// multi-byte primitives. Single bytes are unaffected by either.
var (
	LittleEndian ByteOrder = binary.LittleEndian
	BigEndian    ByteOrder = binary.BigEndian
)

// NativeEndian is the byte order of the running process's
// architecture.
var NativeEndian = func() ByteOrder {
	if cpu.IsBigEndian {
		return BigEndian
	}
	return LittleEndian
}()
