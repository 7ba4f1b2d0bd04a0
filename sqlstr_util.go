package sqlstr

import (
	"unsafe"
)

/*
Allocation-free conversion. Reinterprets a byte slice as a string. Borrowed from
the standard library. Should not be used when the underlying byte array may be
modified later.
*/
func bytesToMutableString(bytes []byte) string {
	return *(*string)(unsafe.Pointer(&bytes))
}

// Copied from `github.com/mitranim/gax` and tested there.
func growBytes(prev []byte, size int) []byte {
	len, cap := len(prev), cap(prev)
	if cap-len >= size {
		return prev
	}

	next := make([]byte, len, 2*cap+size)
	copy(next, prev)
	return next
}
