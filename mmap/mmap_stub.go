//go:build !unix && !windows

package mmap

import (
	"os"
	"unsafe"
)

// ReadFile reads the named file into memory.
func ReadFile[T ~[]byte | ~string](name string) (data T, err error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return
	}
	return *(*T)(unsafe.Pointer(&b)), nil
}

// Unmap is a no-op on platforms without memory mapping.
func Unmap[T ~[]byte | ~string](data T) error {
	return nil
}
