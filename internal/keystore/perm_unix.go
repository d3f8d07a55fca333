//go:build unix

package keystore

import (
	"os"

	"golang.org/x/sys/unix"
)

const permissionBitsSupported = true

// hardenDir forces the directory to owner-only access regardless of umask
func hardenDir(dir string) error {
	return unix.Chmod(dir, uint32(dirPerm))
}

// hardenFile forces the open file to owner-only read/write
func hardenFile(f *os.File) error {
	return unix.Fchmod(int(f.Fd()), uint32(filePerm))
}
