//go:build !unix

package keystore

import "os"

// Permission bits are not enforced on this platform; the file is replaced as-is.
const permissionBitsSupported = false

func hardenDir(string) error { return nil }

func hardenFile(*os.File) error { return nil }
