//go:build !unix
// +build !unix

// File: fdio/write_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub write loop for platforms without the unix write path.

package fdio

import "github.com/momentics/hioload-runtime/api"

func writeFull(_ api.Descriptor, _ []byte, _ *writeConfig) error {
	return api.ErrNotSupported
}
