//go:build !unix
// +build !unix

// File: fdio/fdio_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub implementation for platforms without fcntl semantics.

package fdio

import (
	"os"

	"github.com/momentics/hioload-runtime/api"
)

func openFile(_ *ForkGuard, _ string, _ int, _ uint32) (api.Descriptor, error) {
	return api.NoDescriptor, api.ErrNotSupported
}

func newSocket(_ *ForkGuard, _, _, _ int) (api.Descriptor, error) {
	return api.NoDescriptor, api.ErrNotSupported
}

func newPipe(_ *ForkGuard, _ int) (api.Pipe, error) {
	return api.Pipe{RD: api.NoDescriptor, WR: api.NoDescriptor}, api.ErrNotSupported
}

func openStream(_ *ForkGuard, _, _ string) (*os.File, error) {
	return nil, api.ErrNotSupported
}

// Close releases a descriptor obtained from the factory.
func Close(_ api.Descriptor) error {
	return api.ErrNotSupported
}

// ClosePipe marks both fields invalid.
func ClosePipe(p *api.Pipe) {
	p.RD, p.WR = api.NoDescriptor, api.NoDescriptor
}
