// File: fdio/factory.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral descriptor factory surface. The creation calls live in
// fdio_unix.go / fdio_stub.go behind build tags.

package fdio

import (
	"os"

	"github.com/momentics/hioload-runtime/api"
)

// Factory creates descriptors with close-on-exec set under its ForkGuard.
// Contract for every operation: the OS creation call and the subsequent
// flag-setting happen under one guard acquisition, so a concurrently forked
// child can never observe a descriptor without close-on-exec. OS-level
// creation failures propagate unchanged (wrapped for context) with
// api.NoDescriptor and no side effects.
type Factory struct {
	guard *ForkGuard
}

// NewFactory creates a factory on the given guard; nil selects the
// process-wide DefaultGuard. The factory retains a guard reference until
// Close.
func NewFactory(g *ForkGuard) *Factory {
	if g == nil {
		g = DefaultGuard()
	}
	g.Retain()
	return &Factory{guard: g}
}

// Close drops the factory's guard reference. Descriptors already created
// remain owned by their callers.
func (f *Factory) Close() {
	f.guard.Release()
}

// Guard exposes the guard so fork-side callers can serialize against
// descriptor creation.
func (f *Factory) Guard() *ForkGuard {
	return f.guard
}

// Open creates a file descriptor for path with the given open flags and
// permission mode.
func (f *Factory) Open(path string, flags int, mode uint32) (api.Descriptor, error) {
	return openFile(f.guard, path, flags, mode)
}

// Socket creates a socket descriptor.
func (f *Factory) Socket(domain, typ, proto int) (api.Descriptor, error) {
	return newSocket(f.guard, domain, typ, proto)
}

// Pipe creates both ends of a pipe atomically. The requested status flags
// (for example O_NONBLOCK) are applied to both ends identically, still under
// the guard.
func (f *Factory) Pipe(flags int) (api.Pipe, error) {
	return newPipe(f.guard, flags)
}

// OpenStream opens a buffered stream handle using an fopen-style mode
// string: "r", "r+", "w", "w+", "a", "a+" (a trailing "b" is accepted and
// ignored). The underlying descriptor has close-on-exec set before the
// guard is released.
func (f *Factory) OpenStream(path, mode string) (*os.File, error) {
	return openStream(f.guard, path, mode)
}
