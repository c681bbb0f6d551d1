//go:build unix
// +build unix

// File: fdio/fdio_unix.go
// Author: momentics <momentics@gmail.com>
//
// Unix descriptor creation. Each helper runs the creation syscall and the
// close-on-exec fcntl under one ForkGuard acquisition.

package fdio

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-runtime/api"
)

// setCloexec ORs FD_CLOEXEC into the descriptor flags. Failures are ignored:
// the descriptor is valid either way and the caller has no recovery path.
func setCloexec(fd int) {
	flags, err := unix.FcntlInt(uintptr(fd), unix.F_GETFD, 0)
	if err != nil {
		return
	}
	_, _ = unix.FcntlInt(uintptr(fd), unix.F_SETFD, flags|unix.FD_CLOEXEC)
}

// setStatusFlags ORs status flags (O_NONBLOCK and friends) into F_GETFL.
func setStatusFlags(fd, extra int) {
	if extra == 0 {
		return
	}
	flags, err := unix.FcntlInt(uintptr(fd), unix.F_GETFL, 0)
	if err != nil {
		return
	}
	_, _ = unix.FcntlInt(uintptr(fd), unix.F_SETFL, flags|extra)
}

func openFile(g *ForkGuard, path string, flags int, mode uint32) (api.Descriptor, error) {
	g.Lock()
	defer g.Unlock()
	fd, err := unix.Open(path, flags, mode)
	if err != nil {
		return api.NoDescriptor, fmt.Errorf("fdio: open %s: %w", path, err)
	}
	setCloexec(fd)
	return api.Descriptor(fd), nil
}

func newSocket(g *ForkGuard, domain, typ, proto int) (api.Descriptor, error) {
	g.Lock()
	defer g.Unlock()
	fd, err := unix.Socket(domain, typ, proto)
	if err != nil {
		return api.NoDescriptor, fmt.Errorf("fdio: socket: %w", err)
	}
	setCloexec(fd)
	return api.Descriptor(fd), nil
}

func newPipe(g *ForkGuard, flags int) (api.Pipe, error) {
	g.Lock()
	defer g.Unlock()
	var p [2]int
	if err := unix.Pipe(p[:]); err != nil {
		return api.Pipe{RD: api.NoDescriptor, WR: api.NoDescriptor},
			fmt.Errorf("fdio: pipe: %w", err)
	}
	setCloexec(p[0])
	setCloexec(p[1])
	setStatusFlags(p[0], flags)
	setStatusFlags(p[1], flags)
	return api.Pipe{RD: api.Descriptor(p[0]), WR: api.Descriptor(p[1])}, nil
}

func openStream(g *ForkGuard, path, mode string) (*os.File, error) {
	flags, err := streamFlags(mode)
	if err != nil {
		return nil, err
	}
	g.Lock()
	defer g.Unlock()
	fd, err := unix.Open(path, flags, 0o666)
	if err != nil {
		return nil, fmt.Errorf("fdio: open stream %s: %w", path, err)
	}
	setCloexec(fd)
	return os.NewFile(uintptr(fd), path), nil
}

// streamFlags translates an fopen-style mode string into open(2) flags.
func streamFlags(mode string) (int, error) {
	switch strings.ReplaceAll(mode, "b", "") {
	case "r":
		return unix.O_RDONLY, nil
	case "r+":
		return unix.O_RDWR, nil
	case "w":
		return unix.O_WRONLY | unix.O_CREAT | unix.O_TRUNC, nil
	case "w+":
		return unix.O_RDWR | unix.O_CREAT | unix.O_TRUNC, nil
	case "a":
		return unix.O_WRONLY | unix.O_CREAT | unix.O_APPEND, nil
	case "a+":
		return unix.O_RDWR | unix.O_CREAT | unix.O_APPEND, nil
	}
	return 0, fmt.Errorf("fdio: stream mode %q: %w", mode, api.ErrInvalidArgument)
}

// Close releases a descriptor obtained from the factory.
func Close(fd api.Descriptor) error {
	if fd == api.NoDescriptor {
		return nil
	}
	return unix.Close(int(fd))
}

// ClosePipe closes both ends and marks both fields invalid.
func ClosePipe(p *api.Pipe) {
	if p.RD != api.NoDescriptor {
		_ = unix.Close(int(p.RD))
	}
	if p.WR != api.NoDescriptor {
		_ = unix.Close(int(p.WR))
	}
	p.RD, p.WR = api.NoDescriptor, api.NoDescriptor
}
