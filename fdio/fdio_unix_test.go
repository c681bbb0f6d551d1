//go:build unix
// +build unix

package fdio_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-runtime/api"
	"github.com/momentics/hioload-runtime/fdio"
)

func cloexecSet(t *testing.T, fd int) bool {
	t.Helper()
	flags, err := unix.FcntlInt(uintptr(fd), unix.F_GETFD, 0)
	if err != nil {
		t.Fatalf("F_GETFD: %v", err)
	}
	return flags&unix.FD_CLOEXEC != 0
}

func TestOpenSetsCloexec(t *testing.T) {
	f := fdio.NewFactory(nil)
	defer f.Close()

	path := filepath.Join(t.TempDir(), "cloexec.dat")
	fd, err := f.Open(path, unix.O_RDWR|unix.O_CREAT, 0o600)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer fdio.Close(fd)

	if !cloexecSet(t, int(fd)) {
		t.Error("FD_CLOEXEC not set on freshly opened file")
	}
}

func TestOpenFailurePropagates(t *testing.T) {
	f := fdio.NewFactory(nil)
	defer f.Close()

	fd, err := f.Open("/nonexistent/dir/file", unix.O_RDONLY, 0)
	if err == nil {
		t.Fatal("Open of nonexistent path succeeded")
	}
	if fd != api.NoDescriptor {
		t.Errorf("fd = %d, want NoDescriptor", fd)
	}
	if !errors.Is(err, unix.ENOENT) {
		t.Errorf("err = %v, want wrapped ENOENT", err)
	}
}

func TestSocketSetsCloexec(t *testing.T) {
	f := fdio.NewFactory(nil)
	defer f.Close()

	fd, err := f.Socket(unix.AF_INET, unix.SOCK_STREAM, 0)
	if err != nil {
		t.Fatalf("Socket: %v", err)
	}
	defer fdio.Close(fd)

	if !cloexecSet(t, int(fd)) {
		t.Error("FD_CLOEXEC not set on socket")
	}
}

func TestPipeFlagsOnBothEnds(t *testing.T) {
	f := fdio.NewFactory(nil)
	defer f.Close()

	p, err := f.Pipe(unix.O_NONBLOCK)
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}
	defer fdio.ClosePipe(&p)

	for _, fd := range []api.Descriptor{p.RD, p.WR} {
		if !cloexecSet(t, int(fd)) {
			t.Errorf("FD_CLOEXEC not set on pipe fd %d", fd)
		}
		fl, err := unix.FcntlInt(uintptr(fd), unix.F_GETFL, 0)
		if err != nil {
			t.Fatalf("F_GETFL: %v", err)
		}
		if fl&unix.O_NONBLOCK == 0 {
			t.Errorf("O_NONBLOCK not set on pipe fd %d", fd)
		}
	}
}

func TestClosePipeMarksInvalid(t *testing.T) {
	f := fdio.NewFactory(nil)
	defer f.Close()

	p, err := f.Pipe(0)
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}
	fdio.ClosePipe(&p)
	if p.RD != api.NoDescriptor || p.WR != api.NoDescriptor {
		t.Errorf("pipe after close = %+v, want both NoDescriptor", p)
	}
}

func TestOpenStreamModes(t *testing.T) {
	f := fdio.NewFactory(nil)
	defer f.Close()

	path := filepath.Join(t.TempDir(), "stream.txt")

	w, err := f.OpenStream(path, "w")
	if err != nil {
		t.Fatalf("OpenStream w: %v", err)
	}
	if !cloexecSet(t, int(w.Fd())) {
		t.Error("FD_CLOEXEC not set on stream")
	}
	if _, err := w.WriteString("hello"); err != nil {
		t.Fatalf("write: %v", err)
	}
	w.Close()

	r, err := f.OpenStream(path, "rb")
	if err != nil {
		t.Fatalf("OpenStream rb: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "hello" {
		t.Errorf("read back %q (%v), want %q", data, err, "hello")
	}
	r.Close()

	if _, err := f.OpenStream(path, "x"); !errors.Is(err, api.ErrInvalidArgument) {
		t.Errorf("bad mode err = %v, want ErrInvalidArgument", err)
	}
}

func TestForkGuardRefcount(t *testing.T) {
	g := fdio.NewForkGuard()
	f1 := fdio.NewFactory(g)
	f2 := fdio.NewFactory(g)
	if got := g.Refs(); got != 2 {
		t.Errorf("refs = %d, want 2", got)
	}
	f1.Close()
	f2.Close()
	if got := g.Refs(); got != 0 {
		t.Errorf("refs after close = %d, want 0", got)
	}
}
