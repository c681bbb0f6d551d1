//go:build unix
// +build unix

package fdio_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-runtime/api"
	"github.com/momentics/hioload-runtime/clock"
	"github.com/momentics/hioload-runtime/fdio"
)

func newTestPipe(t *testing.T, flags int) api.Pipe {
	t.Helper()
	f := fdio.NewFactory(nil)
	defer f.Close()
	p, err := f.Pipe(flags)
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}
	t.Cleanup(func() { fdio.ClosePipe(&p) })
	return p
}

// fillPipe writes until the kernel buffer rejects more bytes.
func fillPipe(t *testing.T, wr api.Descriptor) {
	t.Helper()
	junk := make([]byte, 4096)
	for {
		_, err := unix.Write(int(wr), junk)
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			return
		}
		if err != nil {
			t.Fatalf("fill write: %v", err)
		}
	}
}

func TestWriteFullCompletes(t *testing.T) {
	p := newTestPipe(t, unix.O_NONBLOCK)

	payload := []byte("bounded send payload")
	if err := fdio.WriteFull(p.WR, payload); err != nil {
		t.Fatalf("WriteFull: %v", err)
	}

	buf := make([]byte, len(payload))
	n, err := unix.Read(int(p.RD), buf)
	if err != nil || !bytes.Equal(buf[:n], payload) {
		t.Errorf("read back %q (%v), want %q", buf[:n], err, payload)
	}
}

func TestWriteFullDrainedByReader(t *testing.T) {
	p := newTestPipe(t, unix.O_NONBLOCK)

	// Larger than the kernel pipe buffer, so completion requires the
	// would-block retry path while a reader drains.
	payload := make([]byte, 1<<20)
	done := make(chan struct{})
	go func() {
		defer close(done)
		buf := make([]byte, 64<<10)
		var total int
		for total < len(payload) {
			n, err := unix.Read(int(p.RD), buf)
			if n > 0 {
				total += n
				continue
			}
			if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
				clock.SafeSleep(200)
				continue
			}
			return
		}
	}()

	if err := fdio.WriteFull(p.WR, payload); err != nil {
		t.Fatalf("WriteFull with active reader: %v", err)
	}
	<-done
}

func TestWriteFullDeadlineExpires(t *testing.T) {
	p := newTestPipe(t, unix.O_NONBLOCK)
	fillPipe(t, p.WR)

	const deadline = 200_000
	start := clock.Mono()
	err := fdio.WriteFull(p.WR, []byte("stuck"),
		fdio.WithWriteDeadline(deadline),
		fdio.WithWriteRetry(1_000))
	elapsed := clock.Mono() - start

	if !errors.Is(err, api.ErrWriteIncomplete) {
		t.Fatalf("WriteFull on blocked pipe = %v, want ErrWriteIncomplete", err)
	}
	if elapsed < deadline {
		t.Errorf("gave up after %dus, before the %dus deadline", elapsed, deadline)
	}
	if elapsed > deadline+500_000 {
		t.Errorf("gave up after %dus, far past the %dus deadline", elapsed, deadline)
	}
}

func TestWriteFullCancel(t *testing.T) {
	p := newTestPipe(t, unix.O_NONBLOCK)
	fillPipe(t, p.WR)

	cancel := make(chan struct{})
	go func() {
		time.Sleep(20 * time.Millisecond)
		close(cancel)
	}()

	start := clock.Mono()
	err := fdio.WriteFull(p.WR, []byte("stuck"),
		fdio.WithWriteRetry(1_000),
		fdio.WithWriteCancel(cancel))
	if !errors.Is(err, api.ErrCanceled) {
		t.Fatalf("canceled WriteFull = %v, want ErrCanceled", err)
	}
	if elapsed := clock.Mono() - start; elapsed > 500_000 {
		t.Errorf("cancellation took %dus", elapsed)
	}
}

func TestDefaultWriteDeadlineIs25s(t *testing.T) {
	if fdio.DefaultWriteDeadline != 25_000_000 {
		t.Errorf("DefaultWriteDeadline = %d, want 25s in microseconds", fdio.DefaultWriteDeadline)
	}
}
