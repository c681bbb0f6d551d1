//go:build unix
// +build unix

// File: fdio/write_unix.go
// Author: momentics <momentics@gmail.com>
//
// Unix write loop for WriteFull.

package fdio

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-runtime/api"
	"github.com/momentics/hioload-runtime/clock"
	"github.com/momentics/hioload-runtime/control"
)

func writeFull(fd api.Descriptor, p []byte, cfg *writeConfig) error {
	limit := cfg.clk() + cfg.deadline
	for len(p) > 0 {
		if cfg.cancel != nil {
			select {
			case <-cfg.cancel:
				return api.ErrCanceled
			default:
			}
		}
		n, err := unix.Write(int(fd), p)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
				if cfg.clk() > limit {
					control.Default.Inc(control.MetricWritesIncomplete)
					return api.ErrWriteIncomplete
				}
				clock.SafeSleep(cfg.retry)
				continue
			}
			return fmt.Errorf("fdio: write: %w", err)
		}
		p = p[n:]
	}
	return nil
}
