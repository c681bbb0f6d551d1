//go:build linux
// +build linux

package thread_test

import (
	"os"
	"strings"
	"testing"

	"github.com/momentics/hioload-runtime/thread"
)

func TestThreadNameVisibleToOS(t *testing.T) {
	comm := make(chan string, 1)
	th, err := thread.Spawn(func(any) {
		b, err := os.ReadFile("/proc/thread-self/comm")
		if err != nil {
			comm <- "read failed: " + err.Error()
			return
		}
		comm <- strings.TrimSpace(string(b))
	}, nil, "namecheck")
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	th.Join()

	got := <-comm
	if !strings.HasPrefix(got, thread.NamePrefix) {
		t.Errorf("OS-visible thread name %q lacks prefix %q", got, thread.NamePrefix)
	}
	if got != th.Name() {
		t.Errorf("OS name %q != handle name %q", got, th.Name())
	}
}

func TestReniceOnSpawnedThread(t *testing.T) {
	res := make(chan error, 1)
	th, err := thread.Spawn(func(any) {
		// Lowering priority never needs privileges.
		res <- thread.Renice(1)
	}, nil, "renice")
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	th.Join()

	if err := <-res; err != nil {
		t.Errorf("Renice(1) = %v, want nil", err)
	}
}
