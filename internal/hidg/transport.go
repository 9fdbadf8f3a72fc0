// internal/hidg/transport.go
package hidg

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Transport writes input reports to a HID gadget function device
// (/dev/hidgX). Writes block until the host polls the interrupt
// endpoint, so the fd is non-blocking and readiness is probed with
// a zero-timeout poll before every cycle.
type Transport struct {
	f *os.File
}

// Open opens the gadget device node.
func Open(path string) (*Transport, error) {
	if path == "" {
		return nil, errors.New("hidg: device path required")
	}
	f, err := os.OpenFile(path, os.O_RDWR|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("hidg: open %s: %w", path, err)
	}
	return &Transport{f: f}, nil
}

// Ready reports whether the endpoint would accept a report right now,
// i.e. the host has enumerated the gadget and drained the last one.
func (t *Transport) Ready() bool {
	fds := []unix.PollFd{{Fd: int32(t.f.Fd()), Events: unix.POLLOUT}}
	n, err := unix.Poll(fds, 0)
	if err != nil || n == 0 {
		return false
	}
	return fds[0].Revents&unix.POLLOUT != 0
}

// Send writes one report. A report that cannot go out whole is an error;
// the caller drops it and carries on.
func (t *Transport) Send(report []byte) error {
	n, err := t.f.Write(report)
	if err != nil {
		return fmt.Errorf("hidg: write: %w", err)
	}
	if n != len(report) {
		return fmt.Errorf("hidg: short write: %d of %d bytes", n, len(report))
	}
	return nil
}

// Close closes the device node.
func (t *Transport) Close() error {
	return t.f.Close()
}
