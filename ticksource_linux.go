//go:build linux

// Copyright 2026 Jake Roggenbuck
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package intellisat

import (
	"encoding/binary"
	"time"

	"golang.org/x/sys/unix"
)

// timerfdTickSource drives the superloop from a Linux timerfd: a
// kernel-delivered readiness event on a fixed period, the nearest
// userspace analog of a hardware timer interrupt.
type timerfdTickSource struct {
	fd     int
	ch     chan time.Time
	stopCh chan struct{}
}

// NewTickSource creates a timerfd armed to fire every period, starting
// after the first period elapses.
func NewTickSource(period time.Duration) (TickSource, error) {
	fd, err := unix.TimerfdCreate(unix.CLOCK_MONOTONIC, unix.TFD_CLOEXEC)
	if err != nil {
		return nil, err
	}
	spec := unix.ItimerSpec{
		Interval: unix.NsecToTimespec(period.Nanoseconds()),
		Value:    unix.NsecToTimespec(period.Nanoseconds()),
	}
	if err := unix.TimerfdSettime(fd, 0, &spec, nil); err != nil {
		_ = unix.Close(fd)
		return nil, err
	}
	t := &timerfdTickSource{
		fd:     fd,
		ch:     make(chan time.Time, 1),
		stopCh: make(chan struct{}),
	}
	go t.loop()
	return t, nil
}

func (t *timerfdTickSource) loop() {
	buf := make([]byte, 8)
	for {
		n, err := unix.Read(t.fd, buf)
		if err != nil || n != 8 {
			select {
			case <-t.stopCh:
				return
			default:
				continue
			}
		}
		select {
		case <-t.stopCh:
			return
		default:
		}
		expirations := binary.LittleEndian.Uint64(buf)
		if expirations == 0 {
			continue
		}
		select {
		case t.ch <- time.Now():
		default:
			// Dispatcher hasn't drained the previous tick; drop this one.
			// A timerfd that fires faster than the superloop can consume
			// is a configuration error, not something to buffer up.
		}
	}
}

func (t *timerfdTickSource) C() <-chan time.Time { return t.ch }

func (t *timerfdTickSource) Stop() {
	select {
	case <-t.stopCh:
		return
	default:
		close(t.stopCh)
	}
	_ = unix.Close(t.fd)
}
