// Copyright 2026 Jake Roggenbuck
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package intellisat

import (
	"time"

	"github.com/JakeRoggenbuck/IntelliSat-Prototype/internal/snapshot"
)

// StartupConfig controls the boot sequence. ReleaseDelay is the post-deploy
// wait before the satellite is permitted to Set(FlagStart). It has no
// built-in default: a zero ReleaseDelay means no wait. The CLI test
// harness shortens the wait via TestShortenedWait.
type StartupConfig struct {
	ReleaseDelay      time.Duration
	TestShortenedWait time.Duration // if nonzero, used instead of ReleaseDelay
}

func (c StartupConfig) delay() time.Duration {
	if c.TestShortenedWait > 0 {
		return c.TestShortenedWait
	}
	return c.ReleaseDelay
}

// RebootCount is incremented on every boot, cold or warm, and logged as a
// structured field so a run's boot history is reconstructable from logs
// alone.
type RebootCount struct {
	n uint32
}

func (r *RebootCount) Next() uint32 {
	r.n++
	return r.n
}

// Startup runs the cold/warm boot sequence: on a warm boot (the Snapshot
// store has a prior save) it restores StatusWord.statusBits from the
// snapshot and skips the release delay; on a cold boot it waits
// ReleaseDelay and then sets FlagStart. RebootCount is incremented either
// way.
func Startup(status *StatusWord, store snapshot.Store, cfg StartupConfig, reboots *RebootCount, log *Logger) error {
	count := reboots.Next()

	state, warm, err := store.Restore()
	if err != nil {
		return err
	}

	if warm {
		status.Set(FlagWarmBoot)
		for i, word := range state.StatusBits {
			restoreWord(status, i, word)
		}
		if log != nil {
			log.Info().Int("reboot_count", int(count)).Log("warm boot restored")
		}
		return nil
	}

	if log != nil {
		log.Info().Int("reboot_count", int(count)).Log("cold boot, waiting release delay")
	}
	time.Sleep(cfg.delay())
	status.Set(FlagStart)
	if log != nil {
		log.Info().Int("reboot_count", int(count)).Log("release delay elapsed, START set")
	}
	return nil
}

// restoreWord sets every bit present in word (the i-th uint64 word of a
// saved bitset) on status. The snapshot format stores raw words rather
// than flag names, so this only needs to replay bits, not interpret them.
func restoreWord(status *StatusWord, wordIndex int, word uint64) {
	for bit := 0; bit < 64; bit++ {
		if word&(1<<uint(bit)) != 0 {
			status.Set(StatusFlag(wordIndex*64 + bit))
		}
	}
}
