// Copyright 2026 Jake Roggenbuck
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

// Command flightctl is the out-of-core test harness for the flight
// executive: it runs the dispatcher for a fixed number of ticks and
// exits, so the core scheduling logic can be driven from a shell without
// real hardware. It is a minimal positional-argument harness, not a
// configuration surface, hence no flag-parsing library.
package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	intellisat "github.com/JakeRoggenbuck/IntelliSat-Prototype"
	"github.com/JakeRoggenbuck/IntelliSat-Prototype/internal/demo"
	"github.com/JakeRoggenbuck/IntelliSat-Prototype/internal/snapshot"
)

const tickPeriod = 50 * time.Millisecond

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "flightctl:", err)
		os.Exit(1)
	}
}

// run parses argv[1] as the tick budget: omitted or unparsable means
// unlimited, matching the test-harness contract. argv[2] of "1" presets
// the START flag, skipping the first-boot release delay.
func run(args []string) error {
	ticks := math.MaxInt
	if len(args) >= 1 {
		if n, err := strconv.Atoi(args[0]); err == nil && n >= 0 {
			ticks = n
		}
	}

	presetStart := false
	if len(args) >= 2 {
		presetStart = args[1] == "1"
	}

	log := intellisat.NewLogger(os.Stdout)

	tick, err := intellisat.NewTickSource(tickPeriod)
	if err != nil {
		return fmt.Errorf("create tick source: %w", err)
	}

	exec := intellisat.New(demo.TaskTable(), tick, log)

	store := snapshot.NewMemory()
	if presetStart {
		if err := store.Save(snapshot.State{StatusBits: []uint64{1 << uint(intellisat.FlagStart)}}); err != nil {
			return fmt.Errorf("preset start: %w", err)
		}
	}
	if err := exec.Boot(store, intellisat.StartupConfig{TestShortenedWait: time.Millisecond}); err != nil {
		return fmt.Errorf("boot: %w", err)
	}

	ctx := context.Background()
	if err := exec.Run(ctx, ticks); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	return nil
}
