// Copyright 2026 Jake Roggenbuck
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package intellisat

// Mode identifies one of the satellite's operational modes. Values are
// ordered by descending arbitration priority: a lower numeric value wins
// when more than one mode's Sense() fires on the same tick.
type Mode uint8

const (
	ModeCharging Mode = iota
	ModeDetumble
	ModeComms
	ModeHDD
	ModeMRW
	ModeECC

	modeCount = int(ModeECC) + 1
)

// modePriority lists every mode in descending arbitration priority. It is
// the single source of truth for SystemsCheck's scan order; anything that
// needs "all modes in priority order" ranges over this slice instead of
// relying on declaration order coinciding with intent.
var modePriority = [modeCount]Mode{
	ModeCharging,
	ModeDetumble,
	ModeComms,
	ModeHDD,
	ModeMRW,
	ModeECC,
}

// defaultMode is selected by SystemsCheck when no mode's Sense() fires.
// ECC (Emergency Conservation / Control) is the satellite's keep-alive
// mode, last in priority order, and spec's own fallback.
const defaultMode = ModeECC

func (m Mode) String() string {
	switch m {
	case ModeCharging:
		return "CHARGING"
	case ModeDetumble:
		return "DETUMBLE"
	case ModeComms:
		return "COMMS"
	case ModeHDD:
		return "HDD"
	case ModeMRW:
		return "MRW"
	case ModeECC:
		return "ECC"
	default:
		return "UNKNOWN"
	}
}

// valid reports whether m is a declared Mode, used to guard TaskTable
// lookups before they touch the backing array.
func (m Mode) valid() bool {
	return int(m) < modeCount
}
