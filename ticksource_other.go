//go:build !linux

// Copyright 2026 Jake Roggenbuck
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package intellisat

import "time"

// tickerTickSource drives the superloop from a time.Ticker, for hosted
// platforms other than Linux where a timerfd isn't available.
type tickerTickSource struct {
	ticker *time.Ticker
}

// NewTickSource creates a ticker firing every period.
func NewTickSource(period time.Duration) (TickSource, error) {
	return &tickerTickSource{ticker: time.NewTicker(period)}, nil
}

func (t *tickerTickSource) C() <-chan time.Time { return t.ticker.C }

func (t *tickerTickSource) Stop() { t.ticker.Stop() }
