// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	sweepInterval = 10 * time.Minute
	sweepBatch    = 1000
)

type purger interface {
	PurgeExpiredAccessTokens(limit int) (int, error)
}

// removes expired access token records
type tokenSweeper struct {
	log      *logger.L
	engine   purger
	interval time.Duration
}

func newTokenSweeper(engine purger) *tokenSweeper {
	return &tokenSweeper{
		log:      logger.New("sweeper"),
		engine:   engine,
		interval: sweepInterval,
	}
}

// Run - purge in batches, a full batch is followed at once by another
func (s *tokenSweeper) Run(args interface{}, shutdown <-chan struct{}) {

	delay := s.interval
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(delay):
		}

		n, err := s.engine.PurgeExpiredAccessTokens(sweepBatch)
		if nil != err {
			s.log.Errorf("purge error: %s", err)
			delay = s.interval
			continue loop
		}
		if n > 0 {
			s.log.Infof("purged %d expired access tokens", n)
		}

		delay = s.interval
		if n >= sweepBatch {
			delay = 0
		}
	}
	s.log.Info("shutdown")
}
