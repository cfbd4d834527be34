// Copyright 2013 Google Inc. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package schedule

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rakyll/launchpad-pro/port"
)

// Dispatcher delivers a schedule. Dispatch returns immediately.
type Dispatcher interface {
	Dispatch(s *Schedule)
}

// TimerDispatcher sends each schedule from its own goroutine,
// measuring every offset from the moment Dispatch was called. Once a
// batch is handed over there is no way to take it back, except for
// cancelling ctx, which drops the batches that have not fired yet.
type TimerDispatcher struct {
	ctx context.Context
	out port.Sender
	log logrus.FieldLogger
}

// NewTimerDispatcher returns a dispatcher writing to out.
func NewTimerDispatcher(ctx context.Context, out port.Sender, log logrus.FieldLogger) *TimerDispatcher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &TimerDispatcher{ctx: ctx, out: out, log: log}
}

// Dispatch implements Dispatcher.
func (d *TimerDispatcher) Dispatch(s *Schedule) {
	batches := s.Batches()
	if len(batches) == 0 {
		return
	}
	origin := time.Now()
	go d.run(s.ID(), origin, batches)
}

func (d *TimerDispatcher) run(id string, origin time.Time, batches []Batch) {
	log := d.log.WithField("schedule", id)
	for _, b := range batches {
		timer := time.NewTimer(time.Until(origin.Add(b.At)))
		select {
		case <-d.ctx.Done():
			timer.Stop()
			log.WithField("at", b.At).Debug("schedule cancelled")
			return
		case <-timer.C:
		}
		for _, msg := range b.Messages {
			if err := d.out.Send(msg); err != nil {
				log.WithError(err).WithField("at", b.At).Error("scheduled send failed")
			}
		}
		for _, fn := range b.Calls {
			fn()
		}
	}
}
