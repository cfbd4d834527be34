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

// Package schedule holds messages keyed by their offset from a common
// origin and dispatches them in increasing offset order.
package schedule

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Batch is everything due at one offset. Messages within a batch
// have no relative order.
type Batch struct {
	At       time.Duration
	Messages [][]byte
	Calls    []func()
}

// Schedule is built up front and handed to a Dispatcher as a whole.
type Schedule struct {
	id      string
	buckets map[time.Duration]*Batch
}

// New returns an empty schedule with a fresh id.
func New() *Schedule {
	return &Schedule{
		id:      uuid.NewString(),
		buckets: make(map[time.Duration]*Batch),
	}
}

// ID identifies the schedule in logs.
func (s *Schedule) ID() string {
	return s.id
}

func (s *Schedule) bucket(at time.Duration) *Batch {
	b, ok := s.buckets[at]
	if !ok {
		b = &Batch{At: at}
		s.buckets[at] = b
	}
	return b
}

// Add appends msgs to the batch due at offset at.
func (s *Schedule) Add(at time.Duration, msgs ...[]byte) {
	b := s.bucket(at)
	b.Messages = append(b.Messages, msgs...)
}

// Call runs fn once every message due at offset at has been sent.
func (s *Schedule) Call(at time.Duration, fn func()) {
	b := s.bucket(at)
	b.Calls = append(b.Calls, fn)
}

// At returns the messages due at offset at.
func (s *Schedule) At(at time.Duration) [][]byte {
	if b, ok := s.buckets[at]; ok {
		return b.Messages
	}
	return nil
}

// Len returns the number of messages in the schedule.
func (s *Schedule) Len() int {
	n := 0
	for _, b := range s.buckets {
		n += len(b.Messages)
	}
	return n
}

// Batches returns the batches ordered by offset.
func (s *Schedule) Batches() []Batch {
	out := make([]Batch, 0, len(s.buckets))
	for _, b := range s.buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].At < out[j].At
	})
	return out
}
