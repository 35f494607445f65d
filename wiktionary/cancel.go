// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Department of Linguistics,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wiktionary

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrCancelledRequest is returned instead of parsed data
// in case the request ended before the parsing was finished.
var ErrCancelledRequest = errors.New("cancelled request")

// Canceller is sampled by the parsing pipeline at each checkpoint.
type Canceller interface {
	Cancelled() bool
}

// CancelGate is a Canceller driven by a request context.
// It is set either right away (already aborted request)
// or once the context's Done channel is closed.
type CancelGate struct {
	cancelled atomic.Bool
	stop      func() bool
}

func (g *CancelGate) Cancelled() bool {
	return g.cancelled.Load()
}

// Release detaches the gate from its context. After the call,
// the gate keeps the value it had at the time of the release.
func (g *CancelGate) Release() {
	if g.stop != nil {
		g.stop()
	}
}

func NewCancelGate(ctx context.Context) *CancelGate {
	gate := &CancelGate{}
	if ctx.Err() != nil {
		gate.cancelled.Store(true)
		return gate
	}
	gate.stop = context.AfterFunc(ctx, func() {
		gate.cancelled.Store(true)
	})
	return gate
}
