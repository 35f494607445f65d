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
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

const (
	DfltBaseURL             = "https://en.wiktionary.org"
	DfltClientUserAgent     = "wikidict/1.0 (+https://github.com/czcorpus/wikidict)"
	DfltReqTimeoutSecs      = 10
	DfltIdleConnTimeoutSecs = 60
)

// Limit specifies how many requests per time interval
// the service may send to Wiktionary.
type Limit struct {
	ReqPerTimeThreshold     int `json:"reqPerTimeThreshold"`
	ReqCheckingIntervalSecs int `json:"reqCheckingIntervalSecs"`
	BurstLimit              int `json:"burstLimit"`
}

func (m Limit) NormLimitPerSec() rate.Limit {
	return rate.Limit(float64(m.ReqPerTimeThreshold) / float64(m.ReqCheckingIntervalSecs))
}

type Conf struct {
	BaseURL             string `json:"baseURL"`
	ClientUserAgent     string `json:"clientUserAgent"`
	ReqTimeoutSecs      int    `json:"reqTimeoutSecs"`
	IdleConnTimeoutSecs int    `json:"idleConnTimeoutSecs"`
	Limit               *Limit `json:"limit"`
}

func (c *Conf) ReqTimeout() time.Duration {
	return time.Duration(c.ReqTimeoutSecs) * time.Second
}

func (c *Conf) Validate(context string) error {
	if c.BaseURL == "" {
		return fmt.Errorf("%s.baseURL is missing/empty", context)
	}
	if c.ReqTimeoutSecs < 0 {
		return fmt.Errorf("%s.reqTimeoutSecs must be a non-negative number", context)
	}
	if c.Limit != nil {
		if c.Limit.ReqCheckingIntervalSecs <= 0 {
			return fmt.Errorf("%s.limit.reqCheckingIntervalSecs must be a positive number", context)
		}
		if c.Limit.ReqPerTimeThreshold <= 0 {
			return fmt.Errorf("%s.limit.reqPerTimeThreshold must be a positive number", context)
		}
		if c.Limit.BurstLimit <= 0 {
			return fmt.Errorf("%s.limit.burstLimit must be a positive number", context)
		}
	}
	return nil
}

// ApplyDefaults fills in optional values not present in the configuration
func (c *Conf) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DfltBaseURL
	}
	if c.ClientUserAgent == "" {
		c.ClientUserAgent = DfltClientUserAgent
	}
	if c.ReqTimeoutSecs == 0 {
		c.ReqTimeoutSecs = DfltReqTimeoutSecs
	}
	if c.IdleConnTimeoutSecs == 0 {
		c.IdleConnTimeoutSecs = DfltIdleConnTimeoutSecs
	}
}
