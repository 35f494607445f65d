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

package reporting

import (
	"encoding/json"
	"time"

	"github.com/czcorpus/hltscl"
	"github.com/google/uuid"
)

// ParseReport describes a single processed definitions request
type ParseReport struct {
	ID         uuid.UUID
	DateTime   time.Time
	Word       string
	ProcTime   float64
	Status     int
	Cached     bool
	NumBlocks  int
	Extendable bool
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func (report *ParseReport) ToTimescaleDB(tableWriter *hltscl.TableWriter) *hltscl.Entry {
	return tableWriter.NewEntry(report.DateTime).
		Str("request_id", report.ID.String()).
		Str("word", report.Word).
		Float("proc_time", report.ProcTime).
		Int("status", report.Status).
		Int("cached", boolToInt(report.Cached)).
		Int("num_blocks", report.NumBlocks).
		Int("extendable", boolToInt(report.Extendable))
}

func (report *ParseReport) GetTime() time.Time {
	return report.DateTime
}

func (report *ParseReport) GetTableName() string {
	return RequestsTable
}

func (report *ParseReport) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID         string    `json:"id"`
		DateTime   time.Time `json:"dateTime"`
		Word       string    `json:"word"`
		ProcTime   float64   `json:"procTime"`
		Status     int       `json:"status"`
		Cached     bool      `json:"cached"`
		NumBlocks  int       `json:"numBlocks"`
		Extendable bool      `json:"extendable"`
	}{
		ID:         report.ID.String(),
		DateTime:   report.DateTime,
		Word:       report.Word,
		ProcTime:   report.ProcTime,
		Status:     report.Status,
		Cached:     report.Cached,
		NumBlocks:  report.NumBlocks,
		Extendable: report.Extendable,
	})
}

// NewParseReport creates a report with a fresh request ID
// and the current time.
func NewParseReport(word string) *ParseReport {
	return &ParseReport{
		ID:       uuid.New(),
		DateTime: time.Now(),
		Word:     word,
	}
}
