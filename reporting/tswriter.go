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
	"context"
	"time"

	"github.com/czcorpus/hltscl"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const (
	dfltWriteTimeout = 10 * time.Second
)

type table struct {
	writer    *hltscl.TableWriter
	opsDataCh chan<- hltscl.Entry
	errCh     <-chan hltscl.WriteError
}

// TimescaleDBWriter writes report records asynchronously
// into TimescaleDB tables. Each table must be registered
// via AddTableWriter before any record for it is written.
type TimescaleDBWriter struct {
	ctx    context.Context
	tz     *time.Location
	conn   *pgxpool.Pool
	tables map[string]*table
}

// LogErrors starts a goroutine per registered table reporting
// failed writes. The goroutines end with the writer's context.
func (sw *TimescaleDBWriter) LogErrors() {
	for name, tbl := range sw.tables {
		go func(name string, tbl *table) {
			for {
				select {
				case <-sw.ctx.Done():
					log.Info().Str("table", name).Msg("closing reporting table writer")
					return
				case err, ok := <-tbl.errCh:
					if !ok {
						return
					}
					log.Error().
						Err(err.Err).
						Str("table", name).
						Str("entry", err.Entry.String()).
						Msg("error writing data to TimescaleDB")
				}
			}
		}(name, tbl)
	}
}

func (sw *TimescaleDBWriter) Write(item Timescalable) {
	tbl, ok := sw.tables[item.GetTableName()]
	if !ok {
		log.Warn().Str("table", item.GetTableName()).Msg("undefined table name in reporting writer")
		return
	}
	log.Debug().
		Float64("timeout", tbl.writer.CurrentQueryTimeout().Seconds()).
		Str("table", item.GetTableName()).
		Msg("writing record to TimescaleDB")
	tbl.opsDataCh <- *item.ToTimescaleDB(tbl.writer)
}

func (sw *TimescaleDBWriter) AddTableWriter(tableName string) {
	twriter := hltscl.NewTableWriter(sw.conn, tableName, "time", sw.tz)
	opsDataCh, errCh := twriter.Activate(sw.ctx, hltscl.WithTimeout(dfltWriteTimeout))
	sw.tables[tableName] = &table{
		writer:    twriter,
		opsDataCh: opsDataCh,
		errCh:     errCh,
	}
}

func NewReportingWriter(ctx context.Context, conn *pgxpool.Pool, tz *time.Location) *TimescaleDBWriter {
	return &TimescaleDBWriter{
		ctx:    ctx,
		tz:     tz,
		conn:   conn,
		tables: make(map[string]*table),
	}
}

// CreatePool connects to the reporting database
func CreatePool(conf hltscl.PgConf) (*pgxpool.Pool, error) {
	return hltscl.CreatePool(conf)
}
