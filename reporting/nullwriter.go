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
	"github.com/rs/zerolog/log"
)

// NullWriter is used when no reporting database is configured.
// Records are just written to the log.
type NullWriter struct {
}

func (sw *NullWriter) LogErrors() {
	log.Debug().
		Bool("fallbackReporting", true).
		Msg("NullWriter.LogErrors() - nothing to watch")
}

func (sw *NullWriter) Write(item Timescalable) {
	log.Info().
		Bool("fallbackReporting", true).
		Str("table", item.GetTableName()).
		Any("record", item).
		Msg("reporting record")
}

func (sw *NullWriter) AddTableWriter(tableName string) {
	log.Debug().
		Bool("fallbackReporting", true).
		Msgf("NullWriter.AddTableWriter(%s)", tableName)
}
