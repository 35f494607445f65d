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

package main

import (
	"path"
	"runtime"
	"testing"

	"github.com/czcorpus/wikidict/services"
	"github.com/stretchr/testify/assert"
)

func TestRunParse(t *testing.T) {
	_, filepath, _, _ := runtime.Caller(0)
	srcPath := path.Join(filepath, "..", "testdata", "wiktionary", "one_etymology.html")
	assert.NoError(t, runParse("hammer", srcPath))
	assert.Error(t, runParse("hammer", path.Join(t.TempDir(), "missing.html")))
}

func TestVersionInfoString(t *testing.T) {
	v := services.VersionInfo{Version: "1.0.0", BuildDate: "2025-03-01", GitCommit: "abc123"}
	assert.Contains(t, v.String(), "wikidict 1.0.0")
	assert.Contains(t, v.String(), "abc123")
	assert.Contains(t, services.VersionInfo{}.String(), "development")
}
