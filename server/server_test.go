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

package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"testing"

	"github.com/czcorpus/wikidict/config"
	"github.com/czcorpus/wikidict/reporting"
	"github.com/czcorpus/wikidict/reqcache"
	"github.com/czcorpus/wikidict/services/wiktionary"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindConfig(t *testing.T) {
	dir := t.TempDir()
	existing := path.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(existing, []byte("{}"), 0644))

	p, err := findConfig("/explicit/conf.json", nil)
	require.NoError(t, err)
	assert.Equal(t, "/explicit/conf.json", p)

	p, err = findConfig("", []string{path.Join(dir, "missing.json"), existing})
	require.NoError(t, err)
	assert.Equal(t, existing, p)

	_, err = findConfig("", []string{path.Join(dir, "missing.json")})
	assert.Error(t, err)
}

func TestApplyDefaultsAndOverrides(t *testing.T) {
	conf := &config.Configuration{}
	applyDefaults(conf)
	overrideConfWithCmd(conf, &CmdOptions{Port: 9000})
	assert.Equal(t, config.DfltTimeZone, conf.TimeZone)
	assert.Equal(t, config.DfltServerHost, conf.ServerHost)
	assert.Equal(t, 9000, conf.ServerPort)
	assert.Equal(t, config.DfltServerReadTimeoutSecs, conf.ServerReadTimeoutSecs)
	assert.Equal(t, config.DfltServerWriteTimeoutSecs, conf.ServerWriteTimeoutSecs)
	assert.Equal(t, wiktionary.DfltBaseURL, conf.Wiktionary.BaseURL)
	assert.Equal(t, reqcache.DfltTTLSecs, conf.Cache.TTLSecs)
	conf.TimeZone = "UTC"
	assert.NoError(t, conf.Validate())
}

func TestCreateCache(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	assert.IsType(t, &reqcache.NullCache{}, CreateCache(ctx, &reqcache.Conf{}))
	assert.IsType(t, &reqcache.FileReqCache{}, CreateCache(ctx, &reqcache.Conf{FileRootPath: t.TempDir()}))
	assert.IsType(t, &reqcache.RedisReqCache{}, CreateCache(ctx, &reqcache.Conf{RedisAddr: "localhost"}))
}

func TestCreateTDBWriterFallback(t *testing.T) {
	w, err := CreateTDBWriter(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &reporting.NullWriter{}, w)
}

func TestPingRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	conf := &wiktionary.Conf{}
	conf.ApplyDefaults()
	actions := wiktionary.NewActions(
		wiktionary.NewFetcher(conf), reqcache.NewNullCache(), &reporting.NullWriter{})
	engine := initEngine(actions, &reporting.NullWriter{})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/service/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok": true}`, rec.Body.String())

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/definitions", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nothing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
