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
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/czcorpus/wikidict/reporting"
	"github.com/czcorpus/wikidict/reqcache"
	"github.com/czcorpus/wikidict/wiktionary"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	// statusClientClosedRequest is a non-standard status
	// used only for reporting purposes
	statusClientClosedRequest = 499
)

type pageFetcher interface {
	PageURL(word string) string
	Fetch(ctx context.Context, word string) (string, error)
}

type shortResponse struct {
	Word          string                      `json:"word"`
	Language      string                      `json:"language"`
	Transcription string                      `json:"transcription"`
	ShortView     []wiktionary.EtymologyBlock `json:"shortView"`
	Extendable    bool                        `json:"extendable"`
}

type Actions struct {
	fetcher         pageFetcher
	cache           reqcache.Cache
	reportingWriter reporting.ReportingWriter
}

// loadPage provides the raw markup of a word's page, either from
// the cache or from the backend. The second returned value tells
// whether the cache has been used.
func (aa *Actions) loadPage(req *http.Request, word string) (string, bool, error) {
	cacheKey := reqcache.CreateItemID(aa.fetcher.PageURL(word))
	if reqcache.ShouldReadFromCache(req) {
		page, err := aa.cache.Get(req.Context(), cacheKey)
		if err == nil {
			return page, true, nil

		} else if err != reqcache.ErrCacheMiss {
			log.Warn().Err(err).Str("word", word).Msg("failed to read cached page, fetching fresh one")
		}
	}
	page, err := aa.fetcher.Fetch(req.Context(), word)
	if err != nil {
		return "", false, err
	}
	if err := aa.cache.Set(req.Context(), cacheKey, page); err != nil {
		log.Warn().Err(err).Str("word", word).Msg("failed to store page in cache")
	}
	return page, false, nil
}

func (aa *Actions) writeError(ctx *gin.Context, report *reporting.ParseReport, err error, status int) {
	report.Status = status
	uniresp.WriteJSONErrorResponse(ctx.Writer, uniresp.NewActionError(err.Error()), status)
}

// Definitions handles `GET /definitions?q=word[&short=1]`
func (aa *Actions) Definitions(ctx *gin.Context) {
	t0 := time.Now()
	word := strings.TrimSpace(ctx.Query("q"))
	report := reporting.NewParseReport(word)
	defer func() {
		report.ProcTime = time.Since(t0).Seconds()
		aa.reportingWriter.Write(report)
	}()

	if word == "" {
		aa.writeError(ctx, report, errors.New("empty query"), http.StatusUnprocessableEntity)
		return
	}

	page, cached, err := aa.loadPage(ctx.Request, word)
	report.Cached = cached
	if ctx.Request.Context().Err() != nil {
		log.Debug().Str("word", word).Msg("client closed the request while loading page")
		report.Status = statusClientClosedRequest
		ctx.Abort()
		return
	}
	if errors.Is(err, ErrWordNotFound) {
		aa.writeError(ctx, report, fmt.Errorf("word '%s' not found", word), http.StatusNotFound)
		return

	} else if errors.Is(err, ErrBackendOverloaded) {
		aa.writeError(ctx, report, err, http.StatusTooManyRequests)
		return

	} else if err != nil {
		log.Error().Err(err).Str("word", word).Msg("failed to load dictionary page")
		aa.writeError(ctx, report, err, http.StatusBadGateway)
		return
	}

	data, err := wiktionary.Parse(ctx.Request.Context(), word, page)
	if errors.Is(err, wiktionary.ErrCancelledRequest) {
		log.Debug().Str("word", word).Msg("parsing cancelled, client closed the request")
		report.Status = statusClientClosedRequest
		ctx.Abort()
		return

	} else if err != nil {
		log.Error().Err(err).Str("word", word).Msg("failed to parse dictionary page")
		aa.writeError(ctx, report, err, http.StatusInternalServerError)
		return
	}
	report.Status = http.StatusOK
	report.NumBlocks = len(data.EtymologyBlocks)
	report.Extendable = data.Extendable

	if ctx.Query("short") == "1" {
		uniresp.WriteJSONResponse(ctx.Writer, shortResponse{
			Word:          data.Word,
			Language:      data.Language,
			Transcription: data.Transcription,
			ShortView:     data.ShortView,
			Extendable:    data.Extendable,
		})
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, data)
}

func NewActions(
	fetcher *Fetcher,
	cache reqcache.Cache,
	reportingWriter reporting.ReportingWriter,
) *Actions {
	return &Actions{
		fetcher:         fetcher,
		cache:           cache,
		reportingWriter: reportingWriter,
	}
}
