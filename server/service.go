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
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/czcorpus/wikidict/config"
	"github.com/czcorpus/wikidict/reporting"
	"github.com/czcorpus/wikidict/reqcache"
	"github.com/czcorpus/wikidict/services/wiktionary"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout = 10 * time.Second
)

func initEngine(
	actions *wiktionary.Actions,
	reportingWriter reporting.ReportingWriter,
) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logging.GinMiddleware())
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	apiRoutes := engine.Group("/")
	apiRoutes.Use(uniresp.AlwaysJSONContentType())

	apiRoutes.GET("/definitions", actions.Definitions)
	apiRoutes.GET("/service/ping", func(ctx *gin.Context) {
		t0 := time.Now()
		uniresp.WriteJSONResponse(ctx.Writer, map[string]any{"ok": true})
		reportingWriter.Write(&PingReport{
			DateTime: t0,
			ProcTime: time.Since(t0).Seconds(),
			Status:   http.StatusOK,
		})
	})
	return engine
}

// CreateCache selects a cache backend based on configuration.
// With no cache location configured, the null cache is used.
func CreateCache(ctx context.Context, conf *reqcache.Conf) reqcache.Cache {
	if conf.FileRootPath != "" {
		log.Info().Msgf("using file page cache (path: %s)", conf.FileRootPath)
		log.Warn().Msg("caching respects the Cache-Control header")
		return reqcache.NewFileReqCache(conf)

	} else if conf.RedisAddr != "" {
		log.Info().Msgf("using redis page cache (addr: %s, db: %d)", conf.RedisAddr, conf.RedisDB)
		log.Warn().Msg("caching respects the Cache-Control header")
		return reqcache.NewRedisReqCache(ctx, conf)
	}
	log.Warn().Msg("using NULL cache (neither fs path nor Redis props are specified)")
	return reqcache.NewNullCache()
}

// CreateTDBWriter creates a TimescaleDB writer in case the reporting
// database is configured. Otherwise a NullWriter is returned.
func CreateTDBWriter(
	ctx context.Context, conf *reporting.Conf, loc *time.Location) (reporting.ReportingWriter, error) {
	var ans reporting.ReportingWriter
	if conf != nil {
		pgPool, err := reporting.CreatePool(conf.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to create reporting writer: %w", err)
		}
		ans = reporting.NewReportingWriter(ctx, pgPool, loc)

	} else {
		log.Warn().Msg("reporting database not configured, reports will be logged")
		ans = &reporting.NullWriter{}
	}
	ans.AddTableWriter(reporting.RequestsTable)
	ans.AddTableWriter(reporting.ServiceTable)
	return ans, nil
}

func RunService(conf *config.Configuration) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tDBWriter, err := CreateTDBWriter(ctx, conf.Reporting, conf.TimezoneLocation())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start")
		return
	}
	tDBWriter.LogErrors()

	actions := wiktionary.NewActions(
		wiktionary.NewFetcher(&conf.Wiktionary),
		CreateCache(ctx, &conf.Cache),
		tDBWriter,
	)
	engine := initEngine(actions, tDBWriter)

	log.Info().Msgf("starting to listen at %s:%d", conf.ServerHost, conf.ServerPort)
	srv := &http.Server{
		Handler:      engine,
		Addr:         fmt.Sprintf("%s:%d", conf.ServerHost, conf.ServerPort),
		WriteTimeout: time.Duration(conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(conf.ServerReadTimeoutSecs) * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Warn().Msg("shutdown request received")
	// now let's give subsystems some time to finish running requests
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var eg errgroup.Group
	eg.Go(func() error {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("HTTP server shutdown error: %w", err)
		}
		return nil
	})

	done := make(chan error, 1)
	go func() {
		done <- eg.Wait()
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Error().Err(err).Msg("shutdown finished with errors")

		} else {
			log.Info().Msg("Graceful shutdown completed")
		}
	case <-shutdownCtx.Done():
		log.Warn().Msg("Shutdown timed out")
	}
}
