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
	"fmt"
	"strings"

	"github.com/czcorpus/wikidict/config"
	"github.com/czcorpus/wikidict/reqcache"
	"github.com/czcorpus/wikidict/services/wiktionary"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"
)

var defaultConfPaths = []string{
	"/usr/local/etc/wikidict/conf.json",
	"/usr/local/etc/wikidict.json",
}

type CmdOptions struct {
	Host             string
	Port             int
	ReadTimeoutSecs  int
	WriteTimeoutSecs int
	LogPath          string
	LogLevel         string
}

func findConfig(explicitPath string, srchPaths []string) (string, error) {
	if explicitPath != "" {
		return explicitPath, nil
	}
	for _, path := range srchPaths {
		isFile, err := fs.IsFile(path)
		if err != nil {
			return "", fmt.Errorf(
				"error when searching for a suitable configuration file (searched in: %s): %w",
				strings.Join(srchPaths, ", "),
				err,
			)
		}
		if isFile {
			return path, nil
		}
	}
	return "", fmt.Errorf(
		"cannot find any suitable configuration file (searched in: %s)",
		strings.Join(srchPaths, ", "),
	)
}

// FindAndLoadConfig loads, completes and validates the service
// configuration. It also sets up logging. Any failure is fatal.
func FindAndLoadConfig(explicitPath string, cmdOpts *CmdOptions) *config.Configuration {
	confPath, err := findConfig(explicitPath, defaultConfPaths)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	conf, err := config.LoadConfig(confPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if cmdOpts.LogLevel != "" {
		conf.Logging.Level = logging.LogLevel(cmdOpts.LogLevel)

	} else if conf.Logging.Level == "" {
		conf.Logging.Level = "info"
	}
	if cmdOpts.LogPath != "" {
		conf.Logging.Path = cmdOpts.LogPath
	}
	logging.SetupLogging(conf.Logging)
	log.Info().Msgf("loaded configuration from %s", confPath)
	log.Info().Msgf("using logging level '%s'", conf.Logging.Level)
	applyDefaults(conf)
	overrideConfWithCmd(conf, cmdOpts)
	if err := conf.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	return conf
}

// applyDefaults applies default values for optional config items
// not handled by overrideConfWithCmd (i.e. items not configurable
// via command line arguments).
func applyDefaults(conf *config.Configuration) {
	if conf.TimeZone == "" {
		conf.TimeZone = config.DfltTimeZone
		log.Warn().Msgf("timeZone not specified, using default: %s", conf.TimeZone)
	}
	if conf.Wiktionary.BaseURL == "" {
		log.Warn().Msgf("wiktionary.baseURL not specified, using default: %s", wiktionary.DfltBaseURL)
	}
	conf.Wiktionary.ApplyDefaults()
	if conf.Cache.TTLSecs == 0 {
		conf.Cache.TTLSecs = reqcache.DfltTTLSecs
	}
}

func overrideConfWithCmd(origConf *config.Configuration, cmdConf *CmdOptions) {
	if cmdConf.Host != "" {
		origConf.ServerHost = cmdConf.Host

	} else if origConf.ServerHost == "" {
		log.Warn().Msgf(
			"serverHost not specified, using default value %s",
			config.DfltServerHost,
		)
		origConf.ServerHost = config.DfltServerHost
	}
	if cmdConf.Port != 0 {
		origConf.ServerPort = cmdConf.Port

	} else if origConf.ServerPort == 0 {
		log.Warn().Msgf(
			"serverPort not specified, using default value %d",
			config.DftlServerPort,
		)
		origConf.ServerPort = config.DftlServerPort
	}
	if cmdConf.ReadTimeoutSecs != 0 {
		origConf.ServerReadTimeoutSecs = cmdConf.ReadTimeoutSecs

	} else if origConf.ServerReadTimeoutSecs == 0 {
		log.Warn().Msgf(
			"serverReadTimeoutSecs not specified, using default value %d",
			config.DfltServerReadTimeoutSecs,
		)
		origConf.ServerReadTimeoutSecs = config.DfltServerReadTimeoutSecs
	}
	if cmdConf.WriteTimeoutSecs != 0 {
		origConf.ServerWriteTimeoutSecs = cmdConf.WriteTimeoutSecs

	} else if origConf.ServerWriteTimeoutSecs == 0 {
		log.Warn().Msgf(
			"serverWriteTimeoutSecs not specified, using default value %d",
			config.DfltServerWriteTimeoutSecs,
		)
		origConf.ServerWriteTimeoutSecs = config.DfltServerWriteTimeoutSecs
	}
	if origConf.Logging.Path == "" {
		log.Warn().Msg("logging.path not specified, using stderr")
	}
}
