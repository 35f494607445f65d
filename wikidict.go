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
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/wikidict/server"
	"github.com/czcorpus/wikidict/services"
	"github.com/czcorpus/wikidict/wiktionary"
	"github.com/rs/zerolog/log"
)

var (
	version     string
	buildDate   string
	gitCommit   string
	versionInfo = services.VersionInfo{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
	}
)

func runParse(word, srcPath string) error {
	rawMarkup, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("failed to read page file: %w", err)
	}
	data, err := wiktionary.Parse(context.Background(), word, string(rawMarkup))
	if err != nil {
		return err
	}
	out, err := sonic.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func main() {
	cmdOpts := new(server.CmdOptions)
	flag.StringVar(&cmdOpts.Host, "host", "", "Host to listen on")
	flag.IntVar(&cmdOpts.Port, "port", 0, "Port to listen on")
	flag.IntVar(&cmdOpts.ReadTimeoutSecs, "read-timeout", 0, "Server read timeout in seconds")
	flag.IntVar(&cmdOpts.WriteTimeoutSecs, "write-timeout", 0, "Server write timeout in seconds")
	flag.StringVar(&cmdOpts.LogPath, "log-path", "", "A file to log to (if empty then stderr is used)")
	flag.StringVar(&cmdOpts.LogLevel, "log-level", "", "A log level (debug, info, warn/warning, error)")

	flag.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			"wikidict - English Wiktionary definitions service"+
				"\n\nUsage:"+
				"\n\t%s [options] start [conf.json]"+
				"\n\t%s parse [word] [page.html]"+
				"\n\t%s version\n",
			filepath.Base(os.Args[0]),
			filepath.Base(os.Args[0]),
			filepath.Base(os.Args[0]),
		)
		flag.PrintDefaults()
	}
	flag.Parse()

	switch flag.Arg(0) {
	case "version":
		fmt.Println(versionInfo.String())
		return
	case "start":
		conf := server.FindAndLoadConfig(flag.Arg(1), cmdOpts)
		log.Info().
			Str("version", versionInfo.Version).
			Str("buildDate", versionInfo.BuildDate).
			Str("last commit", versionInfo.GitCommit).
			Msg("Starting WikiDict")
		server.RunService(conf)
	case "parse":
		if flag.Arg(1) == "" || flag.Arg(2) == "" {
			fmt.Fprintln(os.Stderr, "parse requires a word and a page file")
			os.Exit(1)
		}
		if err := runParse(flag.Arg(1), flag.Arg(2)); err != nil {
			fmt.Fprintf(os.Stderr, "failed to parse page: %s\n", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("Unknown action [%s]. Try -h for help\n", flag.Arg(0))
		os.Exit(1)
	}
}
