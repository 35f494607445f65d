// Copyright 2022 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2022 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2022 Department of Linguistics,
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

package reqcache

import (
	"context"
	"crypto/sha1"
	"errors"
	"fmt"
	"net/http"
)

var ErrCacheMiss = errors.New("cache miss")

const (
	DfltTTLSecs = 3600 * 24
)

type Conf struct {
	FileRootPath string `json:"fileRootPath"`
	RedisAddr    string `json:"redisAddr"`
	RedisDB      int    `json:"redisDB"`
	TTLSecs      int    `json:"ttlSecs"`
}

func (conf *Conf) Validate(context string) error {
	if conf.FileRootPath != "" && conf.RedisAddr != "" {
		return fmt.Errorf("%s: only one of fileRootPath, redisAddr can be specified", context)
	}
	if conf.TTLSecs < 0 {
		return fmt.Errorf("%s.ttlSecs must be a non-negative number", context)
	}
	return nil
}

// Cache stores raw backend responses (typically dictionary pages)
// under keys derived from their source URLs.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// CreateItemID derives a cache key from a backend URL
func CreateItemID(url string) string {
	h := sha1.New()
	h.Write([]byte(url))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// ShouldReadFromCache tests whether the client allows us
// to serve cached data.
func ShouldReadFromCache(req *http.Request) bool {
	return req.Method == http.MethodGet && req.Header.Get("Cache-Control") != "no-cache"
}
