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
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/czcorpus/cnc-gokit/httpclient"
	"golang.org/x/time/rate"
)

var (
	ErrWordNotFound      = errors.New("word not found")
	ErrBackendOverloaded = errors.New("too many requests to the dictionary backend")
)

// Fetcher downloads dictionary pages from Wiktionary
type Fetcher struct {
	conf    *Conf
	client  *http.Client
	limiter *rate.Limiter
}

// PageURL provides a URL of an article page for a word
func (f *Fetcher) PageURL(word string) string {
	return strings.TrimRight(f.conf.BaseURL, "/") + "/wiki/" + url.PathEscape(word)
}

// Fetch obtains the raw markup of the word's article page.
func (f *Fetcher) Fetch(ctx context.Context, word string) (string, error) {
	if f.limiter != nil && !f.limiter.Allow() {
		return "", ErrBackendOverloaded
	}
	if f.conf.ReqTimeoutSecs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.conf.ReqTimeout())
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.PageURL(word), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create backend request: %w", err)
	}
	req.Header.Set("User-Agent", f.conf.ClientUserAgent)
	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page of %s: %w", word, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return "", ErrWordNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch page of %s: backend status %d", word, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read page of %s: %w", word, err)
	}
	return string(body), nil
}

func NewFetcher(conf *Conf) *Fetcher {
	ans := &Fetcher{
		conf: conf,
		client: httpclient.New(
			httpclient.WithFollowRedirects(),
			httpclient.WithIdleConnTimeout(time.Duration(conf.IdleConnTimeoutSecs)*time.Second),
		),
	}
	if conf.Limit != nil {
		ans.limiter = rate.NewLimiter(conf.Limit.NormLimitPerSec(), conf.Limit.BurstLimit)
	}
	return ans
}
