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
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func extractDefinitions(doc *goquery.Document, data *ParsedDefinitions, gate Canceller) {
	index := BuildSectionIndex(doc, gate)
	if gate.Cancelled() {
		return
	}
	for _, group := range index {
		if gate.Cancelled() {
			return
		}
		data.AddEtymology()
		group.ForEach(func(speech, anchor string) bool {
			if gate.Cancelled() {
				return false
			}
			data.AddDictionaryEntry(ExtractDictionaryEntry(doc, speech, anchor, gate))
			return true
		})
	}
}

// ParseWithGate runs the extraction pipeline over rawMarkup, sampling
// the gate before each step. In case the gate reports cancellation
// at any point, ErrCancelledRequest is returned and no data.
func ParseWithGate(gate Canceller, word, rawMarkup string) (*ParsedDefinitions, error) {
	if gate.Cancelled() {
		return nil, ErrCancelledRequest
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawMarkup))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page of %s: %w", word, err)
	}
	if gate.Cancelled() {
		return nil, ErrCancelledRequest
	}
	data := NewParsedDefinitions(word)
	if transcription, ok := ExtractTranscription(doc); ok {
		data.AddTranscription(transcription)
	}
	if gate.Cancelled() {
		return nil, ErrCancelledRequest
	}
	extractDefinitions(doc, data, gate)
	if gate.Cancelled() {
		return nil, ErrCancelledRequest
	}
	data.FillShortView()
	if gate.Cancelled() {
		return nil, ErrCancelledRequest
	}
	return data, nil
}

// Parse parses a Wiktionary page of a word. The parsing is
// cancelled once ctx is done (typically the client closed
// the connection).
func Parse(ctx context.Context, word, rawMarkup string) (*ParsedDefinitions, error) {
	gate := NewCancelGate(ctx)
	defer gate.Release()
	return ParseWithGate(gate, word, rawMarkup)
}
