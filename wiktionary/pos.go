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

import "strings"

const (
	// Language is the language code reported in each parsed result
	Language = "en"

	// languageAnchor is the TOC link target of the English section
	languageAnchor = "#English"

	etymologyMarker = "Etymology"
)

// partsOfSpeech lists the (lowercase) TOC labels we consider
// to be part of speech sections
var partsOfSpeech = []string{
	"noun",
	"pronoun",
	"adjectives",
	"adjective",
	"numerals",
	"verb",
	"adverb",
	"article",
	"preposition",
	"conjunction",
	"interjection",
	"abbreviation",
}

// IsPartOfSpeech tests whether the provided TOC label
// (in any letter case) denotes a recognized part of speech.
func IsPartOfSpeech(label string) bool {
	label = strings.ToLower(label)
	for _, v := range partsOfSpeech {
		if v == label {
			return true
		}
	}
	return false
}
