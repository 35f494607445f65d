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
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func findByID(doc *goquery.Document, id string) *goquery.Selection {
	return doc.Find("[id]").FilterFunction(func(i int, s *goquery.Selection) bool {
		v, _ := s.Attr("id")
		return v == id
	}).First()
}

// findDefinitionsList returns the first ordered list following
// the parent of the anchored element. The selection may be empty.
func findDefinitionsList(doc *goquery.Document, anchor string) *goquery.Selection {
	return findByID(doc, anchor).Parent().NextAllFiltered("ol").First()
}

// splitDefinition splits a list item text into a definition
// and at most one example. The text is not trimmed in any way.
func splitDefinition(text string) (string, []string) {
	parts := strings.Split(text, "\n")
	if len(parts) < 2 {
		return parts[0], nil
	}
	return parts[0], parts[1:2]
}

// ExtractDictionaryEntry parses the definitions list belonging
// to the section identified by anchor.
func ExtractDictionaryEntry(doc *goquery.Document, speech, anchor string, gate Canceller) DictionaryEntry {
	entry := NewDictionaryEntry(speech)
	findDefinitionsList(doc, anchor).Children().EachWithBreak(func(i int, item *goquery.Selection) bool {
		if gate.Cancelled() {
			return false
		}
		definition, examples := splitDefinition(item.Text())
		if definition == "" {
			return true
		}
		entry.AddLine(definition, examples)
		return true
	})
	return entry
}
