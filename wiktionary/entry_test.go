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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDefinition(t *testing.T) {
	def, ex := splitDefinition("A tool.\nExample one.\nExample two.")
	assert.Equal(t, "A tool.", def)
	assert.Equal(t, []string{"Example one."}, ex)

	def, ex = splitDefinition("Another sense.")
	assert.Equal(t, "Another sense.", def)
	assert.Nil(t, ex)

	def, ex = splitDefinition("\nOrphan example.")
	assert.Equal(t, "", def)
	assert.Equal(t, []string{"Orphan example."}, ex)

	def, _ = splitDefinition(" padded \n")
	assert.Equal(t, " padded ", def)
}

func TestExtractDictionaryEntry(t *testing.T) {
	doc := loadTestingDoc("testdata/wiktionary/multilang.html", t)
	entry := ExtractDictionaryEntry(doc, "Noun", "Noun", neverCancelled{})
	assert.Equal(t, "Noun", entry.Speech)
	require.Len(t, entry.Lines, 2)
	assert.Equal(t, "A challenge, trial.", entry.Lines[0].Definition)
	assert.Equal(t, []string{"The test was hard."}, entry.Lines[0].Examples)
	assert.Equal(t, "An examination.", entry.Lines[1].Definition)
	assert.Nil(t, entry.Lines[1].Examples)
}

func TestExtractDictionaryEntryMissingAnchor(t *testing.T) {
	doc := loadTestingDoc("testdata/wiktionary/multilang.html", t)
	entry := ExtractDictionaryEntry(doc, "Adverb", "Adverb", neverCancelled{})
	assert.Equal(t, "Adverb", entry.Speech)
	assert.Empty(t, entry.Lines)
}

func TestExtractDictionaryEntryNoList(t *testing.T) {
	doc := docFromString(`<h3><span id="Noun">Noun</span></h3><p>no definitions here</p>`, t)
	entry := ExtractDictionaryEntry(doc, "Noun", "Noun", neverCancelled{})
	assert.Empty(t, entry.Lines)
}

func TestExtractDictionaryEntryUsesFirstFollowingList(t *testing.T) {
	doc := docFromString(`
		<ol><li>Before the heading.</li></ol>
		<h3><span id="Verb">Verb</span></h3>
		<p>head</p>
		<ol><li>First list.</li></ol>
		<ol><li>Second list.</li></ol>`, t)
	entry := ExtractDictionaryEntry(doc, "Verb", "Verb", neverCancelled{})
	require.Len(t, entry.Lines, 1)
	assert.Equal(t, "First list.", entry.Lines[0].Definition)
}

func TestExtractDictionaryEntryAnchorWithSpecialChars(t *testing.T) {
	doc := docFromString(`<h4><span id="Noun_(1).2">Noun</span></h4><ol><li>Odd anchor.</li></ol>`, t)
	entry := ExtractDictionaryEntry(doc, "Noun", "Noun_(1).2", neverCancelled{})
	require.Len(t, entry.Lines, 1)
	assert.Equal(t, "Odd anchor.", entry.Lines[0].Definition)
}

func TestExtractDictionaryEntryCancelled(t *testing.T) {
	doc := loadTestingDoc("testdata/wiktionary/multilang.html", t)
	entry := ExtractDictionaryEntry(doc, "Noun", "Noun", &countingGate{cancelAt: 1})
	require.Len(t, entry.Lines, 1)
	assert.Equal(t, "A challenge, trial.", entry.Lines[0].Definition)
}
