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

// DictionaryLine is a single definition with an optional example
type DictionaryLine struct {
	Definition string   `json:"define"`
	Examples   []string `json:"examples,omitempty"`
}

// DictionaryEntry represents one part of speech sense
// within an etymology block.
type DictionaryEntry struct {
	Speech string           `json:"speech"`
	Lines  []DictionaryLine `json:"lines"`
}

// AddLine appends a new definition line. Lines with an empty
// definition are ignored.
func (entry *DictionaryEntry) AddLine(definition string, examples []string) {
	if definition == "" {
		return
	}
	entry.Lines = append(entry.Lines, DictionaryLine{Definition: definition, Examples: examples})
}

func NewDictionaryEntry(speech string) DictionaryEntry {
	return DictionaryEntry{
		Speech: speech,
		Lines:  make([]DictionaryLine, 0, 5),
	}
}

// EtymologyBlock groups entries sharing one word origin
type EtymologyBlock []DictionaryEntry

// ParsedDefinitions is the result of parsing a single
// dictionary page.
//
// The value is populated in a strict order: transcription,
// etymology blocks and their entries and finally the short view.
// Once FillShortView is called, the value should be
// treated as read-only.
type ParsedDefinitions struct {
	Word            string           `json:"word"`
	Language        string           `json:"language"`
	Transcription   string           `json:"transcription"`
	EtymologyBlocks []EtymologyBlock `json:"etymologyBlocks"`
	ShortView       []EtymologyBlock `json:"shortView"`
	Extendable      bool             `json:"extendable"`

	transcriptionSet bool
	shortViewFilled  bool
}

// AddTranscription sets the word transcription. Only the first
// call has an effect.
func (pd *ParsedDefinitions) AddTranscription(transcription string) {
	if pd.transcriptionSet {
		return
	}
	pd.Transcription = transcription
	pd.transcriptionSet = true
}

// AddEtymology opens a new (empty) etymology block
func (pd *ParsedDefinitions) AddEtymology() {
	pd.EtymologyBlocks = append(pd.EtymologyBlocks, make(EtymologyBlock, 0, 3))
}

// AddDictionaryEntry appends the entry to the last etymology block.
// In case there is no block yet, an implicit one is created.
func (pd *ParsedDefinitions) AddDictionaryEntry(entry DictionaryEntry) {
	if len(pd.EtymologyBlocks) == 0 {
		pd.AddEtymology()
	}
	last := len(pd.EtymologyBlocks) - 1
	pd.EtymologyBlocks[last] = append(pd.EtymologyBlocks[last], entry)
}

// FillShortView derives the ShortView and Extendable values.
// The derivation runs only once, any subsequent call is a no-op.
func (pd *ParsedDefinitions) FillShortView() {
	if pd.shortViewFilled {
		return
	}
	pd.shortViewFilled = true
	if len(pd.EtymologyBlocks) == 0 || len(pd.EtymologyBlocks[0]) == 0 {
		return
	}
	first := pd.EtymologyBlocks[0][0]
	short := DictionaryEntry{Speech: first.Speech, Lines: make([]DictionaryLine, 0, 1)}
	if len(first.Lines) > 0 {
		short.Lines = append(short.Lines, first.Lines[0])
	}
	pd.ShortView = []EtymologyBlock{{short}}
	pd.Extendable = pd.isExtendable()
}

func (pd *ParsedDefinitions) isExtendable() bool {
	return len(pd.EtymologyBlocks) > 1 ||
		len(pd.EtymologyBlocks[0]) > 1 ||
		len(pd.EtymologyBlocks[0][0].Lines) > 1
}

// IsShortViewFilled tells whether FillShortView has already run
func (pd *ParsedDefinitions) IsShortViewFilled() bool {
	return pd.shortViewFilled
}

func NewParsedDefinitions(word string) *ParsedDefinitions {
	return &ParsedDefinitions{
		Word:            word,
		Language:        Language,
		EtymologyBlocks: make([]EtymologyBlock, 0, 3),
		ShortView:       make([]EtymologyBlock, 0, 1),
	}
}
