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
	"os"
	"path"
	"runtime"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type neverCancelled struct{}

func (nc neverCancelled) Cancelled() bool {
	return false
}

func loadTestingFile(relativePath string, t *testing.T) string {
	_, filepath, _, _ := runtime.Caller(0)
	srcPath := path.Join(filepath, "..", "..", relativePath)
	content, err := os.ReadFile(srcPath)
	if err != nil {
		t.Error(err)
	}
	return string(content)
}

func loadTestingDoc(relativePath string, t *testing.T) *goquery.Document {
	return docFromString(loadTestingFile(relativePath, t), t)
}

func docFromString(src string, t *testing.T) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func groupPairs(sg *SectionGroup) [][2]string {
	ans := make([][2]string, 0, sg.Len())
	sg.ForEach(func(label, anchor string) bool {
		ans = append(ans, [2]string{label, anchor})
		return true
	})
	return ans
}

func TestSectionGroupOverwriteKeepsPosition(t *testing.T) {
	sg := NewSectionGroup()
	sg.Set("Noun", "Noun")
	sg.Set("Verb", "Verb")
	sg.Set("Noun", "Noun_2")
	assert.Equal(t, 2, sg.Len())
	assert.Equal(t, [][2]string{{"Noun", "Noun_2"}, {"Verb", "Verb"}}, groupPairs(sg))
	v, ok := sg.Get("Noun")
	assert.True(t, ok)
	assert.Equal(t, "Noun_2", v)
	_, ok = sg.Get("Adverb")
	assert.False(t, ok)
}

func TestSectionGroupForEachBreak(t *testing.T) {
	sg := NewSectionGroup()
	sg.Set("Noun", "a")
	sg.Set("Verb", "b")
	var visited int
	sg.ForEach(func(label, anchor string) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited)
}

func TestBuildSectionIndexEtymologies(t *testing.T) {
	doc := loadTestingDoc("testdata/wiktionary/two_etymologies.html", t)
	index := BuildSectionIndex(doc, neverCancelled{})
	require.Len(t, index, 2)
	assert.Equal(t, [][2]string{{"Verb", "Verb"}}, groupPairs(index[0]))
	assert.Equal(t, [][2]string{{"Verb", "Verb_2"}}, groupPairs(index[1]))
}

func TestBuildSectionIndexImplicitGroup(t *testing.T) {
	doc := loadTestingDoc("testdata/wiktionary/multilang.html", t)
	index := BuildSectionIndex(doc, neverCancelled{})
	require.Len(t, index, 1)
	assert.Equal(t, [][2]string{{"Noun", "Noun"}, {"Verb", "Verb"}}, groupPairs(index[0]))
}

func TestBuildSectionIndexSingleEtymologyHeading(t *testing.T) {
	doc := loadTestingDoc("testdata/wiktionary/one_etymology.html", t)
	index := BuildSectionIndex(doc, neverCancelled{})
	require.Len(t, index, 1)
	assert.Equal(t, [][2]string{{"noun", "noun"}}, groupPairs(index[0]))
}

func TestBuildSectionIndexNoToc(t *testing.T) {
	doc := loadTestingDoc("testdata/wiktionary/no_toc.html", t)
	index := BuildSectionIndex(doc, neverCancelled{})
	assert.Empty(t, index)
}

func TestBuildSectionIndexOtherLanguageOnly(t *testing.T) {
	doc := docFromString(`<div class="toc"><ul>
		<li class="toclevel-1"><a href="#French"><span class="toctext">French</span></a>
		<ul><li class="toclevel-2"><a href="#Noun"><span class="toctext">Noun</span></a></li></ul>
		</li></ul></div>`, t)
	index := BuildSectionIndex(doc, neverCancelled{})
	assert.Empty(t, index)
}

func TestBuildSectionIndexRepeatedLabel(t *testing.T) {
	doc := docFromString(`<div class="toc"><ul>
		<li class="toclevel-1"><a href="#English"><span class="toctext">English</span></a>
		<ul>
		<li class="toclevel-2"><a href="#Noun"><span class="toctext">Noun</span></a></li>
		<li class="toclevel-2"><a href="#Verb"><span class="toctext">Verb</span></a></li>
		<li class="toclevel-2"><a href="#Noun_2"><span class="toctext">Noun</span></a></li>
		<li class="toclevel-2"><a href="#noun_3"><span class="toctext">noun</span></a></li>
		</ul>
		</li></ul></div>`, t)
	index := BuildSectionIndex(doc, neverCancelled{})
	require.Len(t, index, 1)
	assert.Equal(
		t,
		[][2]string{{"Noun", "Noun_2"}, {"Verb", "Verb"}, {"noun", "noun_3"}},
		groupPairs(index[0]),
	)
}

func TestBuildSectionIndexLinkWithoutTocText(t *testing.T) {
	doc := docFromString(`<div class="toc"><ul>
		<li class="toclevel-1"><a href="#English">English</a>
		<ul><li class="toclevel-2"><a href="#Adverb">Adverb</a></li></ul>
		</li></ul></div>`, t)
	index := BuildSectionIndex(doc, neverCancelled{})
	require.Len(t, index, 1)
	assert.Equal(t, [][2]string{{"Adverb", "Adverb"}}, groupPairs(index[0]))
}

func TestBuildSectionIndexCancelled(t *testing.T) {
	doc := loadTestingDoc("testdata/wiktionary/two_etymologies.html", t)
	index := BuildSectionIndex(doc, &countingGate{cancelAt: 0})
	assert.Empty(t, index)
}

func TestIsPartOfSpeech(t *testing.T) {
	assert.True(t, IsPartOfSpeech("Noun"))
	assert.True(t, IsPartOfSpeech("ADJECTIVE"))
	assert.True(t, IsPartOfSpeech("abbreviation"))
	assert.False(t, IsPartOfSpeech("Pronunciation"))
	assert.False(t, IsPartOfSpeech("Proper noun"))
	assert.False(t, IsPartOfSpeech(""))
}
