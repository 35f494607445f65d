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

// SectionGroup maps part of speech labels to anchors of their
// content sections. Labels keep the order of their first
// appearance, a repeated label overwrites the anchor.
type SectionGroup struct {
	labels  []string
	anchors map[string]string
}

func (sg *SectionGroup) Set(label, anchor string) {
	if _, ok := sg.anchors[label]; !ok {
		sg.labels = append(sg.labels, label)
	}
	sg.anchors[label] = anchor
}

func (sg *SectionGroup) Get(label string) (string, bool) {
	v, ok := sg.anchors[label]
	return v, ok
}

func (sg *SectionGroup) Len() int {
	return len(sg.labels)
}

// ForEach iterates over label -> anchor pairs in the order
// of labels insertion. Returning false from fn stops the iteration.
func (sg *SectionGroup) ForEach(fn func(label, anchor string) bool) {
	for _, label := range sg.labels {
		if !fn(label, sg.anchors[label]) {
			return
		}
	}
}

func NewSectionGroup() *SectionGroup {
	return &SectionGroup{
		labels:  make([]string, 0, 4),
		anchors: make(map[string]string),
	}
}

// SectionIndex contains one group per detected etymology
type SectionIndex []*SectionGroup

func (idx *SectionIndex) openGroup() {
	*idx = append(*idx, NewSectionGroup())
}

func (idx *SectionIndex) current() *SectionGroup {
	if len(*idx) == 0 {
		idx.openGroup()
	}
	return (*idx)[len(*idx)-1]
}

func anchorID(href string) string {
	return strings.TrimPrefix(href, "#")
}

func tocItemLabel(link *goquery.Selection) string {
	text := link.Find(".toctext")
	if text.Length() == 0 {
		return link.Text()
	}
	return text.Text()
}

// processTocLevel handles a single level of TOC items. Etymology
// items open a new group and their nested items are processed
// recursively so they end up in the group just opened.
func processTocLevel(items *goquery.Selection, index *SectionIndex, gate Canceller) {
	items.EachWithBreak(func(i int, item *goquery.Selection) bool {
		if gate.Cancelled() {
			return false
		}
		if item.ChildrenFiltered(`[href*="` + etymologyMarker + `"]`).Length() > 0 {
			index.openGroup()
			processTocLevel(item.ChildrenFiltered("ul").Children(), index, gate)
			return true
		}
		link := item.Find("a").First()
		label := tocItemLabel(link)
		if IsPartOfSpeech(label) {
			href, _ := link.Attr("href")
			index.current().Set(label, anchorID(href))
		}
		return true
	})
}

// BuildSectionIndex walks the table of contents of the English
// part of the document and collects part of speech sections
// grouped by etymology.
func BuildSectionIndex(doc *goquery.Document, gate Canceller) SectionIndex {
	index := make(SectionIndex, 0, 3)
	doc.Find(".toc").Find(".toclevel-1").EachWithBreak(func(i int, elm *goquery.Selection) bool {
		if gate.Cancelled() {
			return false
		}
		if elm.ChildrenFiltered(`[href="` + languageAnchor + `"]`).Length() == 0 {
			return true
		}
		processTocLevel(elm.Find(".toclevel-2"), &index, gate)
		return true
	})
	return index
}
