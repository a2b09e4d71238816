// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

package prompts

import (
	"regexp"
	"sort"
	"strings"
)

// Topic is a frequently occurring word across a prompt set.
type Topic struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// DefaultTopicLimit caps the topic list returned by ExtractTopics.
const DefaultTopicLimit = 20

var wordSplit = regexp.MustCompile(`\W+`)

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "this": {}, "that": {},
	"from": {}, "have": {}, "what": {}, "when": {}, "where": {}, "which": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "about": {},
	"there": {}, "their": {}, "them": {}, "then": {}, "than": {},
	"please": {}, "help": {}, "want": {}, "need": {}, "like": {},
	"using": {}, "does": {}, "into": {}, "some": {}, "more": {},
}

// ExtractTopics tokenizes the prompts on non-word boundaries, drops stop
// words and words of three characters or fewer, and returns the top
// words by descending count. Ties keep first-seen order, so repeated
// calls over the same input are deterministic.
func ExtractTopics(texts []string, limit int) []Topic {
	if limit <= 0 {
		limit = DefaultTopicLimit
	}

	counts := make(map[string]int)
	var order []string

	for _, text := range texts {
		for _, word := range wordSplit.Split(strings.ToLower(text), -1) {
			if len(word) <= 3 {
				continue
			}
			if _, stop := stopWords[word]; stop {
				continue
			}
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	topics := make([]Topic, 0, len(order))
	for _, word := range order {
		topics = append(topics, Topic{Word: word, Count: counts[word]})
	}
	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].Count > topics[j].Count
	})

	if len(topics) > limit {
		topics = topics[:limit]
	}
	return topics
}
