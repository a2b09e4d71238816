// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

package prompts

import "testing"

func TestExtractTopics(t *testing.T) {
	texts := []string{
		"optimize the database query performance",
		"database migration failed, database locked",
		"improve query performance",
	}

	topics := ExtractTopics(texts, 20)

	if len(topics) == 0 {
		t.Fatal("expected topics")
	}
	if topics[0].Word != "database" || topics[0].Count != 3 {
		t.Errorf("top topic = %+v, want database x3", topics[0])
	}

	counts := make(map[string]int, len(topics))
	for _, topic := range topics {
		counts[topic.Word] = topic.Count
	}
	if counts["query"] != 2 || counts["performance"] != 2 {
		t.Errorf("counts = %v", counts)
	}
	if _, ok := counts["the"]; ok {
		t.Error("stop word leaked into topics")
	}
}

func TestExtractTopicsDropsShortWords(t *testing.T) {
	topics := ExtractTopics([]string{"go api sql fix my own big bug"}, 20)
	for _, topic := range topics {
		if len(topic.Word) <= 3 {
			t.Errorf("word %q of length <= 3 should be dropped", topic.Word)
		}
	}
}

func TestExtractTopicsTiesKeepFirstSeenOrder(t *testing.T) {
	topics := ExtractTopics([]string{"alpha bravo alpha bravo zulu"}, 20)

	if len(topics) != 3 {
		t.Fatalf("expected 3 topics, got %d", len(topics))
	}
	if topics[0].Word != "alpha" || topics[1].Word != "bravo" {
		t.Errorf("tied counts must keep first-seen order, got %v", topics)
	}
	if topics[2].Word != "zulu" || topics[2].Count != 1 {
		t.Errorf("last topic = %+v", topics[2])
	}
}

func TestExtractTopicsLimit(t *testing.T) {
	texts := []string{
		"apple banana cherry damson elder feijoa guava honeydew imbe jackfruit " +
			"kiwi lemon mango nectarine orange papaya quince raspberry satsuma tamarind " +
			"ugli vanilla watermelon ximenia yuzu",
	}

	topics := ExtractTopics(texts, 20)
	if len(topics) != 20 {
		t.Errorf("expected limit of 20 topics, got %d", len(topics))
	}

	topics = ExtractTopics(texts, 0)
	if len(topics) != DefaultTopicLimit {
		t.Errorf("zero limit should default to %d, got %d", DefaultTopicLimit, len(topics))
	}
}

func TestExtractTopicsEmpty(t *testing.T) {
	if topics := ExtractTopics(nil, 20); len(topics) != 0 {
		t.Errorf("empty input should yield no topics, got %v", topics)
	}
}
