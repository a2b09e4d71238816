// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

package prompts

import "strings"

// Category is a prompt classification label.
type Category string

// Broad taxonomy categories.
const (
	CategoryCodeGeneration  Category = "Code Generation"
	CategoryCodeExplanation Category = "Code Explanation"
	CategoryDebugging       Category = "Debugging"
	CategoryDocumentation   Category = "Documentation"
	CategoryBestPractices   Category = "Best Practices"
	CategoryArchitecture    Category = "Architecture"
	CategoryTesting         Category = "Testing"
	CategoryDevOps          Category = "DevOps"
	CategoryDatabase        Category = "Database"
	CategorySecurity        Category = "Security"
	CategoryUIUX            Category = "UI/UX"
	CategoryAPI             Category = "API"
	CategoryPerformance     Category = "Performance"
	CategoryLearning        Category = "Learning"
	CategoryOther           Category = "Other"
)

// Narrow taxonomy categories not shared with the broad set.
const (
	CategoryAPIUsage Category = "API Usage"
	CategoryUnknown  Category = "Unknown"
)

// categoryKeywords pairs a category with its match keywords. Order within
// a taxonomy is significant: the first category with any substring match
// wins.
type categoryKeywords struct {
	Category Category
	Keywords []string
}

// Taxonomy is an ordered keyword table with a fallback category for
// prompts that match nothing.
type Taxonomy struct {
	Name     string
	Entries  []categoryKeywords
	Fallback Category
}

// BroadTaxonomy is the full category set used by the prompt-log listing.
// Keyword order is load-bearing: "debug this error in my function" must
// hit Debugging, so earlier categories avoid generic words like
// "function" or "error".
var BroadTaxonomy = Taxonomy{
	Name: "broad",
	Entries: []categoryKeywords{
		{CategoryCodeGeneration, []string{"write a", "generate", "create a", "implement", "build me", "scaffold", "boilerplate"}},
		{CategoryCodeExplanation, []string{"explain", "what does", "how does", "walk me through", "understand this"}},
		{CategoryDebugging, []string{"debug", "fix", "error", "bug", "not working", "broken", "exception", "crash", "stack trace"}},
		{CategoryDocumentation, []string{"document", "readme", "docstring", "comment", "changelog"}},
		{CategoryBestPractices, []string{"best practice", "convention", "idiomatic", "clean code", "refactor", "code review"}},
		{CategoryArchitecture, []string{"architecture", "design pattern", "microservice", "system design", "structure my"}},
		{CategoryTesting, []string{"test", "mock", "assert", "coverage", "unit test", "integration test"}},
		{CategoryDevOps, []string{"deploy", "docker", "kubernetes", "ci/cd", "pipeline", "terraform", "container"}},
		{CategoryDatabase, []string{"sql", "database", "query", "schema", "migration", "index", "dynamodb", "postgres"}},
		{CategorySecurity, []string{"security", "vulnerab", "encrypt", "authenticat", "authoriz", "injection", "xss"}},
		{CategoryUIUX, []string{"css", "layout", "component", "responsive", "frontend", "styling", "accessib"}},
		{CategoryAPI, []string{"api", "endpoint", "rest", "graphql", "http", "webhook"}},
		{CategoryPerformance, []string{"performance", "optimiz", "slow", "latency", "memory", "profil", "benchmark"}},
		{CategoryLearning, []string{"learn", "tutorial", "example of", "difference between", "when should"}},
	},
	Fallback: CategoryOther,
}

// NarrowTaxonomy is the condensed set used by the insights endpoint. It
// shares keywords with the broad table where categories overlap but is a
// separate table: collapsing the two would change category counts.
var NarrowTaxonomy = Taxonomy{
	Name: "narrow",
	Entries: []categoryKeywords{
		{CategoryCodeGeneration, []string{"write a", "generate", "create a", "implement", "build me"}},
		{CategoryDebugging, []string{"debug", "fix", "error", "bug", "not working", "exception"}},
		{CategoryCodeExplanation, []string{"explain", "what does", "how does", "understand"}},
		{CategoryBestPractices, []string{"best practice", "refactor", "idiomatic", "clean code"}},
		{CategoryAPIUsage, []string{"api", "endpoint", "sdk", "library", "how to use"}},
	},
	Fallback: CategoryUnknown,
}

// Categorize assigns the first category whose keyword list has a
// substring match against the lower-cased prompt, or the taxonomy
// fallback when nothing matches.
func (t Taxonomy) Categorize(prompt string) Category {
	lower := strings.ToLower(prompt)
	for _, entry := range t.Entries {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				return entry.Category
			}
		}
	}
	return t.Fallback
}

// TaxonomyByName resolves a taxonomy selector from the API layer.
// Unrecognized names fall back to the broad taxonomy.
func TaxonomyByName(name string) Taxonomy {
	if name == NarrowTaxonomy.Name {
		return NarrowTaxonomy
	}
	return BroadTaxonomy
}
