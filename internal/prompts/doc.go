// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

/*
Package prompts classifies free-text developer prompts and scores their
quality.

Classification is ordered first-match over a keyword taxonomy: the prompt
is lower-cased and each category's keywords are tested in declaration
order, so an earlier category always wins over a later one. Two distinct
taxonomies are maintained: a broad one used by the prompt-log listing and
a narrow one used by the insights endpoint. They are intentionally not
merged; they produce different category distributions for the same input.

Quality scoring is an additive heuristic over prompt length, word count,
code blocks, questions, and specificity wording, clamped to [0, 100],
with human-readable reasons accompanying every contribution.
*/
package prompts
