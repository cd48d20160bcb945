// Package stringtest builds multi-line strings for tests: dedented source
// snippets, explicit line endings, and decorated doc comments.
package stringtest
