// Package docparse turns semi-structured markdown text into plain data:
// front matter maps, tables, mermaid flowcharts and heading sections.
//
// Every parser in this package is total over its input. Text that does
// not match a recognized shape contributes nothing; nothing here
// returns an error.
package docparse

import (
	"regexp"
	"strings"
)

// frontMatterPattern matches a --- delimited block at the very start of
// the document. (?s) lets the body span lines; \r? tolerates CRLF.
var frontMatterPattern = regexp.MustCompile(`(?s)^---\r?\n(.*?)\r?\n---`)

// FrontMatter extracts the leading key: value metadata block.
// Each inner line is split on its first colon; keys and values are
// trimmed and surrounding quotes stripped from values. Lines without a
// colon are skipped. A missing or malformed block yields an empty,
// non-nil map.
func FrontMatter(text string) map[string]string {
	meta := make(map[string]string)

	matches := frontMatterPattern.FindStringSubmatch(text)
	if matches == nil {
		return meta
	}

	for _, line := range strings.Split(matches[1], "\n") {
		line = strings.TrimRight(line, "\r")
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		meta[key] = stripQuotes(strings.TrimSpace(value))
	}
	return meta
}

// stripQuotes removes one pair of surrounding single or double quotes.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
