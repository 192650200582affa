package docparse

import "strings"

// Section is one heading-delimited span of a document.
type Section struct {
	// Heading is the heading text without the # markers; empty for the
	// preamble before the first heading.
	Heading string
	Body    string
}

// Sections splits text on markdown heading lines of any level. Text
// before the first heading becomes a preamble section with an empty
// heading. Extractors use the heading to carry context (for example
// baseline vs target) into the tables below it.
func Sections(text string) []Section {
	var sections []Section
	heading := ""
	var bodyLines []string

	flush := func() {
		body := strings.Join(bodyLines, "\n")
		if heading != "" || strings.TrimSpace(body) != "" {
			sections = append(sections, Section{Heading: heading, Body: body})
		}
		bodyLines = nil
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			flush()
			heading = strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
			continue
		}
		bodyLines = append(bodyLines, line)
	}
	flush()
	return sections
}
