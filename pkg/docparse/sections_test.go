package docparse

import (
	"strings"
	"testing"
)

func TestSectionsBasic(t *testing.T) {
	text := `intro text

# Baseline Systems

| A |
|---|
| 1 |

## Target Systems

more text`

	sections := Sections(text)
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}

	if sections[0].Heading != "" {
		t.Errorf("expected preamble heading to be empty, got %q", sections[0].Heading)
	}
	if !strings.Contains(sections[0].Body, "intro text") {
		t.Errorf("expected preamble body to contain intro, got %q", sections[0].Body)
	}

	if sections[1].Heading != "Baseline Systems" {
		t.Errorf("expected 'Baseline Systems', got %q", sections[1].Heading)
	}
	if !strings.Contains(sections[1].Body, "| A |") {
		t.Errorf("expected table inside section body, got %q", sections[1].Body)
	}

	if sections[2].Heading != "Target Systems" {
		t.Errorf("expected heading level markers stripped, got %q", sections[2].Heading)
	}
}

func TestSectionsNoPreamble(t *testing.T) {
	sections := Sections("# First\nbody")
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Heading != "First" {
		t.Errorf("expected 'First', got %q", sections[0].Heading)
	}
}

func TestSectionsNoHeadings(t *testing.T) {
	sections := Sections("just text\nmore text")
	if len(sections) != 1 {
		t.Fatalf("expected single preamble section, got %d", len(sections))
	}
	if sections[0].Heading != "" || !strings.Contains(sections[0].Body, "more text") {
		t.Errorf("unexpected section: %+v", sections[0])
	}
}

func TestSectionsEmptyInput(t *testing.T) {
	if sections := Sections(""); len(sections) != 0 {
		t.Errorf("expected no sections for empty input, got %d", len(sections))
	}
}
