package migration

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		text string
		want Status
		ok   bool
	}{
		{"retire", StatusRemove, true},
		{"Retired", StatusRemove, true},
		{"Retire in 2026", StatusRemove, true},
		{"Decommissioning", StatusRemove, true},
		{"sunset", StatusRemove, true},
		{"OBSOLETE", StatusRemove, true},
		{"new", StatusAdd, true},
		{"Planned for Q3", StatusAdd, true},
		{"proposed", StatusAdd, true},
		{"emerging", StatusAdd, true},
		{"Future state", StatusAdd, true},
		{"active", "", false},
		{"keep", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseStatus(tt.text)
		if ok != tt.ok {
			t.Errorf("ParseStatus(%q): expected ok=%v, got %v", tt.text, tt.ok, ok)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q): expected %q, got %q", tt.text, tt.want, got)
		}
	}
}

func TestParseStatusRetireBeatsNew(t *testing.T) {
	// A cell mentioning both vocabularies resolves to remove.
	if got, ok := ParseStatus("retire, new owner takes over"); !ok || got != StatusRemove {
		t.Errorf("expected remove, got %q (ok=%v)", got, ok)
	}
}

func TestClassifyHeading(t *testing.T) {
	tests := []struct {
		heading string
		want    HeadingKind
	}{
		{"Baseline Architecture", HeadingBaseline},
		{"As-Is Systems", HeadingBaseline},
		{"As Is Landscape", HeadingBaseline},
		{"Current Applications", HeadingBaseline},
		{"Target Architecture", HeadingTarget},
		{"To-Be Systems", HeadingTarget},
		{"To Be Landscape", HeadingTarget},
		{"Future State", HeadingTarget},
		{"Stakeholders", HeadingNeutral},
		{"", HeadingNeutral},
	}

	for _, tt := range tests {
		if got := ClassifyHeading(tt.heading); got != tt.want {
			t.Errorf("ClassifyHeading(%q): expected %v, got %v", tt.heading, tt.want, got)
		}
	}
}

func TestGapAnalysisLowercasesKeys(t *testing.T) {
	ga := NewGapAnalysis()
	ga.SetOverride("Legacy CRM", StatusRemove)
	ga.MarkBaseline("Mainframe")
	ga.MarkTarget("Cloud ERP")

	if ga.Overrides["legacy crm"] != StatusRemove {
		t.Errorf("expected lowercased override key, got %v", ga.Overrides)
	}
	if !ga.Baseline["mainframe"] {
		t.Errorf("expected lowercased baseline key, got %v", ga.Baseline)
	}
	if !ga.Target["cloud erp"] {
		t.Errorf("expected lowercased target key, got %v", ga.Target)
	}
}

func TestGapAnalysisMarkRouting(t *testing.T) {
	ga := NewGapAnalysis()
	ga.Mark(HeadingBaseline, "Old Portal")
	ga.Mark(HeadingTarget, "New Portal")
	ga.Mark(HeadingNeutral, "Ignored")

	if !ga.Baseline["old portal"] || !ga.Target["new portal"] {
		t.Errorf("expected names routed by heading kind: %v %v", ga.Baseline, ga.Target)
	}
	if len(ga.Baseline) != 1 || len(ga.Target) != 1 {
		t.Errorf("expected neutral names to be dropped, got %v %v", ga.Baseline, ga.Target)
	}
}
