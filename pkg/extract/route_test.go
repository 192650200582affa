package extract

import "testing"

func TestRouteFilenameFamilies(t *testing.T) {
	tests := []struct {
		filename string
		meta     map[string]string
		want     Phase
	}{
		{"stakeholder-map.md", nil, PhaseStakeholders},
		{"principles.md", nil, PhasePrinciples},
		{"it-governance.md", nil, PhaseGovernance},
		// Filename families outrank front matter.
		{"stakeholder-register.md", map[string]string{"togaf_phase": "Phase C"}, PhaseStakeholders},
		{"architecture-principles.md", map[string]string{"togaf_phase": "migration"}, PhasePrinciples},
	}

	for _, tt := range tests {
		if got := Route(tt.filename, tt.meta); got != tt.want {
			t.Errorf("Route(%q, %v): expected %s, got %s", tt.filename, tt.meta, tt.want, got)
		}
	}
}

func TestRouteTogafPhase(t *testing.T) {
	tests := []struct {
		phase string
		want  Phase
	}{
		{"Preliminary", PhasePreliminary},
		{"Architecture Vision", PhaseVision},
		{"Phase A", PhaseVision},
		{"A", PhaseVision},
		{"Phase B", PhaseBusiness},
		{"Business Architecture", PhaseBusiness},
		{"Phase C", PhaseApplication},
		{"Data Architecture", PhaseApplication},
		{"Information Systems", PhaseApplication},
		{"Phase D", PhaseTechnology},
		{"Technology Architecture", PhaseTechnology},
		{"Opportunities and Solutions", PhaseMigration},
		{"Migration Planning", PhaseMigration},
		{"Phase E", PhaseMigration},
		{"Phase F", PhaseMigration},
		{"Requirements Management", PhaseRequirements},
		{"Phase G", PhaseGovernance},
		{"Phase H", PhaseGovernance},
		{"Change Management", PhaseGovernance},
	}

	for _, tt := range tests {
		meta := map[string]string{"togaf_phase": tt.phase}
		if got := Route("doc.md", meta); got != tt.want {
			t.Errorf("togaf_phase %q: expected %s, got %s", tt.phase, tt.want, got)
		}
	}
}

func TestRouteFilenamePrefix(t *testing.T) {
	tests := []struct {
		filename string
		want     Phase
	}{
		{"business-processes.md", PhaseBusiness},
		{"application_portfolio.md", PhaseApplication},
		{"data-entities.md", PhaseApplication},
		{"technology.md", PhaseTechnology},
		{"infrastructure-map.md", PhaseTechnology},
		{"migration-plan.md", PhaseMigration},
		{"roadmap.md", PhaseMigration},
		{"gap-analysis.md", PhaseMigration},
		{"requirements.md", PhaseRequirements},
		{"requirement-catalog.md", PhaseRequirements},
		{"vision.md", PhaseVision},
		{"architecture-overview.md", PhaseVision},
		{"preliminary.md", PhasePreliminary},
		{"strategy-map.md", PhasePreliminary},
		{"notes.md", PhaseGeneric},
		{"README.md", PhaseGeneric},
	}

	for _, tt := range tests {
		if got := Route(tt.filename, nil); got != tt.want {
			t.Errorf("Route(%q): expected %s, got %s", tt.filename, tt.want, got)
		}
	}
}

func TestRoutePhaseBeatsPrefix(t *testing.T) {
	meta := map[string]string{"togaf_phase": "Phase D"}
	if got := Route("business-systems.md", meta); got != PhaseTechnology {
		t.Errorf("expected front matter to outrank the filename prefix, got %s", got)
	}
}

func TestRouteUsesBaseName(t *testing.T) {
	if got := Route("docs/phases/business-capabilities.md", nil); got != PhaseBusiness {
		t.Errorf("expected directory components ignored, got %s", got)
	}
}

func TestLeadingAlpha(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"business-processes.md", "business"},
		{"application_portfolio.md", "application"},
		{"2024-roadmap.md", ""},
		{"vision", "vision"},
	}

	for _, tt := range tests {
		if got := leadingAlpha(tt.in); got != tt.want {
			t.Errorf("leadingAlpha(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
