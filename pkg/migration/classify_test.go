package migration

import (
	"math/rand"
	"testing"

	"github.com/archmap-labs/archmap/pkg/model"
)

func TestDeriveRelationshipStatusGrid(t *testing.T) {
	tests := []struct {
		source, target, want Status
	}{
		{StatusKeep, StatusKeep, StatusKeep},
		{StatusKeep, StatusAdd, StatusAdd},
		{StatusKeep, StatusRemove, StatusRemove},
		{StatusAdd, StatusKeep, StatusAdd},
		{StatusAdd, StatusAdd, StatusAdd},
		{StatusAdd, StatusRemove, StatusRemove},
		{StatusRemove, StatusKeep, StatusRemove},
		{StatusRemove, StatusAdd, StatusRemove},
		{StatusRemove, StatusRemove, StatusRemove},
	}

	for _, tt := range tests {
		if got := DeriveRelationshipStatus(tt.source, tt.target); got != tt.want {
			t.Errorf("derive(%s, %s): expected %s, got %s", tt.source, tt.target, tt.want, got)
		}
	}
}

func TestDeriveRelationshipStatusProperty(t *testing.T) {
	statuses := []Status{StatusKeep, StatusAdd, StatusRemove}
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		source := statuses[rng.Intn(len(statuses))]
		target := statuses[rng.Intn(len(statuses))]
		got := DeriveRelationshipStatus(source, target)

		eitherRemove := source == StatusRemove || target == StatusRemove
		eitherAdd := source == StatusAdd || target == StatusAdd

		switch {
		case eitherRemove:
			if got != StatusRemove {
				t.Fatalf("(%s,%s): expected remove, got %s", source, target, got)
			}
		case eitherAdd:
			if got != StatusAdd {
				t.Fatalf("(%s,%s): expected add, got %s", source, target, got)
			}
		default:
			if got != StatusKeep {
				t.Fatalf("(%s,%s): expected keep, got %s", source, target, got)
			}
		}
	}
}

func TestClassifyOverrideWins(t *testing.T) {
	m := &model.Model{
		Elements: []*model.Element{
			{ID: "e1", Type: model.ApplicationComponent, Name: "Legacy CRM"},
		},
	}
	ga := NewGapAnalysis()
	ga.SetOverride("Legacy CRM", StatusRemove)
	// Conflicting set membership loses to the override.
	ga.MarkTarget("Legacy CRM")

	cls := Classify(m, ga)
	if cls.Elements["e1"] != StatusRemove {
		t.Errorf("expected override to win, got %s", cls.Elements["e1"])
	}
}

func TestClassifySetDerivation(t *testing.T) {
	m := &model.Model{
		Elements: []*model.Element{
			{ID: "base", Type: model.ApplicationComponent, Name: "Mainframe"},
			{ID: "tgt", Type: model.ApplicationComponent, Name: "Cloud ERP"},
			{ID: "both", Type: model.ApplicationComponent, Name: "Portal"},
			{ID: "none", Type: model.ApplicationComponent, Name: "Email"},
		},
	}
	ga := NewGapAnalysis()
	ga.MarkBaseline("Mainframe")
	ga.MarkTarget("Cloud ERP")
	ga.MarkBaseline("Portal")
	ga.MarkTarget("Portal")

	cls := Classify(m, ga)
	if cls.Elements["base"] != StatusRemove {
		t.Errorf("baseline-only: expected remove, got %s", cls.Elements["base"])
	}
	if cls.Elements["tgt"] != StatusAdd {
		t.Errorf("target-only: expected add, got %s", cls.Elements["tgt"])
	}
	if cls.Elements["both"] != StatusKeep {
		t.Errorf("both sets: expected keep, got %s", cls.Elements["both"])
	}
	if cls.Elements["none"] != StatusKeep {
		t.Errorf("neither set: expected keep, got %s", cls.Elements["none"])
	}
}

func TestClassifyPropertyOverridesSets(t *testing.T) {
	m := &model.Model{
		Elements: []*model.Element{
			{
				ID: "e1", Type: model.ApplicationComponent, Name: "Portal",
				Properties: map[string]string{"status": "planned"},
			},
		},
	}
	ga := NewGapAnalysis()
	ga.MarkBaseline("Portal")

	cls := Classify(m, ga)
	if cls.Elements["e1"] != StatusAdd {
		t.Errorf("expected status property to replace set derivation, got %s", cls.Elements["e1"])
	}
}

func TestClassifyPropertyDoesNotOverrideExplicit(t *testing.T) {
	m := &model.Model{
		Elements: []*model.Element{
			{
				ID: "e1", Type: model.ApplicationComponent, Name: "Portal",
				Properties: map[string]string{"status": "planned"},
			},
		},
	}
	ga := NewGapAnalysis()
	ga.SetOverride("Portal", StatusRemove)

	cls := Classify(m, ga)
	if cls.Elements["e1"] != StatusRemove {
		t.Errorf("expected explicit override to stand, got %s", cls.Elements["e1"])
	}
}

func TestClassifyGapAlwaysAdd(t *testing.T) {
	m := &model.Model{
		Elements: []*model.Element{
			{ID: "g1", Type: model.Gap, Name: "API Gateway"},
		},
	}
	ga := NewGapAnalysis()
	ga.SetOverride("API Gateway", StatusRemove)

	cls := Classify(m, ga)
	if cls.Elements["g1"] != StatusAdd {
		t.Errorf("expected Gap element forced to add, got %s", cls.Elements["g1"])
	}
}

func TestClassifyRelationships(t *testing.T) {
	m := &model.Model{
		Elements: []*model.Element{
			{ID: "keep", Type: model.ApplicationComponent, Name: "A"},
			{ID: "add", Type: model.ApplicationComponent, Name: "B", Properties: map[string]string{"status": "new"}},
			{ID: "rm", Type: model.ApplicationComponent, Name: "C", Properties: map[string]string{"status": "retire"}},
		},
		Relationships: []*model.Relationship{
			{ID: "r1", SourceID: "keep", TargetID: "add"},
			{ID: "r2", SourceID: "add", TargetID: "rm"},
			{ID: "r3", SourceID: "keep", TargetID: "keep"},
			{ID: "r4", SourceID: "keep", TargetID: "ghost"},
		},
	}

	cls := Classify(m, NewGapAnalysis())
	if cls.Relationships["r1"] != StatusAdd {
		t.Errorf("r1: expected add, got %s", cls.Relationships["r1"])
	}
	if cls.Relationships["r2"] != StatusRemove {
		t.Errorf("r2: expected remove, got %s", cls.Relationships["r2"])
	}
	if cls.Relationships["r3"] != StatusKeep {
		t.Errorf("r3: expected keep, got %s", cls.Relationships["r3"])
	}
	// Dangling endpoints count as keep.
	if cls.Relationships["r4"] != StatusKeep {
		t.Errorf("r4: expected dangling endpoint to act as keep, got %s", cls.Relationships["r4"])
	}
}

func TestClassifyNilGapAnalysis(t *testing.T) {
	m := &model.Model{
		Elements: []*model.Element{
			{ID: "e1", Type: model.ApplicationComponent, Name: "A"},
			{ID: "g1", Type: model.Gap, Name: "B"},
		},
	}

	cls := Classify(m, nil)
	if cls.Elements["e1"] != StatusKeep {
		t.Errorf("expected keep without signals, got %s", cls.Elements["e1"])
	}
	if cls.Elements["g1"] != StatusAdd {
		t.Errorf("expected Gap add even without signals, got %s", cls.Elements["g1"])
	}
}
