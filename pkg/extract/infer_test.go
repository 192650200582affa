package extract

import (
	"testing"

	"github.com/archmap-labs/archmap/pkg/model"
)

func makePass(elements ...*model.Element) *Pass {
	p := NewPass(Options{})
	p.elements = elements
	return p
}

func TestInferApplicationServesBusiness(t *testing.T) {
	app := &model.Element{ID: "a1", Type: model.ApplicationComponent, Layer: model.LayerApplication, Name: "Order Portal"}
	biz := &model.Element{ID: "b1", Type: model.BusinessProcess, Layer: model.LayerBusiness, Name: "Order Intake"}

	p := makePass(app, biz)
	res := p.Finish()

	if len(res.Relationships) != 1 {
		t.Fatalf("expected 1 inferred relationship, got %d", len(res.Relationships))
	}
	r := res.Relationships[0]
	if r.Type != model.Serving {
		t.Errorf("expected Serving, got %s", r.Type)
	}
	if r.SourceID != "a1" || r.TargetID != "b1" {
		t.Errorf("expected application → business direction, got %s → %s", r.SourceID, r.TargetID)
	}
	if r.Name != "" {
		t.Errorf("expected inferred relationships unnamed, got %q", r.Name)
	}
}

func TestInferTechnologyRealizesApplication(t *testing.T) {
	tech := &model.Element{ID: "t1", Type: model.Node, Layer: model.LayerTechnology, Name: "Billing Platform"}
	app := &model.Element{ID: "a1", Type: model.ApplicationComponent, Layer: model.LayerApplication, Name: "Billing Engine"}

	p := makePass(tech, app)
	res := p.Finish()

	if len(res.Relationships) != 1 {
		t.Fatalf("expected 1 inferred relationship, got %d", len(res.Relationships))
	}
	if res.Relationships[0].Type != model.Realization {
		t.Errorf("expected Realization, got %s", res.Relationships[0].Type)
	}
	if res.Relationships[0].SourceID != "t1" {
		t.Errorf("expected technology as source, got %s", res.Relationships[0].SourceID)
	}
}

func TestInferRequirementInfluencesPrinciple(t *testing.T) {
	req := &model.Element{ID: "r1", Type: model.Requirement, Layer: model.LayerMotivation, Name: "Encryption Required"}
	con := &model.Element{ID: "c1", Type: model.Constraint, Layer: model.LayerMotivation, Name: "Vendor Lock Avoidance"}
	pri := &model.Element{ID: "p1", Type: model.Principle, Layer: model.LayerMotivation, Name: "Standard Encryption Everywhere"}

	p := makePass(req, con, pri)
	res := p.Finish()

	if len(res.Relationships) != 1 {
		t.Fatalf("expected only the overlapping pair linked, got %d", len(res.Relationships))
	}
	r := res.Relationships[0]
	if r.Type != model.Influence || r.SourceID != "r1" || r.TargetID != "p1" {
		t.Errorf("unexpected inference: %s %s → %s", r.Type, r.SourceID, r.TargetID)
	}
}

func TestInferStopWordsAndShortTokens(t *testing.T) {
	app := &model.Element{ID: "a1", Type: model.ApplicationComponent, Layer: model.LayerApplication, Name: "Payment System"}
	biz := &model.Element{ID: "b1", Type: model.BusinessProcess, Layer: model.LayerBusiness, Name: "Billing System"}
	app2 := &model.Element{ID: "a2", Type: model.ApplicationComponent, Layer: model.LayerApplication, Name: "CRM"}
	biz2 := &model.Element{ID: "b2", Type: model.BusinessProcess, Layer: model.LayerBusiness, Name: "CRM Care"}

	p := makePass(app, biz, app2, biz2)
	res := p.Finish()

	if len(res.Relationships) != 0 {
		t.Errorf("expected stop words and short tokens to never link, got %d relationships", len(res.Relationships))
	}
}

func TestInferTokenSplitting(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"Order_Tracking-Service/Core", []string{"order", "tracking", "core"}},
		{"Data Management", nil},
		{"CRM", nil},
	}

	for _, tt := range tests {
		got := nameTokens(tt.name)
		if len(got) != len(tt.want) {
			t.Errorf("nameTokens(%q): expected %d tokens, got %v", tt.name, len(tt.want), got)
			continue
		}
		for _, w := range tt.want {
			if !got[w] {
				t.Errorf("nameTokens(%q): missing token %q in %v", tt.name, w, got)
			}
		}
	}
}

func TestInferSkipsAlreadyRelatedPairs(t *testing.T) {
	app := &model.Element{ID: "a1", Type: model.ApplicationComponent, Layer: model.LayerApplication, Name: "Order Portal"}
	biz := &model.Element{ID: "b1", Type: model.BusinessProcess, Layer: model.LayerBusiness, Name: "Order Intake"}

	p := makePass(app, biz)
	p.relationships = []*model.Relationship{
		{ID: "id-rel-1", Type: model.Association, SourceID: "b1", TargetID: "a1"},
	}
	res := p.Finish()

	if len(res.Relationships) != 1 {
		t.Errorf("expected existing reverse edge to block inference, got %d relationships", len(res.Relationships))
	}
}

func TestInferAcrossDocumentBoundaries(t *testing.T) {
	appDoc := "| Component |\n|---|\n| Claims Portal |"
	bizDoc := "| Process |\n|---|\n| Claims Handling |"

	res := runPass(t,
		[2]string{"application-portfolio.md", appDoc},
		[2]string{"business-processes.md", bizDoc},
	)

	if len(res.Relationships) != 1 {
		t.Fatalf("expected cross-document inference, got %d relationships", len(res.Relationships))
	}
	if res.Relationships[0].Type != model.Serving {
		t.Errorf("expected Serving, got %s", res.Relationships[0].Type)
	}
}
