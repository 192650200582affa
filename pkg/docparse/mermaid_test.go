package docparse

import "testing"

func TestMermaidGraphsBasic(t *testing.T) {
	text := "```mermaid\ngraph TD\n  A --> B\n  B --> C\n```\n"

	graphs := MermaidGraphs(text)
	if len(graphs) != 1 {
		t.Fatalf("expected 1 graph, got %d", len(graphs))
	}

	g := graphs[0]
	if len(g.Nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(g.Nodes))
	}
	wantOrder := []string{"A", "B", "C"}
	for i, id := range wantOrder {
		if g.Nodes[i].ID != id {
			t.Errorf("node %d: expected %q, got %q", i, id, g.Nodes[i].ID)
		}
	}
	if len(g.Edges) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(g.Edges))
	}
	if g.Edges[0].From != "A" || g.Edges[0].To != "B" {
		t.Errorf("unexpected first edge: %+v", g.Edges[0])
	}
}

func TestMermaidGraphsLabels(t *testing.T) {
	text := "```mermaid\ngraph LR\n  A[Order Intake] -->|sends| B(\"Billing\")\n  C -- feeds --> D{Decision}\n```\n"

	graphs := MermaidGraphs(text)
	if len(graphs) != 1 {
		t.Fatalf("expected 1 graph, got %d", len(graphs))
	}

	g := graphs[0]
	byID := map[string]GraphNode{}
	for _, n := range g.Nodes {
		byID[n.ID] = n
	}

	if byID["A"].Label != "Order Intake" {
		t.Errorf("expected bracket label, got %q", byID["A"].Label)
	}
	if byID["B"].Label != "Billing" {
		t.Errorf("expected quotes stripped from label, got %q", byID["B"].Label)
	}
	if byID["D"].Label != "Decision" {
		t.Errorf("expected brace label, got %q", byID["D"].Label)
	}
	if byID["C"].Label != "C" {
		t.Errorf("expected plain node to label itself, got %q", byID["C"].Label)
	}

	if g.Edges[0].Label != "sends" {
		t.Errorf("expected pipe label 'sends', got %q", g.Edges[0].Label)
	}
	if g.Edges[1].Label != "feeds" {
		t.Errorf("expected dash label 'feeds', got %q", g.Edges[1].Label)
	}
}

func TestMermaidGraphsSubgraph(t *testing.T) {
	text := "```mermaid\ngraph TD\n  subgraph Core Systems\n  A[CRM] --> B[ERP]\n  end\n  B --> C[Portal]\n```\n"

	graphs := MermaidGraphs(text)
	if len(graphs) != 1 {
		t.Fatalf("expected 1 graph, got %d", len(graphs))
	}

	g := graphs[0]
	byID := map[string]GraphNode{}
	for _, n := range g.Nodes {
		byID[n.ID] = n
	}

	if byID["A"].Subgraph != "Core Systems" {
		t.Errorf("expected A in 'Core Systems', got %q", byID["A"].Subgraph)
	}
	if byID["B"].Subgraph != "Core Systems" {
		t.Errorf("expected B tagged at first appearance, got %q", byID["B"].Subgraph)
	}
	if byID["C"].Subgraph != "" {
		t.Errorf("expected C at top level, got %q", byID["C"].Subgraph)
	}
}

func TestMermaidGraphsStandaloneDeclarations(t *testing.T) {
	text := "```mermaid\ngraph TD\n  Z[\"Standalone\"]\n  A --> B\n  A[Later Label]\n```\n"

	graphs := MermaidGraphs(text)
	if len(graphs) != 1 {
		t.Fatalf("expected 1 graph, got %d", len(graphs))
	}

	g := graphs[0]
	if len(g.Nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(g.Nodes))
	}
	// Edge endpoints first, leftover declarations after.
	if g.Nodes[0].ID != "A" || g.Nodes[1].ID != "B" || g.Nodes[2].ID != "Z" {
		t.Errorf("unexpected order: %q %q %q", g.Nodes[0].ID, g.Nodes[1].ID, g.Nodes[2].ID)
	}
	if g.Nodes[0].Label != "Later Label" {
		t.Errorf("expected declaration to supply A's label, got %q", g.Nodes[0].Label)
	}
	if g.Nodes[2].Label != "Standalone" {
		t.Errorf("expected quoted label stripped, got %q", g.Nodes[2].Label)
	}
}

func TestMermaidGraphsIgnoresOtherDiagrams(t *testing.T) {
	text := "```mermaid\nsequenceDiagram\n  A->>B: hi\n```\n\n```mermaid\ngraph XX\n  A --> B\n```\n"

	if graphs := MermaidGraphs(text); len(graphs) != 0 {
		t.Errorf("expected non-flowchart blocks to be ignored, got %d graphs", len(graphs))
	}
}

func TestMermaidGraphsIgnoresPlainFences(t *testing.T) {
	text := "```\ngraph TD\n  A --> B\n```\n"

	if graphs := MermaidGraphs(text); len(graphs) != 0 {
		t.Errorf("expected unlabeled fence to be ignored, got %d graphs", len(graphs))
	}
}

func TestMermaidGraphsDirectionVariants(t *testing.T) {
	for _, dir := range []string{"TD", "LR", "TB", "RL", "BT"} {
		text := "```mermaid\ngraph " + dir + "\n  A --> B\n```\n"
		if graphs := MermaidGraphs(text); len(graphs) != 1 {
			t.Errorf("direction %s: expected 1 graph, got %d", dir, len(graphs))
		}
	}
}
