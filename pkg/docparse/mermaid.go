package docparse

import (
	"regexp"
	"strings"
)

// GraphNode is one node of a parsed mermaid flowchart.
type GraphNode struct {
	ID    string
	Label string
	// Subgraph is the name of the enclosing subgraph at the node's
	// first appearance, or "" at top level.
	Subgraph string
}

// GraphEdge is one directed edge of a parsed mermaid flowchart.
// From and To are node ids; Label may be empty.
type GraphEdge struct {
	From  string
	To    string
	Label string
}

// Graph is one parsed mermaid flowchart block.
type Graph struct {
	Nodes []GraphNode
	Edges []GraphEdge
}

var (
	graphHeaderPattern = regexp.MustCompile(`^graph\s+(TD|LR|TB|RL|BT)(\s|$)`)

	// Edge forms, tried in order: A -->|label| B, A -- label --> B, A --> B.
	edgePipeLabelPattern = regexp.MustCompile(`^(.+?)\s*-->\s*\|([^|]*)\|\s*(.+)$`)
	edgeDashLabelPattern = regexp.MustCompile(`^(.+?)\s+--\s+(.+?)\s+-->\s+(.+)$`)
	edgePlainPattern     = regexp.MustCompile(`^(.+?)\s*-->\s*(.+)$`)
)

// MermaidGraphs parses every fenced mermaid flowchart in text. Only
// blocks whose first non-blank line is a graph header with a TD, LR,
// TB, RL or BT direction are considered; other mermaid diagram kinds
// are ignored. Node discovery order is first-seen scanning edges top
// to bottom, then leftover standalone declarations.
func MermaidGraphs(text string) []Graph {
	var graphs []Graph

	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "```mermaid" {
			continue
		}
		var body []string
		j := i + 1
		for ; j < len(lines); j++ {
			if strings.HasPrefix(strings.TrimSpace(lines[j]), "```") {
				break
			}
			body = append(body, lines[j])
		}
		if g, ok := parseGraphBody(body); ok {
			graphs = append(graphs, g)
		}
		i = j
	}
	return graphs
}

// nodeInfo accumulates what the scan learns about one node id.
type nodeInfo struct {
	label    string
	subgraph string
}

func parseGraphBody(lines []string) (Graph, bool) {
	headerSeen := false
	subgraph := ""

	known := make(map[string]*nodeInfo)
	var edges []GraphEdge
	var edgeOrder []string
	var declOrder []string

	// note records one appearance of a node token, keeping the first
	// subgraph and upgrading a bare id label once a decorated form shows.
	note := func(tok string, fromEdge bool) string {
		id, label := parseNodeToken(tok)
		if id == "" {
			return ""
		}
		info, ok := known[id]
		if !ok {
			info = &nodeInfo{label: label, subgraph: subgraph}
			known[id] = info
		} else if info.label == id && label != id {
			info.label = label
		}
		if fromEdge {
			if !containsString(edgeOrder, id) {
				edgeOrder = append(edgeOrder, id)
			}
		} else if !containsString(declOrder, id) {
			declOrder = append(declOrder, id)
		}
		return id
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "%%") {
			continue
		}
		if !headerSeen {
			if !graphHeaderPattern.MatchString(line) {
				return Graph{}, false
			}
			headerSeen = true
			continue
		}

		if rest, ok := strings.CutPrefix(line, "subgraph"); ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t') {
			subgraph = stripQuotes(strings.TrimSpace(rest))
			continue
		}
		if line == "end" {
			subgraph = ""
			continue
		}

		if from, to, label, ok := parseEdgeLine(line); ok {
			fromID := note(from, true)
			toID := note(to, true)
			if fromID != "" && toID != "" {
				edges = append(edges, GraphEdge{From: fromID, To: toID, Label: label})
			}
			continue
		}

		if strings.ContainsAny(line, "[({") {
			note(line, false)
		}
	}

	if !headerSeen {
		return Graph{}, false
	}

	g := Graph{Edges: edges}
	for _, id := range edgeOrder {
		info := known[id]
		g.Nodes = append(g.Nodes, GraphNode{ID: id, Label: info.label, Subgraph: info.subgraph})
	}
	for _, id := range declOrder {
		if containsString(edgeOrder, id) {
			continue
		}
		info := known[id]
		g.Nodes = append(g.Nodes, GraphNode{ID: id, Label: info.label, Subgraph: info.subgraph})
	}
	return g, true
}

// parseEdgeLine matches the three supported edge forms and returns the
// raw endpoint tokens plus the optional label.
func parseEdgeLine(line string) (from, to, label string, ok bool) {
	if m := edgePipeLabelPattern.FindStringSubmatch(line); m != nil {
		return m[1], m[3], strings.TrimSpace(m[2]), true
	}
	if m := edgeDashLabelPattern.FindStringSubmatch(line); m != nil {
		return m[1], m[3], strings.TrimSpace(m[2]), true
	}
	if m := edgePlainPattern.FindStringSubmatch(line); m != nil {
		return m[1], m[2], "", true
	}
	return "", "", "", false
}

// parseNodeToken splits a node token into id and label. Decorations
// id[Text], id("Text") and id{Text} carry the label; a plain id labels
// itself.
func parseNodeToken(tok string) (id, label string) {
	tok = strings.TrimSpace(tok)
	for i, r := range tok {
		var closer byte
		switch r {
		case '[':
			closer = ']'
		case '(':
			closer = ')'
		case '{':
			closer = '}'
		default:
			continue
		}
		j := strings.LastIndexByte(tok, closer)
		if j <= i {
			break
		}
		id = strings.TrimSpace(tok[:i])
		label = stripQuotes(strings.TrimSpace(tok[i+1 : j]))
		if label == "" {
			label = id
		}
		return id, label
	}
	return tok, tok
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
