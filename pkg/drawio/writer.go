// Package drawio serializes views into draw.io / diagrams.net mxfile
// XML. Each page holds one laid-out view; swimlane views render their
// lanes as container cells with lane-relative child geometry.
//
// Cell identifiers come from a single counter shared across all pages
// of one document, so ids never collide when pages are merged or
// copied between files.
package drawio

import (
	"bytes"
	"errors"
	"strconv"

	"github.com/archmap-labs/archmap/pkg/migration"
	"github.com/archmap-labs/archmap/pkg/model"
)

// ErrNilModel is returned by Write when the model reference is nil.
var ErrNilModel = errors.New("drawio: nil model")

const (
	xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>`

	// No modified timestamp or etag: output must be byte-stable for
	// identical input.
	mxfileOpenTag = `<mxfile host="archmap" version="1.0" type="device">`

	minPageW = 800
	minPageH = 600

	indentSize = 2
)

// Cell styles. Node fills follow the draw.io default palette: blue for
// kept elements, green for additions, red with muted text for
// removals.
const (
	laneStyle = `swimlane;horizontal=1;startSize=30;fillColor=#f5f5f5;` +
		`strokeColor=#666666;fontSize=13;fontStyle=1`

	nodeBaseStyle   = `rounded=1;whiteSpace=wrap;html=1`
	keepNodeStyle   = nodeBaseStyle + `;fillColor=#dae8fc;strokeColor=#6c8ebf`
	addNodeStyle    = nodeBaseStyle + `;fillColor=#d5e8d4;strokeColor=#82b366`
	removeNodeStyle = nodeBaseStyle + `;fillColor=#f8cecc;strokeColor=#b85450;fontColor=#333333`

	edgeBaseStyle    = `edgeStyle=orthogonalEdgeStyle;rounded=0;html=1`
	removedEdgeStyle = edgeBaseStyle + `;dashed=1`
)

// Page pairs a laid-out view with the tab name it renders under.
type Page struct {
	Name string
	View *model.View
}

// Write renders the pages as one mxfile document. A nil classification
// styles everything as kept. An empty page list still produces a valid
// file with zero diagrams; the only error is a nil model.
func Write(m *model.Model, cls *migration.Classification, pages []Page) (string, error) {
	if m == nil {
		return "", ErrNilModel
	}

	p := &printer{}
	p.line(xmlHeader)
	p.open(mxfileOpenTag)

	ids := &cellIDs{next: 2}
	elems := m.ElementIndex()
	rels := relationshipIndex(m)
	for i, page := range pages {
		writePage(p, page, i+1, ids, elems, rels, cls)
	}

	p.close("mxfile")
	return p.String(), nil
}

// cellIDs hands out content cell ids. Ids "0" and "1" are reserved for
// the bootstrap cells every page carries, so the counter starts at 2.
type cellIDs struct {
	next int
}

func (c *cellIDs) take() string {
	id := strconv.Itoa(c.next)
	c.next++
	return id
}

func writePage(p *printer, page Page, n int, ids *cellIDs, elems map[string]*model.Element, rels map[string]*model.Relationship, cls *migration.Classification) {
	p.open(`<diagram id="page-` + strconv.Itoa(n) + `" name="` + xmlEscape(page.Name) + `">`)

	pw, ph := minPageW, minPageH
	if page.View != nil {
		if page.View.Width > pw {
			pw = page.View.Width
		}
		if page.View.Height > ph {
			ph = page.View.Height
		}
	}
	p.open(`<mxGraphModel dx="800" dy="600" grid="1" gridSize="10" guides="1"` +
		` tooltips="1" connect="1" arrows="1" fold="1" page="1" pageScale="1"` +
		` pageWidth="` + strconv.Itoa(pw) + `" pageHeight="` + strconv.Itoa(ph) +
		`" math="0" shadow="0">`)
	p.open(`<root>`)
	p.line(`<mxCell id="0"/>`)
	p.line(`<mxCell id="1" parent="0"/>`)

	if page.View != nil {
		writeViewCells(p, page.View, ids, elems, rels, cls)
	}

	p.close("root")
	p.close("mxGraphModel")
	p.close("diagram")
}

func writeViewCells(p *printer, v *model.View, ids *cellIDs, elems map[string]*model.Element, rels map[string]*model.Relationship, cls *migration.Classification) {
	laneCell := make(map[model.Layer]string, len(v.Lanes))
	laneGeom := make(map[model.Layer]model.Lane, len(v.Lanes))
	for _, l := range v.Lanes {
		id := ids.take()
		laneCell[l.Layer] = id
		laneGeom[l.Layer] = l
		p.open(`<mxCell id="` + id + `" value="` + xmlEscape(l.Label) +
			`" style="` + laneStyle + `" vertex="1" parent="1">`)
		p.line(geometry(l.X, l.Y, l.W, l.H))
		p.close("mxCell")
	}

	nodeCell := make(map[string]string, len(v.Nodes))
	for _, n := range v.Nodes {
		e := elems[n.ElementID]
		if e == nil {
			continue
		}
		id := ids.take()
		nodeCell[n.ElementID] = id

		parent := "1"
		x, y := n.X, n.Y
		if laneID, ok := laneCell[e.Layer]; ok {
			parent = laneID
			lane := laneGeom[e.Layer]
			x -= lane.X
			y -= lane.Y
		}

		p.open(`<mxCell id="` + id + `" value="` + xmlEscape(e.Name) +
			`" style="` + nodeStyle(elementStatus(cls, e.ID)) +
			`" vertex="1" parent="` + parent + `">`)
		p.line(geometry(x, y, n.W, n.H))
		p.close("mxCell")
	}

	for _, c := range v.Connections {
		src, srcOK := nodeCell[c.SourceID]
		dst, dstOK := nodeCell[c.TargetID]
		if !srcOK || !dstOK {
			continue
		}
		id := ids.take()

		style := edgeBaseStyle
		if relationshipStatus(cls, c.RelationshipID) == migration.StatusRemove {
			style = removedEdgeStyle
		}
		value := ""
		if r := rels[c.RelationshipID]; r != nil && r.Name != "" {
			value = ` value="` + xmlEscape(r.Name) + `"`
		}

		p.open(`<mxCell id="` + id + `"` + value + ` style="` + style +
			`" edge="1" parent="1" source="` + src + `" target="` + dst + `">`)
		p.line(`<mxGeometry relative="1" as="geometry"/>`)
		p.close("mxCell")
	}
}

func nodeStyle(status migration.Status) string {
	switch status {
	case migration.StatusAdd:
		return addNodeStyle
	case migration.StatusRemove:
		return removeNodeStyle
	}
	return keepNodeStyle
}

func elementStatus(cls *migration.Classification, id string) migration.Status {
	if cls == nil {
		return migration.StatusKeep
	}
	if s, ok := cls.Elements[id]; ok {
		return s
	}
	return migration.StatusKeep
}

func relationshipStatus(cls *migration.Classification, id string) migration.Status {
	if cls == nil {
		return migration.StatusKeep
	}
	if s, ok := cls.Relationships[id]; ok {
		return s
	}
	return migration.StatusKeep
}

func relationshipIndex(m *model.Model) map[string]*model.Relationship {
	idx := make(map[string]*model.Relationship, len(m.Relationships))
	for _, r := range m.Relationships {
		idx[r.ID] = r
	}
	return idx
}

func geometry(x, y, w, h int) string {
	return `<mxGeometry x="` + strconv.Itoa(x) + `" y="` + strconv.Itoa(y) +
		`" width="` + strconv.Itoa(w) + `" height="` + strconv.Itoa(h) +
		`" as="geometry"/>`
}

// printer emits one indented line at a time into a buffer.
type printer struct {
	output bytes.Buffer
	depth  int
}

func (p *printer) line(s string) {
	for i := 0; i < p.depth*indentSize; i++ {
		p.output.WriteByte(' ')
	}
	p.output.WriteString(s)
	p.output.WriteByte('\n')
}

func (p *printer) open(tag string) {
	p.line(tag)
	p.depth++
}

func (p *printer) close(name string) {
	if p.depth > 0 {
		p.depth--
	}
	p.line("</" + name + ">")
}

// String returns the document accumulated so far.
func (p *printer) String() string {
	return p.output.String()
}
