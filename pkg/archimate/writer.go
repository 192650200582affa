// Package archimate serializes a model into the ArchiMate 3.0 Open
// Exchange XML format understood by Archi and other enterprise
// architecture tools.
//
// The writer is hand-built rather than encoding/xml based: the
// exchange schema cares about element order and attribute spelling,
// and emitting lines directly keeps the output byte-stable across
// runs, which the export pipeline relies on.
package archimate

import (
	"bytes"
	"errors"
	"sort"
	"strconv"

	"github.com/archmap-labs/archmap/pkg/model"
)

// ErrNilModel is returned by Write when the model reference is nil.
var ErrNilModel = errors.New("archimate: nil model")

const (
	xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>`

	modelOpenTag = `<model xmlns="http://www.opengroup.org/xsd/archimate/3.0/"` +
		` xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"` +
		` xsi:schemaLocation="http://www.opengroup.org/xsd/archimate/3.0/` +
		` http://www.opengroup.org/xsd/archimate/3.0/archimate3_Diagram.xsd"` +
		` identifier="id-model">`

	indentSize = 2
)

// Write renders the model as a complete exchange document. The only
// error condition is a nil model; data-quality problems such as
// relationships with unresolved endpoints degrade silently by
// omission.
func Write(m *model.Model) (string, error) {
	if m == nil {
		return "", ErrNilModel
	}

	p := &printer{}
	p.line(xmlHeader)
	p.open(modelOpenTag)
	p.line(`<name xml:lang="en">` + xmlEscape(m.Name) + `</name>`)
	if m.Documentation != "" {
		p.line(`<documentation>` + xmlEscape(m.Documentation) + `</documentation>`)
	}

	propIDs := collectPropertyDefs(m)
	writeElements(p, m, propIDs)
	writeRelationships(p, m)
	writePropertyDefs(p, propIDs)
	writeViews(p, m)

	p.close("model")
	return p.String(), nil
}

// propertyDefs maps each property key to its definition id, keeping
// the order keys were first seen while walking elements.
type propertyDefs struct {
	order []string
	ids   map[string]string
}

// collectPropertyDefs assigns propid-1, propid-2, ... across the union
// of property keys. Elements are walked in model order; keys within
// one element are visited sorted so the assignment is deterministic.
func collectPropertyDefs(m *model.Model) *propertyDefs {
	defs := &propertyDefs{ids: make(map[string]string)}
	for _, e := range m.Elements {
		for _, k := range sortedKeys(e.Properties) {
			if _, ok := defs.ids[k]; ok {
				continue
			}
			defs.ids[k] = "propid-" + strconv.Itoa(len(defs.order)+1)
			defs.order = append(defs.order, k)
		}
	}
	return defs
}

func writeElements(p *printer, m *model.Model, defs *propertyDefs) {
	p.open(`<elements>`)
	for _, e := range m.Elements {
		p.open(`<element identifier="` + e.ID + `" xsi:type="` + string(e.Type) + `">`)
		p.line(`<name xml:lang="en">` + xmlEscape(e.Name) + `</name>`)
		if e.Documentation != "" {
			p.line(`<documentation>` + xmlEscape(e.Documentation) + `</documentation>`)
		}
		if len(e.Properties) > 0 {
			p.open(`<properties>`)
			for _, k := range sortedKeys(e.Properties) {
				p.open(`<property propertyDefinitionRef="` + defs.ids[k] + `">`)
				p.line(`<value xml:lang="en">` + xmlEscape(e.Properties[k]) + `</value>`)
				p.close("property")
			}
			p.close("properties")
		}
		p.close("element")
	}
	p.close("elements")
}

// writeRelationships skips relationships whose endpoints do not both
// resolve in the element set.
func writeRelationships(p *printer, m *model.Model) {
	idx := m.ElementIndex()
	p.open(`<relationships>`)
	for _, r := range m.Relationships {
		if idx[r.SourceID] == nil || idx[r.TargetID] == nil {
			continue
		}
		attrs := `<relationship identifier="` + r.ID +
			`" source="` + r.SourceID +
			`" target="` + r.TargetID +
			`" xsi:type="` + string(r.Type) + `"`
		if r.Name == "" {
			p.line(attrs + `/>`)
			continue
		}
		p.open(attrs + `>`)
		p.line(`<name xml:lang="en">` + xmlEscape(r.Name) + `</name>`)
		p.close("relationship")
	}
	p.close("relationships")
}

func writePropertyDefs(p *printer, defs *propertyDefs) {
	if len(defs.order) == 0 {
		return
	}
	p.open(`<propertyDefinitions>`)
	for _, k := range defs.order {
		p.open(`<propertyDefinition identifier="` + defs.ids[k] + `" type="string">`)
		p.line(`<name>` + xmlEscape(k) + `</name>`)
		p.close("propertyDefinition")
	}
	p.close("propertyDefinitions")
}

func writeViews(p *printer, m *model.Model) {
	if len(m.Views) == 0 {
		return
	}
	p.open(`<views>`)
	p.open(`<diagrams>`)
	for _, v := range m.Views {
		p.open(`<view identifier="` + v.ID + `" xsi:type="Diagram">`)
		p.line(`<name xml:lang="en">` + xmlEscape(v.Name) + `</name>`)
		for _, n := range v.Nodes {
			p.line(`<node identifier="vn-` + n.ElementID +
				`" elementRef="` + n.ElementID +
				`" xsi:type="Element"` +
				` x="` + strconv.Itoa(n.X) +
				`" y="` + strconv.Itoa(n.Y) +
				`" w="` + strconv.Itoa(n.W) +
				`" h="` + strconv.Itoa(n.H) + `"/>`)
		}
		for _, c := range v.Connections {
			p.line(`<connection identifier="vc-` + c.RelationshipID +
				`" relationshipRef="` + c.RelationshipID +
				`" xsi:type="Relationship"` +
				` source="vn-` + c.SourceID +
				`" target="vn-` + c.TargetID + `"/>`)
		}
		p.close("view")
	}
	p.close("diagrams")
	p.close("views")
}

func sortedKeys(props map[string]string) []string {
	if len(props) == 0 {
		return nil
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
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
