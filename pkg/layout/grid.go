package layout

import (
	"github.com/archmap-labs/archmap/pkg/migration"
	"github.com/archmap-labs/archmap/pkg/model"
)

// Swimlanes places the classified model into one horizontal lane per
// non-empty layer. Filtering happens before layout, so excluded
// elements never occupy grid space, and layers left empty by the
// filter are omitted entirely.
func Swimlanes(m *model.Model, cls *migration.Classification, mode Mode, gen *model.IDGenerator) *model.View {
	v := &model.View{
		ID:        gen.Next(model.CategoryView),
		Name:      mode.Label() + " Architecture",
		Viewpoint: string(mode),
	}

	laneW := MaxGridCols*SwimlaneCellW + 2*SwimlanePad
	y := Margin

	for _, layer := range model.Layers() {
		var elems []*model.Element
		for _, e := range m.ElementsInLayer(layer) {
			if mode.includes(cls.Elements[e.ID]) {
				elems = append(elems, e)
			}
		}
		if len(elems) == 0 {
			continue
		}

		cols := min(MaxGridCols, len(elems))
		rows := (len(elems) + cols - 1) / cols

		laneH := rows*SwimlaneCellH + SwimlaneStartSize + SwimlanePad
		v.Lanes = append(v.Lanes, model.Lane{
			Layer: layer,
			Label: string(layer),
			X:     Margin,
			Y:     y,
			W:     laneW,
			H:     laneH,
		})

		placeGrid(v, elems, Margin+SwimlanePad, y+SwimlaneStartSize, cols)
		y += laneH + VGap
	}

	v.Connections = connectionsFor(m, v.Nodes)
	finishView(v)
	return v
}

// LayerGrid places one layer's elements into the 5-column grid with no
// lane container.
func LayerGrid(m *model.Model, layer model.Layer, gen *model.IDGenerator) *model.View {
	v := &model.View{
		ID:        gen.Next(model.CategoryView),
		Name:      string(layer) + " Layer",
		Viewpoint: string(layer),
	}

	elems := m.ElementsInLayer(layer)
	if len(elems) > 0 {
		cols := min(MaxGridCols, len(elems))
		placeGrid(v, elems, Margin, Margin, cols)
	}

	v.Connections = connectionsFor(m, v.Nodes)
	finishView(v)
	return v
}

// placeGrid fills rows of cols cells from (originX, originY), centering
// each element in its cell.
func placeGrid(v *model.View, elems []*model.Element, originX, originY, cols int) {
	for i, e := range elems {
		col := i % cols
		row := i / cols
		v.Nodes = append(v.Nodes, model.ViewNode{
			ElementID: e.ID,
			X:         originX + col*SwimlaneCellW + (SwimlaneCellW-ElementW)/2,
			Y:         originY + row*SwimlaneCellH + (SwimlaneCellH-ElementH)/2,
			W:         ElementW,
			H:         ElementH,
		})
	}
}
