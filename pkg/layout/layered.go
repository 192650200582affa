package layout

import "github.com/archmap-labs/archmap/pkg/model"

// Layered places the whole model on one page: one row per non-empty
// layer in canonical order, elements left to right in extraction
// order.
func Layered(m *model.Model, gen *model.IDGenerator) *model.View {
	v := &model.View{
		ID:        gen.Next(model.CategoryView),
		Name:      "Layered Overview",
		Viewpoint: "Layered",
	}

	y := Margin
	for _, layer := range model.Layers() {
		elems := m.ElementsInLayer(layer)
		if len(elems) == 0 {
			continue
		}
		for i, e := range elems {
			v.Nodes = append(v.Nodes, model.ViewNode{
				ElementID: e.ID,
				X:         Margin + i*(ElementW+HGap),
				Y:         y,
				W:         ElementW,
				H:         ElementH,
			})
		}
		y += ElementH + VGap
	}

	v.Connections = connectionsFor(m, v.Nodes)
	finishView(v)
	return v
}
