package model

// Layer identifies one of the six architectural strata a model element
// belongs to. Layers order grouping, layout and serialization, so every
// element carries exactly one.
type Layer string

const (
	LayerMotivation     Layer = "Motivation"
	LayerStrategy       Layer = "Strategy"
	LayerBusiness       Layer = "Business"
	LayerApplication    Layer = "Application"
	LayerTechnology     Layer = "Technology"
	LayerImplementation Layer = "Implementation"
)

// Layers returns all layers in canonical top-to-bottom order. Consumers
// iterate this slice rather than ranging over maps so that generated
// output is stable across runs.
func Layers() []Layer {
	return []Layer{
		LayerMotivation,
		LayerStrategy,
		LayerBusiness,
		LayerApplication,
		LayerTechnology,
		LayerImplementation,
	}
}

// Index returns the position of l in the canonical order. Unknown layers
// sort after all known ones.
func (l Layer) Index() int {
	for i, known := range Layers() {
		if l == known {
			return i
		}
	}
	return len(Layers())
}
