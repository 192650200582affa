package model

// ElementType identifies the kind of an architecture element. The
// vocabulary follows ArchiMate 3.x, restricted to the kinds the
// extractors produce. Values are the exact xsi:type strings of the
// Open Exchange format.
type ElementType string

// Motivation layer kinds.
const (
	Stakeholder ElementType = "Stakeholder"
	Driver      ElementType = "Driver"
	Assessment  ElementType = "Assessment"
	Goal        ElementType = "Goal"
	Outcome     ElementType = "Outcome"
	Principle   ElementType = "Principle"
	Requirement ElementType = "Requirement"
	Constraint  ElementType = "Constraint"
	Meaning     ElementType = "Meaning"
	Value       ElementType = "Value"
)

// Strategy layer kinds.
const (
	Resource       ElementType = "Resource"
	Capability     ElementType = "Capability"
	CourseOfAction ElementType = "CourseOfAction"
	ValueStream    ElementType = "ValueStream"
)

// Business layer kinds.
const (
	BusinessActor         ElementType = "BusinessActor"
	BusinessRole          ElementType = "BusinessRole"
	BusinessCollaboration ElementType = "BusinessCollaboration"
	BusinessProcess       ElementType = "BusinessProcess"
	BusinessFunction      ElementType = "BusinessFunction"
	BusinessService       ElementType = "BusinessService"
	BusinessObject        ElementType = "BusinessObject"
	Contract              ElementType = "Contract"
	Product               ElementType = "Product"
)

// Application layer kinds.
const (
	ApplicationComponent     ElementType = "ApplicationComponent"
	ApplicationCollaboration ElementType = "ApplicationCollaboration"
	ApplicationInterface     ElementType = "ApplicationInterface"
	ApplicationService       ElementType = "ApplicationService"
	ApplicationProcess       ElementType = "ApplicationProcess"
	DataObject               ElementType = "DataObject"
)

// Technology layer kinds.
const (
	Node                 ElementType = "Node"
	Device               ElementType = "Device"
	SystemSoftware       ElementType = "SystemSoftware"
	TechnologyService    ElementType = "TechnologyService"
	Artifact             ElementType = "Artifact"
	CommunicationNetwork ElementType = "CommunicationNetwork"
)

// Implementation & Migration layer kinds.
const (
	WorkPackage         ElementType = "WorkPackage"
	Deliverable         ElementType = "Deliverable"
	ImplementationEvent ElementType = "ImplementationEvent"
	Plateau             ElementType = "Plateau"
	Gap                 ElementType = "Gap"
)

var elementLayers = map[ElementType]Layer{
	Stakeholder: LayerMotivation,
	Driver:      LayerMotivation,
	Assessment:  LayerMotivation,
	Goal:        LayerMotivation,
	Outcome:     LayerMotivation,
	Principle:   LayerMotivation,
	Requirement: LayerMotivation,
	Constraint:  LayerMotivation,
	Meaning:     LayerMotivation,
	Value:       LayerMotivation,

	Resource:       LayerStrategy,
	Capability:     LayerStrategy,
	CourseOfAction: LayerStrategy,
	ValueStream:    LayerStrategy,

	BusinessActor:         LayerBusiness,
	BusinessRole:          LayerBusiness,
	BusinessCollaboration: LayerBusiness,
	BusinessProcess:       LayerBusiness,
	BusinessFunction:      LayerBusiness,
	BusinessService:       LayerBusiness,
	BusinessObject:        LayerBusiness,
	Contract:              LayerBusiness,
	Product:               LayerBusiness,

	ApplicationComponent:     LayerApplication,
	ApplicationCollaboration: LayerApplication,
	ApplicationInterface:     LayerApplication,
	ApplicationService:       LayerApplication,
	ApplicationProcess:       LayerApplication,
	DataObject:               LayerApplication,

	Node:                 LayerTechnology,
	Device:               LayerTechnology,
	SystemSoftware:       LayerTechnology,
	TechnologyService:    LayerTechnology,
	Artifact:             LayerTechnology,
	CommunicationNetwork: LayerTechnology,

	WorkPackage:         LayerImplementation,
	Deliverable:         LayerImplementation,
	ImplementationEvent: LayerImplementation,
	Plateau:             LayerImplementation,
	Gap:                 LayerImplementation,
}

// LayerOf returns the layer an element type belongs to. Unknown types
// fall back to the Application layer so that ad hoc kinds still land
// somewhere visible rather than vanishing from layered output.
func LayerOf(t ElementType) Layer {
	if l, ok := elementLayers[t]; ok {
		return l
	}
	return LayerApplication
}

// RelationshipType identifies the kind of a directed edge between two
// elements. Values are the exact xsi:type strings of the Open Exchange
// format.
type RelationshipType string

// Relationship kinds.
const (
	Composition    RelationshipType = "Composition"
	Aggregation    RelationshipType = "Aggregation"
	Assignment     RelationshipType = "Assignment"
	Realization    RelationshipType = "Realization"
	Serving        RelationshipType = "Serving"
	Access         RelationshipType = "Access"
	Influence      RelationshipType = "Influence"
	Triggering     RelationshipType = "Triggering"
	Flow           RelationshipType = "Flow"
	Specialization RelationshipType = "Specialization"
	Association    RelationshipType = "Association"
)
