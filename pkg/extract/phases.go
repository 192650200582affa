package extract

import "github.com/archmap-labs/archmap/pkg/model"

// rowKind maps a set of name-column synonyms to the element type rows
// matching that column produce. Kinds are checked in listed order per
// row; the first synonym column holding a non-empty cell wins.
type rowKind struct {
	nameColumns []string
	elemType    model.ElementType
	// props are fixed properties stamped on every matching row.
	props map[string]string
}

// extractorSpec describes one phase extractor: its table row kinds and
// the defaults applied to mermaid flowchart content.
type extractorSpec struct {
	rowKinds []rowKind
	// nodeType is the element type given to flowchart nodes.
	nodeType model.ElementType
	// edgeType is the relationship type given to flowchart edges.
	edgeType model.RelationshipType
}

// Column synonym sets shared by every extractor.
var (
	baselineColumns = []string{"baseline", "as-is", "current", "current state"}
	targetColumns   = []string{"target", "to-be", "future", "target state"}
	gapColumns      = []string{"gap", "gaps", "difference"}
	statusColumns   = []string{"status", "lifecycle", "state", "disposition"}

	documentationColumns = []string{
		"description", "purpose", "documentation", "details",
		"notes", "definition", "statement", "concern",
	}
)

var phaseSpecs = map[Phase]extractorSpec{
	PhasePreliminary: {
		rowKinds: []rowKind{
			{nameColumns: []string{"principle"}, elemType: model.Principle},
			{nameColumns: []string{"capability"}, elemType: model.Capability},
			{nameColumns: []string{"resource"}, elemType: model.Resource},
			{nameColumns: []string{"goal", "objective"}, elemType: model.Goal},
		},
		nodeType: model.Capability,
		edgeType: model.Flow,
	},
	PhaseVision: {
		rowKinds: []rowKind{
			{nameColumns: []string{"stakeholder"}, elemType: model.Stakeholder},
			{nameColumns: []string{"goal", "objective"}, elemType: model.Goal},
			{nameColumns: []string{"driver"}, elemType: model.Driver},
			{nameColumns: []string{"capability"}, elemType: model.Capability},
			{nameColumns: []string{"value stream"}, elemType: model.ValueStream},
			{nameColumns: []string{"outcome"}, elemType: model.Outcome},
		},
		nodeType: model.Capability,
		edgeType: model.Flow,
	},
	PhaseBusiness: {
		rowKinds: []rowKind{
			{nameColumns: []string{"process", "business process"}, elemType: model.BusinessProcess},
			{nameColumns: []string{"actor", "business actor"}, elemType: model.BusinessActor},
			{nameColumns: []string{"role"}, elemType: model.BusinessRole},
			{nameColumns: []string{"function", "business function"}, elemType: model.BusinessFunction},
			{nameColumns: []string{"service", "business service"}, elemType: model.BusinessService},
			{nameColumns: []string{"object", "business object", "entity"}, elemType: model.BusinessObject},
			{nameColumns: []string{"product"}, elemType: model.Product},
		},
		nodeType: model.BusinessProcess,
		edgeType: model.Triggering,
	},
	PhaseApplication: {
		rowKinds: []rowKind{
			{nameColumns: []string{"component", "application", "service", "system", "app"}, elemType: model.ApplicationComponent},
			{nameColumns: []string{"interface"}, elemType: model.ApplicationInterface},
			{nameColumns: []string{"data object", "data entity", "dataset"}, elemType: model.DataObject},
		},
		nodeType: model.ApplicationComponent,
		edgeType: model.Flow,
	},
	PhaseTechnology: {
		rowKinds: []rowKind{
			{nameColumns: []string{"node", "server", "host"}, elemType: model.Node},
			{nameColumns: []string{"device"}, elemType: model.Device},
			{nameColumns: []string{"software", "system software", "platform"}, elemType: model.SystemSoftware},
			{nameColumns: []string{"technology service", "infrastructure service"}, elemType: model.TechnologyService},
			{nameColumns: []string{"artifact", "artefact"}, elemType: model.Artifact},
			{nameColumns: []string{"network"}, elemType: model.CommunicationNetwork},
			{nameColumns: []string{"technology", "infrastructure"}, elemType: model.Node},
		},
		nodeType: model.Node,
		edgeType: model.Flow,
	},
	PhaseMigration: {
		rowKinds: []rowKind{
			{nameColumns: []string{"work package", "workpackage", "initiative", "project"}, elemType: model.WorkPackage},
			{nameColumns: []string{"deliverable"}, elemType: model.Deliverable},
			{nameColumns: []string{"plateau", "phase"}, elemType: model.Plateau},
			{nameColumns: []string{"event"}, elemType: model.ImplementationEvent},
		},
		nodeType: model.WorkPackage,
		edgeType: model.Triggering,
	},
	PhaseRequirements: {
		rowKinds: []rowKind{
			{nameColumns: []string{"requirement"}, elemType: model.Requirement},
			{nameColumns: []string{"constraint"}, elemType: model.Constraint},
			{nameColumns: []string{"assumption"}, elemType: model.Requirement, props: map[string]string{"kind": "assumption"}},
		},
		nodeType: model.Requirement,
		edgeType: model.Flow,
	},
	PhaseStakeholders: {
		rowKinds: []rowKind{
			{nameColumns: []string{"stakeholder", "name"}, elemType: model.Stakeholder},
			{nameColumns: []string{"driver"}, elemType: model.Driver},
			{nameColumns: []string{"goal"}, elemType: model.Goal},
			{nameColumns: []string{"assessment"}, elemType: model.Assessment},
		},
		nodeType: model.Stakeholder,
		edgeType: model.Flow,
	},
	PhasePrinciples: {
		rowKinds: []rowKind{
			{nameColumns: []string{"principle", "name"}, elemType: model.Principle},
		},
		nodeType: model.Principle,
		edgeType: model.Flow,
	},
	PhaseGovernance: {
		rowKinds: []rowKind{
			{nameColumns: []string{"requirement"}, elemType: model.Requirement},
			{nameColumns: []string{"constraint", "policy"}, elemType: model.Constraint},
			{nameColumns: []string{"process", "procedure"}, elemType: model.BusinessProcess},
		},
		nodeType: model.BusinessProcess,
		edgeType: model.Triggering,
	},
	PhaseGeneric: {
		nodeType: model.ApplicationComponent,
		edgeType: model.Flow,
	},
}
