package model

// Layer is one of the fixed architectural categories every element type
// belongs to. Layers have a canonical order used by layout and grouping.
type Layer string

// Architectural layers in canonical order.
const (
	LayerMotivation     Layer = "Motivation"
	LayerStrategy       Layer = "Strategy"
	LayerBusiness       Layer = "Business"
	LayerApplication    Layer = "Application"
	LayerTechnology     Layer = "Technology"
	LayerPhysical       Layer = "Physical"
	LayerImplementation Layer = "Implementation"
)

// LayerOrder is the canonical layer ordering used by the layout engine and
// by layer-grouped document generation. Do not reorder.
var LayerOrder = []Layer{
	LayerMotivation,
	LayerStrategy,
	LayerBusiness,
	LayerApplication,
	LayerTechnology,
	LayerPhysical,
	LayerImplementation,
}

// ElementType is a tag from the closed element-type vocabulary.
type ElementType string

// Element types, grouped by layer.
const (
	// Motivation
	TypeStakeholder ElementType = "Stakeholder"
	TypeDriver      ElementType = "Driver"
	TypeAssessment  ElementType = "Assessment"
	TypeGoal        ElementType = "Goal"
	TypeOutcome     ElementType = "Outcome"
	TypePrinciple   ElementType = "Principle"
	TypeRequirement ElementType = "Requirement"
	TypeConstraint  ElementType = "Constraint"
	TypeMeaning     ElementType = "Meaning"
	TypeValue       ElementType = "Value"

	// Strategy
	TypeResource       ElementType = "Resource"
	TypeCapability     ElementType = "Capability"
	TypeCourseOfAction ElementType = "CourseOfAction"
	TypeValueStream    ElementType = "ValueStream"

	// Business
	TypeBusinessActor         ElementType = "BusinessActor"
	TypeBusinessRole          ElementType = "BusinessRole"
	TypeBusinessCollaboration ElementType = "BusinessCollaboration"
	TypeBusinessInterface     ElementType = "BusinessInterface"
	TypeBusinessProcess       ElementType = "BusinessProcess"
	TypeBusinessFunction      ElementType = "BusinessFunction"
	TypeBusinessInteraction   ElementType = "BusinessInteraction"
	TypeBusinessEvent         ElementType = "BusinessEvent"
	TypeBusinessService       ElementType = "BusinessService"
	TypeBusinessObject        ElementType = "BusinessObject"
	TypeContract              ElementType = "Contract"
	TypeRepresentation        ElementType = "Representation"
	TypeProduct               ElementType = "Product"

	// Application
	TypeApplicationComponent     ElementType = "ApplicationComponent"
	TypeApplicationCollaboration ElementType = "ApplicationCollaboration"
	TypeApplicationInterface     ElementType = "ApplicationInterface"
	TypeApplicationFunction      ElementType = "ApplicationFunction"
	TypeApplicationInteraction   ElementType = "ApplicationInteraction"
	TypeApplicationProcess       ElementType = "ApplicationProcess"
	TypeApplicationEvent         ElementType = "ApplicationEvent"
	TypeApplicationService       ElementType = "ApplicationService"
	TypeDataObject               ElementType = "DataObject"

	// Technology
	TypeNode                    ElementType = "Node"
	TypeDevice                  ElementType = "Device"
	TypeSystemSoftware          ElementType = "SystemSoftware"
	TypeTechnologyCollaboration ElementType = "TechnologyCollaboration"
	TypeTechnologyInterface     ElementType = "TechnologyInterface"
	TypePath                    ElementType = "Path"
	TypeCommunicationNetwork    ElementType = "CommunicationNetwork"
	TypeTechnologyFunction      ElementType = "TechnologyFunction"
	TypeTechnologyProcess       ElementType = "TechnologyProcess"
	TypeTechnologyInteraction   ElementType = "TechnologyInteraction"
	TypeTechnologyEvent         ElementType = "TechnologyEvent"
	TypeTechnologyService       ElementType = "TechnologyService"
	TypeArtifact                ElementType = "Artifact"

	// Physical
	TypeEquipment           ElementType = "Equipment"
	TypeFacility            ElementType = "Facility"
	TypeDistributionNetwork ElementType = "DistributionNetwork"
	TypeMaterial            ElementType = "Material"

	// Implementation
	TypeWorkPackage         ElementType = "WorkPackage"
	TypeDeliverable         ElementType = "Deliverable"
	TypeImplementationEvent ElementType = "ImplementationEvent"
	TypePlateau             ElementType = "Plateau"
	TypeGap                 ElementType = "Gap"
)

// elementLayers maps every known element type to its layer.
// The layer is a pure function of the type; it is never set independently.
var elementLayers = map[ElementType]Layer{
	TypeStakeholder: LayerMotivation,
	TypeDriver:      LayerMotivation,
	TypeAssessment:  LayerMotivation,
	TypeGoal:        LayerMotivation,
	TypeOutcome:     LayerMotivation,
	TypePrinciple:   LayerMotivation,
	TypeRequirement: LayerMotivation,
	TypeConstraint:  LayerMotivation,
	TypeMeaning:     LayerMotivation,
	TypeValue:       LayerMotivation,

	TypeResource:       LayerStrategy,
	TypeCapability:     LayerStrategy,
	TypeCourseOfAction: LayerStrategy,
	TypeValueStream:    LayerStrategy,

	TypeBusinessActor:         LayerBusiness,
	TypeBusinessRole:          LayerBusiness,
	TypeBusinessCollaboration: LayerBusiness,
	TypeBusinessInterface:     LayerBusiness,
	TypeBusinessProcess:       LayerBusiness,
	TypeBusinessFunction:      LayerBusiness,
	TypeBusinessInteraction:   LayerBusiness,
	TypeBusinessEvent:         LayerBusiness,
	TypeBusinessService:       LayerBusiness,
	TypeBusinessObject:        LayerBusiness,
	TypeContract:              LayerBusiness,
	TypeRepresentation:        LayerBusiness,
	TypeProduct:               LayerBusiness,

	TypeApplicationComponent:     LayerApplication,
	TypeApplicationCollaboration: LayerApplication,
	TypeApplicationInterface:     LayerApplication,
	TypeApplicationFunction:      LayerApplication,
	TypeApplicationInteraction:   LayerApplication,
	TypeApplicationProcess:       LayerApplication,
	TypeApplicationEvent:         LayerApplication,
	TypeApplicationService:       LayerApplication,
	TypeDataObject:               LayerApplication,

	TypeNode:                    LayerTechnology,
	TypeDevice:                  LayerTechnology,
	TypeSystemSoftware:          LayerTechnology,
	TypeTechnologyCollaboration: LayerTechnology,
	TypeTechnologyInterface:     LayerTechnology,
	TypePath:                    LayerTechnology,
	TypeCommunicationNetwork:    LayerTechnology,
	TypeTechnologyFunction:      LayerTechnology,
	TypeTechnologyProcess:       LayerTechnology,
	TypeTechnologyInteraction:   LayerTechnology,
	TypeTechnologyEvent:         LayerTechnology,
	TypeTechnologyService:       LayerTechnology,
	TypeArtifact:                LayerTechnology,

	TypeEquipment:           LayerPhysical,
	TypeFacility:            LayerPhysical,
	TypeDistributionNetwork: LayerPhysical,
	TypeMaterial:            LayerPhysical,

	TypeWorkPackage:         LayerImplementation,
	TypeDeliverable:         LayerImplementation,
	TypeImplementationEvent: LayerImplementation,
	TypePlateau:             LayerImplementation,
	TypeGap:                 LayerImplementation,
}

// LayerOf returns the layer for an element type.
// The second return value is false for types outside the vocabulary.
func LayerOf(t ElementType) (Layer, bool) {
	l, ok := elementLayers[t]
	return l, ok
}

// KnownElementType reports whether t is part of the closed type vocabulary.
func KnownElementType(t ElementType) bool {
	_, ok := elementLayers[t]
	return ok
}

// ElementTypes returns all known element types in no particular order.
func ElementTypes() []ElementType {
	types := make([]ElementType, 0, len(elementLayers))
	for t := range elementLayers {
		types = append(types, t)
	}
	return types
}

// RelationshipType is a tag from the closed relationship-type vocabulary.
type RelationshipType string

// Relationship types in canonical order.
const (
	RelComposition    RelationshipType = "Composition"
	RelAggregation    RelationshipType = "Aggregation"
	RelAssignment     RelationshipType = "Assignment"
	RelRealization    RelationshipType = "Realization"
	RelServing        RelationshipType = "Serving"
	RelAccess         RelationshipType = "Access"
	RelInfluence      RelationshipType = "Influence"
	RelTriggering     RelationshipType = "Triggering"
	RelFlow           RelationshipType = "Flow"
	RelSpecialization RelationshipType = "Specialization"
	RelAssociation    RelationshipType = "Association"
	RelJunction       RelationshipType = "Junction"
)

// RelationshipOrder is the canonical relationship-type ordering used by
// type-grouped document generation. Do not reorder.
var RelationshipOrder = []RelationshipType{
	RelComposition,
	RelAggregation,
	RelAssignment,
	RelRealization,
	RelServing,
	RelAccess,
	RelInfluence,
	RelTriggering,
	RelFlow,
	RelSpecialization,
	RelAssociation,
	RelJunction,
}

var relationshipTypes = func() map[RelationshipType]bool {
	m := make(map[RelationshipType]bool, len(RelationshipOrder))
	for _, t := range RelationshipOrder {
		m[t] = true
	}
	return m
}()

// KnownRelationshipType reports whether t is part of the closed
// relationship-type vocabulary.
func KnownRelationshipType(t RelationshipType) bool {
	return relationshipTypes[t]
}
