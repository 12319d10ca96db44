package openexchange

// Header carries the model-level identity of an assembled document.
type Header struct {
	ModelID   string
	ModelName string
	Purpose   string
}

// Assemble composes the header and fragment blocks into one complete
// document. The element block precedes the relationship block; the view
// block, when present, is last.
func Assemble(h Header, elements []ElementNode, relationships []RelationshipNode, view *ViewNode) (string, error) {
	doc := Document{
		XMLNS:          Namespace,
		XMLNSXSI:       XSINamespace,
		SchemaLocation: SchemaLocation,
		Identifier:     h.ModelID,
		Name:           h.ModelName,
		Documentation:  h.Purpose,
	}

	if len(elements) > 0 {
		doc.Elements = &ElementList{Elements: elements}
	}
	if len(relationships) > 0 {
		doc.Relationships = &RelationshipList{Relationships: relationships}
	}
	if view != nil {
		doc.Views = &Views{Diagrams: Diagrams{Views: []ViewNode{*view}}}
	}

	return Marshal(doc)
}
