package openexchange

import (
	"encoding/xml"
	"fmt"
)

// Exchange-format namespace constants.
const (
	// Namespace is the Open Exchange model namespace URI.
	Namespace = "http://www.opengroup.org/xsd/archimate/3.0/"

	// XSINamespace is the XML Schema instance namespace URI.
	XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"

	// SchemaLocation pairs the model namespace with its schema document.
	SchemaLocation = Namespace + " http://www.opengroup.org/xsd/archimate/3.1/archimate3_Diagram.xsd"
)

// Document is the root "model" node of an exchange document.
// Field order fixes the block order: elements, then relationships, then views.
type Document struct {
	XMLName        xml.Name `xml:"model"`
	XMLNS          string   `xml:"xmlns,attr"`
	XMLNSXSI       string   `xml:"xmlns:xsi,attr"`
	SchemaLocation string   `xml:"xsi:schemaLocation,attr"`
	Identifier     string   `xml:"identifier,attr"`

	Name          string `xml:"name,omitempty"`
	Documentation string `xml:"documentation,omitempty"`

	Elements      *ElementList      `xml:"elements,omitempty"`
	Relationships *RelationshipList `xml:"relationships,omitempty"`
	Views         *Views            `xml:"views,omitempty"`
}

// ElementList wraps the element block.
type ElementList struct {
	Elements []ElementNode `xml:"element"`
}

// ElementNode is one element fragment.
type ElementNode struct {
	Identifier    string `xml:"identifier,attr"`
	Type          string `xml:"xsi:type,attr"`
	Name          string `xml:"name"`
	Documentation string `xml:"documentation,omitempty"`
}

// RelationshipList wraps the relationship block.
type RelationshipList struct {
	Relationships []RelationshipNode `xml:"relationship"`
}

// RelationshipNode is one relationship fragment.
type RelationshipNode struct {
	Identifier string `xml:"identifier,attr"`
	Source     string `xml:"source,attr"`
	Target     string `xml:"target,attr"`
	Type       string `xml:"xsi:type,attr"`
	Name       string `xml:"name,omitempty"`
}

// Views wraps the view block. Exactly one view is emitted per document.
type Views struct {
	Diagrams Diagrams `xml:"diagrams"`
}

// Diagrams holds the document's views.
type Diagrams struct {
	Views []ViewNode `xml:"view"`
}

// ViewNode is one visual view: positioned shapes plus connections.
type ViewNode struct {
	Identifier  string           `xml:"identifier,attr"`
	Type        string           `xml:"xsi:type,attr"`
	Name        string           `xml:"name,omitempty"`
	Nodes       []ShapeNode      `xml:"node"`
	Connections []ConnectionNode `xml:"connection"`
}

// ShapeNode is the positioned, styled rendering of one element.
type ShapeNode struct {
	Identifier string     `xml:"identifier,attr"`
	ElementRef string     `xml:"elementRef,attr"`
	Type       string     `xml:"xsi:type,attr"`
	X          int        `xml:"x,attr"`
	Y          int        `xml:"y,attr"`
	W          int        `xml:"w,attr"`
	H          int        `xml:"h,attr"`
	Style      *StyleNode `xml:"style,omitempty"`
}

// StyleNode carries the shape's fill, line, and text colors.
type StyleNode struct {
	FillColor RGBNode  `xml:"fillColor"`
	LineColor RGBNode  `xml:"lineColor"`
	Font      FontNode `xml:"font"`
}

// RGBNode is an r/g/b color triple.
type RGBNode struct {
	R int `xml:"r,attr"`
	G int `xml:"g,attr"`
	B int `xml:"b,attr"`
}

// FontNode holds the text color.
type FontNode struct {
	Color RGBNode `xml:"color"`
}

// ConnectionNode links two shapes for one relationship.
type ConnectionNode struct {
	Identifier      string          `xml:"identifier,attr"`
	RelationshipRef string          `xml:"relationshipRef,attr"`
	Type            string          `xml:"xsi:type,attr"`
	Source          string          `xml:"source,attr"`
	Target          string          `xml:"target,attr"`
	Bendpoints      []BendpointNode `xml:"bendpoint"`
}

// BendpointNode is an intermediate routing coordinate.
type BendpointNode struct {
	X int `xml:"x,attr"`
	Y int `xml:"y,attr"`
}

// Marshal serializes a document with the XML declaration prepended.
func Marshal(doc Document) (string, error) {
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	return xml.Header + string(data) + "\n", nil
}

// parseHex converts "#RRGGBB" to an RGBNode. Malformed values come out black,
// matching the theme fallback rather than failing a render over a color.
func parseHex(hex string) RGBNode {
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return RGBNode{}
	}
	return RGBNode{R: r, G: g, B: b}
}
