// Package doccheck re-verifies serialized exchange documents.
//
// It operates on document text, independent of the in-memory model objects,
// as the last line of defense for externally supplied or previously exported
// documents. Checks run in order: well-formedness, root declaration,
// namespaces, identifier uniqueness, reference integrity, and type
// vocabulary. Only a failed well-formedness check short-circuits the rest;
// every other failed check contributes its findings and the remaining
// checks still run.
package doccheck

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/archigen/archigen/pkg/errors"
	"github.com/archigen/archigen/pkg/model"
	"github.com/archigen/archigen/pkg/render/openexchange"
)

// Issue is one finding with its taxonomy code.
type Issue struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// Report aggregates every finding of one check run.
type Report struct {
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}

// Valid reports whether the document passed without errors.
// Warnings do not invalidate a document.
func (r Report) Valid() bool { return len(r.Errors) == 0 }

func (r *Report) errorf(code errors.Code, format string, args ...any) {
	r.Errors = append(r.Errors, Issue{Code: code, Message: errors.New(code, format, args...).Message})
}

func (r *Report) warnf(code errors.Code, format string, args ...any) {
	r.Warnings = append(r.Warnings, Issue{Code: code, Message: errors.New(code, format, args...).Message})
}

// node is one identifier-bearing or typed node captured during the scan.
type node struct {
	local      string
	identifier string
	xsiType    string
	source     string
	target     string
}

// visualKinds are the view discriminators that are valid without being part
// of the element or relationship vocabulary.
var visualKinds = map[string]bool{
	"Diagram":      true,
	"Element":      true,
	"Relationship": true,
}

// Check runs all document checks over serialized document text.
func Check(doc string) Report {
	var report Report

	// (1) well-formedness: non-empty, balanced markup.
	if strings.TrimSpace(doc) == "" {
		report.errorf(errors.ErrCodeStructure, "document is empty")
		return report
	}

	root, nodes, err := scan(doc)
	if err != nil {
		report.errorf(errors.ErrCodeStructure, "document is not well-formed: %v", err)
		return report
	}
	if root == nil {
		report.errorf(errors.ErrCodeStructure, "document has no root node")
		return report
	}

	checkRoot(&report, root)
	checkNamespaces(&report, root)
	checkUniqueness(&report, nodes)
	checkReferences(&report, nodes)
	checkVocabulary(&report, nodes)

	return report
}

// rootInfo captures root-level declarations.
type rootInfo struct {
	local          string
	namespace      string
	identifier     string
	xsiDeclared    bool
	schemaLocation string
}

// scan walks the token stream once, collecting the root declaration and
// every node of interest. Returns an error for unbalanced or malformed
// markup.
func scan(doc string) (*rootInfo, []node, error) {
	dec := xml.NewDecoder(strings.NewReader(doc))

	var root *rootInfo
	var nodes []node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return root, nodes, nil
		}
		if err != nil {
			return nil, nil, err
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		n := node{local: start.Name.Local}
		for _, attr := range start.Attr {
			switch {
			case attr.Name.Local == "identifier" && attr.Name.Space == "":
				n.identifier = attr.Value
			case attr.Name.Local == "type" && attr.Name.Space != "":
				n.xsiType = attr.Value
			case attr.Name.Local == "source" && attr.Name.Space == "":
				n.source = attr.Value
			case attr.Name.Local == "target" && attr.Name.Space == "":
				n.target = attr.Value
			}
		}

		if root == nil {
			root = &rootInfo{
				local:      start.Name.Local,
				namespace:  start.Name.Space,
				identifier: n.identifier,
			}
			for _, attr := range start.Attr {
				if attr.Name.Space == "xmlns" && attr.Value == openexchange.XSINamespace {
					root.xsiDeclared = true
				}
				if attr.Name.Local == "schemaLocation" {
					root.schemaLocation = attr.Value
				}
			}
		}

		nodes = append(nodes, n)
	}
}

// checkRoot verifies the declared root kind and its identifying attribute.
func checkRoot(r *Report, root *rootInfo) {
	if root.local != "model" {
		r.errorf(errors.ErrCodeStructure, "root node is %q, want model", root.local)
	}
	if root.identifier == "" {
		r.errorf(errors.ErrCodeStructure, "root node is missing its identifier attribute")
	}
}

// checkNamespaces verifies the exchange namespace (error) and the schema
// instance declaration and location (warning when missing).
func checkNamespaces(r *Report, root *rootInfo) {
	if root.namespace != openexchange.Namespace {
		r.errorf(errors.ErrCodeNamespace,
			"root namespace is %q, want %q", root.namespace, openexchange.Namespace)
	}
	if !root.xsiDeclared {
		r.warnf(errors.ErrCodeNamespace, "schema-instance namespace is not declared")
	}
	if root.schemaLocation == "" {
		r.warnf(errors.ErrCodeNamespace, "schemaLocation is not declared")
	}
}

// checkUniqueness verifies global uniqueness of every identifier.
func checkUniqueness(r *Report, nodes []node) {
	counts := make(map[string]int)
	for _, n := range nodes {
		if n.identifier != "" {
			counts[n.identifier]++
		}
	}

	reported := make(map[string]bool)
	for _, n := range nodes {
		if n.identifier == "" || counts[n.identifier] == 1 || reported[n.identifier] {
			continue
		}
		reported[n.identifier] = true
		r.errorf(errors.ErrCodeUniqueness,
			"identifier %q is declared %d times", n.identifier, counts[n.identifier])
	}
}

// checkReferences verifies that every relationship and connection endpoint
// resolves to a non-relationship node with a matching identifier.
func checkReferences(r *Report, nodes []node) {
	byID := make(map[string]string, len(nodes))
	for _, n := range nodes {
		if n.identifier != "" {
			byID[n.identifier] = n.local
		}
	}

	for _, n := range nodes {
		if n.local != "relationship" && n.local != "connection" {
			continue
		}
		for _, ref := range []struct{ attr, id string }{
			{"source", n.source},
			{"target", n.target},
		} {
			local, ok := byID[ref.id]
			if !ok {
				r.errorf(errors.ErrCodeReference,
					"%s %q: %s %q does not resolve", n.local, n.identifier, ref.attr, ref.id)
				continue
			}
			if local == "relationship" || local == "connection" {
				r.errorf(errors.ErrCodeReference,
					"%s %q: %s %q resolves to a relationship", n.local, n.identifier, ref.attr, ref.id)
			}
		}
	}
}

// checkVocabulary verifies every type discriminator after stripping any
// namespace prefix and any trailing "Relationship" suffix.
func checkVocabulary(r *Report, nodes []node) {
	for _, n := range nodes {
		if n.xsiType == "" {
			continue
		}
		if knownType(n.xsiType) {
			continue
		}
		r.errorf(errors.ErrCodeSchema,
			"node %q declares unknown type %q", n.identifier, n.xsiType)
	}
}

func knownType(raw string) bool {
	t := raw
	if i := strings.LastIndex(t, ":"); i >= 0 {
		t = t[i+1:]
	}
	if visualKinds[t] {
		return true
	}
	if model.KnownElementType(model.ElementType(t)) {
		return true
	}
	if model.KnownRelationshipType(model.RelationshipType(t)) {
		return true
	}
	if suffixless := strings.TrimSuffix(t, "Relationship"); suffixless != t {
		return model.KnownRelationshipType(model.RelationshipType(suffixless)) ||
			model.KnownElementType(model.ElementType(suffixless))
	}
	return false
}
