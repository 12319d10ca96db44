package compat

import "github.com/archigen/archigen/pkg/model"

// Violation reports a relationship whose type is not permitted between its
// source and target element types.
type Violation struct {
	Message      string
	Source       model.Element
	Target       model.Element
	Relationship model.Relationship
}

// Validate checks every relationship whose source and target both resolve
// against the matrix and returns one violation per illegal relationship.
//
// Relationships with unresolvable endpoints are skipped here; reference
// integrity is reported by the exporter's pre-checks and the standalone
// document checker, not by this validator.
func Validate(elements []model.Element, relationships []model.Relationship, m Matrix) []Violation {
	idx := model.ElementIndex(elements)

	var violations []Violation
	for _, rel := range relationships {
		src, srcOK := idx[rel.Source]
		tgt, tgtOK := idx[rel.Target]
		if !srcOK || !tgtOK {
			continue
		}
		if m.Permits(src.Type, tgt.Type, rel.Type) {
			continue
		}
		violations = append(violations, Violation{
			Message:      violationMessage(src, tgt, rel),
			Source:       src,
			Target:       tgt,
			Relationship: rel,
		})
	}
	return violations
}

func violationMessage(src, tgt model.Element, rel model.Relationship) string {
	return "relationship " + rel.ID + ": " + string(rel.Type) +
		" is not permitted from " + string(src.Type) + " (" + src.ID + ")" +
		" to " + string(tgt.Type) + " (" + tgt.ID + ")"
}
