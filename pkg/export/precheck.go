package export

import (
	"fmt"

	"github.com/archigen/archigen/pkg/model"
)

// precheck runs the pre-export structural checks and splits findings into
// warnings and blocking errors.
//
// Orphaned references and duplicate identifiers become blocking only in
// strict mode; an empty element set and blank names never block.
func precheck(elements []model.Element, relationships []model.Relationship, strict bool) (warnings, blocking []string) {
	promote := func(msg string) {
		if strict {
			blocking = append(blocking, msg)
		} else {
			warnings = append(warnings, msg)
		}
	}

	if len(elements) == 0 {
		warnings = append(warnings, "model has no elements")
	}

	idx := model.ElementIndex(elements)
	for _, rel := range relationships {
		if _, ok := idx[rel.Source]; !ok {
			promote(fmt.Sprintf("relationship %s is orphaned: source %q does not exist", rel.ID, rel.Source))
		}
		if _, ok := idx[rel.Target]; !ok {
			promote(fmt.Sprintf("relationship %s is orphaned: target %q does not exist", rel.ID, rel.Target))
		}
	}

	for _, id := range duplicateIDs(elementIDs(elements)) {
		promote(fmt.Sprintf("duplicate element id %q", id))
	}
	for _, id := range duplicateIDs(relationshipIDs(relationships)) {
		promote(fmt.Sprintf("duplicate relationship id %q", id))
	}

	for _, e := range elements {
		if e.Name == "" {
			warnings = append(warnings, fmt.Sprintf("element %s has a blank name", e.ID))
		}
	}

	return warnings, blocking
}

// duplicateIDs returns each id occurring more than once, exactly once, in
// first-occurrence order.
func duplicateIDs(ids []string) []string {
	counts := make(map[string]int, len(ids))
	for _, id := range ids {
		counts[id]++
	}

	var dups []string
	reported := make(map[string]bool)
	for _, id := range ids {
		if counts[id] > 1 && !reported[id] {
			dups = append(dups, id)
			reported[id] = true
		}
	}
	return dups
}

func elementIDs(elements []model.Element) []string {
	ids := make([]string, len(elements))
	for i, e := range elements {
		ids[i] = e.ID
	}
	return ids
}

func relationshipIDs(relationships []model.Relationship) []string {
	ids := make([]string, len(relationships))
	for i, r := range relationships {
		ids[i] = r.ID
	}
	return ids
}
