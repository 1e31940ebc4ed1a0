// Package refcheck turns a delete rejected by the storage engine into an
// actionable error that names the records blocking it. Every blocker cited
// in a message has been confirmed by a live lookup at the moment of the
// failed delete; nothing is guessed and nothing is cached.
package refcheck

import (
	"context"
	"fmt"
	"strings"
)

// Reference is one dependent record that points at the entity being deleted.
// Label is the record's natural identifier (its number or period), never its
// opaque id, so the message means something to a non-technical user.
type Reference struct {
	Type  string
	Label string
}

// Finder looks up the references one foreign-key relationship holds against
// the given entity id. Finders must be read-only and must read committed
// state fresh on every call.
type Finder func(ctx context.Context, id string) ([]Reference, error)

// ConflictError is a delete blocked by dependent records. Its message is the
// exact string shown to the caller on a 409.
type ConflictError struct {
	Entity     string
	References []Reference
	message    string
}

func (e *ConflictError) Error() string {
	return e.message
}

// NewConflictError builds the itemized conflict message. References are
// grouped by type in first-appearance order and labels keep the order they
// were found in, so identical input always produces an identical message.
func NewConflictError(entity string, refs []Reference) *ConflictError {
	var order []string
	groups := make(map[string][]string)
	for _, ref := range refs {
		if _, seen := groups[ref.Type]; !seen {
			order = append(order, ref.Type)
		}
		groups[ref.Type] = append(groups[ref.Type], ref.Label)
	}

	parts := make([]string, 0, len(order))
	for _, typ := range order {
		labels := groups[typ]
		name := typ
		if len(labels) > 1 {
			name += "s"
		}
		parts = append(parts, name+" "+strings.Join(labels, ", "))
	}

	return &ConflictError{
		Entity:     entity,
		References: refs,
		message:    fmt.Sprintf("Cannot delete %s as it is referenced in %s", entity, joinWithAnd(parts)),
	}
}

// NewGenericConflict covers the case where the engine proved a reference
// exists but no finder could name it.
func NewGenericConflict(entity string) *ConflictError {
	return &ConflictError{
		Entity:  entity,
		message: fmt.Sprintf("Cannot delete %s as it is referenced in other records", entity),
	}
}

func joinWithAnd(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}
