package refcheck

import (
	"context"
	"errors"

	"backoffice/internal/interfaces"
)

// DeleteFunc is the store's delete call for one entity.
type DeleteFunc func(ctx context.Context, id string) error

// ResolveDelete attempts the delete exactly once and translates failure into
// the error taxonomy the HTTP layer maps to status codes:
//
//   - nil: the row is gone (204)
//   - *ConflictError: blocked by dependent records (409)
//   - interfaces.ErrNotFound: no such row (404)
//   - anything else: passed through verbatim (500)
//
// On a constraint violation every registered finder runs against the id and
// the results are concatenated in registration order. There are no retries
// and never a cascade: the caller has to delete or reassign the dependents
// themselves, which is the point for financial records.
func ResolveDelete(ctx context.Context, entity, id string, deleteFn DeleteFunc, finders []Finder) error {
	err := deleteFn(ctx, id)
	if err == nil {
		return nil
	}

	// A lower layer (e.g. an in-store reference precheck) may have already
	// produced a formatted conflict. Pass it through untouched.
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return conflict
	}

	var violation *interfaces.ConstraintViolationError
	if !errors.As(err, &violation) {
		return err
	}

	var refs []Reference
	for _, find := range finders {
		found, ferr := find(ctx, id)
		if ferr != nil {
			// The engine already proved the delete is blocked; losing that
			// fact because a diagnostic query failed would be worse than an
			// unitemized message.
			return NewGenericConflict(entity)
		}
		refs = append(refs, found...)
	}

	if len(refs) == 0 {
		// The engine rejected the delete but no finder could explain why,
		// e.g. a relationship the registry has not been told about yet.
		return NewGenericConflict(entity)
	}

	return NewConflictError(entity, refs)
}
