package refcheck

import (
	"context"
	"errors"
	"testing"

	"backoffice/internal/interfaces"
)

func failingDelete(err error) DeleteFunc {
	return func(ctx context.Context, id string) error { return err }
}

func staticFinder(refs ...Reference) Finder {
	return func(ctx context.Context, id string) ([]Reference, error) { return refs, nil }
}

func TestResolveDeleteSuccess(t *testing.T) {
	called := false
	del := func(ctx context.Context, id string) error {
		called = true
		if id != "c1" {
			t.Fatalf("unexpected id %q", id)
		}
		return nil
	}

	if err := ResolveDelete(context.Background(), "Customer", "c1", del, nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if !called {
		t.Fatal("delete was not invoked")
	}
}

func TestResolveDeleteNotFoundPassthrough(t *testing.T) {
	err := ResolveDelete(context.Background(), "Customer", "missing",
		failingDelete(interfaces.ErrNotFound), nil)
	if !errors.Is(err, interfaces.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveDeleteItemizesReferences(t *testing.T) {
	violation := &interfaces.ConstraintViolationError{Op: "delete customer", Err: errors.New("FOREIGN KEY constraint failed")}
	finders := []Finder{
		staticFinder(Reference{Type: "Quote", Label: "Q-100"}),
		staticFinder(Reference{Type: "Invoice", Label: "INV-200"}),
	}

	err := ResolveDelete(context.Background(), "Customer", "c1", failingDelete(violation), finders)

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	want := "Cannot delete Customer as it is referenced in Quote Q-100 and Invoice INV-200"
	if conflict.Error() != want {
		t.Fatalf("message mismatch:\n got %q\nwant %q", conflict.Error(), want)
	}
	if len(conflict.References) != 2 {
		t.Fatalf("expected 2 references, got %d", len(conflict.References))
	}
}

func TestResolveDeleteGroupsAndPluralizes(t *testing.T) {
	violation := &interfaces.ConstraintViolationError{Op: "delete vendor", Err: errors.New("constraint failed")}
	finders := []Finder{
		staticFinder(
			Reference{Type: "Purchase Order", Label: "PO-100"},
			Reference{Type: "Purchase Order", Label: "PO-101"},
		),
		staticFinder(Reference{Type: "Invoice", Label: "INV-100"}),
	}

	err := ResolveDelete(context.Background(), "Vendor", "v1", failingDelete(violation), finders)

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	want := "Cannot delete Vendor as it is referenced in Purchase Orders PO-100, PO-101 and Invoice INV-100"
	if conflict.Error() != want {
		t.Fatalf("message mismatch:\n got %q\nwant %q", conflict.Error(), want)
	}
}

// Diagnosis must be idempotent: resolving the same blocked delete twice
// without mutating data yields byte-identical messages.
func TestResolveDeleteDeterministicMessage(t *testing.T) {
	violation := &interfaces.ConstraintViolationError{Op: "delete customer", Err: errors.New("constraint failed")}
	finders := []Finder{
		staticFinder(Reference{Type: "Quote", Label: "Q-1"}, Reference{Type: "Quote", Label: "Q-2"}),
		staticFinder(Reference{Type: "Invoice", Label: "INV-1"}),
	}

	first := ResolveDelete(context.Background(), "Customer", "c1", failingDelete(violation), finders)
	second := ResolveDelete(context.Background(), "Customer", "c1", failingDelete(violation), finders)
	if first.Error() != second.Error() {
		t.Fatalf("messages differ:\n%q\n%q", first.Error(), second.Error())
	}
}

func TestResolveDeleteNoFindersExplain(t *testing.T) {
	violation := &interfaces.ConstraintViolationError{Op: "delete vehicle", Err: errors.New("FOREIGN KEY constraint failed")}

	err := ResolveDelete(context.Background(), "Vehicle", "veh1",
		failingDelete(violation), []Finder{staticFinder()})

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	want := "Cannot delete Vehicle as it is referenced in other records"
	if conflict.Error() != want {
		t.Fatalf("expected generic message, got %q", conflict.Error())
	}
}

// A failed diagnostic query must not turn a blocked delete into a 500; the
// resolver falls back to the generic message instead.
func TestResolveDeleteFinderFailure(t *testing.T) {
	violation := &interfaces.ConstraintViolationError{Op: "delete employee", Err: errors.New("constraint failed")}
	broken := func(ctx context.Context, id string) ([]Reference, error) {
		return nil, errors.New("diagnostic query failed")
	}

	err := ResolveDelete(context.Background(), "Employee", "e1",
		failingDelete(violation), []Finder{broken})

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Error() != "Cannot delete Employee as it is referenced in other records" {
		t.Fatalf("expected generic message, got %q", conflict.Error())
	}
}

func TestResolveDeletePreformattedPassthrough(t *testing.T) {
	pre := NewConflictError("Expense Category", []Reference{{Type: "Expense", Label: "Office rent"}})
	ran := false
	finders := []Finder{func(ctx context.Context, id string) ([]Reference, error) {
		ran = true
		return nil, nil
	}}

	err := ResolveDelete(context.Background(), "Expense Category", "ec1", failingDelete(pre), finders)

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Error() != pre.Error() {
		t.Fatalf("expected passthrough message %q, got %q", pre.Error(), conflict.Error())
	}
	if ran {
		t.Fatal("finders must not run for a pre-formatted conflict")
	}
}

func TestResolveDeleteUnknownErrorPassthrough(t *testing.T) {
	dbErr := errors.New("Database error")

	err := ResolveDelete(context.Background(), "Customer", "c1", failingDelete(dbErr),
		[]Finder{staticFinder(Reference{Type: "Quote", Label: "Q-1"})})

	if err != dbErr {
		t.Fatalf("expected the original error back, got %v", err)
	}
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		t.Fatal("unrelated errors must not become conflicts")
	}
}
