package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"backoffice/internal/interfaces"
	"backoffice/internal/refcheck"
)

// An expense created after the precheck but before the DELETE still trips
// the engine's foreign key. That failure must classify like any other
// blocked delete so the resolver answers with a conflict, not a raw error.
func TestDeleteCategoryClassifiesRacedConstraintError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer mockDB.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT description`)).
		WithArgs("ec1").
		WillReturnRows(sqlmock.NewRows([]string{"description"}))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM expense_categories WHERE id = ?`)).
		WithArgs("ec1").
		WillReturnError(errors.New("FOREIGN KEY constraint failed"))

	repo := NewExpenseCategoryRepository(mockDB)
	err = repo.Delete(context.Background(), "ec1")

	var violation *interfaces.ConstraintViolationError
	if !errors.As(err, &violation) {
		t.Fatalf("expected ConstraintViolationError, got %v", err)
	}
	if violation.Op != "delete expense category" {
		t.Fatalf("unexpected op %q", violation.Op)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

// Through the resolver the raced delete lands on the generic 409 message:
// the category has no registered finders, but the engine already proved a
// reference exists.
func TestResolveRacedCategoryDeleteIsGenericConflict(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer mockDB.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT description`)).
		WithArgs("ec1").
		WillReturnRows(sqlmock.NewRows([]string{"description"}))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM expense_categories WHERE id = ?`)).
		WithArgs("ec1").
		WillReturnError(errors.New("FOREIGN KEY constraint failed"))

	repo := NewExpenseCategoryRepository(mockDB)
	err = refcheck.ResolveDelete(context.Background(), "Expense Category", "ec1",
		repo.Delete, nil)

	var conflict *refcheck.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	want := "Cannot delete Expense Category as it is referenced in other records"
	if conflict.Error() != want {
		t.Fatalf("message mismatch:\n got: %s\nwant: %s", conflict.Error(), want)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
