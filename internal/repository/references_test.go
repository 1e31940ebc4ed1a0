package repository

import (
	"context"
	"errors"
	"testing"

	"backoffice/internal/interfaces"
	"backoffice/internal/models"
	"backoffice/internal/refcheck"
)

func TestDeleteCustomerReportsQuoteAndInvoice(t *testing.T) {
	database := newTestDB(t)
	registry := NewFinderRegistry(database)
	repo := NewCustomerRepository(database)

	customer := seedCustomer(t, database, "Acme Ltd")
	vehicle := seedVehicle(t, database, "Flatbed")
	seedQuote(t, database, "Q-100", customer.ID, models.QuoteItem{
		VehicleTypeID: vehicle.ID, Quantity: 1, UnitPrice: 150,
	})
	seedInvoice(t, database, &models.Invoice{
		InvoiceNumber: "INV-200",
		CustomerID:    customer.ID,
	})

	err := refcheck.ResolveDelete(context.Background(), "Customer", customer.ID,
		repo.Delete, registry.FindersFor("Customer"))

	var conflict *refcheck.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	want := "Cannot delete Customer as it is referenced in Quote Q-100 and Invoice INV-200"
	if conflict.Error() != want {
		t.Fatalf("message mismatch:\n got: %s\nwant: %s", conflict.Error(), want)
	}

	// The row must survive the blocked delete.
	if _, err := repo.GetByID(context.Background(), customer.ID); err != nil {
		t.Fatalf("customer should still exist: %v", err)
	}
}

func TestDeleteVendorGroupsPurchaseOrdersBeforeInvoices(t *testing.T) {
	database := newTestDB(t)
	registry := NewFinderRegistry(database)
	repo := NewVendorRepository(database)

	vendor := seedVendor(t, database, "Parts Co")
	customer := seedCustomer(t, database, "Acme Ltd")
	seedPurchaseOrder(t, database, "PO-101", vendor.ID)
	seedPurchaseOrder(t, database, "PO-100", vendor.ID)
	seedInvoice(t, database, &models.Invoice{
		InvoiceNumber: "INV-100",
		CustomerID:    customer.ID,
		VendorID:      &vendor.ID,
	})

	err := refcheck.ResolveDelete(context.Background(), "Vendor", vendor.ID,
		repo.Delete, registry.FindersFor("Vendor"))

	var conflict *refcheck.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	want := "Cannot delete Vendor as it is referenced in Purchase Orders PO-100, PO-101 and Invoice INV-100"
	if conflict.Error() != want {
		t.Fatalf("message mismatch:\n got: %s\nwant: %s", conflict.Error(), want)
	}
}

func TestDeleteEmployeeReportsPayslipPeriods(t *testing.T) {
	database := newTestDB(t)
	registry := NewFinderRegistry(database)
	repo := NewEmployeeRepository(database)

	employee := seedEmployee(t, database, "Dana")
	seedPayslip(t, database, employee.ID, "2026-05")
	seedPayslip(t, database, employee.ID, "2026-06")

	err := refcheck.ResolveDelete(context.Background(), "Employee", employee.ID,
		repo.Delete, registry.FindersFor("Employee"))

	var conflict *refcheck.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	want := "Cannot delete Employee as it is referenced in Payslips 2026-05, 2026-06"
	if conflict.Error() != want {
		t.Fatalf("message mismatch:\n got: %s\nwant: %s", conflict.Error(), want)
	}
}

func TestDeleteVehicleCitesParentQuoteNumber(t *testing.T) {
	database := newTestDB(t)
	registry := NewFinderRegistry(database)
	repo := NewVehicleRepository(database)

	customer := seedCustomer(t, database, "Acme Ltd")
	vehicle := seedVehicle(t, database, "Tipper")
	// Two line items under the same quote must collapse to one citation.
	seedQuote(t, database, "Q-100", customer.ID,
		models.QuoteItem{VehicleTypeID: vehicle.ID, Quantity: 1, UnitPrice: 150},
		models.QuoteItem{VehicleTypeID: vehicle.ID, Quantity: 2, UnitPrice: 150},
	)

	err := refcheck.ResolveDelete(context.Background(), "Vehicle", vehicle.ID,
		repo.Delete, registry.FindersFor("Vehicle"))

	var conflict *refcheck.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	want := "Cannot delete Vehicle as it is referenced in Quote Q-100"
	if conflict.Error() != want {
		t.Fatalf("message mismatch:\n got: %s\nwant: %s", conflict.Error(), want)
	}
}

func TestDeleteQuoteBlockedByInvoice(t *testing.T) {
	database := newTestDB(t)
	registry := NewFinderRegistry(database)
	repo := NewQuoteRepository(database)

	customer := seedCustomer(t, database, "Acme Ltd")
	vehicle := seedVehicle(t, database, "Van")
	quote := seedQuote(t, database, "Q-300", customer.ID, models.QuoteItem{
		VehicleTypeID: vehicle.ID, Quantity: 1, UnitPrice: 90,
	})
	seedInvoice(t, database, &models.Invoice{
		InvoiceNumber: "INV-300",
		CustomerID:    customer.ID,
		QuoteID:       &quote.ID,
	})

	err := refcheck.ResolveDelete(context.Background(), "Quote", quote.ID,
		repo.Delete, registry.FindersFor("Quote"))

	var conflict *refcheck.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	want := "Cannot delete Quote as it is referenced in Invoice INV-300"
	if conflict.Error() != want {
		t.Fatalf("message mismatch:\n got: %s\nwant: %s", conflict.Error(), want)
	}
}

func TestDeletePurchaseOrderBlockedByInvoice(t *testing.T) {
	database := newTestDB(t)
	registry := NewFinderRegistry(database)
	repo := NewPurchaseOrderRepository(database)

	vendor := seedVendor(t, database, "Parts Co")
	customer := seedCustomer(t, database, "Acme Ltd")
	po := seedPurchaseOrder(t, database, "PO-400", vendor.ID)
	seedInvoice(t, database, &models.Invoice{
		InvoiceNumber:   "INV-400",
		CustomerID:      customer.ID,
		PurchaseOrderID: &po.ID,
	})

	err := refcheck.ResolveDelete(context.Background(), "Purchase Order", po.ID,
		repo.Delete, registry.FindersFor("Purchase Order"))

	var conflict *refcheck.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	want := "Cannot delete Purchase Order as it is referenced in Invoice INV-400"
	if conflict.Error() != want {
		t.Fatalf("message mismatch:\n got: %s\nwant: %s", conflict.Error(), want)
	}
}

func TestDeleteCustomerWithoutReferences(t *testing.T) {
	database := newTestDB(t)
	registry := NewFinderRegistry(database)
	repo := NewCustomerRepository(database)

	customer := seedCustomer(t, database, "Loner")

	err := refcheck.ResolveDelete(context.Background(), "Customer", customer.ID,
		repo.Delete, registry.FindersFor("Customer"))
	if err != nil {
		t.Fatalf("expected clean delete, got %v", err)
	}
	if _, err := repo.GetByID(context.Background(), customer.ID); !errors.Is(err, interfaces.ErrNotFound) {
		t.Fatalf("expected customer gone, got %v", err)
	}
}

func TestDeleteCustomerAfterDependentsRemoved(t *testing.T) {
	database := newTestDB(t)
	registry := NewFinderRegistry(database)
	customerRepo := NewCustomerRepository(database)
	quoteRepo := NewQuoteRepository(database)

	customer := seedCustomer(t, database, "Acme Ltd")
	vehicle := seedVehicle(t, database, "Van")
	quote := seedQuote(t, database, "Q-500", customer.ID, models.QuoteItem{
		VehicleTypeID: vehicle.ID, Quantity: 1, UnitPrice: 90,
	})

	err := refcheck.ResolveDelete(context.Background(), "Customer", customer.ID,
		customerRepo.Delete, registry.FindersFor("Customer"))
	var conflict *refcheck.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	if err := quoteRepo.Delete(context.Background(), quote.ID); err != nil {
		t.Fatalf("delete quote: %v", err)
	}

	err = refcheck.ResolveDelete(context.Background(), "Customer", customer.ID,
		customerRepo.Delete, registry.FindersFor("Customer"))
	if err != nil {
		t.Fatalf("expected delete to succeed after removing dependents, got %v", err)
	}
}

func TestDeleteQuoteCascadesLineItems(t *testing.T) {
	database := newTestDB(t)
	registry := NewFinderRegistry(database)
	quoteRepo := NewQuoteRepository(database)
	vehicleRepo := NewVehicleRepository(database)

	customer := seedCustomer(t, database, "Acme Ltd")
	vehicle := seedVehicle(t, database, "Crane")
	quote := seedQuote(t, database, "Q-600", customer.ID, models.QuoteItem{
		VehicleTypeID: vehicle.ID, Quantity: 1, UnitPrice: 800,
	})

	if err := quoteRepo.Delete(context.Background(), quote.ID); err != nil {
		t.Fatalf("delete quote: %v", err)
	}

	// Items went with the quote, so the vehicle is no longer blocked.
	err := refcheck.ResolveDelete(context.Background(), "Vehicle", vehicle.ID,
		vehicleRepo.Delete, registry.FindersFor("Vehicle"))
	if err != nil {
		t.Fatalf("expected vehicle delete to succeed, got %v", err)
	}
}

func TestExpenseCategoryDeleteReturnsPreformattedConflict(t *testing.T) {
	database := newTestDB(t)
	categoryRepo := NewExpenseCategoryRepository(database)
	expenseRepo := NewExpenseRepository(database)

	category := &models.ExpenseCategory{Name: "Fuel"}
	if err := categoryRepo.Create(context.Background(), category); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	if err := expenseRepo.Create(context.Background(), &models.Expense{
		CategoryID:  category.ID,
		Description: "Diesel top-up",
		Amount:      80,
		ExpenseDate: "2026-08-20",
	}); err != nil {
		t.Fatalf("seed expense: %v", err)
	}

	err := categoryRepo.Delete(context.Background(), category.ID)

	var conflict *refcheck.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected preformatted conflict, got %v", err)
	}
	want := "Cannot delete Expense Category as it is referenced in Expense Diesel top-up"
	if conflict.Error() != want {
		t.Fatalf("message mismatch:\n got: %s\nwant: %s", conflict.Error(), want)
	}
}

func TestDeleteMissingCustomerReturnsNotFound(t *testing.T) {
	database := newTestDB(t)
	repo := NewCustomerRepository(database)

	err := repo.Delete(context.Background(), "no-such-id")
	if !errors.Is(err, interfaces.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
