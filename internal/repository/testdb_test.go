package repository

import (
	"context"
	"database/sql"
	"testing"

	"backoffice/internal/db"
	"backoffice/internal/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := db.New(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := db.EnsureSchema(database.DB); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return database.DB
}

func seedCustomer(t *testing.T, database *sql.DB, name string) *models.Customer {
	t.Helper()
	customer := &models.Customer{Name: name}
	if err := NewCustomerRepository(database).Create(context.Background(), customer); err != nil {
		t.Fatalf("seed customer %s: %v", name, err)
	}
	return customer
}

func seedVendor(t *testing.T, database *sql.DB, name string) *models.Vendor {
	t.Helper()
	vendor := &models.Vendor{Name: name}
	if err := NewVendorRepository(database).Create(context.Background(), vendor); err != nil {
		t.Fatalf("seed vendor %s: %v", name, err)
	}
	return vendor
}

func seedEmployee(t *testing.T, database *sql.DB, name string) *models.Employee {
	t.Helper()
	employee := &models.Employee{Name: name, MonthlySalary: 4200}
	if err := NewEmployeeRepository(database).Create(context.Background(), employee); err != nil {
		t.Fatalf("seed employee %s: %v", name, err)
	}
	return employee
}

func seedVehicle(t *testing.T, database *sql.DB, name string) *models.Vehicle {
	t.Helper()
	vehicle := &models.Vehicle{Name: name, DailyRate: 150}
	if err := NewVehicleRepository(database).Create(context.Background(), vehicle); err != nil {
		t.Fatalf("seed vehicle %s: %v", name, err)
	}
	return vehicle
}

func seedQuote(t *testing.T, database *sql.DB, number, customerID string, items ...models.QuoteItem) *models.Quote {
	t.Helper()
	quote := &models.Quote{
		QuoteNumber: number,
		CustomerID:  customerID,
		QuoteDate:   "2026-08-01",
		Items:       items,
	}
	if err := NewQuoteRepository(database).Create(context.Background(), quote); err != nil {
		t.Fatalf("seed quote %s: %v", number, err)
	}
	return quote
}

func seedPurchaseOrder(t *testing.T, database *sql.DB, number, vendorID string) *models.PurchaseOrder {
	t.Helper()
	po := &models.PurchaseOrder{
		PONumber:  number,
		VendorID:  vendorID,
		OrderDate: "2026-08-01",
		Total:     500,
	}
	if err := NewPurchaseOrderRepository(database).Create(context.Background(), po); err != nil {
		t.Fatalf("seed purchase order %s: %v", number, err)
	}
	return po
}

func seedInvoice(t *testing.T, database *sql.DB, invoice *models.Invoice) *models.Invoice {
	t.Helper()
	if invoice.InvoiceDate == "" {
		invoice.InvoiceDate = "2026-08-15"
	}
	if err := NewInvoiceRepository(database).Create(context.Background(), invoice); err != nil {
		t.Fatalf("seed invoice %s: %v", invoice.InvoiceNumber, err)
	}
	return invoice
}

func seedPayslip(t *testing.T, database *sql.DB, employeeID, period string) *models.Payslip {
	t.Helper()
	payslip := &models.Payslip{
		EmployeeID: employeeID,
		Period:     period,
		Gross:      4200,
		Deductions: 700,
	}
	if err := NewPayslipRepository(database).Create(context.Background(), payslip); err != nil {
		t.Fatalf("seed payslip %s: %v", period, err)
	}
	return payslip
}
