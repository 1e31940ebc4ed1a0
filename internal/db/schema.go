package db

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates every table the application needs. Cross-entity
// foreign keys are RESTRICT so a delete that would orphan a business record
// fails at the engine and surfaces through the conflict resolver; only
// tables that are part of their parent (quote line items, invoice
// attachments) cascade.
func EnsureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS customers (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT DEFAULT '',
			phone TEXT DEFAULT '',
			address TEXT DEFAULT '',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS vendors (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT DEFAULT '',
			phone TEXT DEFAULT '',
			address TEXT DEFAULT '',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS employees (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			position TEXT DEFAULT '',
			email TEXT DEFAULT '',
			monthly_salary REAL NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS payslips (
			id TEXT PRIMARY KEY,
			employee_id TEXT NOT NULL,
			period TEXT NOT NULL,
			gross REAL NOT NULL DEFAULT 0,
			deductions REAL NOT NULL DEFAULT 0,
			net REAL NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL,
			FOREIGN KEY (employee_id) REFERENCES employees(id) ON DELETE RESTRICT
		)`,
		`CREATE TABLE IF NOT EXISTS vehicles (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			registration TEXT DEFAULT '',
			daily_rate REAL NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS quotes (
			id TEXT PRIMARY KEY,
			quote_number TEXT NOT NULL UNIQUE,
			customer_id TEXT NOT NULL,
			quote_date TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'draft' CHECK(status IN ('draft','sent','accepted','declined')),
			notes TEXT DEFAULT '',
			total REAL NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			FOREIGN KEY (customer_id) REFERENCES customers(id) ON DELETE RESTRICT
		)`,
		`CREATE TABLE IF NOT EXISTS quote_items (
			id TEXT PRIMARY KEY,
			quote_id TEXT NOT NULL,
			vehicle_type_id TEXT NOT NULL,
			description TEXT DEFAULT '',
			quantity INTEGER NOT NULL DEFAULT 1 CHECK(quantity > 0),
			unit_price REAL NOT NULL DEFAULT 0,
			FOREIGN KEY (quote_id) REFERENCES quotes(id) ON DELETE CASCADE,
			FOREIGN KEY (vehicle_type_id) REFERENCES vehicles(id) ON DELETE RESTRICT
		)`,
		`CREATE TABLE IF NOT EXISTS purchase_orders (
			id TEXT PRIMARY KEY,
			po_number TEXT NOT NULL UNIQUE,
			vendor_id TEXT NOT NULL,
			order_date TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'draft' CHECK(status IN ('draft','ordered','received','cancelled')),
			notes TEXT DEFAULT '',
			total REAL NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			FOREIGN KEY (vendor_id) REFERENCES vendors(id) ON DELETE RESTRICT
		)`,
		`CREATE TABLE IF NOT EXISTS invoices (
			id TEXT PRIMARY KEY,
			invoice_number TEXT NOT NULL UNIQUE,
			customer_id TEXT NOT NULL,
			vendor_id TEXT,
			quote_id TEXT,
			purchase_order_id TEXT,
			invoice_date TEXT NOT NULL,
			due_date TEXT DEFAULT '',
			status TEXT NOT NULL DEFAULT 'draft' CHECK(status IN ('draft','sent','paid','overdue','cancelled')),
			total REAL NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			FOREIGN KEY (customer_id) REFERENCES customers(id) ON DELETE RESTRICT,
			FOREIGN KEY (vendor_id) REFERENCES vendors(id) ON DELETE RESTRICT,
			FOREIGN KEY (quote_id) REFERENCES quotes(id) ON DELETE RESTRICT,
			FOREIGN KEY (purchase_order_id) REFERENCES purchase_orders(id) ON DELETE RESTRICT
		)`,
		`CREATE TABLE IF NOT EXISTS expense_categories (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id TEXT PRIMARY KEY,
			category_id TEXT NOT NULL,
			description TEXT DEFAULT '',
			amount REAL NOT NULL DEFAULT 0,
			expense_date TEXT NOT NULL,
			FOREIGN KEY (category_id) REFERENCES expense_categories(id) ON DELETE RESTRICT
		)`,
		`CREATE TABLE IF NOT EXISTS invoice_attachments (
			id TEXT PRIMARY KEY,
			invoice_id TEXT NOT NULL,
			file_name TEXT NOT NULL,
			blob_key TEXT NOT NULL,
			content_type TEXT DEFAULT '',
			size_bytes INTEGER NOT NULL DEFAULT 0,
			uploaded_at TIMESTAMP NOT NULL,
			FOREIGN KEY (invoice_id) REFERENCES invoices(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quotes_customer ON quotes(customer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_quote_items_quote ON quote_items(quote_id)`,
		`CREATE INDEX IF NOT EXISTS idx_quote_items_vehicle ON quote_items(vehicle_type_id)`,
		`CREATE INDEX IF NOT EXISTS idx_purchase_orders_vendor ON purchase_orders(vendor_id)`,
		`CREATE INDEX IF NOT EXISTS idx_invoices_customer ON invoices(customer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_invoices_vendor ON invoices(vendor_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payslips_employee ON payslips(employee_id)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	return nil
}
