package repository

import (
	"context"
	"database/sql"
	"fmt"

	"backoffice/internal/refcheck"
)

// NewFinderRegistry builds the reference-finder table consumed by the
// delete-conflict resolver. One finder per foreign-key edge, registered in
// the order the dependent tables are declared in the schema; that order is
// what fixes the grouping in conflict messages. Adding a foreign key to the
// schema means adding exactly one entry here.
//
// Expense categories are absent on purpose: their reference check lives in
// the store layer and arrives at the resolver already formatted.
func NewFinderRegistry(database *sql.DB) *refcheck.Registry {
	return refcheck.NewRegistry(map[string][]refcheck.Finder{
		"Customer": {
			findLabels(database, "Quote", `SELECT quote_number FROM quotes WHERE customer_id = ? ORDER BY quote_number`),
			findLabels(database, "Invoice", `SELECT invoice_number FROM invoices WHERE customer_id = ? ORDER BY invoice_number`),
		},
		"Vendor": {
			findLabels(database, "Purchase Order", `SELECT po_number FROM purchase_orders WHERE vendor_id = ? ORDER BY po_number`),
			findLabels(database, "Invoice", `SELECT invoice_number FROM invoices WHERE vendor_id = ? ORDER BY invoice_number`),
		},
		"Employee": {
			findLabels(database, "Payslip", `SELECT period FROM payslips WHERE employee_id = ? ORDER BY period`),
		},
		// Line items are not user-facing records, so a vehicle blocked by a
		// quote item is reported under the parent quote's number.
		"Vehicle": {
			findLabels(database, "Quote", `
				SELECT DISTINCT q.quote_number
				FROM quote_items qi
				JOIN quotes q ON q.id = qi.quote_id
				WHERE qi.vehicle_type_id = ?
				ORDER BY q.quote_number`),
		},
		"Quote": {
			findLabels(database, "Invoice", `SELECT invoice_number FROM invoices WHERE quote_id = ? ORDER BY invoice_number`),
		},
		"Purchase Order": {
			findLabels(database, "Invoice", `SELECT invoice_number FROM invoices WHERE purchase_order_id = ? ORDER BY invoice_number`),
		},
	})
}

// findLabels builds a finder that reads the dependent records' natural
// identifiers by foreign-key column. Each call hits committed state fresh;
// stale results would put wrong records in a user-facing message.
func findLabels(database *sql.DB, refType, query string) refcheck.Finder {
	return func(ctx context.Context, id string) ([]refcheck.Reference, error) {
		rows, err := database.QueryContext(ctx, query, id)
		if err != nil {
			return nil, fmt.Errorf("failed to look up %s references: %w", refType, err)
		}
		defer rows.Close()

		var refs []refcheck.Reference
		for rows.Next() {
			var label string
			if err := rows.Scan(&label); err != nil {
				return nil, fmt.Errorf("failed to scan %s reference: %w", refType, err)
			}
			refs = append(refs, refcheck.Reference{Type: refType, Label: label})
		}
		return refs, rows.Err()
	}
}
