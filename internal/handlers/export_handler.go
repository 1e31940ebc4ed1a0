package handlers

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExportHandler streams report downloads straight off the database so the
// export always reflects committed state.
type ExportHandler struct {
	db *sql.DB
}

func NewExportHandler(db *sql.DB) *ExportHandler {
	return &ExportHandler{db: db}
}

// ExportInvoices exports invoices to CSV or Excel.
func (h *ExportHandler) ExportInvoices(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	status := r.URL.Query().Get("status")
	query := `SELECT i.invoice_number, COALESCE(c.name,''), COALESCE(v.name,''),
		COALESCE(q.quote_number,''), COALESCE(p.po_number,''),
		i.total, i.status, i.invoice_date, i.due_date, i.created_at
		FROM invoices i
		LEFT JOIN customers c ON c.id = i.customer_id
		LEFT JOIN vendors v ON v.id = i.vendor_id
		LEFT JOIN quotes q ON q.id = i.quote_id
		LEFT JOIN purchase_orders p ON p.id = i.purchase_order_id`
	var args []interface{}
	if status != "" {
		query += " WHERE i.status = ?"
		args = append(args, status)
	}
	query += " ORDER BY i.created_at DESC"

	rows, err := h.db.QueryContext(r.Context(), query, args...)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	headers := []string{"Invoice Number", "Customer", "Vendor", "Quote", "Purchase Order", "Total", "Status", "Invoice Date", "Due Date", "Created At"}
	var data [][]string

	for rows.Next() {
		var number, customer, vendor, quote, po, st, invoiceDate, dueDate, createdAt string
		var total float64
		if err := rows.Scan(&number, &customer, &vendor, &quote, &po, &total, &st, &invoiceDate, &dueDate, &createdAt); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		data = append(data, []string{number, customer, vendor, quote, po, fmt.Sprintf("%.2f", total), st, invoiceDate, dueDate, createdAt})
	}
	if err := rows.Err(); err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if format == "xlsx" {
		exportExcel(w, "Invoices", headers, data)
	} else {
		exportCSV(w, "invoices.csv", headers, data)
	}
}

// ExportQuotes exports quotes to CSV or Excel.
func (h *ExportHandler) ExportQuotes(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	status := r.URL.Query().Get("status")
	query := `SELECT q.quote_number, COALESCE(c.name,''), q.status, q.total, q.quote_date, q.created_at
		FROM quotes q
		LEFT JOIN customers c ON c.id = q.customer_id`
	var args []interface{}
	if status != "" {
		query += " WHERE q.status = ?"
		args = append(args, status)
	}
	query += " ORDER BY q.created_at DESC"

	rows, err := h.db.QueryContext(r.Context(), query, args...)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	headers := []string{"Quote Number", "Customer", "Status", "Total", "Quote Date", "Created At"}
	var data [][]string

	for rows.Next() {
		var number, customer, st, quoteDate, createdAt string
		var total float64
		if err := rows.Scan(&number, &customer, &st, &total, &quoteDate, &createdAt); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		data = append(data, []string{number, customer, st, fmt.Sprintf("%.2f", total), quoteDate, createdAt})
	}
	if err := rows.Err(); err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if format == "xlsx" {
		exportExcel(w, "Quotes", headers, data)
	} else {
		exportCSV(w, "quotes.csv", headers, data)
	}
}

// ExportPurchaseOrders exports purchase orders to CSV or Excel.
func (h *ExportHandler) ExportPurchaseOrders(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	status := r.URL.Query().Get("status")
	query := `SELECT p.po_number, COALESCE(v.name,''), p.status, p.total, p.order_date, p.created_at
		FROM purchase_orders p
		LEFT JOIN vendors v ON v.id = p.vendor_id`
	var args []interface{}
	if status != "" {
		query += " WHERE p.status = ?"
		args = append(args, status)
	}
	query += " ORDER BY p.created_at DESC"

	rows, err := h.db.QueryContext(r.Context(), query, args...)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	headers := []string{"PO Number", "Vendor", "Status", "Total", "Order Date", "Created At"}
	var data [][]string

	for rows.Next() {
		var number, vendor, st, orderDate, createdAt string
		var total float64
		if err := rows.Scan(&number, &vendor, &st, &total, &orderDate, &createdAt); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		data = append(data, []string{number, vendor, st, fmt.Sprintf("%.2f", total), orderDate, createdAt})
	}
	if err := rows.Err(); err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if format == "xlsx" {
		exportExcel(w, "PurchaseOrders", headers, data)
	} else {
		exportCSV(w, "purchase_orders.csv", headers, data)
	}
}

func exportCSV(w http.ResponseWriter, filename string, headers []string, data [][]string) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(headers); err != nil {
		http.Error(w, "Failed to write CSV headers", http.StatusInternalServerError)
		return
	}

	for _, row := range data {
		if err := writer.Write(row); err != nil {
			http.Error(w, "Failed to write CSV row", http.StatusInternalServerError)
			return
		}
	}
}

func exportExcel(w http.ResponseWriter, sheetName string, headers []string, data [][]string) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		http.Error(w, "Failed to create Excel sheet", http.StatusInternalServerError)
		return
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		http.Error(w, "Failed to create header style", http.StatusInternalServerError)
		return
	}

	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, row := range data {
		for colIdx, value := range row {
			cell := fmt.Sprintf("%s%d", string(rune('A'+colIdx)), rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range headers {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, 15)
	}

	if sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", strings.ToLower(sheetName)))

	if err := f.Write(w); err != nil {
		http.Error(w, "Failed to write Excel file", http.StatusInternalServerError)
		return
	}
}
