package models

import "time"

// Payslip is one month's pay record for an employee. Period is the natural
// identifier shown in delete-conflict messages, e.g. "2026-05".
type Payslip struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id" validate:"required"`
	Period     string    `json:"period" validate:"required"`
	Gross      float64   `json:"gross" validate:"gte=0"`
	Deductions float64   `json:"deductions" validate:"gte=0"`
	Net        float64   `json:"net"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreatePayslipRequest struct {
	EmployeeID string  `json:"employee_id" validate:"required"`
	Period     string  `json:"period" validate:"required"`
	Gross      float64 `json:"gross" validate:"gte=0"`
	Deductions float64 `json:"deductions" validate:"gte=0"`
}
