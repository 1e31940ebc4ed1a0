package interfaces

import (
	"context"

	"backoffice/internal/models"
)

// EmployeeRepository defines the interface for employee data operations
type EmployeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id string) (*models.Employee, error)
	List(ctx context.Context) ([]models.Employee, error)
	Update(ctx context.Context, id string, req *models.UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string) error
}

// PayslipRepository defines the interface for payslip data operations.
// Payslips are immutable once issued, so there is no update.
type PayslipRepository interface {
	Create(ctx context.Context, payslip *models.Payslip) error
	GetByID(ctx context.Context, id string) (*models.Payslip, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]models.Payslip, error)
	Delete(ctx context.Context, id string) error
}
