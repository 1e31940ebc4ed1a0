package models

import "time"

type Employee struct {
	ID            string    `json:"id"`
	Name          string    `json:"name" validate:"required,min=2,max=255"`
	Position      string    `json:"position,omitempty"`
	Email         string    `json:"email,omitempty" validate:"omitempty,email"`
	MonthlySalary float64   `json:"monthly_salary" validate:"gte=0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateEmployeeRequest struct {
	Name          string  `json:"name" validate:"required,min=2,max=255"`
	Position      string  `json:"position,omitempty"`
	Email         string  `json:"email,omitempty" validate:"omitempty,email"`
	MonthlySalary float64 `json:"monthly_salary" validate:"gte=0"`
}

type UpdateEmployeeRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Position      *string  `json:"position,omitempty"`
	Email         *string  `json:"email,omitempty" validate:"omitempty,email"`
	MonthlySalary *float64 `json:"monthly_salary,omitempty" validate:"omitempty,gte=0"`
}
