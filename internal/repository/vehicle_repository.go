package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"backoffice/internal/db"
	"backoffice/internal/interfaces"
	"backoffice/internal/models"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(database *sql.DB) interfaces.VehicleRepository {
	return &vehicleRepository{db: database}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	vehicle.ID = uuid.NewString()
	now := time.Now().UTC()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now

	query := `
		INSERT INTO vehicles (id, name, registration, daily_rate, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		vehicle.ID,
		vehicle.Name,
		vehicle.Registration,
		vehicle.DailyRate,
		vehicle.CreatedAt,
		vehicle.UpdatedAt,
	)
	if err != nil {
		log.Printf("Error creating vehicle: %v", err)
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	query := `
		SELECT id, name, registration, daily_rate, created_at, updated_at
		FROM vehicles
		WHERE id = ?
	`

	var vehicle models.Vehicle
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&vehicle.ID,
		&vehicle.Name,
		&vehicle.Registration,
		&vehicle.DailyRate,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, interfaces.ErrNotFound
		}
		log.Printf("Error getting vehicle: %v", err)
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return &vehicle, nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]models.Vehicle, error) {
	query := `
		SELECT id, name, registration, daily_rate, created_at, updated_at
		FROM vehicles
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("Error listing vehicles: %v", err)
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []models.Vehicle
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(
			&v.ID,
			&v.Name,
			&v.Registration,
			&v.DailyRate,
			&v.CreatedAt,
			&v.UpdatedAt,
		); err != nil {
			log.Printf("Error scanning vehicle: %v", err)
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}

	if err = rows.Err(); err != nil {
		log.Printf("Error iterating vehicles: %v", err)
		return nil, fmt.Errorf("error iterating vehicles: %w", err)
	}

	return vehicles, nil
}

func (r *vehicleRepository) Update(ctx context.Context, id string, req *models.UpdateVehicleRequest) error {
	setValues := []string{}
	args := []interface{}{}

	if req.Name != nil {
		setValues = append(setValues, "name = ?")
		args = append(args, *req.Name)
	}
	if req.Registration != nil {
		setValues = append(setValues, "registration = ?")
		args = append(args, *req.Registration)
	}
	if req.DailyRate != nil {
		setValues = append(setValues, "daily_rate = ?")
		args = append(args, *req.DailyRate)
	}

	if len(setValues) == 0 {
		return fmt.Errorf("no fields to update")
	}

	setValues = append(setValues, "updated_at = ?")
	args = append(args, time.Now().UTC())
	args = append(args, id)

	query := fmt.Sprintf("UPDATE vehicles SET %s WHERE id = ?", strings.Join(setValues, ", "))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error updating vehicle: %v", err)
		return fmt.Errorf("failed to update vehicle: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to update vehicle: %w", err)
	}

	if rowsAffected == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = ?`, id)
	if err != nil {
		if db.IsConstraintViolation(err) {
			return &interfaces.ConstraintViolationError{Op: "delete vehicle", Err: err}
		}
		log.Printf("Error deleting vehicle: %v", err)
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	if rowsAffected == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}
