package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dermacare/booking-api/internal/model"
)

var ErrNotFound = errors.New("not found")

func (r *doctorRepository) Get(ctx context.Context, id int64) (*model.Doctor, error) {
	query := `
		SELECT doc_id, first_name, last_name, clinic_name, city, specialty, years_of_experience
		FROM doctors
		WHERE doc_id = $1
	`
	var doctor model.Doctor
	err := r.db.GetContext(ctx, &doctor, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) SearchByCity(ctx context.Context, city string) ([]*model.Doctor, error) {
	query := `
		SELECT doc_id, first_name, last_name, clinic_name, city, specialty, years_of_experience
		FROM doctors
		WHERE city ILIKE '%' || $1 || '%'
		ORDER BY doc_id
	`
	var doctors []*model.Doctor
	if err := r.db.SelectContext(ctx, &doctors, query, city); err != nil {
		return nil, fmt.Errorf("failed to search doctors: %w", err)
	}
	return doctors, nil
}
