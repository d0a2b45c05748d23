package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dermacare/booking-api/internal/model"
)

func (r *appointmentRepository) Create(ctx context.Context, apt *model.Appointment) error {
	query := `
		INSERT INTO appointments (doc_id, pid, appointment_date, slot_time, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING app_id
	`
	apt.CreatedAt = time.Now()

	err := r.db.QueryRowxContext(ctx, query,
		apt.DoctorID,
		apt.PatientID,
		apt.Date,
		apt.Slot,
		apt.CreatedAt,
	).Scan(&apt.ID)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id int64) (*model.Appointment, error) {
	query := `
		SELECT app_id, doc_id, pid, appointment_date, slot_time, created_at
		FROM appointments
		WHERE app_id = $1
	`
	var apt model.Appointment
	err := r.db.GetContext(ctx, &apt, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &apt, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM appointments
		WHERE app_id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *appointmentRepository) SlotTaken(ctx context.Context, doctorID int64, date time.Time, slot string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE doc_id = $1
			AND appointment_date = $2
			AND slot_time = $3
		)
	`
	var taken bool
	if err := r.db.GetContext(ctx, &taken, query, doctorID, date, slot); err != nil {
		return false, fmt.Errorf("failed to check slot conflict: %w", err)
	}
	return taken, nil
}

func (r *appointmentRepository) BookedSlots(ctx context.Context, doctorID int64, date time.Time) ([]string, error) {
	query := `
		SELECT slot_time
		FROM appointments
		WHERE doc_id = $1
		AND appointment_date = $2
		ORDER BY slot_time
	`
	var slots []string
	if err := r.db.SelectContext(ctx, &slots, query, doctorID, date); err != nil {
		return nil, fmt.Errorf("failed to list booked slots: %w", err)
	}
	return slots, nil
}

func (r *appointmentRepository) ListForPatient(ctx context.Context, patientID int64) ([]*model.Appointment, error) {
	query := `
		SELECT app_id, doc_id, pid, appointment_date, slot_time, created_at
		FROM appointments
		WHERE pid = $1
		ORDER BY appointment_date, slot_time
	`
	var appointments []*model.Appointment
	if err := r.db.SelectContext(ctx, &appointments, query, patientID); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}
