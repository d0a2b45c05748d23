package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dermacare/booking-api/internal/model"
)

type DoctorRepository interface {
	Get(ctx context.Context, id int64) (*model.Doctor, error)
	SearchByCity(ctx context.Context, city string) ([]*model.Doctor, error)
}

type PatientRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.Patient, error)
	Get(ctx context.Context, id int64) (*model.Patient, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, apt *model.Appointment) error
	Get(ctx context.Context, id int64) (*model.Appointment, error)
	Delete(ctx context.Context, id int64) error
	SlotTaken(ctx context.Context, doctorID int64, date time.Time, slot string) (bool, error)
	BookedSlots(ctx context.Context, doctorID int64, date time.Time) ([]string, error)
	ListForPatient(ctx context.Context, patientID int64) ([]*model.Appointment, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *model.OutboxEvent) error
	GetPendingEventsWithLock(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, errMsg *string) error
	DeleteProcessedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
