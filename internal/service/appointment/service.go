package appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/dermacare/booking-api/internal/model"
	"github.com/dermacare/booking-api/internal/repository"
	"github.com/dermacare/booking-api/pkg/errors"
	"github.com/dermacare/booking-api/pkg/metrics"
)

type Service struct {
	repo        repository.AppointmentRepository
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
	outboxRepo  repository.OutboxRepository
	slotCache   *gocache.Cache
	metrics     *metrics.Metrics
}

func NewService(
	repo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	outboxRepo repository.OutboxRepository,
	slotTTL time.Duration,
	m *metrics.Metrics,
) *Service {
	return &Service{
		repo:        repo,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
		outboxRepo:  outboxRepo,
		slotCache:   gocache.New(slotTTL, 2*slotTTL),
		metrics:     m,
	}
}

// Book validates the request, rejects slot conflicts and creates the
// appointment. The returned confirmation mirrors what the mobile clients
// already parse.
func (s *Service) Book(ctx context.Context, req *model.BookAppointmentRequest) (*model.BookingConfirmation, error) {
	date, err := time.Parse(model.DateFormat, req.Date)
	if err != nil {
		return nil, errors.BadRequest("Invalid date format. Use YYYY-MM-DD", err)
	}

	if _, err := time.Parse(model.SlotFormat, req.Time); err != nil {
		return nil, errors.BadRequest("Invalid time format. Use HH:MM AM/PM", err)
	}

	patient, err := s.patientRepo.GetByEmail(ctx, req.PatientEmail)
	if err != nil {
		return nil, errors.NotFound(fmt.Sprintf("Patient with email %s", req.PatientEmail), err)
	}

	taken, err := s.repo.SlotTaken(ctx, req.DoctorID, date, req.Time)
	if err != nil {
		return nil, errors.Internal(fmt.Errorf("failed to check slot conflict: %w", err))
	}
	if taken {
		s.metrics.BookingConflicts.Inc()
		return nil, errors.Conflict("This time slot is already booked", nil)
	}

	apt := &model.Appointment{
		DoctorID:  req.DoctorID,
		PatientID: patient.ID,
		Date:      date,
		Slot:      req.Time,
	}
	if err := s.repo.Create(ctx, apt); err != nil {
		return nil, errors.Internal(fmt.Errorf("failed to book appointment: %w", err))
	}

	s.slotCache.Delete(slotCacheKey(req.DoctorID, req.Date))
	s.metrics.BookingsCreated.Inc()

	s.emitEvent(ctx, model.EventAppointmentBooked, apt, req.PatientEmail)

	return &model.BookingConfirmation{
		Message:       "Appointment booked successfully",
		AppointmentID: apt.ID,
		Details: model.BookingDetails{
			DoctorID:  req.DoctorID,
			PatientID: patient.ID,
			Date:      req.Date,
			Time:      req.Time,
		},
	}, nil
}

// BookedSlots returns the reserved slot labels for one (doctor, date) pair,
// served from a short-TTL cache when possible.
func (s *Service) BookedSlots(ctx context.Context, doctorID int64, dateStr string) ([]string, error) {
	date, err := time.Parse(model.DateFormat, dateStr)
	if err != nil {
		return nil, errors.BadRequest("Invalid date format. Use YYYY-MM-DD", err)
	}

	key := slotCacheKey(doctorID, dateStr)
	if cached, ok := s.slotCache.Get(key); ok {
		s.metrics.SlotCacheHits.Inc()
		s.metrics.SlotLookups.WithLabelValues("cache").Inc()
		return cached.([]string), nil
	}

	timer := time.Now()
	slots, err := s.repo.BookedSlots(ctx, doctorID, date)
	if err != nil {
		s.metrics.DatabaseOperations.WithLabelValues("booked_slots", "error").Inc()
		return nil, errors.Internal(fmt.Errorf("error fetching available slots: %w", err))
	}
	s.metrics.DatabaseOperations.WithLabelValues("booked_slots", "success").Inc()
	s.metrics.SlotLookups.WithLabelValues("database").Inc()
	s.metrics.SlotLookupDuration.Observe(time.Since(timer).Seconds())

	if slots == nil {
		slots = []string{}
	}
	s.slotCache.SetDefault(key, slots)
	return slots, nil
}

// ListForPatient partitions a patient's appointments into upcoming and past
// around today's date.
func (s *Service) ListForPatient(ctx context.Context, email string) (*model.AppointmentList, error) {
	patient, err := s.patientRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.NotFound("Patient", err)
	}

	appointments, err := s.repo.ListForPatient(ctx, patient.ID)
	if err != nil {
		return nil, errors.Internal(fmt.Errorf("failed to list appointments: %w", err))
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	list := &model.AppointmentList{
		Upcoming: []model.AppointmentSummary{},
		Past:     []model.AppointmentSummary{},
	}
	doctors := make(map[int64]*model.Doctor)

	for _, apt := range appointments {
		ref := model.DoctorRef{}
		doc, ok := doctors[apt.DoctorID]
		if !ok {
			doc, err = s.doctorRepo.Get(ctx, apt.DoctorID)
			if err != nil {
				doc = nil
			}
			doctors[apt.DoctorID] = doc
		}
		if doc != nil {
			ref = model.DoctorRef{
				FirstName:  doc.FirstName,
				LastName:   doc.LastName,
				ClinicName: doc.ClinicName,
			}
		}

		summary := model.AppointmentSummary{
			AppointmentID: apt.ID,
			Date:          apt.Date.Format(model.DateFormat),
			Time:          apt.Slot,
			Doctor:        ref,
		}

		if !apt.Date.Before(today) {
			list.Upcoming = append(list.Upcoming, summary)
		} else {
			list.Past = append(list.Past, summary)
		}
	}

	return list, nil
}

// Cancel deletes an appointment by its server-generated id and returns the
// confirmation message naming the doctor, clinic and city.
func (s *Service) Cancel(ctx context.Context, appointmentID int64) (string, error) {
	apt, err := s.repo.Get(ctx, appointmentID)
	if err != nil {
		return "", errors.NotFound("Appointment", err)
	}

	doctorName := "Unknown doctor"
	clinic := "Unknown clinic"
	city := "Unknown location"
	if doc, err := s.doctorRepo.Get(ctx, apt.DoctorID); err == nil {
		doctorName = fmt.Sprintf("Dr. %s %s", doc.FirstName, doc.LastName)
		clinic = doc.ClinicName
		city = doc.City
	}

	if err := s.repo.Delete(ctx, appointmentID); err != nil {
		return "", errors.Internal(fmt.Errorf("failed to cancel appointment: %w", err))
	}

	s.slotCache.Delete(slotCacheKey(apt.DoctorID, apt.Date.Format(model.DateFormat)))
	s.metrics.BookingsCanceled.Inc()

	s.emitEvent(ctx, model.EventAppointmentCancelled, apt, "")

	return fmt.Sprintf("You have cancelled the appointment with %s at %s in %s", doctorName, clinic, city), nil
}

// emitEvent records an outbox event for the notification worker. Event
// failures never fail the booking itself.
func (s *Service) emitEvent(ctx context.Context, eventType string, apt *model.Appointment, patientEmail string) {
	payload := model.AppointmentEventPayload{
		AppointmentID: apt.ID,
		PatientEmail:  patientEmail,
		Date:          apt.Date.Format(model.DateFormat),
		Time:          apt.Slot,
	}
	if doc, err := s.doctorRepo.Get(ctx, apt.DoctorID); err == nil {
		payload.DoctorName = fmt.Sprintf("Dr. %s %s", doc.FirstName, doc.LastName)
		payload.ClinicName = doc.ClinicName
		payload.City = doc.City
	}
	if patientEmail == "" {
		if patient, err := s.patientRepo.Get(ctx, apt.PatientID); err == nil {
			payload.PatientEmail = patient.Email
		}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}
	_ = s.outboxRepo.Create(ctx, &model.OutboxEvent{
		EventType: eventType,
		Payload:   raw,
	})
}

func slotCacheKey(doctorID int64, date string) string {
	return fmt.Sprintf("%d:%s", doctorID, date)
}
