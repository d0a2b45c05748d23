package model

import (
	"time"
)

// Wire formats shared with the mobile clients.
const (
	DateFormat    = "2006-01-02"
	SlotFormat    = "03:04 PM"
	DisplayFormat = "January 2, 2006"
)

// Appointment is a booked (doctor, date, slot) triple for a patient.
type Appointment struct {
	ID        int64     `db:"app_id" json:"appointment_id"`
	DoctorID  int64     `db:"doc_id" json:"doctor_id"`
	PatientID int64     `db:"pid" json:"patient_id"`
	Date      time.Time `db:"appointment_date" json:"date"`
	Slot      string    `db:"slot_time" json:"time"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// BookAppointmentRequest is the creation payload. Field names follow the
// client contract, not Go convention.
type BookAppointmentRequest struct {
	DoctorID     int64  `json:"doctorId" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	PatientEmail string `json:"patientEmail" binding:"required,email"`
}

// BookingDetails echoes the accepted request back to the caller.
type BookingDetails struct {
	DoctorID  int64  `json:"doctor_id"`
	PatientID int64  `json:"patient_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// BookingConfirmation is the success payload of the booking endpoint.
type BookingConfirmation struct {
	Message       string         `json:"message"`
	AppointmentID int64          `json:"appointment_id"`
	Details       BookingDetails `json:"details"`
}

// BookedSlotsResponse carries the reserved slot labels for one
// (doctor, date) pair.
type BookedSlotsResponse struct {
	BookedSlots []string `json:"booked_slots"`
}

// AppointmentSummary is one row of a patient's appointment listing.
type AppointmentSummary struct {
	AppointmentID int64     `json:"appointment_id"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Doctor        DoctorRef `json:"doctor"`
}

// AppointmentList partitions a patient's appointments around today.
type AppointmentList struct {
	Upcoming []AppointmentSummary `json:"upcoming"`
	Past     []AppointmentSummary `json:"past"`
}
