package model

// Doctor is immutable reference data supplied by the directory service.
type Doctor struct {
	ID                int64  `db:"doc_id" json:"doc_id"`
	FirstName         string `db:"first_name" json:"first_name"`
	LastName          string `db:"last_name" json:"last_name"`
	ClinicName        string `db:"clinic_name" json:"clinic_name"`
	City              string `db:"city" json:"city"`
	Specialty         string `db:"specialty" json:"specialty"`
	YearsOfExperience int    `db:"years_of_experience" json:"years_of_experience"`
}

// DoctorRef is the abbreviated doctor shape embedded in appointment listings.
type DoctorRef struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	ClinicName string `json:"clinic_name"`
}
