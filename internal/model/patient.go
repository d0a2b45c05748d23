package model

// Patient is the stored profile the identity provider's email resolves to.
type Patient struct {
	ID        int64  `db:"pid" json:"pid"`
	Email     string `db:"email" json:"email"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
}
