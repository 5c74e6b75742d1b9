package models

// Customer is one entry in the customer directory. RegistrationDate is
// always a normalized YYYY-MM-DD string so date comparisons can stay
// lexicographic.
type Customer struct {
	ID               int    `json:"id" db:"id"`
	FullName         string `json:"full_name" db:"full_name"`
	ContactInfo      string `json:"contact_info" db:"contact_info"`
	Email            string `json:"email" db:"email"`
	Phone            string `json:"phone" db:"phone"`
	RegistrationDate string `json:"registration_date" db:"registration_date"`
	Notes            string `json:"notes" db:"notes"`
}
