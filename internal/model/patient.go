package model

// Patient is a pharmacy customer. Contacts live in a separate 1:N table and
// are collapsed into a single comma-delimited string by the list queries;
// the field is nil when the patient has no contact numbers on file.
type Patient struct {
	PID           string  `json:"pid" db:"pid"`
	FirstName     string  `json:"first_name" db:"first_name"`
	LastName      string  `json:"last_name" db:"last_name"`
	Sex           string  `json:"sex" db:"sex"`
	Address       string  `json:"address" db:"address"`
	InsuranceInfo string  `json:"insurance_info" db:"insurance_info"`
	Contacts      *string `json:"contacts" db:"contacts"`
}

type CreatePatientRequest struct {
	PID           string `json:"pid" binding:"required"`
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Sex           string `json:"sex" binding:"required"`
	Address       string `json:"address"`
	Contact       string `json:"contact"`
	InsuranceInfo string `json:"insurance_info"`
}

type UpdatePatientRequest struct {
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Sex           string `json:"sex" binding:"required"`
	Address       string `json:"address"`
	InsuranceInfo string `json:"insurance_info"`
}
