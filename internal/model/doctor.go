package model

// Doctor with specialities collapsed into one comma-delimited string by the
// list queries; nil when the doctor has none.
type Doctor struct {
	DocID        string  `json:"doc_id" db:"doc_id"`
	Name         string  `json:"d_name" db:"d_name"`
	Specialities *string `json:"specialities" db:"specialities"`
}

type CreateDoctorRequest struct {
	DocID        string   `json:"doc_id" binding:"required"`
	Name         string   `json:"d_name" binding:"required"`
	Specialities []string `json:"specialities"`
}

type UpdateDoctorRequest struct {
	Name string `json:"d_name" binding:"required"`
}
