package model

// Prescription is append-only; it has no identifier of its own.
type Prescription struct {
	PID      string `json:"pid" db:"pid"`
	DocID    string `json:"doc_id" db:"doc_id"`
	DrugName string `json:"drug_name" db:"drug_name"`
	Date     string `json:"date" db:"date"`
	Quantity int    `json:"quantity" db:"quantity"`
}

type CreatePrescriptionRequest struct {
	PID      string `json:"pid" binding:"required"`
	DocID    string `json:"doc_id" binding:"required"`
	DrugName string `json:"drug_name" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}

// PatientPrescription is a prescription as seen from the patient's history,
// with the doctor's name joined in.
type PatientPrescription struct {
	DrugName   string `json:"drug_name" db:"drug_name"`
	DoctorName string `json:"doctor_name" db:"doctor_name"`
	Date       string `json:"date" db:"date"`
	Quantity   int    `json:"quantity" db:"quantity"`
}
