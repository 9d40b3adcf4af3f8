package model

// Employee with two collapsed 1:N aggregates: contact numbers and shift
// assignments (one "phar_id (start-end)" fragment per pharmacy worked at).
type Employee struct {
	EmployeeID string  `json:"employee_id" db:"employee_id"`
	FirstName  string  `json:"first_name" db:"first_name"`
	LastName   string  `json:"last_name" db:"last_name"`
	Sex        string  `json:"sex" db:"sex"`
	Salary     float64 `json:"salary" db:"salary"`
	Contacts   *string `json:"contacts" db:"contacts"`
	WorkInfo   *string `json:"work_info" db:"work_info"`
}

type CreateEmployeeRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required"`
	FirstName  string  `json:"first_name" binding:"required"`
	LastName   string  `json:"last_name" binding:"required"`
	Sex        string  `json:"sex" binding:"required"`
	Salary     float64 `json:"salary"`
}

type UpdateEmployeeRequest struct {
	FirstName string  `json:"first_name" binding:"required"`
	LastName  string  `json:"last_name" binding:"required"`
	Sex       string  `json:"sex" binding:"required"`
	Salary    float64 `json:"salary"`
}
