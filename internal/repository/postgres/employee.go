package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pharmadesk/pharmacy-api/internal/model"
	"github.com/pharmadesk/pharmacy-api/internal/repository"
)

type employeeRepository struct {
	db *sqlx.DB
}

func NewEmployeeRepository(db *sqlx.DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, req *model.CreateEmployeeRequest) error {
	query := `
		INSERT INTO employee (employee_id, first_name, last_name, sex, salary)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query, req.EmployeeID, req.FirstName, req.LastName, req.Sex, req.Salary)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

func (r *employeeRepository) Get(ctx context.Context, employeeID string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.GetContext(ctx, &employee, employeeQuery+` WHERE e.employee_id = $1 GROUP BY e.employee_id`, employeeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return &employee, nil
}

func (r *employeeRepository) Update(ctx context.Context, employeeID string, req *model.UpdateEmployeeRequest) error {
	query := `
		UPDATE employee
		SET first_name = $1, last_name = $2, sex = $3, salary = $4
		WHERE employee_id = $5
	`
	_, err := r.db.ExecContext(ctx, query, req.FirstName, req.LastName, req.Sex, req.Salary, employeeID)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, employeeID string) error {
	query := `DELETE FROM employee WHERE employee_id = $1`
	_, err := r.db.ExecContext(ctx, query, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func (r *employeeRepository) List(ctx context.Context) ([]*model.Employee, error) {
	var employees []*model.Employee
	err := r.db.SelectContext(ctx, &employees, employeeQuery+` GROUP BY e.employee_id ORDER BY e.employee_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// employeeQuery collapses the contact numbers and the per-pharmacy shift
// assignments into one delimited string each.
const employeeQuery = `
	SELECT e.employee_id, e.first_name, e.last_name, e.sex, e.salary,
	       string_agg(DISTINCT ec.contact_no, ', ') AS contacts,
	       string_agg(DISTINCT w.phar_id || ' (' || w.shift_start || '-' || w.shift_end || ')', '; ') AS work_info
	FROM employee e
	LEFT JOIN employee_contact ec ON ec.employee_id = e.employee_id
	LEFT JOIN work w ON w.employee_id = e.employee_id
`
