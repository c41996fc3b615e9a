package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/exelo-pos/internal/domain/employee"
	"github.com/jackc/pgx/v5"
)

// EmployeeRepository implementa a interface employee.Repository
type EmployeeRepository struct {
	db DBTX
}

// NewEmployeeRepository cria uma nova instância de EmployeeRepository
func NewEmployeeRepository(db DBTX) employee.Repository {
	return &EmployeeRepository{db: db}
}

const employeeColumns = `id, merchant_id, name, email, password, status, last_login_at, created_at, updated_at`

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(&e.ID, &e.MerchantID, &e.Name, &e.Email, &e.Password,
		&e.Status, &e.LastLoginAt, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("erro ao ler funcionário: %w", err)
	}
	return &e, nil
}

// Create implementa employee.Repository.Create
func (r *EmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO employees (`+employeeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.MerchantID, e.Name, e.Email, e.Password, e.Status,
		e.LastLoginAt, e.CreatedAt, e.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar funcionário: %w", err)
	}

	return nil
}

// FindByID implementa employee.Repository.FindByID
func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return scanEmployee(r.db.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
}

// FindByEmail implementa employee.Repository.FindByEmail
func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return scanEmployee(r.db.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE email = $1`, email))
}

// ListByMerchant implementa employee.Repository.ListByMerchant
func (r *EmployeeRepository) ListByMerchant(ctx context.Context, merchantID string, limit, offset int) ([]*employee.Employee, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+employeeColumns+` FROM employees
		WHERE merchant_id = $1
		ORDER BY name
		LIMIT $2 OFFSET $3`,
		merchantID, limit, offset)

	if err != nil {
		return nil, fmt.Errorf("erro ao listar funcionários: %w", err)
	}
	defer rows.Close()

	var employees []*employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// Update implementa employee.Repository.Update
func (r *EmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE employees
		SET name = $2, email = $3, password = $4, status = $5, last_login_at = $6, updated_at = $7
		WHERE id = $1`,
		e.ID, e.Name, e.Email, e.Password, e.Status, e.LastLoginAt, e.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao atualizar funcionário: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implementa employee.Repository.Delete
func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover funcionário: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
