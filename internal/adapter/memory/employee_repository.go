package memory

import (
	"context"
	"sort"

	"github.com/hugohenrick/exelo-pos/internal/domain/employee"
)

// EmployeeRepository implementa employee.Repository em memória
type EmployeeRepository struct {
	s *Store
}

// NewEmployeeRepository cria uma nova instância de EmployeeRepository
func NewEmployeeRepository(s *Store) employee.Repository {
	return &EmployeeRepository{s: s}
}

// Create implementa employee.Repository.Create
func (r *EmployeeRepository) Create(_ context.Context, e *employee.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.employees[e.ID] = *e
	return nil
}

// FindByID implementa employee.Repository.FindByID
func (r *EmployeeRepository) FindByID(_ context.Context, id string) (*employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.employees[id]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}

	out := e
	return &out, nil
}

// FindByEmail implementa employee.Repository.FindByEmail
func (r *EmployeeRepository) FindByEmail(_ context.Context, email string) (*employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, e := range r.s.employees {
		if e.Email == email {
			out := e
			return &out, nil
		}
	}

	return nil, employee.ErrEmployeeNotFound
}

// ListByMerchant implementa employee.Repository.ListByMerchant
func (r *EmployeeRepository) ListByMerchant(_ context.Context, merchantID string, limit, offset int) ([]*employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var employees []*employee.Employee
	for _, e := range r.s.employees {
		if e.MerchantID == merchantID {
			out := e
			employees = append(employees, &out)
		}
	}

	sort.Slice(employees, func(i, j int) bool {
		return employees[i].Name < employees[j].Name
	})

	return paginate(employees, limit, offset), nil
}

// Update implementa employee.Repository.Update
func (r *EmployeeRepository) Update(_ context.Context, e *employee.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.employees[e.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}

	r.s.employees[e.ID] = *e
	return nil
}

// Delete implementa employee.Repository.Delete
func (r *EmployeeRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}

	delete(r.s.employees, id)
	return nil
}
