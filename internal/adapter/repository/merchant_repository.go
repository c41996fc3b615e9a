package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/exelo-pos/internal/domain/merchant"
	"github.com/jackc/pgx/v5"
)

// MerchantRepository implementa a interface merchant.Repository
type MerchantRepository struct {
	db DBTX
}

// NewMerchantRepository cria uma nova instância de MerchantRepository
func NewMerchantRepository(db DBTX) merchant.Repository {
	return &MerchantRepository{db: db}
}

const merchantColumns = `id, name, document, email, phone, status, created_at, updated_at`

func scanMerchant(row pgx.Row) (*merchant.Merchant, error) {
	var m merchant.Merchant
	err := row.Scan(&m.ID, &m.Name, &m.Document, &m.Email, &m.Phone, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, merchant.ErrMerchantNotFound
		}
		return nil, fmt.Errorf("erro ao ler comerciante: %w", err)
	}
	return &m, nil
}

// Create implementa merchant.Repository.Create
func (r *MerchantRepository) Create(ctx context.Context, m *merchant.Merchant) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO merchants (`+merchantColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID, m.Name, m.Document, m.Email, m.Phone, m.Status, m.CreatedAt, m.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return merchant.ErrDuplicateMerchant
		}
		return fmt.Errorf("erro ao criar comerciante: %w", err)
	}

	return nil
}

// FindByID implementa merchant.Repository.FindByID
func (r *MerchantRepository) FindByID(ctx context.Context, id string) (*merchant.Merchant, error) {
	return scanMerchant(r.db.QueryRow(ctx,
		`SELECT `+merchantColumns+` FROM merchants WHERE id = $1`, id))
}

// FindByDocument implementa merchant.Repository.FindByDocument
func (r *MerchantRepository) FindByDocument(ctx context.Context, document string) (*merchant.Merchant, error) {
	return scanMerchant(r.db.QueryRow(ctx,
		`SELECT `+merchantColumns+` FROM merchants WHERE document = $1`, document))
}

// List implementa merchant.Repository.List
func (r *MerchantRepository) List(ctx context.Context, limit, offset int) ([]*merchant.Merchant, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+merchantColumns+` FROM merchants
		ORDER BY created_at
		LIMIT $1 OFFSET $2`,
		limit, offset)

	if err != nil {
		return nil, fmt.Errorf("erro ao listar comerciantes: %w", err)
	}
	defer rows.Close()

	var merchants []*merchant.Merchant
	for rows.Next() {
		m, err := scanMerchant(rows)
		if err != nil {
			return nil, err
		}
		merchants = append(merchants, m)
	}

	return merchants, rows.Err()
}

// Update implementa merchant.Repository.Update
func (r *MerchantRepository) Update(ctx context.Context, m *merchant.Merchant) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE merchants
		SET name = $2, email = $3, phone = $4, status = $5, updated_at = $6
		WHERE id = $1`,
		m.ID, m.Name, m.Email, m.Phone, m.Status, m.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao atualizar comerciante: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return merchant.ErrMerchantNotFound
	}

	return nil
}

// UpdateStatus implementa merchant.Repository.UpdateStatus
func (r *MerchantRepository) UpdateStatus(ctx context.Context, id string, status merchant.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE merchants SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status)

	if err != nil {
		return fmt.Errorf("erro ao atualizar status do comerciante: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return merchant.ErrMerchantNotFound
	}

	return nil
}
