package merchant

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errors.New("nome não pode ser vazio")
	ErrEmptyDocument      = errors.New("documento não pode ser vazio")
	ErrMerchantNotFound   = errors.New("comerciante não encontrado")
	ErrMerchantNotActive  = errors.New("comerciante não está aprovado")
	ErrDuplicateMerchant  = errors.New("comerciante com mesmo documento já existe")
)

// Status representa o estado de aprovação do comerciante
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusBlocked  Status = "blocked"
)

// Merchant representa um comerciante cadastrado na plataforma. Novos
// cadastros entram como pending e passam a operar após aprovação do
// back-office.
type Merchant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewMerchant cria um novo comerciante pendente de aprovação
func NewMerchant(name, document, email, phone string) (*Merchant, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if document == "" {
		return nil, ErrEmptyDocument
	}

	now := time.Now()
	return &Merchant{
		ID:        uuid.New().String(),
		Name:      name,
		Document:  document,
		Email:     email,
		Phone:     phone,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsApproved verifica se o comerciante está aprovado
func (m *Merchant) IsApproved() bool {
	return m.Status == StatusApproved
}

// Approve aprova o comerciante. Aprovar um comerciante já aprovado é um
// no-op: o registro existente é mantido como está.
func (m *Merchant) Approve() bool {
	if m.IsApproved() {
		return false
	}
	m.Status = StatusApproved
	m.UpdatedAt = time.Now()
	return true
}

// Block bloqueia o comerciante
func (m *Merchant) Block() {
	m.Status = StatusBlocked
	m.UpdatedAt = time.Now()
}

// Update atualiza os dados cadastrais do comerciante
func (m *Merchant) Update(name, email, phone string) error {
	if name == "" {
		return ErrEmptyName
	}

	m.Name = name
	m.Email = email
	m.Phone = phone
	m.UpdatedAt = time.Now()
	return nil
}
