package employee

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyName          = errors.New("nome não pode ser vazio")
	ErrEmptyEmail         = errors.New("email não pode ser vazio")
	ErrEmployeeNotFound   = errors.New("funcionário não encontrado")
	ErrInvalidCredentials = errors.New("credenciais inválidas")
)

// Status representa o status do funcionário
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Employee representa um funcionário de um comerciante. É a identidade
// que autentica no sistema e opera o ponto de venda.
type Employee struct {
	ID          string    `json:"id"`
	MerchantID  string    `json:"merchant_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Password    string    `json:"-"` // O campo senha não é retornado nas respostas JSON
	Status      Status    `json:"status"`
	LastLoginAt time.Time `json:"last_login_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewEmployee cria um novo funcionário com a senha já em hash
func NewEmployee(merchantID, name, email, password string) (*Employee, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if email == "" {
		return nil, ErrEmptyEmail
	}

	now := time.Now()
	e := &Employee{
		ID:         uuid.New().String(),
		MerchantID: merchantID,
		Name:       name,
		Email:      email,
		Status:     StatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := e.SetPassword(password); err != nil {
		return nil, err
	}

	return e, nil
}

// SetPassword configura a senha do funcionário com hash
func (e *Employee) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	e.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (e *Employee) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(e.Password), []byte(password))
	return err == nil
}

// IsActive verifica se o funcionário está ativo
func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}

// RegisterLogin registra o momento do último login
func (e *Employee) RegisterLogin() {
	e.LastLoginAt = time.Now()
	e.UpdatedAt = e.LastLoginAt
}
