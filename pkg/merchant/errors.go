package merchant

import "errors"

// Erros comuns relacionados ao contexto de comerciante
var (
	// ErrMerchantNotSpecified ocorre quando o ID do comerciante não é fornecido
	ErrMerchantNotSpecified = errors.New("ID do comerciante não especificado")

	// ErrMerchantNotFound ocorre quando o comerciante não é encontrado
	ErrMerchantNotFound = errors.New("comerciante não encontrado")

	// ErrMerchantNotApproved ocorre quando o comerciante ainda não foi aprovado
	ErrMerchantNotApproved = errors.New("comerciante não está aprovado")
)
