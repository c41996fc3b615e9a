package sale

import (
	"context"
)

// Repository define a interface para persistência de vendas avulsas e
// seus pagamentos
type Repository interface {
	// CreateSale grava uma nova venda em dinheiro (sem pagamento associado)
	CreateSale(ctx context.Context, s *Sale) error

	// CreateSaleWithPayment grava uma venda no cartão e seu registro de
	// pagamento na mesma unidade atômica
	CreateSaleWithPayment(ctx context.Context, s *Sale, p *Payment) error

	// FindSaleByID busca uma venda pelo ID.
	// Retorna ErrSaleNotFound quando não existe.
	FindSaleByID(ctx context.Context, id string) (*Sale, error)

	// FindPaymentByTransactionID busca um pagamento pelo identificador de
	// transação do gateway. Retorna ErrPaymentNotFound quando não existe.
	FindPaymentByTransactionID(ctx context.Context, transactionID string) (*Payment, error)

	// ConfirmPayment grava o resultado da confirmação: atualiza o
	// pagamento e, em caso de sucesso, conclui a venda pai na mesma
	// unidade atômica. Retorna a venda e o pagamento atualizados.
	ConfirmPayment(ctx context.Context, transactionID string, success bool) (*Sale, *Payment, error)

	// ListByMerchant lista as vendas de um comerciante com paginação
	ListByMerchant(ctx context.Context, merchantID string, limit, offset int) ([]*Sale, error)
}
