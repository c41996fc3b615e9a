package settlement

import (
	"context"
	"fmt"

	"github.com/hugohenrick/exelo-pos/internal/domain/sale"
	"github.com/hugohenrick/exelo-pos/pkg/gateway"
	"github.com/hugohenrick/exelo-pos/pkg/logger"
	"github.com/shopspring/decimal"
)

// Service liquida vendas avulsas de balcão. Dinheiro conclui na hora;
// cartão abre uma cobrança no gateway e fica aguardando a confirmação
// assíncrona pelo identificador de transação.
type Service struct {
	sales   sale.Repository
	gateway gateway.Gateway
	logger  logger.Logger
}

// NewService cria uma nova instância do serviço de liquidação
func NewService(sales sale.Repository, gw gateway.Gateway, logger logger.Logger) *Service {
	return &Service{
		sales:   sales,
		gateway: gw,
		logger:  logger,
	}
}

// ProcessSale registra uma venda avulsa. Para cartão, a cobrança é
// iniciada no gateway antes de persistir: se o gateway falhar, nada é
// gravado. Retorna a venda e, para cartão, o pagamento pendente.
func (s *Service) ProcessSale(ctx context.Context, merchantID string, amount decimal.Decimal, method sale.PaymentMethod) (*sale.Sale, *sale.Payment, error) {
	newSale, err := sale.NewSale(merchantID, amount, method)
	if err != nil {
		return nil, nil, err
	}

	if method == sale.MethodCash {
		if err := s.sales.CreateSale(ctx, newSale); err != nil {
			return nil, nil, fmt.Errorf("erro ao gravar venda: %w", err)
		}

		s.logger.Info("venda em dinheiro concluída", "sale_id", newSale.ID, "merchant_id", merchantID)
		return newSale, nil, nil
	}

	transactionID, err := s.gateway.Initiate(ctx, amount, merchantID)
	if err != nil {
		return nil, nil, err
	}

	payment := sale.NewPayment(newSale.ID, amount, method, transactionID)

	if err := s.sales.CreateSaleWithPayment(ctx, newSale, payment); err != nil {
		return nil, nil, fmt.Errorf("erro ao gravar venda no cartão: %w", err)
	}

	s.logger.Info("venda no cartão aguardando confirmação",
		"sale_id", newSale.ID, "transaction_id", transactionID)
	return newSale, payment, nil
}

// ConfirmPayment aplica o resultado da confirmação do gateway. Retorna
// sale.ErrPaymentNotFound quando o identificador é desconhecido.
// Confirmações duplicadas com o mesmo resultado são inofensivas: o
// estado final é o mesmo de uma única chamada.
func (s *Service) ConfirmPayment(ctx context.Context, transactionID string, success bool) (*sale.Sale, *sale.Payment, error) {
	confirmedSale, payment, err := s.sales.ConfirmPayment(ctx, transactionID, success)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("pagamento confirmado",
		"transaction_id", transactionID, "success", success)
	return confirmedSale, payment, nil
}
