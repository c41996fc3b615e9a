package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrGatewayUnavailable é retornado quando o gateway externo falha
	ErrGatewayUnavailable = errors.New("gateway de pagamento indisponível")
)

// Gateway define a interface com o gateway externo de cartões. O formato
// de fio do gateway fica encapsulado aqui; o core só conhece o
// identificador de transação devolvido.
type Gateway interface {
	// Initiate inicia uma cobrança e retorna o identificador de transação
	Initiate(ctx context.Context, amount decimal.Decimal, payee string) (string, error)
}

// HTTPGateway implementa Gateway contra o serviço HTTP do gateway
type HTTPGateway struct {
	client *resty.Client
}

// NewHTTPGateway cria o cliente HTTP do gateway
func NewHTTPGateway(baseURL string) *HTTPGateway {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(2)

	return &HTTPGateway{client: client}
}

type initiateRequest struct {
	Amount string `json:"amount"`
	Payee  string `json:"payee"`
}

type initiateResponse struct {
	TransactionID string `json:"transaction_id"`
}

// Initiate implementa Gateway.Initiate
func (g *HTTPGateway) Initiate(ctx context.Context, amount decimal.Decimal, payee string) (string, error) {
	var result initiateResponse

	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(initiateRequest{Amount: amount.String(), Payee: payee}).
		SetResult(&result).
		Post("/charges")

	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusCreated {
		return "", fmt.Errorf("%w: status %d", ErrGatewayUnavailable, resp.StatusCode())
	}

	if result.TransactionID == "" {
		return "", fmt.Errorf("%w: resposta sem transaction_id", ErrGatewayUnavailable)
	}

	return result.TransactionID, nil
}

// LocalGateway implementa Gateway gerando identificadores localmente.
// Usado em desenvolvimento quando GATEWAY_URL não está configurada; a
// confirmação chega pelo mesmo callback do gateway real.
type LocalGateway struct{}

// Initiate implementa Gateway.Initiate
func (LocalGateway) Initiate(_ context.Context, _ decimal.Decimal, _ string) (string, error) {
	return uuid.New().String(), nil
}

// FromEnv escolhe a implementação conforme GATEWAY_URL
func FromEnv() Gateway {
	if url := os.Getenv("GATEWAY_URL"); url != "" {
		return NewHTTPGateway(url)
	}
	return LocalGateway{}
}
