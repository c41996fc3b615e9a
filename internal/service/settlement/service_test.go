package settlement

import (
	"context"
	"errors"
	"testing"

	"github.com/hugohenrick/exelo-pos/internal/adapter/memory"
	"github.com/hugohenrick/exelo-pos/internal/domain/sale"
	"github.com/hugohenrick/exelo-pos/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMerchantID = "merchant-1"

// fakeGateway devolve um identificador fixo ou um erro configurado
type fakeGateway struct {
	transactionID string
	err           error
	calls         int
}

func (f *fakeGateway) Initiate(_ context.Context, _ decimal.Decimal, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.transactionID, nil
}

func newService(gw *fakeGateway) (*Service, sale.Repository) {
	sales := memory.NewSaleRepository(memory.NewStore())
	return NewService(sales, gw, logger.NewLogger()), sales
}

func TestProcessSaleCash(t *testing.T) {
	gw := &fakeGateway{transactionID: "tx-1"}
	service, sales := newService(gw)
	ctx := context.Background()

	s, payment, err := service.ProcessSale(ctx, testMerchantID, decimal.NewFromInt(100), sale.MethodCash)
	require.NoError(t, err)

	// Dinheiro liquida na hora, sem passar pelo gateway
	assert.True(t, s.IsCompleted)
	assert.Nil(t, payment)
	assert.Zero(t, gw.calls)

	saved, err := sales.FindSaleByID(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, saved.IsCompleted)
}

func TestProcessSaleCard(t *testing.T) {
	gw := &fakeGateway{transactionID: "tx-1"}
	service, sales := newService(gw)
	ctx := context.Background()

	s, payment, err := service.ProcessSale(ctx, testMerchantID, decimal.NewFromInt(100), sale.MethodCard)
	require.NoError(t, err)

	assert.False(t, s.IsCompleted)
	require.NotNil(t, payment)
	assert.Equal(t, "tx-1", payment.TransactionID)
	assert.False(t, payment.IsSuccessful)
	assert.Equal(t, 1, gw.calls)

	saved, err := sales.FindPaymentByTransactionID(ctx, "tx-1")
	require.NoError(t, err)
	assert.Equal(t, s.ID, saved.SaleID)
}

func TestProcessSaleCardGatewayFailure(t *testing.T) {
	gw := &fakeGateway{err: errors.New("gateway fora do ar")}
	service, sales := newService(gw)
	ctx := context.Background()

	_, _, err := service.ProcessSale(ctx, testMerchantID, decimal.NewFromInt(100), sale.MethodCard)
	require.Error(t, err)

	// Falha no gateway não deixa venda registrada
	list, err := sales.ListByMerchant(ctx, testMerchantID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProcessSaleInvalidAmount(t *testing.T) {
	gw := &fakeGateway{transactionID: "tx-1"}
	service, _ := newService(gw)

	_, _, err := service.ProcessSale(context.Background(), testMerchantID, decimal.Zero, sale.MethodCash)
	assert.ErrorIs(t, err, sale.ErrInvalidAmount)
}

func TestConfirmPaymentSuccess(t *testing.T) {
	gw := &fakeGateway{transactionID: "tx-1"}
	service, _ := newService(gw)
	ctx := context.Background()

	created, _, err := service.ProcessSale(ctx, testMerchantID, decimal.NewFromInt(100), sale.MethodCard)
	require.NoError(t, err)

	s, payment, err := service.ConfirmPayment(ctx, "tx-1", true)
	require.NoError(t, err)

	assert.Equal(t, created.ID, s.ID)
	assert.True(t, s.IsCompleted)
	assert.True(t, s.IsSuccessful)
	assert.True(t, payment.IsSuccessful)
}

func TestConfirmPaymentFailure(t *testing.T) {
	gw := &fakeGateway{transactionID: "tx-1"}
	service, _ := newService(gw)
	ctx := context.Background()

	_, _, err := service.ProcessSale(ctx, testMerchantID, decimal.NewFromInt(100), sale.MethodCard)
	require.NoError(t, err)

	s, payment, err := service.ConfirmPayment(ctx, "tx-1", false)
	require.NoError(t, err)

	// Cobrança recusada: a venda segue incompleta
	assert.False(t, s.IsCompleted)
	assert.False(t, payment.IsSuccessful)
}

func TestConfirmPaymentIdempotent(t *testing.T) {
	gw := &fakeGateway{transactionID: "tx-1"}
	service, _ := newService(gw)
	ctx := context.Background()

	_, _, err := service.ProcessSale(ctx, testMerchantID, decimal.NewFromInt(100), sale.MethodCard)
	require.NoError(t, err)

	first, _, err := service.ConfirmPayment(ctx, "tx-1", true)
	require.NoError(t, err)

	second, _, err := service.ConfirmPayment(ctx, "tx-1", true)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.IsCompleted)
	assert.True(t, second.IsSuccessful)
}

func TestConfirmPaymentUnknownTransaction(t *testing.T) {
	gw := &fakeGateway{transactionID: "tx-1"}
	service, _ := newService(gw)

	_, _, err := service.ConfirmPayment(context.Background(), "desconhecido", true)
	assert.ErrorIs(t, err, sale.ErrPaymentNotFound)
}
