package checkout_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/hugohenrick/exelo-pos/internal/adapter/memory"
	"github.com/hugohenrick/exelo-pos/internal/domain/cart"
	"github.com/hugohenrick/exelo-pos/internal/domain/inventory"
	"github.com/hugohenrick/exelo-pos/internal/domain/order"
	"github.com/hugohenrick/exelo-pos/internal/domain/pricing"
	"github.com/hugohenrick/exelo-pos/internal/domain/product"
	"github.com/hugohenrick/exelo-pos/internal/service/checkout"
	"github.com/hugohenrick/exelo-pos/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMerchantID = "merchant-1"

// fakeBlobStorage guarda as assinaturas em memória para os testes
type fakeBlobStorage struct {
	blobs map[string][]byte
	seq   int
}

func newFakeBlobStorage() *fakeBlobStorage {
	return &fakeBlobStorage{blobs: map[string][]byte{}}
}

func (f *fakeBlobStorage) Save(_ context.Context, name string, data []byte) (string, error) {
	f.seq++
	ref := fmt.Sprintf("blobs/%d-%s", f.seq, name)
	f.blobs[ref] = data
	return ref, nil
}

func (f *fakeBlobStorage) Delete(_ context.Context, ref string) error {
	delete(f.blobs, ref)
	return nil
}

type fixture struct {
	service *checkout.Service
	store   *memory.Store
	repos   checkout.Repositories
	blobs   *fakeBlobStorage
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.NewStore()
	uow := memory.NewUnitOfWork(store)
	blobs := newFakeBlobStorage()

	return &fixture{
		service: checkout.NewService(uow, pricing.DefaultPolicy(), blobs, logger.NewLogger()),
		store:   store,
		repos:   uow.Repositories(),
		blobs:   blobs,
	}
}

// seedProduct cria um produto com estoque na loja e o coloca no carrinho
func (f *fixture) seedProduct(t *testing.T, name string, price float64, stock, inCart int) *product.Product {
	t.Helper()
	ctx := context.Background()

	p, err := product.NewProduct(testMerchantID, "", name, "", decimal.NewFromFloat(price))
	require.NoError(t, err)
	require.NoError(t, f.repos.Products.Create(ctx, p))

	if stock > 0 {
		_, err = f.repos.Inventory.Increase(ctx, p.ID, inventory.LocationShop, stock)
		require.NoError(t, err)
	}

	if inCart > 0 {
		_, err = f.repos.Carts.Mutate(ctx, testMerchantID, inventory.LocationShop, func(c *cart.Cart) error {
			return c.AddLine(p.ID, inCart)
		})
		require.NoError(t, err)
	}

	return p
}

func TestPreviewEmptyCart(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Preview(context.Background(), testMerchantID, inventory.LocationShop)
	assert.ErrorIs(t, err, cart.ErrEmptyCart)
}

func TestPreviewComputesBreakdown(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "Café", 50, 10, 5)

	breakdown, err := f.service.Preview(context.Background(), testMerchantID, inventory.LocationShop)
	require.NoError(t, err)

	assert.True(t, breakdown.Subtotal.Equal(decimal.NewFromInt(250)), "subtotal: %s", breakdown.Subtotal)
	assert.True(t, breakdown.VAT.Equal(decimal.NewFromInt(25)), "vat: %s", breakdown.VAT)
	assert.True(t, breakdown.Fee.Equal(decimal.NewFromFloat(7.5)), "fee: %s", breakdown.Fee)
	assert.True(t, breakdown.Total.Equal(decimal.NewFromFloat(282.5)), "total: %s", breakdown.Total)
}

func TestPreviewDoesNotMutate(t *testing.T) {
	f := newFixture(t)
	p := f.seedProduct(t, "Café", 50, 10, 5)
	ctx := context.Background()

	_, err := f.service.Preview(ctx, testMerchantID, inventory.LocationShop)
	require.NoError(t, err)

	qty, err := f.repos.Inventory.GetQuantity(ctx, p.ID, inventory.LocationShop)
	require.NoError(t, err)
	assert.Equal(t, 10, qty)

	c, err := f.repos.Carts.FindByMerchant(ctx, testMerchantID, inventory.LocationShop)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Quantity(p.ID))
}

func TestPlaceOrderSuccess(t *testing.T) {
	f := newFixture(t)
	p := f.seedProduct(t, "Café", 50, 10, 5)
	ctx := context.Background()

	o, err := f.service.PlaceOrder(ctx, testMerchantID, inventory.LocationShop)
	require.NoError(t, err)

	assert.Equal(t, order.StatusPaid, o.Status)
	assert.True(t, o.Total.Equal(decimal.NewFromFloat(282.5)), "total: %s", o.Total)
	require.Len(t, o.Items, 1)
	assert.Equal(t, p.Name, o.Items[0].ProductName)
	assert.True(t, o.Items[0].UnitPrice.Equal(p.Price))

	// Estoque baixado
	qty, err := f.repos.Inventory.GetQuantity(ctx, p.ID, inventory.LocationShop)
	require.NoError(t, err)
	assert.Equal(t, 5, qty)

	// Carrinho removido
	_, err = f.repos.Carts.FindByMerchant(ctx, testMerchantID, inventory.LocationShop)
	assert.ErrorIs(t, err, cart.ErrCartNotFound)

	// Pedido persistido
	saved, err := f.repos.Orders.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPaid, saved.Status)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.PlaceOrder(context.Background(), testMerchantID, inventory.LocationShop)
	assert.ErrorIs(t, err, cart.ErrEmptyCart)
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	f := newFixture(t)
	ok := f.seedProduct(t, "Café", 50, 10, 2)
	low := f.seedProduct(t, "Açúcar", 10, 1, 3)
	ctx := context.Background()

	_, err := f.service.PlaceOrder(ctx, testMerchantID, inventory.LocationShop)
	require.Error(t, err)
	assert.True(t, inventory.IsInsufficientStock(err))
	assert.Contains(t, err.Error(), "Açúcar")

	// Nada pode ter sido mutado, nem mesmo as linhas com saldo suficiente
	qty, err := f.repos.Inventory.GetQuantity(ctx, ok.ID, inventory.LocationShop)
	require.NoError(t, err)
	assert.Equal(t, 10, qty)

	qty, err = f.repos.Inventory.GetQuantity(ctx, low.ID, inventory.LocationShop)
	require.NoError(t, err)
	assert.Equal(t, 1, qty)

	c, err := f.repos.Carts.FindByMerchant(ctx, testMerchantID, inventory.LocationShop)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Quantity(ok.ID))

	orders, err := f.repos.Orders.ListByMerchant(ctx, testMerchantID, "", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestPlacePendingOrderWithSignature(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "Café", 50, 10, 1)
	ctx := context.Background()

	signature := []byte{0x89, 0x50, 0x4e, 0x47}
	o, err := f.service.PlacePendingOrder(ctx, testMerchantID, inventory.LocationShop, "Maria", "11999990000", signature)
	require.NoError(t, err)

	assert.Equal(t, order.StatusPending, o.Status)
	assert.Equal(t, "Maria", o.CustomerName)
	assert.Equal(t, "11999990000", o.CustomerMobile)
	require.NotEmpty(t, o.SignatureRef)
	assert.Equal(t, signature, f.blobs.blobs[o.SignatureRef])
}

func TestPlacePendingOrderWithoutSignature(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "Café", 50, 10, 1)

	o, err := f.service.PlacePendingOrder(context.Background(), testMerchantID, inventory.LocationShop, "", "", nil)
	require.NoError(t, err)

	assert.Equal(t, order.StatusPending, o.Status)
	assert.Empty(t, o.SignatureRef)
	assert.Empty(t, f.blobs.blobs)
}

// TestPlacePendingOrderAbortDiscardsSignature verifica que um checkout
// abortado não deixa a assinatura gravada para trás.
func TestPlacePendingOrderAbortDiscardsSignature(t *testing.T) {
	f := newFixture(t)

	signature := []byte{0x89, 0x50, 0x4e, 0x47}
	_, err := f.service.PlacePendingOrder(context.Background(), testMerchantID, inventory.LocationShop, "Maria", "", signature)
	require.ErrorIs(t, err, cart.ErrEmptyCart)

	assert.Empty(t, f.blobs.blobs)
}

func TestPlacePendingOrderAbortOnStockDiscardsSignature(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "Café", 50, 1, 5)

	_, err := f.service.PlacePendingOrder(context.Background(), testMerchantID, inventory.LocationShop, "", "", []byte{0x01})
	require.Error(t, err)
	assert.True(t, inventory.IsInsufficientStock(err))

	assert.Empty(t, f.blobs.blobs)
}

func TestMarkPaid(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "Café", 50, 10, 1)
	ctx := context.Background()

	o, err := f.service.PlacePendingOrder(ctx, testMerchantID, inventory.LocationShop, "", "", nil)
	require.NoError(t, err)

	paid, err := f.service.MarkPaid(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPaid, paid.Status)

	// Reenvio da confirmação não é erro e não altera o pedido
	again, err := f.service.MarkPaid(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPaid, again.Status)
}

func TestMarkPaidNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.MarkPaid(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestOrderDetailsFrozenPrices(t *testing.T) {
	f := newFixture(t)
	p := f.seedProduct(t, "Café", 50, 10, 5)
	ctx := context.Background()

	o, err := f.service.PlaceOrder(ctx, testMerchantID, inventory.LocationShop)
	require.NoError(t, err)

	// Mudança posterior de preço no catálogo não afeta o pedido histórico
	require.NoError(t, p.Update(p.Name, p.Barcode, p.CategoryID, decimal.NewFromInt(99)))
	require.NoError(t, f.repos.Products.Update(ctx, p))

	saved, breakdown, err := f.service.OrderDetails(ctx, o.ID)
	require.NoError(t, err)

	assert.True(t, saved.Items[0].UnitPrice.Equal(decimal.NewFromInt(50)))
	assert.True(t, breakdown.Subtotal.Equal(decimal.NewFromInt(250)), "subtotal: %s", breakdown.Subtotal)
	assert.True(t, breakdown.Total.Equal(decimal.NewFromFloat(282.5)), "total: %s", breakdown.Total)
}

// TestOrderDetailsSurvivesPolicyChange verifica que o detalhamento de um
// pedido histórico vem dos totais gravados, não de um recálculo com as
// taxas vigentes.
func TestOrderDetailsSurvivesPolicyChange(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "Café", 50, 10, 5)
	ctx := context.Background()

	o, err := f.service.PlaceOrder(ctx, testMerchantID, inventory.LocationShop)
	require.NoError(t, err)

	// Serviço com taxas diferentes lendo o mesmo pedido
	changed := pricing.Policy{
		VATRate: decimal.NewFromFloat(0.20),
		FeeRate: decimal.NewFromFloat(0.05),
	}
	other := checkout.NewService(memory.NewUnitOfWork(f.store), changed, f.blobs, logger.NewLogger())

	_, breakdown, err := other.OrderDetails(ctx, o.ID)
	require.NoError(t, err)

	assert.True(t, breakdown.VAT.Equal(decimal.NewFromInt(25)), "vat: %s", breakdown.VAT)
	assert.True(t, breakdown.Fee.Equal(decimal.NewFromFloat(7.5)), "fee: %s", breakdown.Fee)
	assert.True(t, breakdown.Total.Equal(decimal.NewFromFloat(282.5)), "total: %s", breakdown.Total)
}

func TestCheckoutLocationsAreIndependent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := product.NewProduct(testMerchantID, "", "Café", "", decimal.NewFromInt(10))
	require.NoError(t, err)
	require.NoError(t, f.repos.Products.Create(ctx, p))

	// Saldo só no depósito; carrinho aponta para a loja
	_, err = f.repos.Inventory.Increase(ctx, p.ID, inventory.LocationStock, 10)
	require.NoError(t, err)

	_, err = f.repos.Carts.Mutate(ctx, testMerchantID, inventory.LocationShop, func(c *cart.Cart) error {
		return c.AddLine(p.ID, 1)
	})
	require.NoError(t, err)

	_, err = f.service.PlaceOrder(ctx, testMerchantID, inventory.LocationShop)
	require.Error(t, err)
	assert.True(t, inventory.IsInsufficientStock(err))

	qty, err := f.repos.Inventory.GetQuantity(ctx, p.ID, inventory.LocationStock)
	require.NoError(t, err)
	assert.Equal(t, 10, qty)
}
