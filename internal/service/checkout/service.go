package checkout

import (
	"context"
	"fmt"

	"github.com/hugohenrick/exelo-pos/internal/domain/cart"
	"github.com/hugohenrick/exelo-pos/internal/domain/inventory"
	"github.com/hugohenrick/exelo-pos/internal/domain/order"
	"github.com/hugohenrick/exelo-pos/internal/domain/pricing"
	"github.com/hugohenrick/exelo-pos/internal/domain/product"
	"github.com/hugohenrick/exelo-pos/pkg/logger"
	"github.com/hugohenrick/exelo-pos/pkg/storage"
)

// Repositories agrupa os repositórios que participam do checkout
type Repositories struct {
	Products  product.Repository
	Inventory inventory.Repository
	Carts     cart.Repository
	Orders    order.Repository
}

// UnitOfWork delimita a fronteira transacional do checkout. Tudo que a
// função recebida executa sobre os repositórios é confirmado ou desfeito
// como um todo: uma falha no meio não deixa estado parcial observável.
type UnitOfWork interface {
	// Repositories retorna os repositórios fora de transação (leituras)
	Repositories() Repositories

	// Run executa fn dentro de uma transação
	Run(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error
}

// Service orquestra o fluxo de checkout: valida o carrinho, confere o
// estoque, precifica, congela o pedido, baixa o estoque e limpa o
// carrinho em uma única unidade atômica.
type Service struct {
	uow    UnitOfWork
	policy pricing.Policy
	blobs  storage.BlobStorage
	logger logger.Logger
}

// NewService cria uma nova instância do serviço de checkout
func NewService(uow UnitOfWork, policy pricing.Policy, blobs storage.BlobStorage, logger logger.Logger) *Service {
	return &Service{
		uow:    uow,
		policy: policy,
		blobs:  blobs,
		logger: logger,
	}
}

// orderLine carrega uma linha do carrinho já resolvida contra o catálogo
type orderLine struct {
	product *product.Product
	qty     int
}

// resolveLines carrega o carrinho e resolve cada linha contra o catálogo.
// Carrinho ausente é tratado como vazio.
func (s *Service) resolveLines(ctx context.Context, r Repositories, merchantID string, location inventory.Location) ([]orderLine, error) {
	c, err := r.Carts.FindByMerchant(ctx, merchantID, location)
	if err != nil {
		if err == cart.ErrCartNotFound {
			return nil, cart.ErrEmptyCart
		}
		return nil, err
	}

	if c.IsEmpty() {
		return nil, cart.ErrEmptyCart
	}

	lines := make([]orderLine, 0, len(c.Lines))
	for _, l := range c.Lines {
		p, err := r.Products.FindByID(ctx, l.ProductID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, orderLine{product: p, qty: l.Quantity})
	}

	return lines, nil
}

func pricingLines(lines []orderLine) []pricing.Line {
	out := make([]pricing.Line, 0, len(lines))
	for _, l := range lines {
		out = append(out, pricing.Line{UnitPrice: l.product.Price, Quantity: l.qty})
	}
	return out
}

// Preview calcula o detalhamento de valores do carrinho sem mutar nada.
// Retorna cart.ErrEmptyCart quando não há linhas.
func (s *Service) Preview(ctx context.Context, merchantID string, location inventory.Location) (pricing.Breakdown, error) {
	lines, err := s.resolveLines(ctx, s.uow.Repositories(), merchantID, location)
	if err != nil {
		return pricing.Breakdown{}, err
	}

	return s.policy.Compute(pricingLines(lines)), nil
}

// PlaceOrder fecha o carrinho como um pedido pago
func (s *Service) PlaceOrder(ctx context.Context, merchantID string, location inventory.Location) (*order.Order, error) {
	return s.place(ctx, merchantID, location, order.StatusPaid, "", "", "")
}

// PlacePendingOrder fecha o carrinho como um pedido pendente de
// pagamento, com a identidade opcional do cliente e sua assinatura.
// A assinatura vai para o blob storage; o pedido guarda só a referência.
func (s *Service) PlacePendingOrder(ctx context.Context, merchantID string, location inventory.Location, customerName, customerMobile string, signature []byte) (*order.Order, error) {
	signatureRef := ""
	if len(signature) > 0 {
		ref, err := s.blobs.Save(ctx, "signature.png", signature)
		if err != nil {
			return nil, fmt.Errorf("erro ao gravar assinatura: %w", err)
		}
		signatureRef = ref
	}

	o, err := s.place(ctx, merchantID, location, order.StatusPending, customerName, customerMobile, signatureRef)
	if err != nil {
		// Checkout abortado: descarta a assinatura para não deixar blob órfão
		if signatureRef != "" {
			if derr := s.blobs.Delete(ctx, signatureRef); derr != nil {
				s.logger.Warn("falha ao descartar assinatura de checkout abortado", "ref", signatureRef, "error", derr.Error())
			}
		}
		return nil, err
	}

	return o, nil
}

// place executa o checkout dentro de uma única transação. O estoque de
// todas as linhas é conferido antes de qualquer baixa; a primeira
// violação aborta com estoque insuficiente e zero mutação. As baixas
// (Reserve) só ficam visíveis no commit, então qualquer falha posterior
// desfaz pedido, baixas e carrinho de uma vez.
func (s *Service) place(ctx context.Context, merchantID string, location inventory.Location, status order.Status, customerName, customerMobile, signatureRef string) (*order.Order, error) {
	var placed *order.Order

	err := s.uow.Run(ctx, func(ctx context.Context, r Repositories) error {
		lines, err := s.resolveLines(ctx, r, merchantID, location)
		if err != nil {
			return err
		}

		for _, l := range lines {
			available, err := r.Inventory.GetQuantity(ctx, l.product.ID, location)
			if err != nil {
				return err
			}
			if available < l.qty {
				return &inventory.InsufficientStockError{ProductName: l.product.Name}
			}
		}

		breakdown := s.policy.Compute(pricingLines(lines))

		o, err := order.NewOrder(merchantID, location, status, breakdown)
		if err != nil {
			return err
		}
		o.CustomerName = customerName
		o.CustomerMobile = customerMobile
		o.SignatureRef = signatureRef

		for _, l := range lines {
			o.AddItem(l.product.ID, l.product.Name, l.qty, l.product.Price)
		}

		if err := r.Orders.Create(ctx, o); err != nil {
			return fmt.Errorf("erro ao gravar pedido: %w", err)
		}

		for _, l := range lines {
			if err := r.Inventory.Reserve(ctx, l.product.ID, location, l.qty, l.product.Name); err != nil {
				return err
			}
		}

		if err := r.Carts.Delete(ctx, merchantID, location); err != nil {
			return fmt.Errorf("erro ao limpar carrinho: %w", err)
		}

		placed = o
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("pedido criado", "order_id", placed.ID, "merchant_id", merchantID, "status", string(status))
	return placed, nil
}

// MarkPaid promove um pedido pendente para pago. Chamado sobre um pedido
// já pago, devolve o pedido inalterado: reenvio de confirmação de
// pagamento não é erro.
func (s *Service) MarkPaid(ctx context.Context, orderID string) (*order.Order, error) {
	r := s.uow.Repositories()

	o, err := r.Orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !o.MarkPaid() {
		return o, nil
	}

	if err := r.Orders.UpdateStatus(ctx, o.ID, order.StatusPaid); err != nil {
		return nil, fmt.Errorf("erro ao atualizar status do pedido: %w", err)
	}

	return o, nil
}

// OrderDetails retorna o pedido e o detalhamento gravado no fechamento.
// Os totais vêm do próprio registro, nunca de um recálculo: mudanças
// posteriores no catálogo ou nas taxas configuradas não alteram uma
// fatura histórica.
func (s *Service) OrderDetails(ctx context.Context, orderID string) (*order.Order, pricing.Breakdown, error) {
	o, err := s.uow.Repositories().Orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, pricing.Breakdown{}, err
	}

	breakdown := pricing.Breakdown{
		Subtotal: o.Subtotal,
		VAT:      o.VAT,
		Fee:      o.Fee,
		Total:    o.Total,
	}

	return o, breakdown, nil
}
