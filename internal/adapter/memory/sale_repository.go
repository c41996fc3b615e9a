package memory

import (
	"context"
	"sort"
	"time"

	"github.com/hugohenrick/exelo-pos/internal/domain/sale"
)

// SaleRepository implementa sale.Repository em memória
type SaleRepository struct {
	s *Store
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(s *Store) sale.Repository {
	return &SaleRepository{s: s}
}

// CreateSale implementa sale.Repository.CreateSale
func (r *SaleRepository) CreateSale(_ context.Context, s *sale.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.sales[s.ID] = *s
	return nil
}

// CreateSaleWithPayment implementa sale.Repository.CreateSaleWithPayment.
// Venda e pagamento entram sob o mesmo lock, nunca um sem o outro.
func (r *SaleRepository) CreateSaleWithPayment(_ context.Context, s *sale.Sale, p *sale.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.sales[s.ID] = *s
	r.s.payments[p.TransactionID] = *p
	return nil
}

// FindSaleByID implementa sale.Repository.FindSaleByID
func (r *SaleRepository) FindSaleByID(_ context.Context, id string) (*sale.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	s, ok := r.s.sales[id]
	if !ok {
		return nil, sale.ErrSaleNotFound
	}

	out := s
	return &out, nil
}

// FindPaymentByTransactionID implementa sale.Repository.FindPaymentByTransactionID
func (r *SaleRepository) FindPaymentByTransactionID(_ context.Context, transactionID string) (*sale.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.payments[transactionID]
	if !ok {
		return nil, sale.ErrPaymentNotFound
	}

	out := p
	return &out, nil
}

// ConfirmPayment implementa sale.Repository.ConfirmPayment. Pagamento e
// venda pai são atualizados sob o mesmo lock; reconfirmar com o mesmo
// resultado deixa o estado como está.
func (r *SaleRepository) ConfirmPayment(_ context.Context, transactionID string, success bool) (*sale.Sale, *sale.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.payments[transactionID]
	if !ok {
		return nil, nil, sale.ErrPaymentNotFound
	}

	s, ok := r.s.sales[p.SaleID]
	if !ok {
		return nil, nil, sale.ErrSaleNotFound
	}

	p.IsSuccessful = success
	p.UpdatedAt = time.Now()
	r.s.payments[transactionID] = p

	if success {
		s.Complete()
		r.s.sales[s.ID] = s
	}

	outSale, outPayment := s, p
	return &outSale, &outPayment, nil
}

// ListByMerchant implementa sale.Repository.ListByMerchant
func (r *SaleRepository) ListByMerchant(_ context.Context, merchantID string, limit, offset int) ([]*sale.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var sales []*sale.Sale
	for _, s := range r.s.sales {
		if s.MerchantID == merchantID {
			out := s
			sales = append(sales, &out)
		}
	}

	sort.Slice(sales, func(i, j int) bool {
		return sales[i].CreatedAt.After(sales[j].CreatedAt)
	})

	return paginate(sales, limit, offset), nil
}
