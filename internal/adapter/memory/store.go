package memory

import (
	"sync"

	"github.com/hugohenrick/exelo-pos/internal/domain/cart"
	"github.com/hugohenrick/exelo-pos/internal/domain/employee"
	"github.com/hugohenrick/exelo-pos/internal/domain/inventory"
	"github.com/hugohenrick/exelo-pos/internal/domain/merchant"
	"github.com/hugohenrick/exelo-pos/internal/domain/order"
	"github.com/hugohenrick/exelo-pos/internal/domain/product"
	"github.com/hugohenrick/exelo-pos/internal/domain/sale"
)

// Store é a implementação em memória dos repositórios do domínio.
// Usada nos testes de serviço e em modo de desenvolvimento sem
// DATABASE_URL. Um RWMutex único serializa todas as mutações, o que dá
// a mesma disciplina de escritor único que o banco dá com locks de linha.
type Store struct {
	mu sync.RWMutex

	products  map[string]product.Product
	inventory map[string]inventory.Record // chave: productID|location
	carts     map[string]cart.Cart        // chave: merchantID|location
	orders    map[string]order.Order
	sales     map[string]sale.Sale
	payments  map[string]sale.Payment // chave: transactionID
	merchants map[string]merchant.Merchant
	employees map[string]employee.Employee
}

// NewStore cria um novo store vazio
func NewStore() *Store {
	return &Store{
		products:  map[string]product.Product{},
		inventory: map[string]inventory.Record{},
		carts:     map[string]cart.Cart{},
		orders:    map[string]order.Order{},
		sales:     map[string]sale.Sale{},
		payments:  map[string]sale.Payment{},
		merchants: map[string]merchant.Merchant{},
		employees: map[string]employee.Employee{},
	}
}

func invKey(productID string, location inventory.Location) string {
	return productID + "|" + string(location)
}

func cartKey(merchantID string, location inventory.Location) string {
	return merchantID + "|" + string(location)
}

// snapshot tira uma cópia profunda do estado para rollback de unidade
// de trabalho
type snapshot struct {
	products  map[string]product.Product
	inventory map[string]inventory.Record
	carts     map[string]cart.Cart
	orders    map[string]order.Order
	sales     map[string]sale.Sale
	payments  map[string]sale.Payment
	merchants map[string]merchant.Merchant
	employees map[string]employee.Employee
}

func (s *Store) takeSnapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := snapshot{
		products:  make(map[string]product.Product, len(s.products)),
		inventory: make(map[string]inventory.Record, len(s.inventory)),
		carts:     make(map[string]cart.Cart, len(s.carts)),
		orders:    make(map[string]order.Order, len(s.orders)),
		sales:     make(map[string]sale.Sale, len(s.sales)),
		payments:  make(map[string]sale.Payment, len(s.payments)),
		merchants: make(map[string]merchant.Merchant, len(s.merchants)),
		employees: make(map[string]employee.Employee, len(s.employees)),
	}

	for k, v := range s.products {
		snap.products[k] = v
	}
	for k, v := range s.inventory {
		snap.inventory[k] = v
	}
	for k, v := range s.carts {
		snap.carts[k] = cloneCart(v)
	}
	for k, v := range s.orders {
		snap.orders[k] = cloneOrder(v)
	}
	for k, v := range s.sales {
		snap.sales[k] = v
	}
	for k, v := range s.payments {
		snap.payments[k] = v
	}
	for k, v := range s.merchants {
		snap.merchants[k] = v
	}
	for k, v := range s.employees {
		snap.employees[k] = v
	}

	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = snap.products
	s.inventory = snap.inventory
	s.carts = snap.carts
	s.orders = snap.orders
	s.sales = snap.sales
	s.payments = snap.payments
	s.merchants = snap.merchants
	s.employees = snap.employees
}

func cloneCart(c cart.Cart) cart.Cart {
	lines := make([]cart.Line, len(c.Lines))
	copy(lines, c.Lines)
	c.Lines = lines
	return c
}

func cloneOrder(o order.Order) order.Order {
	items := make([]order.Item, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
