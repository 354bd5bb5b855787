// Пакет cart — корзина витрины: строки в порядке добавления, слияние по id товара.
package cart

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/pkg/metrics"
)

var (
	// ErrInvalidAmount — приращение должно быть положительным.
	ErrInvalidAmount = errors.New("cart: amount must be positive")
	// ErrEmptyProductID — строка без id товара.
	ErrEmptyProductID = errors.New("cart: product id is required")
)

// UnknownStockCeiling — потолок, когда остаток товара неизвестен (amount == 0).
const UnknownStockCeiling = 99

// Store — корзина. Безопасна для конкурентного использования.
// Инвариант: в корзине нет строк с amount <= 0.
type Store struct {
	mu    sync.RWMutex
	lines []domain.CartLine
	index map[string]int // productID -> позиция в lines
}

func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// AddProduct — существующая строка увеличивается на line.Amount, иначе добавляется новая.
// Потолок по остатку здесь не проверяется: это делает вызывающий через MaxAddable.
func (s *Store) AddProduct(line domain.CartLine) error {
	if line.ProductID == "" {
		return ErrEmptyProductID
	}
	if line.Amount <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidAmount, line.Amount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[line.ProductID]; ok {
		s.lines[i].Amount += line.Amount
	} else {
		s.index[line.ProductID] = len(s.lines)
		s.lines = append(s.lines, line)
	}
	metrics.CartOps.WithLabelValues("add").Inc()
	return nil
}

// SetAmount — установить количество; n <= 0 удаляет строку.
func (s *Store) SetAmount(productID string, n int) error {
	if productID == "" {
		return ErrEmptyProductID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[productID]
	switch {
	case n <= 0 && ok:
		s.removeAtLocked(i)
	case n <= 0:
	case ok:
		s.lines[i].Amount = n
	default:
		s.index[productID] = len(s.lines)
		s.lines = append(s.lines, domain.CartLine{ProductID: productID, Amount: n})
	}
	metrics.CartOps.WithLabelValues("set").Inc()
	return nil
}

// RemoveProducts — безусловная очистка корзины.
func (s *Store) RemoveProducts() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.index = make(map[string]int)
	metrics.CartOps.WithLabelValues("clear").Inc()
}

// Lines — копия строк в порядке добавления.
func (s *Store) Lines() []domain.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Amount — количество товара в корзине (0, если строки нет).
func (s *Store) Amount(productID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i, ok := s.index[productID]; ok {
		return s.lines[i].Amount
	}
	return 0
}

// Len — число строк.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines)
}

// MaxAddable — сколько ещё можно добавить: (остаток или 99, если он неизвестен) минус уже лежащее в корзине.
func (s *Store) MaxAddable(p domain.Product) int {
	ceiling := p.Amount
	if ceiling <= 0 {
		ceiling = UnknownStockCeiling
	}
	if rest := ceiling - s.Amount(p.ID); rest > 0 {
		return rest
	}
	return 0
}

// ClampToStock — приводит строки к актуальным остаткам.
// Строка выше остатка урезается; нулевой остаток означает «неизвестен» и даёт потолок 99, как в MaxAddable.
// Товары, которых нет в products, не трогаются. Возвращает true, если корзина изменилась.
func (s *Store) ClampToStock(products []domain.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range products {
		p := &products[i]
		idx, ok := s.index[p.ID]
		if !ok {
			continue
		}
		ceiling := p.Amount
		if ceiling <= 0 {
			ceiling = UnknownStockCeiling
		}
		if s.lines[idx].Amount <= ceiling {
			continue
		}
		s.lines[idx].Amount = ceiling
		changed = true
	}
	if changed {
		metrics.CartOps.WithLabelValues("clamp").Inc()
	}
	return changed
}

// removeAtLocked — удаление с сохранением порядка и пересчётом индекса.
func (s *Store) removeAtLocked(i int) {
	delete(s.index, s.lines[i].ProductID)
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	for j := i; j < len(s.lines); j++ {
		s.index[s.lines[j].ProductID] = j
	}
}
