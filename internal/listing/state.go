package listing

import (
	"strings"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// State — состояние листинга. Data == nil означает «данных ещё нет».
// Err — последняя ошибка запроса или дозагрузки; данные при этом остаются прежними.
type State struct {
	Data    *domain.Page
	Loading bool
	Err     error
}

func (s State) clone() State {
	s.Data = s.Data.Clone()
	return s
}

// View — то, что видит потребитель: накопленные данные с локальным фильтром.
type View struct {
	Items     []domain.Product
	Cursor    *domain.Cursor
	Total     int // число накопленных товаров до фильтра
	Loading   bool
	Err       error
	Variables domain.QueryVariables
}

// filterItems — регистронезависимая подстрока в name или description.
// Пустой фильтр возвращает копию всех элементов.
func filterItems(items []domain.Product, filter string) []domain.Product {
	needle := strings.ToLower(strings.TrimSpace(filter))
	out := make([]domain.Product, 0, len(items))
	for i := range items {
		if needle == "" || matches(&items[i], needle) {
			out = append(out, items[i])
		}
	}
	return out
}

func matches(p *domain.Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}
