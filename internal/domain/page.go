package domain

// Cursor — позиция продолжения пагинации. Пустой After означает, что страниц больше нет.
type Cursor struct {
	After string `json:"after,omitempty"`
	Count int    `json:"count"`
}

// Page — результат запроса списка товаров.
type Page struct {
	Items  []Product `json:"data"`
	Cursor *Cursor   `json:"cursor,omitempty"`
}

// NextAfter — токен следующей страницы; ok=false, если продолжения нет.
func (p *Page) NextAfter() (string, bool) {
	if p == nil || p.Cursor == nil || p.Cursor.After == "" {
		return "", false
	}
	return p.Cursor.After, true
}

// Clone — копия страницы, не разделяющая слайс и курсор с оригиналом.
func (p *Page) Clone() *Page {
	if p == nil {
		return nil
	}
	clonedPage := &Page{}
	if p.Items != nil {
		clonedPage.Items = append([]Product(nil), p.Items...)
	}
	if p.Cursor != nil {
		c := *p.Cursor
		clonedPage.Cursor = &c
	}
	return clonedPage
}

// AppendPage — склейка: элементы next дописываются после текущих (порядок сохраняется,
// дубликаты не удаляются), курсор берётся из next.
func (p *Page) AppendPage(next *Page) *Page {
	merged := p.Clone()
	if merged == nil {
		return next.Clone()
	}
	if next == nil {
		return merged
	}
	merged.Items = append(merged.Items, next.Items...)
	if next.Cursor != nil {
		c := *next.Cursor
		merged.Cursor = &c
	} else {
		merged.Cursor = nil
	}
	return merged
}
