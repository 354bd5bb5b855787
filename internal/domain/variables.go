package domain

import (
	"strconv"
	"strings"
)

// DefaultLimit — размер страницы по умолчанию.
const DefaultLimit = 20

// Pagination — параметры курсорной пагинации.
type Pagination struct {
	Limit int    `json:"limit"`
	After string `json:"after,omitempty"`
}

// QueryVariables — переменные запроса списка товаров.
// Filter применяется только локально и на сервер не уходит.
type QueryVariables struct {
	Pagination Pagination `json:"pagination"`
	Filter     string     `json:"filter,omitempty"`
	Category   string     `json:"category,omitempty"`
}

// PaginationPatch — частичное обновление пагинации.
type PaginationPatch struct {
	Limit *int    `json:"limit,omitempty"`
	After *string `json:"after,omitempty"`
}

// VariablesPatch — частичное обновление переменных; nil-поле означает «не менять».
type VariablesPatch struct {
	Pagination *PaginationPatch `json:"pagination,omitempty"`
	Filter     *string          `json:"filter,omitempty"`
	Category   *string          `json:"category,omitempty"`
}

// DefaultVariables — {pagination: {limit: 20}}.
func DefaultVariables() QueryVariables {
	return QueryVariables{Pagination: Pagination{Limit: DefaultLimit}}
}

// Merge — тотальное слияние по фиксированной схеме:
// верхний уровень заменяется целиком, pagination сливается по полям.
func (v QueryVariables) Merge(patch VariablesPatch) QueryVariables {
	merged := v
	if patch.Pagination != nil {
		if patch.Pagination.Limit != nil {
			merged.Pagination.Limit = *patch.Pagination.Limit
		}
		if patch.Pagination.After != nil {
			merged.Pagination.After = *patch.Pagination.After
		}
	}
	if patch.Filter != nil {
		merged.Filter = *patch.Filter
	}
	if patch.Category != nil {
		merged.Category = *patch.Category
	}
	return merged.Normalize()
}

// Normalize — limit всегда присутствует.
func (v QueryVariables) Normalize() QueryVariables {
	if v.Pagination.Limit <= 0 {
		v.Pagination.Limit = DefaultLimit
	}
	return v
}

// WithAfter — копия переменных для дозагрузки следующей страницы.
func (v QueryVariables) WithAfter(after string) QueryVariables {
	v.Pagination.After = after
	return v
}

// Remote — аргументы GraphQL-запроса products (без локального filter).
func (v QueryVariables) Remote() map[string]any {
	pagination := map[string]any{"limit": v.Pagination.Limit}
	if v.Pagination.After != "" {
		pagination["after"] = v.Pagination.After
	}
	args := map[string]any{"pagination": pagination}
	if v.Category != "" {
		args["category"] = v.Category
	}
	return args
}

// Key — ключ кэша для удалённой части переменных.
func (v QueryVariables) Key() string {
	var b strings.Builder
	b.WriteString("products:limit=")
	b.WriteString(strconv.Itoa(v.Pagination.Limit))
	b.WriteString(";after=")
	b.WriteString(v.Pagination.After)
	b.WriteString(";category=")
	b.WriteString(v.Category)
	return b.String()
}
