// Пакет migrations — SQL-миграции архива заказов (goose).
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
