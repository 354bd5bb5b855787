package domain

// ProductEventKind — тип изменения товара.
type ProductEventKind string

const (
	ProductCreated ProductEventKind = "created"
	ProductUpdated ProductEventKind = "updated"
	ProductDeleted ProductEventKind = "deleted"
)

// ProductEvent — сообщение об изменении каталога (из Kafka).
type ProductEvent struct {
	ProductID string           `json:"product_id"`
	Kind      ProductEventKind `json:"kind"`
}
