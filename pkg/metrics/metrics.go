package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Витрина: листинг, корзина, заказы.
var (
	ListingFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_listing_fetches_total",
			Help: "Product list fetches by kind and result",
		},
		[]string{"kind", "result"}, // kind: watch|more; result: ok|error|discarded
	)
	CartOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cart_operations_total",
			Help: "Cart operations",
		},
		[]string{"op"}, // add|set|clear|clamp
	)
	OrdersSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_orders_submitted_total",
			Help: "Orders created successfully",
		},
	)
	OrdersFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_orders_failed_total",
			Help: "Order submissions that did not produce an order",
		},
		[]string{"reason"}, // precondition|remote|empty
	)
	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_active_sessions",
			Help: "Number of open storefront sessions",
		},
	)
)

// Передача заказа в мессенджер.
var (
	HandoffPublished = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_handoff_published_total",
			Help: "Order hand-off links published",
		},
	)
	HandoffFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_handoff_failed_total",
			Help: "Order hand-off links failed to publish",
		},
	)
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"cache", "op"}, // op: hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
		[]string{"cache"},
	)
)

var registerOnce sync.Once

// MustRegister регистрирует все метрики в глобальном реестре; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			ListingFetches, CartOps, OrdersSubmitted, OrdersFailed, ActiveSessions,
			HandoffPublished, HandoffFailed,
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
			CacheOps, CacheSize,
		)
	})
}
