//go:build integration

package messaging_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/storefront/internal/messaging"
	"github.com/Gunvolt24/storefront/internal/testutil"
	"github.com/Gunvolt24/storefront/pkg/logger"
)

// Оформленный заказ уходит в топик с ключом = ID заказа и deep link в теле.
func TestKafkaPublisher_OrderPlaced_TC(t *testing.T) {
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "order-handoff")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic)
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	links, err := messaging.NewLinkBuilder(messaging.LinkOptions{
		BaseURL:    "https://api.whatsapp.com/send",
		Phone:      "5491100000000",
		Origin:     "https://shop.example",
		OrderRoute: "order",
	})
	require.NoError(t, err)

	pub := messaging.NewKafkaPublisher(kf.Brokers, topic, links, logg)
	t.Cleanup(func() { _ = pub.Close() })

	order := testutil.MakeOrder(testutil.WithProducts(2))
	require.NoError(t, pub.OrderPlaced(ctx, &order))

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     kf.Brokers,
		Topic:       topic,
		GroupID:     group,
		StartOffset: kafka.FirstOffset,
	})
	t.Cleanup(func() { _ = r.Close() })

	msg, err := r.ReadMessage(ctx)
	require.NoError(t, err)
	require.Equal(t, order.ID, string(msg.Key))

	var got messaging.Handoff
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	require.Equal(t, order.ID, got.OrderID)
	require.Equal(t, "https://shop.example/order/"+order.ID, got.OrderURL)
	require.Contains(t, got.HandoffURL, "phone=5491100000000")
	require.Contains(t, got.Text, got.OrderURL)
}
