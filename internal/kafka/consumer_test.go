package kafka

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/storefront/internal/kafka/mocks"
	"github.com/Gunvolt24/storefront/pkg/validate"
)

type nopLogger struct{}

func (nopLogger) Debugf(context.Context, string, ...any) {}
func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

var testReaderConfig = kafka.ReaderConfig{Topic: "product-events", GroupID: "g1", Brokers: []string{"b:9092"}}

func newTestConsumer(r reader, h eventHandler) *Consumer {
	return &Consumer{
		reader:         r,
		handler:        h,
		log:            nopLogger{},
		processTimeout: 30 * time.Millisecond,
		retryInitial:   5 * time.Millisecond,
		retryMax:       10 * time.Millisecond,
		jitterRand:     rand.New(rand.NewSource(1)),
	}
}

// blockUntilCancel — следующий FetchMessage ждёт отмены контекста.
func blockUntilCancel(r *mocks.Mockreader) {
	r.EXPECT().FetchMessage(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (kafka.Message, error) {
			<-ctx.Done()
			return kafka.Message{}, ctx.Err()
		})
}

// runBriefly — запускает Run, даёт обработать сообщение и останавливает.
func runBriefly(t *testing.T, c *Consumer) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- c.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("want context.Canceled, got %v", err)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timeout waiting for Run to stop")
	}
}

func TestRun_CommitPolicy(t *testing.T) {
	tests := []struct {
		name       string
		handlerErr error
		commit     bool
	}{
		{"processed event is committed", nil, true},
		{"invalid event is committed and skipped", fmt.Errorf("decode: %w", validate.ErrInvalidEvent), true},
		{"temporary failure is not committed", errors.New("api unavailable"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			r := mocks.NewMockreader(ctrl)
			h := mocks.NewMockeventHandler(ctrl)

			r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
			r.EXPECT().FetchMessage(gomock.Any()).
				Return(kafka.Message{Offset: 1, Value: []byte(`{"product_id":"p1","kind":"updated"}`)}, nil)
			h.EXPECT().HandleProductEvent(gomock.Any(), []byte(`{"product_id":"p1","kind":"updated"}`)).
				Return(tt.handlerErr)
			if tt.commit {
				r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil)
			}
			// без commit любой вызов CommitMessages упадёт как unexpected call
			blockUntilCancel(r)

			runBriefly(t, newTestConsumer(r, h))
		})
	}
}

func TestRun_HandlerGetsProcessTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	h := mocks.NewMockeventHandler(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	r.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{Offset: 4, Value: []byte("x")}, nil)
	h.EXPECT().HandleProductEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ []byte) error {
			if _, ok := ctx.Deadline(); !ok {
				t.Errorf("handler context must carry a deadline")
			}
			return nil
		})
	r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil)
	blockUntilCancel(r)

	runBriefly(t, newTestConsumer(r, h))
}

func TestRun_FetchError_RetryThenStopOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	h := mocks.NewMockeventHandler(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	r.EXPECT().FetchMessage(gomock.Any()).
		Return(kafka.Message{}, errors.New("broker error")).
		MinTimes(2)

	c := newTestConsumer(r, h)

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()

	if err := c.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want DeadlineExceeded, got %v", err)
	}
}

func TestRun_CommitErrorKeepsLoopAlive(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	h := mocks.NewMockeventHandler(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	gomock.InOrder(
		r.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{Offset: 3, Value: []byte("a")}, nil),
		h.EXPECT().HandleProductEvent(gomock.Any(), []byte("a")).Return(nil),
		r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(errors.New("temporary")),
		r.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{Offset: 4, Value: []byte("b")}, nil),
		h.EXPECT().HandleProductEvent(gomock.Any(), []byte("b")).Return(nil),
		r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil),
	)
	blockUntilCancel(r)

	runBriefly(t, newTestConsumer(r, h))
}

func TestBackoff(t *testing.T) {
	c := newTestConsumer(nil, nil)

	if got := c.nextBackoff(5 * time.Millisecond); got != 10*time.Millisecond {
		t.Fatalf("nextBackoff: want 10ms, got %s", got)
	}
	if got := c.nextBackoff(8 * time.Millisecond); got != c.retryMax {
		t.Fatalf("nextBackoff must cap at retryMax, got %s", got)
	}
	for i := 0; i < 100; i++ {
		d := c.withJitterEqual(10 * time.Millisecond)
		if d < 5*time.Millisecond || d > 10*time.Millisecond {
			t.Fatalf("jitter out of [d/2, d]: %s", d)
		}
	}
	if c.withJitterEqual(0) != 0 {
		t.Fatalf("zero duration must stay zero")
	}
}

func TestClose_DelegatesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	r.EXPECT().Close().Return(nil).Times(1)

	c := newTestConsumer(r, mocks.NewMockeventHandler(ctrl))
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
