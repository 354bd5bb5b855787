package ports

import "context"

// MessageConsumer — фоновый потребитель сообщений (события каталога).
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
