package validate

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
)

// Sink — получатель валидных записей.
type Sink func(ctx context.Context, in *domain.ProductInput) error

// WriterSink — печатает КАНОНИЧЕСКИЙ JSON одной строкой на каждую запись.
func WriterSink(ow io.Writer) Sink {
	return func(_ context.Context, in *domain.ProductInput) error {
		marshal, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal: %w", err)
		}
		if _, err := ow.Write(marshal); err != nil {
			return fmt.Errorf("write valid line: %w", err)
		}
		if _, err := ow.Write([]byte("\n")); err != nil {
			return fmt.Errorf("write newline: %w", err)
		}
		return nil
	}
}

// JSONLResult — статистика валидации потока JSONL.
type JSONLResult struct {
	ValidLinesCount   int
	InvalidLinesCount int
}

// ValidateJSONLStream — читает JSONL из reader’а, валидирует каждую строку, валидные отдаёт в sink.
// Пустые строки пропускаются. Ошибка sink прерывает обработку.
func ValidateJSONLStream(ctx context.Context, validator ports.ProductValidator, ir io.Reader, sink Sink) (JSONLResult, error) {
	var res JSONLResult

	scanner := bufio.NewScanner(ir)
	// запас на большие строки
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue
		}

		in, err := ProductFromJSON(ctx, validator, lineBytes)
		if err != nil {
			res.InvalidLinesCount++
			// не возвращаем ошибку — просто пропускаем невалидную строку
			continue
		}

		if err := sink(ctx, in); err != nil {
			return res, err
		}
		res.ValidLinesCount++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}
