package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gunvolt24/storefront/config"
	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/graphql"
	"github.com/Gunvolt24/storefront/internal/usecase"
	"github.com/Gunvolt24/storefront/pkg/logger"
	"github.com/Gunvolt24/storefront/pkg/validate"
	"github.com/joho/godotenv"
)

// CLI для проверки и загрузки товаров в каталог через мутацию createProduct.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	dryRun := flag.Bool("dry-run", false, "only validate, print canonical JSON to stdout")
	endpoint := flag.String("endpoint", "", "GraphQL endpoint (default from STOREFRONT_API_ENDPOINT)")
	flag.Parse()

	_ = godotenv.Load(".env.local")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	validator := validate.NewProductValidator()
	format := validate.InputFormat(*formatStr)

	// stdin вариант: считаем, что jsonl
	path := *inputPath
	if path == "" {
		path = "/dev/stdin"
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
	}

	sink := validate.WriterSink(os.Stdout)
	if !*dryRun {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		if *endpoint != "" {
			cfg.API.Endpoint = *endpoint
		}

		logg, cleanup, err := logger.NewZapLogger(cfg.Logger.IsProd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = cleanup() }()

		client := graphql.NewClient(graphql.Options{
			Endpoint:      cfg.API.Endpoint,
			Timeout:       cfg.API.Timeout,
			RetryAttempts: cfg.API.RetryAttempts,
			RetryInitial:  cfg.API.RetryInitial,
			RetryMax:      cfg.API.RetryMax,
		}, logg)
		defer client.Close()

		products := usecase.NewProductService(client, validator, logg)
		sink = func(ctx context.Context, in *domain.ProductInput) error {
			ref, err := products.Create(ctx, *in)
			if err != nil {
				return err
			}
			if ref != nil {
				fmt.Fprintf(os.Stdout, "%s\t%s\n", ref.ID, ref.Name)
			}
			return nil
		}
	}

	summary, err := validate.ValidateFile(ctx, validator, path, format, sink)
	if err != nil {
		fmt.Fprintf(os.Stderr, "import: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "import ok (%s)\n", summary)
}
