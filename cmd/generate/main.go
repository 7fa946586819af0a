// Command generate runs the sheet generation pipeline once and prints the result.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cardforge/cardforge/internal/bootstrap"
	"github.com/cardforge/cardforge/internal/cards"
	"github.com/cardforge/cardforge/internal/config"
	"github.com/cardforge/cardforge/internal/generation"
	"github.com/cardforge/cardforge/internal/sheet"
	"github.com/cardforge/cardforge/pkg/logger"
)

type options struct {
	Prompt string
	Share  bool
	Pretty bool
}

type generator interface {
	Generate(ctx context.Context, prompt string) (*sheet.Sheet, error)
}

type sharer interface {
	Share(ctx context.Context, s sheet.Sheet, prompt string) (string, error)
}

func parseArgs(fs *flag.FlagSet, args []string) (options, error) {
	var opts options
	fs.BoolVar(&opts.Share, "share", false, "store the sheet and print its share id")
	fs.BoolVar(&opts.Pretty, "pretty", false, "indent the JSON output")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.Prompt = strings.TrimSpace(strings.Join(fs.Args(), " "))
	if opts.Prompt == "" {
		return opts, errors.New("usage: generate [-share] [-pretty] <prompt>")
	}
	return opts, nil
}

func run(ctx context.Context, opts options, gen generator, store sharer, out io.Writer) error {
	s, err := gen.Generate(ctx, opts.Prompt)
	if err != nil {
		return err
	}
	result := map[string]any{"sheet": s}
	if opts.Share {
		id, err := store.Share(ctx, *s, opts.Prompt)
		if err != nil {
			return err
		}
		result["id"] = id
	}
	enc := json.NewEncoder(out)
	if opts.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}

func main() {
	// logs go to stderr so stdout stays machine-readable
	logger.SetOutput(os.Stderr)
	logger.Init(os.Getenv("LOG_LEVEL"))

	opts, err := parseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		logger.Fatalf("%v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := generation.NewOpenAIClient(generation.OpenAIConfig{
		APIKey:       cfg.OpenAI.APIKey,
		Model:        cfg.OpenAI.Model,
		ResponsesURL: cfg.OpenAI.ResponsesURL,
		HTTPClient:   &http.Client{Timeout: cfg.OpenAI.Timeout},
	})

	var store sharer
	if opts.Share {
		stores := bootstrap.OpenStores(ctx, cfg, 1)
		defer stores.Close()
		store = cards.NewService(stores.Cards)
	}

	if err := run(ctx, opts, generation.NewService(client), store, os.Stdout); err != nil {
		logger.Errorf("generate: %v", err)
		stop()
		os.Exit(1)
	}
}
