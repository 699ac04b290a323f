package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/ewozniak/clipvault"
	"github.com/ewozniak/clipvault/fs"
	"github.com/ewozniak/clipvault/gemini"
	"github.com/ewozniak/clipvault/goquery"
	clipvaulthttp "github.com/ewozniak/clipvault/http"
	"github.com/ewozniak/clipvault/htmltomarkdown"
	"github.com/ewozniak/clipvault/readability"
	"github.com/ewozniak/clipvault/save"
	clipvaultslog "github.com/ewozniak/clipvault/slog"
	"github.com/ewozniak/clipvault/trafilatura"
	"github.com/ewozniak/clipvault/yaml"
	"google.golang.org/genai"
)

// fetchRPS caps per-domain fetch rate during queue processing.
const fetchRPS = 1.0

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// VaultRoot overrides vault resolution. Set before calling Run().
	VaultRoot string

	// Fetcher overrides the HTTP fetcher, for end-to-end tests.
	Fetcher clipvault.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("clipvault"),
		kong.Description("Archive web articles into a local markdown vault."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'clipvault --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	vaultRoot := m.VaultRoot
	if vaultRoot == "" {
		vaultRoot = cli.Vault
	}
	if vaultRoot == "" {
		vaultRoot = defaultVaultRoot()
	}
	articles := fs.ArticlesPath(vaultRoot)

	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = clipvaulthttp.NewFetcher()
	}
	fetcher = clipvaultslog.NewFetcher(fetcher, logger)
	defer fetcher.Close()

	deps.Vault = vaultRoot
	deps.Queue = fs.NewQueueStore(articles)
	deps.Saver = &save.Saver{
		Policy:     clipvault.DefaultPolicy(),
		Duplicates: fs.NewScanner(articles),
		Fetcher:    fetcher,
		Meta:       goquery.NewMetaParser(),
		Extractor:  trafilatura.NewExtractor(),
		Fallback:   readability.NewExtractor(),
		Converter:  htmltomarkdown.NewConverter(),
		Summarizer: newSummarizer(ctx, logger),
		Names:      fs.NewNamer(articles),
		Documents:  fs.NewWriter(yaml.NewEncoder()),
		Queue:      deps.Queue,
		Limiter:    save.NewDomainLimiter(fetchRPS),
		Logger:     logger,
	}

	return kongCtx.Run(deps)
}

// newSummarizer wires the Gemini summarizer when an API key is configured.
// Without a key articles are saved without summaries.
func newSummarizer(ctx context.Context, logger *slog.Logger) clipvault.Summarizer {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.Warn("summaries disabled: gemini client failed", "error", err)
		return nil
	}

	return gemini.NewSummarizer(client, "")
}

func defaultVaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "Vault"
	}
	return filepath.Join(home, "Vault")
}
