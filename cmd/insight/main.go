// Command insight analyzes saved Instagram pages from the command line.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/browser"
	"golang.org/x/sync/errgroup"

	"github.com/vadim/neo-insight/internal/domain/analysis/service"
	"github.com/vadim/neo-insight/internal/domain/report/entity"
	"github.com/vadim/neo-insight/internal/domain/report/render"
	"github.com/vadim/neo-insight/internal/extractor"
	"github.com/vadim/neo-insight/internal/logging"
)

var version = "dev"

// openFile is replaced in tests
var openFile = browser.OpenFile

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := logging.New(os.Stderr, os.Getenv("LOG_LEVEL"), logging.FormatText)

	if err := run(ctx, os.Args[1:], os.Stdout, logger); err != nil {
		if errors.Is(err, errUsage) {
			printUsage(os.Stderr)
			os.Exit(2)
		}
		logger.Error("insight failed", "error", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("usage")

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: insight <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  extract FILE                                Print the posts found in a saved page as JSON")
	fmt.Fprintln(w, "  analyze [-format f] [-out dir] [-open] FILE...  Write a summary report for each saved page")
	fmt.Fprintln(w, "  version                                     Print the version")
}

func run(ctx context.Context, args []string, stdout io.Writer, logger *slog.Logger) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "extract":
		if len(args) != 2 {
			return errUsage
		}
		return runExtract(ctx, args[1], stdout)
	case "analyze":
		return runAnalyze(ctx, args[1:], stdout, logger)
	case "version":
		fmt.Fprintf(stdout, "insight %s\n", version)
		return nil
	default:
		return errUsage
	}
}

func runExtract(ctx context.Context, path string, stdout io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	posts, err := extractor.New().Extract(ctx, f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(posts)
}

func runAnalyze(ctx context.Context, args []string, stdout io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	formatName := fs.String("format", "html", "report format: html, json or text")
	outDir := fs.String("out", "", "output directory (default: next to each input)")
	open := fs.Bool("open", false, "open HTML reports in the browser")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	format, err := entity.ParseFormat(*formatName)
	if err != nil {
		return err
	}
	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	renderer, err := render.New()
	if err != nil {
		return err
	}
	a := &analyzer{
		extractor: extractor.New(),
		svc:       service.New(nil),
		renderer:  renderer,
		format:    format,
		outDir:    *outDir,
	}

	inputs := fs.Args()
	written := make([]string, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range inputs {
		i, path := i, path
		g.Go(func() error {
			out, err := a.analyzeFile(ctx, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			written[i] = out
			logger.Info("report written", "input", path, "output", out)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, out := range written {
		fmt.Fprintln(stdout, out)
		if *open && format == entity.FormatHTML {
			if err := openFile(out); err != nil {
				logger.Warn("failed to open report", "path", out, "error", err)
			}
		}
	}
	return nil
}

type analyzer struct {
	extractor *extractor.Extractor
	svc       *service.Service
	renderer  *render.Renderer
	format    entity.Format
	outDir    string
}

// analyzeFile writes the report for one saved page and returns its path
func (a *analyzer) analyzeFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	posts, err := a.extractor.Extract(ctx, f)
	if err != nil {
		return "", err
	}

	content, err := a.renderer.Render(render.Document{
		GeneratedAt: time.Now(),
		Result:      a.svc.Analyze(posts),
		Posts:       posts,
	}, a.format)
	if err != nil {
		return "", err
	}

	out := reportPath(path, a.outDir, a.format)
	if err := os.WriteFile(out, content, 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return out, nil
}

// reportPath returns {dir}/{basename}_summary.{ext}
func reportPath(input, outDir string, format entity.Format) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, format.Filename(base+"_summary"))
}
