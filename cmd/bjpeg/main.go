package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/dbrower/bjpeg"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd(ctx)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(ctx context.Context) *cobra.Command {
	var (
		logPath    string
		logJSON    bool
		verbose    bool
		dumpHeader bool
	)

	cmd := &cobra.Command{
		Use:   "bjpeg file1.jpg [file2.jpg ...]",
		Short: "decode baseline JPEG files to BMP",
		Long:  "bjpeg decodes baseline (SOF0) JPEG files and writes a BMP next to each input.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := rootLogger(logPath, logJSON, level)
			slog.SetDefault(logger)

			if len(args) == 0 {
				return fmt.Errorf("no input files given")
			}

			failed := false
			for _, path := range args {
				jobCtx := bjpeg.WithJobID(ctx)
				if err := decodeOne(jobCtx, path, dumpHeader); err != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
					failed = true
				}
			}
			if failed {
				// Per-file failures are reported, not fatal to the batch;
				// the process still exits 0 as long as arguments were given.
				return nil
			}
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&logPath, "log-file", "", "rotate logs to this path instead of stderr")
	pf.BoolVar(&logJSON, "log-json", false, "emit logs as JSON")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&dumpHeader, "dump-header", false, "log the parsed frame header before decoding")

	return cmd
}

func rootLogger(logPath string, json bool, level slog.Level) *slog.Logger {
	if logPath == "" {
		return bjpeg.NewLogger(os.Stderr, json, level)
	}
	return bjpeg.NewRotatingLogger(logPath, 10, 3, json, level)
}

// decodeOne decodes a single JPEG file and writes its BMP next to it,
// deriving the output name by replacing the input's extension (or
// appending ".bmp" when there is none), per the original tool's naming
// rule.
func decodeOne(ctx context.Context, path string, dumpHeader bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	if dumpHeader {
		if h, err := bjpeg.PeekHeader(data); err == nil {
			slog.InfoContext(ctx, "parsed header", "path", path, "header", h.String())
		}
	}

	img, err := bjpeg.Decode(data)
	if err != nil {
		slog.ErrorContext(ctx, "decode failed", "path", path, "error", err)
		return err
	}

	outPath := outputPath(path)
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer out.Close()

	if err := bjpeg.WriteBMP(out, img); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	slog.InfoContext(ctx, "decoded", "path", path, "out", outPath, "width", img.Width, "height", img.Height)
	return nil
}

func outputPath(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return path + ".bmp"
	}
	return strings.TrimSuffix(path, ext) + ".bmp"
}
