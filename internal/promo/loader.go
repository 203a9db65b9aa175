package promo

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading gzipped promo code files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based promo code loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "promo-loader").Logger(),
	}
}

// Load reads a gzipped promo code file and returns a CodeSet.
// The file is expected to contain one code per line.
func (l *fileLoader) Load(ctx context.Context, filePath string) (CodeSet, error) {
	l.logger.Info().Str("file", filePath).Msg("loading promo code file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open promo code file")
		return nil, fmt.Errorf("failed to open promo code file %s: %w", filePath, err)
	}
	defer file.Close()

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to create gzip reader")
		return nil, fmt.Errorf("failed to create gzip reader for %s: %w", filePath, err)
	}
	defer gzipReader.Close()

	set := NewMapCodeSet(1024).(*mapCodeSet)

	scanner := bufio.NewScanner(gzipReader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineCount := 0
	for scanner.Scan() {
		// Check context cancellation periodically
		if lineCount%100_000 == 0 {
			select {
			case <-ctx.Done():
				l.logger.Warn().Str("file", filePath).Msg("promo code loading cancelled")
				return nil, ctx.Err()
			default:
			}
		}

		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			set.Add(line)
			lineCount++
		}
	}

	if err := scanner.Err(); err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("error reading promo code file")
		return nil, fmt.Errorf("error reading promo code file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("codes_loaded", set.Size()).
		Msg("promo code file loaded successfully")

	return set, nil
}
