package promo

import (
	"context"
	"fmt"
	"sync"

	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// Promo code length bounds checked before any set lookup.
const (
	minCodeLength = 6
	maxCodeLength = 12
)

// nopValidator rejects every code. Used when promo codes are disabled, so a
// submitted code never silently passes.
type nopValidator struct{}

// NopValidator returns a validator that rejects all codes.
func NopValidator() Validator {
	return nopValidator{}
}

func (nopValidator) Validate(ctx context.Context, code string) error {
	return model.ErrInvalidPromoCode
}

func (nopValidator) Close() error {
	return nil
}

// validator implements Validator over code sets loaded at startup.
// The sets are read-only after initialisation, so lookups need no locking.
type validator struct {
	codeSets []CodeSet
	logger   zerolog.Logger
}

// ValidatorConfig holds configuration for the promo code validator.
type ValidatorConfig struct {
	// FilePaths is the list of promo code file paths to load.
	FilePaths []string
}

// DefaultValidatorConfig returns the default validator configuration.
func DefaultValidatorConfig() *ValidatorConfig {
	return &ValidatorConfig{
		FilePaths: []string{
			"data/promo/codes.gz",
		},
	}
}

// NewValidator creates a new promo code validator.
// It loads all promo code files at initialisation time.
func NewValidator(ctx context.Context, config *ValidatorConfig, loader Loader, logger zerolog.Logger) (Validator, error) {
	if config == nil {
		config = DefaultValidatorConfig()
	}

	logger = logger.With().Str("component", "promo-validator").Logger()

	logger.Info().
		Int("file_count", len(config.FilePaths)).
		Msg("initialising promo code validator")

	v := &validator{
		codeSets: make([]CodeSet, 0, len(config.FilePaths)),
		logger:   logger,
	}

	// Load all promo code files concurrently
	type loadResult struct {
		index int
		set   CodeSet
		err   error
	}

	resultChan := make(chan loadResult, len(config.FilePaths))
	var wg sync.WaitGroup

	for i, filePath := range config.FilePaths {
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()

			set, err := loader.Load(ctx, path)
			resultChan <- loadResult{
				index: index,
				set:   set,
				err:   err,
			}
		}(i, filePath)
	}

	wg.Wait()
	close(resultChan)

	// Collect results in order
	results := make([]loadResult, len(config.FilePaths))
	for result := range resultChan {
		results[result.index] = result
	}

	for i, result := range results {
		if result.err != nil {
			logger.Error().
				Err(result.err).
				Str("file", config.FilePaths[i]).
				Msg("failed to load promo code file")
			return nil, fmt.Errorf("failed to load promo code file %s: %w", config.FilePaths[i], result.err)
		}
		v.codeSets = append(v.codeSets, result.set)
		logger.Info().
			Str("file", config.FilePaths[i]).
			Int("size", result.set.Size()).
			Msg("promo code file loaded")
	}

	totalCodes := 0
	for _, set := range v.codeSets {
		totalCodes += set.Size()
	}

	logger.Info().
		Int("total_codes", totalCodes).
		Msg("promo code validator initialised successfully")

	return v, nil
}

// Validate checks if a promo code is valid. A valid code must be between 6
// and 12 characters and appear in one of the loaded promo code files.
func (v *validator) Validate(ctx context.Context, code string) error {
	// Length check first; it is cheaper than a set lookup.
	if len(code) < minCodeLength || len(code) > maxCodeLength {
		v.logger.Debug().
			Str("promo_code", code).
			Int("length", len(code)).
			Msg("promo code length invalid")
		return model.ErrInvalidPromoCode
	}

	for _, set := range v.codeSets {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if set.Contains(code) {
			v.logger.Debug().
				Str("promo_code", code).
				Msg("promo code validated successfully")
			return nil
		}
	}

	v.logger.Debug().
		Str("promo_code", code).
		Msg("promo code not found")

	return model.ErrInvalidPromoCode
}

// Close releases resources held by the validator.
func (v *validator) Close() error {
	// Drop the sets so the memory can be reclaimed.
	v.codeSets = nil

	v.logger.Info().Msg("promo code validator closed")

	return nil
}
