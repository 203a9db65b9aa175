package promo

import (
	"context"
	"testing"

	"storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidatorConfig(t *testing.T) {
	config := DefaultValidatorConfig()

	require.NotNil(t, config)
	assert.Equal(t, 1, len(config.FilePaths))
	assert.Equal(t, "data/promo/codes.gz", config.FilePaths[0])
}

func TestNewValidator_Success(t *testing.T) {
	logger := zerolog.Nop()

	file1 := createTestCodeFile(t, "codes1.gz", []string{"WELCOME10", "SUMMER2026"})
	file2 := createTestCodeFile(t, "codes2.gz", []string{"FREESHIP", "LOYALTY25"})

	config := &ValidatorConfig{
		FilePaths: []string{file1, file2},
	}

	loader := NewFileLoader(logger)
	ctx := context.Background()

	validator, err := NewValidator(ctx, config, loader, logger)

	require.NoError(t, err)
	require.NotNil(t, validator)

	err = validator.Close()
	assert.NoError(t, err)
}

func TestNewValidator_FileLoadError(t *testing.T) {
	logger := zerolog.Nop()

	config := &ValidatorConfig{
		FilePaths: []string{"/nonexistent/file1.gz"},
	}

	loader := NewFileLoader(logger)
	ctx := context.Background()

	validator, err := NewValidator(ctx, config, loader, logger)

	require.Error(t, err)
	assert.Nil(t, validator)
	assert.Contains(t, err.Error(), "failed to load promo code file")
}

func TestValidator_Validate(t *testing.T) {
	logger := zerolog.Nop()

	file1 := createTestCodeFile(t, "codes1.gz", []string{
		"WELCOME10",
		"SUMMER2026",
		"ABC123",
		"THISCODEISTOOLONG",
	})
	file2 := createTestCodeFile(t, "codes2.gz", []string{
		"FREESHIP",
		"LOYALTY25",
	})

	config := &ValidatorConfig{
		FilePaths: []string{file1, file2},
	}

	loader := NewFileLoader(logger)
	ctx := context.Background()

	validator, err := NewValidator(ctx, config, loader, logger)
	require.NoError(t, err)
	defer validator.Close()

	tests := []struct {
		name      string
		promoCode string
		expectErr error
	}{
		{
			name:      "Valid code in first file",
			promoCode: "WELCOME10",
			expectErr: nil,
		},
		{
			name:      "Valid code in second file",
			promoCode: "FREESHIP",
			expectErr: nil,
		},
		{
			name:      "Unknown code",
			promoCode: "NOSUCHCODE",
			expectErr: model.ErrInvalidPromoCode,
		},
		{
			name:      "Code too short",
			promoCode: "ABC12",
			expectErr: model.ErrInvalidPromoCode,
		},
		{
			name:      "Valid code at minimum length",
			promoCode: "ABC123",
			expectErr: nil,
		},
		{
			name:      "Code too long",
			promoCode: "THISCODEISTOOLONG",
			expectErr: model.ErrInvalidPromoCode,
		},
		{
			name:      "Empty code",
			promoCode: "",
			expectErr: model.ErrInvalidPromoCode,
		},
		{
			name:      "Lowercase variant of known code",
			promoCode: "welcome10",
			expectErr: model.ErrInvalidPromoCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(ctx, tt.promoCode)

			if tt.expectErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectErr, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidator_Validate_ContextCancelled(t *testing.T) {
	logger := zerolog.Nop()

	file1 := createTestCodeFile(t, "codes1.gz", []string{"WELCOME10"})

	config := &ValidatorConfig{
		FilePaths: []string{file1},
	}

	loader := NewFileLoader(logger)

	validator, err := NewValidator(context.Background(), config, loader, logger)
	require.NoError(t, err)
	defer validator.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = validator.Validate(ctx, "WELCOME10")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNopValidator(t *testing.T) {
	validator := NopValidator()
	ctx := context.Background()

	err := validator.Validate(ctx, "WELCOME10")
	assert.Equal(t, model.ErrInvalidPromoCode, err)

	err = validator.Validate(ctx, "")
	assert.Equal(t, model.ErrInvalidPromoCode, err)

	assert.NoError(t, validator.Close())
}
