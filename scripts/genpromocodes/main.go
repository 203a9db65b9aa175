package main

import (
	"compress/gzip"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Creates a sample gzipped promo code file for local development.
func main() {
	dataDir := "data/promo"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	codes := []string{
		"WELCOME10",
		"SUMMER2026",
		"FREESHIP",
		"LOYALTY25",
		"LAUNCHDAY",
	}

	filePath := filepath.Join(dataDir, "codes.gz")
	if err := createPromoFile(filePath, codes); err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d codes\n", filePath, len(codes))
}

// createPromoFile writes codes to a gzipped file, one per line.
func createPromoFile(filePath string, codes []string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)
	defer gzWriter.Close()

	for _, code := range codes {
		if _, err := fmt.Fprintln(gzWriter, code); err != nil {
			return fmt.Errorf("failed to write code: %w", err)
		}
	}

	return nil
}
