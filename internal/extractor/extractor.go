// Package extractor turns statement documents into the plain text the
// engine consumes. The engine itself never touches file bytes; failures
// here surface as document-level failure results at the call sites.
package extractor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Extractor converts statement files to plain text.
type Extractor struct{}

// ExtractFile reads a statement document and returns its text content.
// Plain-text files are read as-is; PDFs go through layered extraction.
func (Extractor) ExtractFile(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading statement text: %w", err)
		}
		return string(data), nil
	case ".pdf":
		return ExtractPDF(path)
	default:
		return "", fmt.Errorf("unsupported statement file type %q (expected .pdf or .txt)", filepath.Ext(path))
	}
}

// ExtractPDF returns the text content of a PDF statement. It tries the
// structured library first and falls back to the external pdftotext
// command (poppler-utils); output that fails the readability gate is
// never returned.
func ExtractPDF(path string) (string, error) {
	text, libErr := extractWithLibrary(path)
	if libErr == nil && isReadableText(text) {
		return text, nil
	}

	text, popplerErr := extractWithPdftotext(path)
	if popplerErr == nil && isReadableText(text) {
		return text, nil
	}

	if libErr != nil {
		return "", fmt.Errorf("PDF text extraction failed: %v; the file may be image-based or use custom font encodings", libErr)
	}
	return "", fmt.Errorf("no readable text could be extracted from the PDF; the file may be scanned or image-based")
}

// extractWithPdftotext shells out to pdftotext as a last resort for
// PDFs the Go library cannot decode.
func extractWithPdftotext(path string) (string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return "", fmt.Errorf("pdftotext not available: %w", err)
	}

	out, err := exec.Command("pdftotext", "-layout", path, "-").Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext failed: %w", err)
	}

	text := strings.TrimSpace(string(out))
	if text == "" {
		return "", fmt.Errorf("pdftotext produced no output")
	}
	return text, nil
}
