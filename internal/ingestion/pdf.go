package ingestion

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrPDFParse is returned when a PDF document cannot be parsed.
var ErrPDFParse = fmt.Errorf("failed to parse PDF")

// ExtractPDFText extracts plain text from a PDF document.
func ExtractPDFText(ra io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(ra, size)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPDFParse, err)
	}

	textReader, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPDFParse, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(textReader); err != nil {
		return "", fmt.Errorf("%w: %w", ErrPDFParse, err)
	}

	text := buf.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: document contains no extractable text", ErrPDFParse)
	}
	return text, nil
}

// IngestFromPDF extracts and cleans text from a PDF document, returning
// cleaned text with metadata.
func IngestFromPDF(ra io.ReaderAt, size int64) (string, *Metadata, error) {
	text, err := ExtractPDFText(ra, size)
	if err != nil {
		return "", nil, err
	}

	cleanedText := CleanText(text)
	metadata := NewMetadata(cleanedText, "pdf", "")

	return cleanedText, metadata, nil
}

// IngestFromPDFFile reads a PDF file from disk, extracts and cleans its text.
func IngestFromPDFFile(path string) (string, *Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return "", nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return IngestFromPDF(f, info.Size())
}
