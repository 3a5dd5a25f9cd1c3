// Package ingestion turns resumes and profile pages into cleaned plain text
// ready for skill extraction.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	multiSpaceRe = regexp.MustCompile(`\s+`)
	blankLinesRe = regexp.MustCompile(`\n\n\n+`)
)

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF to LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")

	// Reduce runs of blank lines to at most one blank line
	result = blankLinesRe.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")

	if strings.TrimSpace(line) == "" {
		return ""
	}

	// Preserve headings (Markdown # or ## etc.), normalize leading spaces to 0
	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	// Preserve bullet lists with their indentation
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		indent := len(line) - len(trimmed)
		if indent > 0 {
			return strings.Repeat(" ", indent) + trimmed
		}
		return trimmed
	}

	// For regular lines, collapse internal whitespace but keep leading indentation
	leadingSpace := len(line) - len(trimmed)
	content := multiSpaceRe.ReplaceAllString(strings.TrimSpace(line), " ")
	if leadingSpace > 0 {
		return strings.Repeat(" ", leadingSpace) + content
	}
	return content
}

// IngestFromFile reads a plain-text file, cleans it, and returns cleaned text with metadata
func IngestFromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	cleanedText := CleanText(string(content))
	metadata := NewMetadata(cleanedText, "text", "")

	return cleanedText, metadata, nil
}

// WriteOutput writes the cleaned text and metadata to output files
func WriteOutput(outDir string, cleanedText string, metadata *Metadata) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	cleanedPath := filepath.Join(outDir, "profile.cleaned.txt")
	if err := os.WriteFile(cleanedPath, []byte(cleanedText), 0644); err != nil {
		return fmt.Errorf("failed to write cleaned text file: %w", err)
	}

	metaPath := filepath.Join(outDir, "profile.meta.json")
	metaJSON, err := metadata.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}

	return nil
}
