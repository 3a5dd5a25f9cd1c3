package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Metadata describes an ingested document (resume or profile page).
type Metadata struct {
	URL       string `json:"url,omitempty"`
	Source    string `json:"source"`             // "text", "pdf" or "url"
	Timestamp string `json:"timestamp"`          // RFC3339 format
	Hash      string `json:"hash"`               // SHA256 hex digest
	Platform  string `json:"platform,omitempty"` // Detected profile platform
	WordCount int    `json:"word_count"`
	CharCount int    `json:"char_count"`
}

// NewMetadata creates a Metadata instance for cleaned content with the current timestamp.
func NewMetadata(content, source, url string) *Metadata {
	return &Metadata{
		URL:       url,
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
		WordCount: len(strings.Fields(content)),
		CharCount: len(content),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
