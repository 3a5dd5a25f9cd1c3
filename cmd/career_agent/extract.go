package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/db"
	"github.com/jonathan/career-compass/internal/extraction"
	"github.com/jonathan/career-compass/internal/fetch"
	"github.com/jonathan/career-compass/internal/ingestion"
	"github.com/jonathan/career-compass/internal/observability"
)

var (
	extractFile    string
	extractURL     string
	extractBrowser bool
	extractOut     string
	extractJSON    bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract skills from a resume file or profile URL",
	Long:  "Ingest a resume (PDF or plain text) or a profile page URL, clean the content, and extract catalog skills from it.",
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "", "Path to a PDF or text resume")
	extractCmd.Flags().StringVarP(&extractURL, "url", "u", "", "Profile page URL to fetch")
	extractCmd.Flags().BoolVar(&extractBrowser, "browser", false, "Fall back to headless browser rendering for SPA pages")
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "Directory to write cleaned text and metadata")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Output raw JSON instead of formatted boxes")

	rootCmd.AddCommand(extractCmd)
}

// ingestFromURL fetches a profile page, going through the database-backed
// page cache when DATABASE_URL is configured so repeated extractions of the
// same profile skip the network.
func ingestFromURL(ctx context.Context, urlStr string) (string, *ingestion.Metadata, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return ingestion.IngestFromURL(ctx, urlStr, extractBrowser, false)
	}

	database, err := db.Connect(ctx, dsn)
	if err != nil {
		return "", nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	fetcher := fetch.NewCachedFetcher(database, nil)
	return ingestion.IngestFromURLCached(ctx, urlStr, fetcher, extractBrowser, false)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	if extractFile == "" && extractURL == "" {
		return fmt.Errorf("either --file or --url must be provided")
	}
	if extractFile != "" && extractURL != "" {
		return fmt.Errorf("--file and --url are mutually exclusive; provide only one")
	}

	var cleanedText string
	var metadata *ingestion.Metadata
	var err error

	switch {
	case extractURL != "":
		cleanedText, metadata, err = ingestFromURL(cmd.Context(), extractURL)
	case strings.EqualFold(filepath.Ext(extractFile), ".pdf"):
		cleanedText, metadata, err = ingestion.IngestFromPDFFile(extractFile)
	default:
		cleanedText, metadata, err = ingestion.IngestFromFile(extractFile)
	}
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	if extractOut != "" {
		if err := ingestion.WriteOutput(extractOut, cleanedText, metadata); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	cat, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	extractor := extraction.NewExtractor(cat)
	result := extractor.ExtractFromText(cleanedText)

	if extractJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"extraction":     result,
			"related_skills": extractor.EnhanceWithRelated(result.Skills),
			"metadata":       metadata,
		})
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintExtraction(result)
	if result.TotalSkillsFound == 0 {
		fmt.Fprintln(os.Stdout, "No catalog skills found in the document")
	}
	return nil
}
