package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var careersJSON bool

var careersCmd = &cobra.Command{
	Use:   "careers",
	Short: "List the careers in the catalog",
	RunE:  runCareers,
}

func init() {
	careersCmd.Flags().BoolVar(&careersJSON, "json", false, "Output raw JSON instead of a table")

	rootCmd.AddCommand(careersCmd)
}

func runCareers(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	careers := cat.Careers()

	if careersJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(careers)
	}

	for _, career := range careers {
		fmt.Fprintf(os.Stdout, "%-28s %-18s %s\n", career.Title, career.AverageSalary, career.Category)
	}
	fmt.Fprintf(os.Stdout, "\n%d careers\n", len(careers))
	return nil
}
