package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vilnius-transit/routesearch/input"
)

var bulkImportCmd = &cobra.Command{
	Use:   "bulk-import <stops.csv> <stops.json>",
	Short: "Converts a bulk CSV stop export into a stops JSON document",
	Args:  cobra.ExactArgs(2),
	RunE:  runBulkImport,
}

func runBulkImport(cmd *cobra.Command, args []string) error {
	csvPath, jsonPath := args[0], args[1]

	csvFile, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", csvPath, err)
	}
	defer csvFile.Close()

	src, err := input.NewCSVStopSource(csvFile)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", csvPath, err)
	}

	stops, err := src.Stops()
	if err != nil {
		return err
	}

	out, err := os.Create(jsonPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", jsonPath, err)
	}
	defer out.Close()

	if err := input.EncodeStopsDocument(stops, out); err != nil {
		return fmt.Errorf("writing %s: %w", jsonPath, err)
	}

	fmt.Printf("imported %d stops into %s\n", len(stops), jsonPath)
	return nil
}
