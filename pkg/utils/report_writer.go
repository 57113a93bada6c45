/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report_writer.go
Description: Utility for writing estimate and search results to a report directory.
Handles timestamped, type-specific subdirectory naming and writes indented JSON files
for later analysis.
*/

package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// WriteReport writes result as JSON under dir/kind and returns the file path.
// Files are named <timestamp>_<kind>_<suffix>.json; suffix is usually a run ID.
func WriteReport(dir string, kind string, suffix string, result interface{}) (string, error) {
	reportDir := filepath.Join(dir, kind)
	if err := os.MkdirAll(reportDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	// e.g. 2026-10-18_01-30-00_search_5f1c.json
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.json", timestamp, kind)
	if suffix != "" {
		filename = fmt.Sprintf("%s_%s_%s.json", timestamp, kind, suffix)
	}
	path := filepath.Join(reportDir, filename)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}
	return path, nil
}
