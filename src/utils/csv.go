package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
)

// WriteCSV marshals rows (a pointer to a slice of csv-tagged structs) to
// outFile, creating the parent directory if needed.
func WriteCSV(rows interface{}, outFile string) error {
	outDir := filepath.Dir(outFile)
	if _, err := os.Stat(outDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("WriteCSV: failed to create directory %s: %w", outDir, err)
		}
	}

	file, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("WriteCSV: failed to create file %s: %w", outFile, err)
	}

	defer file.Close()

	if err := gocsv.MarshalFile(rows, file); err != nil {
		return fmt.Errorf("WriteCSV: failed to marshal csv: %w", err)
	}

	log.Infof("Wrote %s", outFile)

	return nil
}
