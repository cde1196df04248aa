package catalog

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/plamix/plamix/internal/colour"
)

// Load reads a pigment catalog from a CSV or JSON file. Files compressed
// with gzip, bzip2, or xz are decompressed transparently based on their
// extension (e.g. paints.csv.xz).
func Load(path string) ([]colour.Pigment, error) {
	data, err := os.ReadFile(path) // #nosec G304 - User-specified catalog path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	data, base, err := decompress(data, path)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress catalog: %w", err)
	}

	switch {
	case strings.HasSuffix(base, ".json"):
		return parseJSON(data)
	case strings.HasSuffix(base, ".csv"):
		return parseCSV(data)
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s (want .csv or .json)", base)
	}
}

// parseJSON decodes a catalog from an array of pigment objects.
func parseJSON(data []byte) ([]colour.Pigment, error) {
	var pigments []colour.Pigment
	if err := json.Unmarshal(data, &pigments); err != nil {
		return nil, fmt.Errorf("invalid catalog JSON: %w", err)
	}
	if err := validate(pigments); err != nil {
		return nil, err
	}
	return pigments, nil
}

// parseCSV decodes the original database layout:
// code,name,manufacturer,category,L,a,b with a header row.
func parseCSV(data []byte) ([]colour.Pigment, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}
	if len(header) < 7 {
		return nil, fmt.Errorf("catalog header has %d columns, want 7 (code,name,manufacturer,category,L,a,b)", len(header))
	}

	var pigments []colour.Pigment
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog line %d: %w", line, err)
		}

		lab, err := parseLabFields(record[4], record[5], record[6])
		if err != nil {
			return nil, fmt.Errorf("catalog line %d: %w", line, err)
		}
		pigments = append(pigments, colour.Pigment{
			Code:         record[0],
			Name:         record[1],
			Manufacturer: record[2],
			Category:     record[3],
			Colour:       lab,
		})
	}

	if err := validate(pigments); err != nil {
		return nil, err
	}
	return pigments, nil
}

func parseLabFields(lField, aField, bField string) (colour.Lab, error) {
	l, err := strconv.ParseFloat(strings.TrimSpace(lField), 64)
	if err != nil {
		return colour.Lab{}, fmt.Errorf("invalid L value %q: %w", lField, err)
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(aField), 64)
	if err != nil {
		return colour.Lab{}, fmt.Errorf("invalid a value %q: %w", aField, err)
	}
	b, err := strconv.ParseFloat(strings.TrimSpace(bField), 64)
	if err != nil {
		return colour.Lab{}, fmt.Errorf("invalid b value %q: %w", bField, err)
	}
	return colour.Lab{L: l, A: a, B: b}, nil
}

func validate(pigments []colour.Pigment) error {
	if len(pigments) == 0 {
		return fmt.Errorf("catalog contains no pigments")
	}
	seen := make(map[string]bool, len(pigments))
	for i, p := range pigments {
		if p.Code == "" {
			return fmt.Errorf("catalog entry %d has no code", i)
		}
		if seen[p.Code] {
			return fmt.Errorf("duplicate catalog code %q", p.Code)
		}
		seen[p.Code] = true
		if p.Colour.L < 0 || p.Colour.L > 100 {
			return fmt.Errorf("pigment %s has L=%g outside [0,100]", p.Code, p.Colour.L)
		}
	}
	return nil
}
