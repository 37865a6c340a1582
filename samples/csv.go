package samples

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FromCSV materializes a Table from CSV files matching the given glob
// pattern. Column positions are resolved case-insensitively from the header
// of the first matching file; every file must share that layout.
//
// inputCols selects the columns forming each input sample, in order.
// targetCols selects the target columns; when empty the table is built
// self-paired (no targets).
func FromCSV(pattern string, inputCols, targetCols []string) (*Table, error) {
	csvPaths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to glob pattern %s: %w", pattern, err)
	}
	if len(csvPaths) == 0 {
		return nil, fmt.Errorf("no CSV files found matching pattern: %s", pattern)
	}
	if len(inputCols) == 0 {
		return nil, fmt.Errorf("%w: at least one input column is required", ErrInvalidArgument)
	}

	colIndex, err := readHeader(csvPaths[0])
	if err != nil {
		return nil, err
	}
	inputIdx, err := resolveColumns(colIndex, inputCols)
	if err != nil {
		return nil, err
	}
	targetIdx, err := resolveColumns(colIndex, targetCols)
	if err != nil {
		return nil, err
	}

	inputs := make([][]float32, 0)
	var targets [][]float32
	if len(targetCols) > 0 {
		targets = make([][]float32, 0)
	}

	for _, path := range csvPaths {
		if err := readSamples(path, inputIdx, targetIdx, &inputs, &targets); err != nil {
			return nil, err
		}
	}

	return NewTable(inputs, targets)
}

// readHeader reads the header row of a CSV and maps normalized column names
// to positions.
func readHeader(path string) (map[string]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open first CSV %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.TrimSpace(strings.ToLower(col))] = i
	}
	return colIndex, nil
}

// resolveColumns maps column names to header positions.
func resolveColumns(colIndex map[string]int, cols []string) ([]int, error) {
	resolved := make([]int, len(cols))
	for i, col := range cols {
		idx, ok := colIndex[strings.TrimSpace(strings.ToLower(col))]
		if !ok {
			return nil, fmt.Errorf("required column %q not found in CSV", col)
		}
		resolved[i] = idx
	}
	return resolved, nil
}

// readSamples appends one sample per data row of the file. targets is left
// untouched when targetIdx is empty.
func readSamples(path string, inputIdx, targetIdx []int, inputs, targets *[][]float32) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open CSV %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Skip header
	if _, err := reader.Read(); err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}

	rowIdx := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read row %d of %s: %w", rowIdx, path, err)
		}

		in, err := extractColumns(record, inputIdx)
		if err != nil {
			return fmt.Errorf("row %d of %s: %w", rowIdx, path, err)
		}
		*inputs = append(*inputs, in)

		if len(targetIdx) > 0 {
			tgt, err := extractColumns(record, targetIdx)
			if err != nil {
				return fmt.Errorf("row %d of %s: %w", rowIdx, path, err)
			}
			*targets = append(*targets, tgt)
		}
		rowIdx++
	}
	return nil
}

// extractColumns parses the selected record fields as float32.
func extractColumns(record []string, idx []int) ([]float32, error) {
	out := make([]float32, len(idx))
	for i, col := range idx {
		if col >= len(record) {
			return nil, fmt.Errorf("record has %d fields, column %d missing", len(record), col)
		}
		val, err := parseFloat32(record[col])
		if err != nil {
			return nil, fmt.Errorf("failed to parse column %d: %w", col, err)
		}
		out[i] = val
	}
	return out, nil
}

func parseFloat32(s string) (float32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty string")
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	return float32(v), nil
}
