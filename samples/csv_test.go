package samples

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeCSV writes a CSV file with the given header and rows to path.
func writeCSV(t *testing.T, path, header string, rows []string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create csv %s: %v", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(header + "\n"); err != nil {
		t.Fatalf("failed to write header: %v", err)
	}
	for _, r := range rows {
		if _, err := f.WriteString(r + "\n"); err != nil {
			t.Fatalf("failed to write row: %v", err)
		}
	}
}

// TestFromCSV_Paired loads a paired table from two CSV files and checks the
// samples arrive in file order with the selected columns.
func TestFromCSV_Paired(t *testing.T) {
	tmp := t.TempDir()
	header := "x,y,label"

	writeCSV(t, filepath.Join(tmp, "a.csv"), header, []string{
		"1,2,10",
		"3,4,20",
	})
	writeCSV(t, filepath.Join(tmp, "b.csv"), header, []string{
		"5,6,30",
	})

	pattern := filepath.Join(tmp, "*.csv")
	tbl, err := FromCSV(pattern, []string{"x", "y"}, []string{"label"})
	if err != nil {
		t.Fatalf("FromCSV failed: %v", err)
	}

	if got := tbl.Len(); got != 3 {
		t.Fatalf("expected len 3, got %d", got)
	}
	if tbl.SelfPaired() {
		t.Fatalf("expected paired table")
	}
	if tbl.InputDim() != 2 || tbl.TargetDim() != 1 {
		t.Fatalf("unexpected dims: input=%d target=%d", tbl.InputDim(), tbl.TargetDim())
	}

	in, tgt, err := tbl.At(1)
	if err != nil {
		t.Fatalf("At(1) error: %v", err)
	}
	if !eqSample(in, []float32{3, 4}) || !eqSample(tgt, []float32{20}) {
		t.Fatalf("unexpected pair at 1: in=%v tgt=%v", in, tgt)
	}

	in, tgt, err = tbl.At(2)
	if err != nil {
		t.Fatalf("At(2) error: %v", err)
	}
	if !eqSample(in, []float32{5, 6}) || !eqSample(tgt, []float32{30}) {
		t.Fatalf("unexpected pair at 2: in=%v tgt=%v", in, tgt)
	}
}

// TestFromCSV_SelfPaired builds a table with no target columns.
func TestFromCSV_SelfPaired(t *testing.T) {
	tmp := t.TempDir()
	writeCSV(t, filepath.Join(tmp, "data.csv"), "x,y", []string{
		"1,2",
		"3,4",
	})

	tbl, err := FromCSV(filepath.Join(tmp, "*.csv"), []string{"x", "y"}, nil)
	if err != nil {
		t.Fatalf("FromCSV failed: %v", err)
	}
	if !tbl.SelfPaired() {
		t.Fatalf("expected self-paired table")
	}

	in, tgt, err := tbl.At(0)
	if err != nil {
		t.Fatalf("At(0) error: %v", err)
	}
	if !eqSample(in, []float32{1, 2}) || !eqSample(tgt, []float32{1, 2}) {
		t.Fatalf("unexpected pair at 0: in=%v tgt=%v", in, tgt)
	}
}

// TestFromCSV_CaseInsensitiveColumns matches column names ignoring case and
// surrounding whitespace.
func TestFromCSV_CaseInsensitiveColumns(t *testing.T) {
	tmp := t.TempDir()
	writeCSV(t, filepath.Join(tmp, "data.csv"), "X, Y ,Label", []string{
		"1,2,7",
	})

	tbl, err := FromCSV(filepath.Join(tmp, "*.csv"), []string{"x", "y"}, []string{"label"})
	if err != nil {
		t.Fatalf("FromCSV failed: %v", err)
	}
	_, tgt, err := tbl.At(0)
	if err != nil {
		t.Fatalf("At(0) error: %v", err)
	}
	if !eqSample(tgt, []float32{7}) {
		t.Fatalf("unexpected target: %v", tgt)
	}
}

func TestFromCSV_MissingColumn(t *testing.T) {
	tmp := t.TempDir()
	writeCSV(t, filepath.Join(tmp, "data.csv"), "x,y", []string{"1,2"})

	if _, err := FromCSV(filepath.Join(tmp, "*.csv"), []string{"x", "z"}, nil); err == nil {
		t.Fatalf("expected error for missing column, got nil")
	}
}

func TestFromCSV_NoFiles(t *testing.T) {
	tmp := t.TempDir()
	if _, err := FromCSV(filepath.Join(tmp, "*.csv"), []string{"x"}, nil); err == nil {
		t.Fatalf("expected error for empty glob, got nil")
	}
}

func TestFromCSV_NoInputColumns(t *testing.T) {
	tmp := t.TempDir()
	writeCSV(t, filepath.Join(tmp, "data.csv"), "x", []string{"1"})

	_, err := FromCSV(filepath.Join(tmp, "*.csv"), nil, nil)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestFromCSV_BadValue(t *testing.T) {
	tmp := t.TempDir()
	writeCSV(t, filepath.Join(tmp, "data.csv"), "x,y", []string{"1,oops"})

	if _, err := FromCSV(filepath.Join(tmp, "*.csv"), []string{"x", "y"}, nil); err == nil {
		t.Fatalf("expected parse error, got nil")
	}
}
