package bushel

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadDataset discovers and loads every record file (.jsonl) under the
// given data directory into a single Dataset. The directory stands in for
// the query layer: whatever it holds when the call is made is the
// read-only snapshot the report is computed from.
//
// A directory with no record files yields an empty dataset; a missing
// directory or an undecodable file is an error for the whole request.
func LoadDataset(dir string) (*Dataset, error) {
	paths, err := findRecordPaths(dir)
	if err != nil {
		return nil, err
	}

	var records []Record
	for _, path := range paths {
		recs, err := loadRecordFile(path)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
	return NewDataset(records...), nil
}

// FormatDataDir rewrites every record file under dir in canonical form:
// each line re-encoded with a stable field order and normalized dates.
// Files are replaced atomically via a temp file. It returns the paths of
// the files it rewrote.
func FormatDataDir(dir string) ([]string, error) {
	paths, err := findRecordPaths(dir)
	if err != nil {
		return nil, err
	}

	for _, path := range paths {
		records, err := loadRecordFile(path)
		if err != nil {
			return nil, err
		}
		if err := writeRecordFile(path, records); err != nil {
			return nil, err
		}
	}
	return paths, nil
}

func writeRecordFile(path string, records []Record) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("could not create temp file for %q: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeRecords(tmp, records); err != nil {
		tmp.Close()
		return fmt.Errorf("could not encode record file %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// findRecordPaths walks the data directory for .jsonl files, sorted so the
// load order is stable.
func findRecordPaths(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".jsonl") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not scan data directory %q: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// loadRecordFile opens and decodes one record file.
func loadRecordFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open record file %q: %w", path, err)
	}
	defer f.Close()

	records, err := DecodeRecords(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode record file %q: %w", path, err)
	}
	return records, nil
}
