package bushel

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDataset(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "aliases.jsonl"),
		`{"record":"alias","alias":"Yellow Corn","standard":"Corn"}`+"\n")
	writeFile(t, filepath.Join(dir, "contracts.jsonl"),
		`{"record":"contract","number":"C-1","commodity":"Yellow Corn","bushels":3000,"price":5,"deliveryStart":"2024-11-01"}`+"\n")
	// Non-record files are ignored.
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a record file\n")

	d, err := LoadDataset(dir)
	if err != nil {
		t.Fatalf("LoadDataset() error = %v", err)
	}
	if got := d.Commodities(); len(got) != 1 || got[0] != "Corn" {
		t.Errorf("Commodities() = %v, want [Corn]", got)
	}
}

func TestLoadDataset_EmptyDir(t *testing.T) {
	d, err := LoadDataset(t.TempDir())
	if err != nil {
		t.Fatalf("LoadDataset() error = %v", err)
	}
	if len(d.Records()) != 0 {
		t.Errorf("got %d records, want 0", len(d.Records()))
	}
}

func TestLoadDataset_MissingDir(t *testing.T) {
	if _, err := LoadDataset(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("LoadDataset() error = nil, want an error for a missing directory")
	}
}

func TestLoadDataset_BadFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.jsonl"), "not json\n")
	if _, err := LoadDataset(dir); err == nil {
		t.Error("LoadDataset() error = nil, want an error for an undecodable file")
	}
}

func TestFormatDataDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.jsonl")
	// Shuffled field order, implicit defaults, lenient date.
	writeFile(t, path,
		`{"bushels":3000,"record":"contract","deliveryStart":"2024-11-1","number":"C-1","price":5,"commodity":"Corn"}`+"\n")

	paths, err := FormatDataDir(dir)
	if err != nil {
		t.Fatalf("FormatDataDir() error = %v", err)
	}
	if len(paths) != 1 || paths[0] != path {
		t.Fatalf("formatted paths = %v, want [%s]", paths, path)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"record":"contract","number":"C-1","commodity":"Corn","bushels":3000,"price":5,"basis":0,"deliveryStart":"2024-11-01","status":"Active","fill":"None"}` + "\n"
	if string(got) != want {
		t.Errorf("canonical form:\ngot  %s\nwant %s", got, want)
	}

	// Formatting the canonical form is a no-op.
	if _, err := FormatDataDir(dir); err != nil {
		t.Fatalf("FormatDataDir() second pass error = %v", err)
	}
	again, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(again) != want {
		t.Errorf("second pass changed the file:\ngot  %s\nwant %s", again, want)
	}
}
