package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReport_Archive(t *testing.T) {
	tmpDir := t.TempDir()

	srcPath := filepath.Join(tmpDir, "source.json")
	if err := os.WriteFile(srcPath, []byte(`{"id":"x"}`), 0644); err != nil {
		t.Fatalf("failed to write source file: %v", err)
	}

	conf := &ReporterConfig{Destination: filepath.Join(tmpDir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	r.StoreData("config.yaml", []byte("version: 1\n"))
	r.Store("document.json", srcPath)
	r.Store("missing.json", filepath.Join(tmpDir, "does-not-exist.json"))

	name := r.Name()
	if name == "" {
		t.Fatal("Name() returned empty string")
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("report is not a readable zip: %v", err)
	}
	defer zr.Close()

	found := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %q in report: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read %q in report: %v", f.Name, err)
		}
		found[f.Name] = string(data)
	}

	for _, want := range []string{"MANIFEST", "config.yaml", "document.json"} {
		if _, ok := found[want]; !ok {
			t.Errorf("report is missing %q, has %v", want, fileNames(zr.File))
		}
	}
	// files gone by Close time are listed in the manifest but not archived
	if _, ok := found["missing.json"]; ok {
		t.Error("report should not contain the missing file")
	}

	if found["config.yaml"] != "version: 1\n" {
		t.Errorf("config.yaml content = %q, want %q", found["config.yaml"], "version: 1\n")
	}
	if found["document.json"] != `{"id":"x"}` {
		t.Errorf("document.json content = %q, want %q", found["document.json"], `{"id":"x"}`)
	}

	// manifest lists every stored item in store order, captured data is marked
	manifest := found["MANIFEST"]
	lines := strings.Split(strings.TrimRight(manifest, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("MANIFEST has %d lines, want 3:\n%s", len(lines), manifest)
	}
	for i, want := range []string{"config.yaml", "document.json", "missing.json"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("MANIFEST line %d = %q, want mention of %q", i, lines[i], want)
		}
	}
	if !strings.Contains(lines[0], "(captured)") {
		t.Errorf("MANIFEST line for stored data = %q, want origin marked as captured", lines[0])
	}
	if zr.File[0].Name != "MANIFEST" {
		t.Errorf("first archive member is %q, want MANIFEST", zr.File[0].Name)
	}
}

func TestReport_DuplicateNamesNumbered(t *testing.T) {
	tmpDir := t.TempDir()

	conf := &ReporterConfig{Destination: filepath.Join(tmpDir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	r.StoreData("run.log", []byte("first"))
	r.StoreData("run.log", []byte("second"))
	r.StoreData("run.log", []byte("third"))

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	zr, err := zip.OpenReader(r.Name())
	if err != nil {
		t.Fatalf("report is not a readable zip: %v", err)
	}
	defer zr.Close()

	names := fileNames(zr.File)
	for _, want := range []string{"run.log", "run.log.1", "run.log.2"} {
		ok := false
		for _, n := range names {
			if n == want {
				ok = true
				break
			}
		}
		if !ok {
			t.Errorf("report is missing %q, has %v", want, names)
		}
	}
}

func TestReport_PrepareFallsBackToTemp(t *testing.T) {
	// destination directory does not exist, Prepare should fall back to a temp file
	conf := &ReporterConfig{Destination: filepath.Join(t.TempDir(), "no", "such", "dir", "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	defer os.Remove(r.Name())

	if r.Name() == "" {
		t.Fatal("Name() returned empty string")
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}

func TestReport_NilMethods(t *testing.T) {
	var r *Report

	if name := r.Name(); name != "" {
		t.Errorf("Name() on nil report = %q, want empty", name)
	}
	r.Store("a", "b")
	r.StoreData("c", []byte("d"))
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{names: make(map[string]int)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}

func fileNames(files []*zip.File) []string {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	return names
}
