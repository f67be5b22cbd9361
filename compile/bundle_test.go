package compile

import (
	"archive/zip"
	"context"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cli "github.com/urfave/cli/v3"

	"formc/form"
)

func runPack(ctx context.Context, args ...string) error {
	cmd := &cli.Command{
		Name:   "pack",
		Action: Pack,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}},
		},
	}
	return cmd.Run(ctx, append([]string{"pack"}, args...))
}

func runUnpack(ctx context.Context, args ...string) error {
	cmd := &cli.Command{
		Name:   "unpack",
		Action: Unpack,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "force-zip-cp"},
		},
	}
	return cmd.Run(ctx, append([]string{"unpack"}, args...))
}

func readBundleMember(t *testing.T, r *zip.ReadCloser, name string) []byte {
	t.Helper()
	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("Failed to open bundle member %s: %v", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("Failed to read bundle member %s: %v", name, err)
		}
		return data
	}
	t.Fatalf("Bundle has no member %s", name)
	return nil
}

// TestPackUnpackActions tests the full bundle round trip through the CLI
// surface
func TestPackUnpackActions(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "logo.png"), solidPNG(t, 96, 96, color.NRGBA{R: 30, G: 120, B: 60, A: 255}), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	srcFile := filepath.Join(tmpDir, "invoice.json")
	if err := os.WriteFile(srcFile, compiledInvoiceJSON(t, "logo.png"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	bundlePath := filepath.Join(t.TempDir(), "invoice.formz")
	if err := runPack(ctx, srcFile, bundlePath); err != nil {
		t.Fatalf("pack action error = %v", err)
	}

	r, err := zip.OpenReader(bundlePath)
	if err != nil {
		t.Fatalf("Failed to open bundle: %v", err)
	}
	defer r.Close()

	names := make(map[string]bool, len(r.File))
	for _, f := range r.File {
		names[f.Name] = true
	}
	for _, want := range []string{"MANIFEST", "document.json", "assets/logo.png"} {
		if !names[want] {
			t.Errorf("Bundle is missing member %s, has %v", want, names)
		}
	}

	packed, err := form.Decode(readBundleMember(t, r, "document.json"))
	if err != nil {
		t.Fatalf("Failed to decode packed document: %v", err)
	}
	if got := packed.Mapping.Header["logo"].URL; got != "assets/logo.png" {
		t.Errorf("logo mapping ref = %q, want %q", got, "assets/logo.png")
	}
	logo := findElement(t, packed.Elements, "logo")
	if logo.DataSource == nil || logo.DataSource.Value != "assets/logo.png" {
		t.Errorf("logo element source = %+v, want assets/logo.png", logo.DataSource)
	}

	unpackDir := t.TempDir()
	if err := runUnpack(ctx, bundlePath, unpackDir); err != nil {
		t.Fatalf("unpack action error = %v", err)
	}
	for _, want := range []string{"MANIFEST", "document.json", filepath.Join("assets", "logo.png")} {
		if _, err := os.Stat(filepath.Join(unpackDir, want)); err != nil {
			t.Errorf("Expected unpacked file %s: %v", want, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(unpackDir, "document.json"))
	if err != nil {
		t.Fatalf("Failed to read unpacked document: %v", err)
	}
	doc, err := form.Decode(data)
	if err != nil {
		t.Fatalf("Failed to decode unpacked document: %v", err)
	}
	if doc.ID != "0190d8a3-3c8b-7cc0-b37a-d025d02ab11b" {
		t.Errorf("Unpacked document id = %q, want fixture id", doc.ID)
	}
	if doc.Name != "完全請求書" {
		t.Errorf("Unpacked document name = %q, want fixture name", doc.Name)
	}
}

// TestPackAction_DirDestination tests that a directory destination gets the
// default bundle name appended
func TestPackAction_DirDestination(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	tmpDir := t.TempDir()
	dstDir := t.TempDir()
	srcFile := filepath.Join(tmpDir, "invoice.json")
	if err := os.WriteFile(srcFile, compiledInvoiceJSON(t, ""), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if err := runPack(ctx, srcFile, dstDir); err != nil {
		t.Fatalf("pack action error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dstDir, "invoice.formz")); err != nil {
		t.Errorf("Expected bundle in destination directory: %v", err)
	}
}

// TestPackAction_Overwrite tests the overwrite policy for bundles
func TestPackAction_Overwrite(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	tmpDir := t.TempDir()
	srcFile := filepath.Join(tmpDir, "invoice.json")
	if err := os.WriteFile(srcFile, compiledInvoiceJSON(t, ""), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	bundlePath := filepath.Join(t.TempDir(), "invoice.formz")

	if err := runPack(ctx, srcFile, bundlePath); err != nil {
		t.Fatalf("pack action error = %v", err)
	}
	err := runPack(ctx, srcFile, bundlePath)
	if err == nil || !strings.Contains(err.Error(), "output file already exists") {
		t.Errorf("Expected overwrite refusal, got %v", err)
	}
	if err := runPack(ctx, "--ow", srcFile, bundlePath); err != nil {
		t.Errorf("pack action with overwrite error = %v", err)
	}
}

// TestPackAction_Errors tests pack input validation
func TestPackAction_Errors(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	tmpDir := t.TempDir()

	err := runPack(ctx)
	if err == nil || !strings.Contains(err.Error(), "no input source has been specified") {
		t.Errorf("Expected missing source error, got %v", err)
	}

	err = runPack(ctx, filepath.Join(tmpDir, "missing.json"))
	if err == nil || !strings.Contains(err.Error(), "input source was not found") {
		t.Errorf("Expected missing file error, got %v", err)
	}

	txtFile := filepath.Join(tmpDir, "notes.txt")
	if err := os.WriteFile(txtFile, []byte("not a document"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	err = runPack(ctx, txtFile)
	if err == nil || !strings.Contains(err.Error(), "input was not recognized as a form document") {
		t.Errorf("Expected non-document error, got %v", err)
	}
}

// TestUnpackAction_NotBundle tests that unpack refuses non-archive input
func TestUnpackAction_NotBundle(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	tmpDir := t.TempDir()
	srcFile := filepath.Join(tmpDir, "invoice.json")
	if err := os.WriteFile(srcFile, compiledInvoiceJSON(t, ""), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	err := runUnpack(ctx, srcFile, t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "input was not recognized as a bundle") {
		t.Errorf("Expected non-bundle error, got %v", err)
	}
}
