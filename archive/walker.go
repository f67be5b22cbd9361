// Package archive reads documents and bundle members out of zip archives
// without extracting them to disk.
package archive

import (
	"archive/zip"
	"fmt"
	"path"
	"strings"

	"golang.org/x/text/encoding"
)

// WalkFunc is called by Walk for every archive member it visits. Returning
// an error stops the walk and hands the error back to the caller.
type WalkFunc func(f *zip.File) error

// Walk visits every regular file in the archive whose stored name starts
// with prefix, in archive order. An empty prefix visits everything. Member
// names are validated as the walk goes: an absolute name or one with a ".."
// component aborts it, such archives come from hostile tooling (Zip Slip).
func Walk(archive, prefix string, fn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.FileHeader.Name
		if escapesRoot(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || !strings.HasPrefix(name, prefix) {
			continue
		}
		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

// DecodeName returns the name of a zip entry, converting it from the given
// encoding when the entry is not marked as UTF-8. Zip "standard" does not
// define file name encoding, so archives produced by old tools may carry
// names in an archaic code page. enc may be nil in which case the stored
// name is returned as is.
func DecodeName(f *zip.File, enc encoding.Encoding) (string, error) {
	name := f.FileHeader.Name
	if enc == nil || !f.FileHeader.NonUTF8 {
		return name, nil
	}
	decoded, err := enc.NewDecoder().String(name)
	if err != nil {
		return name, err
	}
	return decoded, nil
}

// escapesRoot reports whether a stored member name could climb out of the
// directory an archive is unpacked into.
func escapesRoot(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return true
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return true
		}
	}
	return false
}
