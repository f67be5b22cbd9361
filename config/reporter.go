package config

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"formc/misc"
)

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare creates an empty report backed by the configured destination,
// falling back to a temporary file when the destination cannot be created.
func (conf *ReporterConfig) Prepare() (*Report, error) {

	r := &Report{names: make(map[string]int)}

	if f, err := os.Create(conf.Destination); err == nil {
		r.file = f
	} else if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err == nil {
		r.file = f
	} else {
		return nil, fmt.Errorf("unable to create report: %w", err)
	}
	return r, nil
}

// item is a single report member, either bytes captured at store time or a
// reference to a file picked up from disk when the report is closed.
type item struct {
	name   string
	origin string
	stamp  time.Time
	data   []byte
}

// Report collects produced outputs and captured data for a single run and
// writes them out as one zip archive on Close. All methods tolerate a nil
// receiver so call sites do not need to check whether a report was requested.
// NOTE: presently not to be used concurrently!
type Report struct {
	items []item
	names map[string]int
	file  *os.File
}

// Name returns the absolute path of the report archive.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	if n, err := filepath.Abs(r.file.Name()); err == nil {
		return n
	}
	return r.file.Name()
}

// Store registers a file to be picked up from disk when the report is closed.
// Files gone by that time are dropped from the archive.
func (r *Report) Store(name, path string) {
	if r == nil {
		return
	}
	if p, err := filepath.Abs(path); err == nil {
		path = p
	}
	r.add(item{name: name, origin: path})
}

// StoreData captures bytes at the time of the call to be archived under the
// requested name.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	r.add(item{name: name, data: data, stamp: time.Now()})
}

// add appends an item, numbering the name when it was used before so nothing
// stored earlier gets shadowed.
func (r *Report) add(it item) {
	if n, taken := r.names[it.name]; taken {
		r.names[it.name] = n + 1
		it.name = fmt.Sprintf("%s.%d", it.name, n)
	} else {
		r.names[it.name] = 1
	}
	r.items = append(r.items, it)
}

// Close writes out the report archive.
func (r *Report) Close() error {
	if r == nil || r.file == nil {
		// Ignore uninitialized cases to avoid checking in many places. This means no report has been requested.
		return nil
	}
	defer r.file.Close()

	arc := zip.NewWriter(r.file)
	defer arc.Close()

	now := time.Now()
	if err := addMember(arc, "MANIFEST", now, manifest(r.items, now)); err != nil {
		return err
	}

	// in the same order as in manifest
	for _, it := range r.items {
		if it.data != nil {
			if err := addMember(arc, it.name, it.stamp, bytes.NewReader(it.data)); err != nil {
				return err
			}
			continue
		}

		info, err := os.Stat(it.origin)
		if err != nil || !info.Mode().IsRegular() {
			// stored files may have been moved or cleaned up since
			continue
		}
		f, err := os.Open(it.origin)
		if err != nil {
			continue
		}
		err = addMember(arc, it.name, info.ModTime(), f)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// manifest lists report members in the order they were stored, one line per
// member with its timestamp and origin.
func manifest(items []item, now time.Time) *bytes.Buffer {

	buf := new(bytes.Buffer)
	for _, it := range items {
		stamp, origin := it.stamp, it.origin
		if stamp.IsZero() {
			stamp = now
		}
		if origin == "" {
			origin = "(captured)"
		}
		fmt.Fprintf(buf, "%s\t%s\t%s\n", stamp.UTC().Format(time.UnixDate), it.name, origin)
	}
	return buf
}

func addMember(dst *zip.Writer, name string, t time.Time, src io.Reader) error {
	w, err := dst.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: t})
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, src); err != nil {
		return err
	}
	return nil
}
