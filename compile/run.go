// Package compile hosts the CLI actions around the mapping compiler core:
// validating and compiling documents, dumping schemas, rendering previews,
// packing bundles and inspecting trees. Inputs may be single document
// files, directories or zip archives, including a path pointing inside an
// archive.
package compile

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"
	yaml "gopkg.in/yaml.v3"

	"formc/archive"
	"formc/form"
	"formc/state"
)

// source identifies one document found under the input source.
type source struct {
	Rel     string // path relative to the input root, drives output naming
	Path    string // absolute path of the file or archive holding the document
	Archive bool   // the document came from inside a zip archive
}

// handler consumes one document payload. In batch mode (directory or
// archive input) handler errors are logged and processing continues; for a
// single file the error propagates.
type handler func(data []byte, src source) error

// sourceArgs resolves the SOURCE and optional DESTINATION arguments. The
// destination defaults to the working directory.
func sourceArgs(cmd *cli.Command, log *zap.Logger) (src, dst string, err error) {
	src = cmd.Args().Get(0)
	if len(src) == 0 {
		return "", "", fmt.Errorf("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return "", "", err
	}

	dst = cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return "", "", fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return "", "", err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	return src, dst, nil
}

// applyZipEncoding reads the --force-zip-cp flag into the environment.
// Since zip "standard" does not define file name encoding we may need to
// force an archaic code page for old archives.
func applyZipEncoding(cmd *cli.Command, env *state.LocalEnv, log *zap.Logger) {
	cp := cmd.String("force-zip-cp")
	if len(cp) == 0 {
		return
	}
	enc, err := ianaindex.IANA.Encoding(cp)
	if err != nil {
		log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
		return
	}
	env.CodePage = enc
	n, _ := ianaindex.IANA.Name(enc)
	log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", n))
}

// process determines the input type (directory, archive or single file,
// possibly a path reaching inside an archive) and feeds every document it
// finds to fn.
func process(ctx context.Context, src string, log *zap.Logger, fn handler) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exist - probably a path inside an archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// a directory cannot have a tail - it would be a simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if err := processDir(ctx, head, log, fn); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			break
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		arc, err := isArchiveFile(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if arc {
			// we need to look inside to see if the path makes sense
			tail = strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
			if err := processArchive(ctx, head, filepath.ToSlash(tail), "", log, fn); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			break
		}

		if isDocumentFile(head) && len(tail) == 0 {
			data, err := os.ReadFile(head)
			if err != nil {
				return fmt.Errorf("unable to read file (%s): %w", head, err)
			}
			return fn(data, source{Rel: filepath.Base(head), Path: head})
		}
		return fmt.Errorf("input was not recognized as a form document (%s)", head)
	}
	if len(head) == 0 {
		return fmt.Errorf("input source was not found (%s)", src)
	}
	return nil
}

// processDir walks a directory tree finding document files and archives,
// feeding them to fn.
func processDir(ctx context.Context, dir string, log *zap.Logger, fn handler) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		arc, err := isArchiveFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if arc {
			if err := processArchive(ctx, path, "", filepath.Dir(strings.TrimPrefix(path, dir)), log, fn); err != nil {
				log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
			return nil
		}

		if !isDocumentFile(path) {
			log.Debug("Skipping file, not recognized as form document", zap.String("file", path))
			return nil
		}

		count++

		data, err := os.ReadFile(path)
		if err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			return nil
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := fn(data, source{Rel: rel, Path: path}); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
	return err
}

// processArchive walks all files inside an archive, finds document members
// under pathIn and feeds them to fn. pathOut is prepended to the relative
// source path of each document, preserving the position of the archive
// within a directory walk.
func processArchive(ctx context.Context, path, pathIn, pathOut string, log *zap.Logger, fn handler) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("archive", path))
		}
	}()

	err = archive.Walk(path, pathIn, func(f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !isDocumentFile(f.FileHeader.Name) {
			log.Debug("Skipping file, not recognized as form document", zap.String("archive", path), zap.String("file", f.FileHeader.Name))
			return nil
		}

		count++

		data, err := readArchiveFile(f)
		if err != nil {
			log.Error("Unable to process file in archive",
				zap.String("archive", path), zap.String("file", f.FileHeader.Name), zap.Error(err))
			return nil
		}

		cp := state.EnvFromContext(ctx).CodePage
		name, err := archive.DecodeName(f, cp)
		if err != nil {
			n, _ := ianaindex.IANA.Name(cp)
			log.Warn("Unable to convert archive name from specified encoding",
				zap.String("charset", n), zap.String("path", f.FileHeader.Name), zap.Error(err))
			name = f.FileHeader.Name
		}

		rel := filepath.Join(pathOut, filepath.FromSlash(name))
		if err := fn(data, source{Rel: rel, Path: path, Archive: true}); err != nil {
			log.Error("Unable to process file in archive",
				zap.String("archive", path), zap.String("file", f.FileHeader.Name), zap.Error(err))
		}
		return nil
	})
	return err
}

// isArchiveFile reports whether the file looks like a zip archive: the
// right extension and real zip content behind it.
func isArchiveFile(path string) (bool, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip", ".formz":
	default:
		return false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, 262)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return false, err
	}
	return filetype.Is(head[:n], "zip"), nil
}

// isDocumentFile reports whether the path names a document by extension.
// Content problems surface later as per file parse errors.
func isDocumentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeDocument parses a document payload, JSON or YAML by extension.
// YAML goes through a JSON round trip so both forms share one wire model.
func decodeDocument(data []byte, name string) (*form.Document, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("unable to parse document: %w", err)
		}
		var err error
		if data, err = json.Marshal(raw); err != nil {
			return nil, fmt.Errorf("unable to convert document: %w", err)
		}
	}
	return form.Decode(data)
}

// loadDocument decodes a document and makes sure it carries a usable id.
// Hosts sometimes hand out documents with empty or garbage ids; a fresh
// one keeps downstream naming and reporting deterministic.
func loadDocument(data []byte, src string, log *zap.Logger) (*form.Document, error) {
	doc, err := decodeDocument(data, src)
	if err != nil {
		return nil, err
	}
	if !doc.ValidID() {
		id, err := form.NewDocumentID()
		if err != nil {
			return nil, err
		}
		log.Warn("Document id is missing or not a UUID, assigning a new one",
			zap.String("source", src), zap.String("old", doc.ID), zap.String("new", id))
		doc.ID = id
	}
	return doc, nil
}

// prepareOutput applies the overwrite policy and makes sure the target
// directory exists.
func prepareOutput(outputName string, overwrite bool, log *zap.Logger) error {
	if _, err := os.Stat(outputName); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
		if err = os.Remove(outputName); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return nil
}

func readArchiveFile(f *zip.File) ([]byte, error) {
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
