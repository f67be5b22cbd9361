package catalog

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/ianaindex"
)

// Load reads a field catalog from path, converting it to UTF-8 first. The
// format is chosen by extension: .json (flat entry array) or .csv (header
// row plus one entry per line). encodingName forces a specific IANA
// encoding (shift_jis, euc-jp); when empty the encoding is detected from
// the content.
func Load(path, encodingName string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read catalog file: %w", err)
	}

	if data, err = toUTF8(data, encodingName); err != nil {
		return nil, fmt.Errorf("unable to convert catalog file %q: %w", path, err)
	}

	var entries []Entry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		entries, err = parseJSON(data)
	case ".csv":
		entries, err = parseCSV(data)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("unable to parse catalog file %q: %w", path, err)
	}
	return Build(entries), nil
}

func toUTF8(data []byte, encodingName string) ([]byte, error) {
	if encodingName != "" {
		e, err := ianaindex.IANA.Encoding(encodingName)
		if err != nil {
			return nil, fmt.Errorf("unknown character set specification %q: %w", encodingName, err)
		}
		if e != nil {
			if data, err = e.NewDecoder().Bytes(data); err != nil {
				return nil, err
			}
		}
		return bytes.TrimPrefix(data, []byte("\uFEFF")), nil
	}

	// valid UTF-8 passes through - DetermineEncoding falls back to
	// windows-1252 for plain content and would mangle it
	if utf8.Valid(data) {
		return bytes.TrimPrefix(data, []byte("\uFEFF")), nil
	}

	e, _, _ := charset.DetermineEncoding(data, "")
	out, err := e.NewDecoder().Bytes(data)
	if err != nil {
		return nil, err
	}
	return bytes.TrimPrefix(out, []byte("\uFEFF")), nil
}

func parseJSON(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func parseCSV(data []byte) ([]Entry, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	// column order is whatever the export produced, match by name
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[normalizeHeader(h)] = i
	}
	if _, ok := cols["code"]; !ok {
		return nil, fmt.Errorf("catalog csv needs a header row with a code column")
	}

	field := func(rec []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var entries []Entry
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		e := Entry{
			Code:         field(rec, "code"),
			Label:        field(rec, "label"),
			Type:         field(rec, "type"),
			SubtableCode: field(rec, "subtablecode"),
		}
		if v := field(rec, "issubtable"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("bad isSubtable value %q: %w", v, err)
			}
			e.IsSubtable = b
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func normalizeHeader(h string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), "_", "")
}
