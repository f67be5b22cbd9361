// Package bundle packs a form document together with its local image
// assets into a portable zip and unpacks it back. A bundle holds
// document.json, the referenced images under assets/ and a MANIFEST
// recording where every member came from, so a document authored on one
// machine renders the same logos anywhere.
package bundle

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	fixzip "github.com/hidez8891/zip"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"formc/archive"
	"formc/form"
	"formc/utils/images"
)

// Bundle member layout.
const (
	DocumentMember = "document.json"
	AssetsDir      = "assets"
	ManifestMember = "MANIFEST"
)

// minLogoDPI is the effective print density below which a logo warning is
// emitted. Page geometry is 96 dpi; print output needs more pixels than
// the screen box suggests.
const minLogoDPI = 150

// Loader resolves an asset reference from the document to the raw bytes
// of the asset, usually relative to the document file.
type Loader func(ref string) ([]byte, error)

// PackOptions control Pack.
type PackOptions struct {
	Pretty bool   // pretty-print document.json
	FixZip bool   // rewrite the archive without data descriptors
	Source string // where the document came from, recorded in the manifest
	Loader Loader // nil packs no assets, references stay as they are
	Logger *zap.Logger
}

// UnpackOptions control Unpack.
type UnpackOptions struct {
	// NameEncoding decodes member names of archives produced by tools
	// that wrote them in a legacy code page. Nil keeps names as stored.
	NameEncoding encoding.Encoding
	Logger       *zap.Logger
}

type asset struct {
	ref    string // original reference from the document
	member string // member path inside the bundle
	data   []byte
}

// Pack writes the document and its local image assets as a bundle at
// outPath. The stored document has its asset references rewritten to
// bundle-relative paths; the caller's document is left untouched.
func Pack(doc *form.Document, outPath string, opts PackOptions) error {
	if doc == nil {
		return fmt.Errorf("no document to pack")
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("bundle")

	packed := *doc
	packed.Elements = form.CloneElements(doc.Elements)
	packed.Mapping = doc.Mapping.Clone()
	assets := collectAssets(&packed, opts.Loader, log)

	data, err := form.Encode(&packed, opts.Pretty)
	if err != nil {
		return err
	}

	log.Debug("Packing bundle",
		zap.String("document", packed.ID),
		zap.Int("assets", len(assets)),
		zap.String("to", outPath))

	tmp, err := os.CreateTemp(filepath.Dir(outPath), ".formc-pack-*.zip")
	if err != nil {
		return fmt.Errorf("unable to create temporary archive: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := writeArchive(tmp, opts.Source, data, assets); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("unable to finalize temporary archive: %w", err)
	}

	if opts.FixZip {
		return copyZipWithoutDataDescriptors(tmpName, outPath)
	}
	return copyFile(tmpName, outPath)
}

// Unpack extracts a bundle into destDir and returns the document it
// carries. Member paths are confined to destDir.
func Unpack(bundlePath, destDir string, opts UnpackOptions) (*form.Document, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("bundle")

	var doc *form.Document
	err := archive.Walk(bundlePath, "", func(f *zip.File) error {
		name, err := archive.DecodeName(f, opts.NameEncoding)
		if err != nil {
			log.Warn("Unable to decode member name, keeping it as stored", zap.String("member", f.Name), zap.Error(err))
			name = f.Name
		}
		// decoding may not invent a path that escapes the destination
		if !filepath.IsLocal(filepath.FromSlash(name)) {
			return fmt.Errorf("bundle member %q: unsafe path", name)
		}
		data, err := readMember(f)
		if err != nil {
			return fmt.Errorf("unable to read bundle member %s: %w", f.Name, err)
		}
		if name == DocumentMember {
			if doc, err = form.Decode(data); err != nil {
				return err
			}
		}
		target := filepath.Join(destDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
		return os.WriteFile(target, data, 0644)
	})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("bundle has no %s", DocumentMember)
	}

	log.Debug("Unpacked bundle",
		zap.String("document", doc.ID),
		zap.String("from", bundlePath),
		zap.String("to", destDir))
	return doc, nil
}

// ReadDocument decodes the document stored in a bundle without extracting
// anything.
func ReadDocument(bundlePath string) (*form.Document, error) {
	var doc *form.Document
	err := archive.Walk(bundlePath, DocumentMember, func(f *zip.File) error {
		if f.Name != DocumentMember || doc != nil {
			return nil
		}
		data, err := readMember(f)
		if err != nil {
			return err
		}
		doc, err = form.Decode(data)
		return err
	})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("bundle has no %s", DocumentMember)
	}
	return doc, nil
}

// Assets returns a loader resolving the rewritten bundle-relative
// references ("assets/...") against the bundle members, so a bundle can
// be previewed without unpacking it.
func Assets(bundlePath string) func(ref string) ([]byte, error) {
	return func(ref string) ([]byte, error) {
		want := path.Clean(filepath.ToSlash(ref))
		var data []byte
		err := archive.Walk(bundlePath, AssetsDir+"/", func(f *zip.File) error {
			if data == nil && path.Clean(f.Name) == want {
				var err error
				data, err = readMember(f)
				return err
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		if data == nil {
			return nil, fmt.Errorf("bundle has no asset %s", ref)
		}
		return data, nil
	}
}

// collectAssets loads every local image referenced by the document,
// assigns bundle member names and rewrites the references in the element
// tree and the mapping. The document must be a private copy.
func collectAssets(doc *form.Document, loader Loader, log *zap.Logger) []asset {
	if loader == nil {
		return nil
	}

	members := make(map[string]string) // ref -> member
	used := make(map[string]struct{})  // member names taken
	var out []asset

	for i := range doc.Elements {
		el := &doc.Elements[i]
		if el.Kind != form.ElementKindImage {
			continue
		}
		ref := staticImageRef(el)
		if ref == "" {
			continue
		}
		if member, ok := members[ref]; ok {
			el.DataSource.Value = member
			continue
		}
		data, err := loader(ref)
		if err != nil {
			log.Warn("Unable to load image asset", zap.String("id", el.ID), zap.String("ref", ref), zap.Error(err))
			continue
		}
		ext, ok := images.DetectImage(data)
		if !ok {
			log.Warn("Unsupported image asset format", zap.String("id", el.ID), zap.String("ref", ref))
			continue
		}
		checkLogoDensity(el, data, log)

		member := assetMember(ref, ext, used)
		members[ref] = member
		out = append(out, asset{ref: ref, member: member, data: data})
		el.DataSource.Value = member
	}

	rewriteMappingRefs(&doc.Mapping, members)
	return out
}

// staticImageRef returns the loadable reference of an image element.
// Remote URLs are never fetched and record bound images resolve at
// production render time, both travel as they are.
func staticImageRef(el *form.Element) string {
	if el.DataSource == nil || el.DataSource.Type != form.DataSourceTypeStatic {
		return ""
	}
	ref := el.DataSource.Value
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ""
	}
	return ref
}

// assetMember assigns a member path under assets/: the reference base
// name with the extension corrected to the sniffed type, numbered on
// collisions.
func assetMember(ref, ext string, used map[string]struct{}) string {
	base := path.Base(filepath.ToSlash(ref))
	stem := strings.TrimSuffix(base, path.Ext(base))
	if stem == "" || stem == "." || stem == "/" {
		stem = "asset"
	}
	name := fmt.Sprintf("%s/%s.%s", AssetsDir, stem, ext)
	for n := 2; ; n++ {
		if _, taken := used[name]; !taken {
			break
		}
		name = fmt.Sprintf("%s/%s-%d.%s", AssetsDir, stem, n, ext)
	}
	used[name] = struct{}{}
	return name
}

// rewriteMappingRefs points imageUrl bindings at the packed members so a
// re-synthesis after unpacking resolves to bundled assets, not to paths
// on the machine that packed them.
func rewriteMappingRefs(m *form.Mapping, members map[string]string) {
	for _, refs := range []map[string]form.FieldRef{m.Header, m.Footer} {
		for id, ref := range refs {
			if ref.Kind != form.RefKindImageUrl {
				continue
			}
			if member, ok := members[ref.URL]; ok {
				ref.URL = member
				refs[id] = ref
			}
		}
	}
}

// checkLogoDensity warns when a raster logo cannot hold print quality in
// its target box. With aspect preserving placement the rendered density
// is decided by the axis that hits the box first, so the warning fires
// only when even that axis falls short. Vector assets scale cleanly.
func checkLogoDensity(el *form.Element, data []byte, log *zap.Logger) {
	if el.Width <= 0 || el.Height <= 0 || images.IsSVG(data) {
		return
	}
	w, h, err := images.Dimensions(data)
	if err != nil || w <= 0 || h <= 0 {
		return
	}
	dpi := math.Max(float64(w)*96/float64(el.Width), float64(h)*96/float64(el.Height))
	if dpi < minLogoDPI {
		log.Warn("Logo resolution below print quality",
			zap.String("id", el.ID),
			zap.String("ref", el.DataSource.Value),
			zap.Int("width", w),
			zap.Int("height", h),
			zap.Int("dpi", int(dpi)),
			zap.Int("wanted", minLogoDPI))
	}
}

func writeArchive(w io.Writer, source string, document []byte, assets []asset) error {
	arc := zip.NewWriter(w)

	now := time.Now()
	if err := saveMember(arc, ManifestMember, now, prepareManifest(source, assets, now)); err != nil {
		return err
	}
	if err := saveMember(arc, DocumentMember, now, document); err != nil {
		return err
	}
	for _, a := range assets {
		if err := saveMember(arc, a.member, now, a.data); err != nil {
			return err
		}
	}

	if err := arc.Close(); err != nil {
		return fmt.Errorf("unable to close archive: %w", err)
	}
	return nil
}

// prepareManifest lists every member: stamp, member name, where it came
// from and where it lives now.
func prepareManifest(source string, assets []asset, now time.Time) []byte {
	if source == "" {
		source = "<memory>"
	}
	stamp := now.UTC().Format(time.UnixDate)

	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "%s\t%s\t%s : %s\n", stamp, DocumentMember, source, DocumentMember)

	names := make([]string, 0, len(assets))
	byMember := make(map[string]asset, len(assets))
	for _, a := range assets {
		names = append(names, a.member)
		byMember[a.member] = a
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(buf, "%s\t%s\t%s : %s\n", stamp, name, byMember[name].ref, name)
	}
	return buf.Bytes()
}

func saveMember(arc *zip.Writer, name string, t time.Time, data []byte) error {
	w, err := arc.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: t})
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func readMember(f *zip.File) ([]byte, error) {
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// copyZipWithoutDataDescriptors rewrites the archive so every member
// carries its sizes in the local header. Some plugin hosts read bundles
// with strict parsers that reject streaming data descriptors.
func copyZipWithoutDataDescriptors(from, to string) error {

	out, err := os.Create(to)
	if err != nil {
		return fmt.Errorf("unable to create target file (%s): %w", to, err)
	}
	defer out.Close()

	r, err := fixzip.OpenReader(from)
	if err != nil {
		return fmt.Errorf("unable to read archive file (%s): %w", from, err)
	}
	defer r.Close()

	w := fixzip.NewWriter(out)
	defer w.Close()

	for _, file := range r.File {
		file.Flags &= ^fixzip.FlagDataDescriptor
		if err := w.CopyFile(file); err != nil {
			return fmt.Errorf("unable to write target file (%s): %w", to, err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}
	return out.Sync()
}
