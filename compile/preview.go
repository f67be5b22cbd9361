package compile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"formc/bundle"
	"formc/config"
	"formc/preview"
	"formc/state"
)

// Preview implements the "preview" command: renders a wireframe preview of
// every document found under SOURCE into DESTINATION.
func Preview(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("preview")

	src, dst, err := sourceArgs(cmd, log)
	if err != nil {
		return err
	}

	format := env.Cfg.Preview.Format
	if f := cmd.String("format"); len(f) != 0 {
		if format, err = config.ParsePreviewFormat(f); err != nil {
			log.Warn("Unknown preview format requested, using configured one",
				zap.Stringer("format", env.Cfg.Preview.Format), zap.Error(err))
			format = env.Cfg.Preview.Format
		}
	}

	scale := cmd.Float("scale")
	if scale <= 0 {
		scale = env.Cfg.Preview.Scale
	}

	if env.Cfg.Preview.StylesheetPath != "" {
		data, err := os.ReadFile(env.Cfg.Preview.StylesheetPath)
		if err != nil {
			return fmt.Errorf("unable to read theme css from %q: %w", env.Cfg.Preview.StylesheetPath, err)
		}
		env.Theme = data
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")
	applyZipEncoding(cmd, env, log)

	log.Info("Processing starting",
		zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, log, func(data []byte, s source) error {
		return previewDocument(ctx, data, s, dst, format, scale, log)
	})
}

// previewDocument renders a single document.
func previewDocument(ctx context.Context, data []byte, s source, dst string, format config.PreviewFormat, scale float64, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var outputName string

	log.Info("Rendering starting", zap.String("from", s.Rel))
	defer func(start time.Time) {
		// NOTE: some of golang graphic processing libraries are not mature
		// enough, if multiple documents are being processed we do not want to
		// stop.
		if r := recover(); r != nil {
			log.Error("Rendering ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("rendering panic: %v", r)
		} else {
			log.Info("Rendering completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
		}
	}(time.Now())

	doc, err := loadDocument(data, s.Rel, log)
	if err != nil {
		return err
	}

	outputName = buildOutputPath(doc, s.Rel, dst, format.Ext(), env)

	if err := prepareOutput(outputName, env.Overwrite, log); err != nil {
		return err
	}

	out, err := preview.Render(doc, preview.Options{
		Format: format,
		Scale:  scale,
		Theme:  env.Theme,
		Assets: assetLoader(s),
		Logger: log,
	})
	if err != nil {
		return fmt.Errorf("unable to render preview: %w", err)
	}
	if err := os.WriteFile(outputName, out, 0644); err != nil {
		return fmt.Errorf("unable to write preview: %w", err)
	}

	// Store rendering result for debugging
	if env.Rpt != nil {
		env.Rpt.Store(fmt.Sprintf("preview-%s%s", doc.ID, filepath.Ext(outputName)), outputName)
	}

	return nil
}

// assetLoader resolves static image references for a document: against the
// archive it came from or against its directory on disk.
func assetLoader(s source) preview.AssetLoader {
	if s.Archive {
		return bundle.Assets(s.Path)
	}
	return dirAssets(filepath.Dir(s.Path))
}

// dirAssets loads image assets relative to the document's directory.
func dirAssets(dir string) func(ref string) ([]byte, error) {
	return func(ref string) ([]byte, error) {
		return os.ReadFile(filepath.Join(dir, filepath.FromSlash(ref)))
	}
}
