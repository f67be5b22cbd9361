package compile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"formc/bundle"
	"formc/state"
)

// Pack implements the "pack" command: collects a document and its local
// image assets into a portable bundle archive.
func Pack(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("pack")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return fmt.Errorf("no input source has been specified")
	}
	src, err := filepath.Abs(src)
	if err != nil {
		return err
	}
	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s)", src)
	}
	if !fi.Mode().IsRegular() || !isDocumentFile(src) {
		return fmt.Errorf("input was not recognized as a form document (%s)", src)
	}

	stem := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		dst = stem + ".formz"
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
		dst = filepath.Join(dst, stem+".formz")
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Overwrite = cmd.Bool("overwrite")

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read file (%s): %w", src, err)
	}
	doc, err := loadDocument(data, filepath.Base(src), log)
	if err != nil {
		return err
	}

	if err := prepareOutput(dst, env.Overwrite, log); err != nil {
		return err
	}

	if err := bundle.Pack(doc, dst, bundle.PackOptions{
		Pretty: env.Cfg.Compile.Pretty,
		FixZip: env.Cfg.Compile.FixZip,
		Source: filepath.Base(src),
		Loader: dirAssets(filepath.Dir(src)),
		Logger: log,
	}); err != nil {
		return fmt.Errorf("unable to pack bundle: %w", err)
	}

	// Store packing result for debugging
	if env.Rpt != nil {
		env.Rpt.Store(fmt.Sprintf("bundle-%s%s", doc.ID, filepath.Ext(dst)), dst)
	}

	log.Info("Bundle packed", zap.String("from", src), zap.String("to", dst), zap.String("id", doc.ID))
	return nil
}

// Unpack implements the "unpack" command: extracts a bundle into a
// directory, returning the document to its editable file form.
func Unpack(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("unpack")

	applyZipEncoding(cmd, env, log)

	src, dst, err := sourceArgs(cmd, log)
	if err != nil {
		return err
	}

	arc, err := isArchiveFile(src)
	if err != nil {
		return fmt.Errorf("unable to check archive type: %w", err)
	}
	if !arc {
		return fmt.Errorf("input was not recognized as a bundle (%s)", src)
	}

	doc, err := bundle.Unpack(src, dst, bundle.UnpackOptions{
		NameEncoding: env.CodePage,
		Logger:       log,
	})
	if err != nil {
		return fmt.Errorf("unable to unpack bundle: %w", err)
	}

	log.Info("Bundle unpacked",
		zap.String("from", src), zap.String("to", dst), zap.String("id", doc.ID), zap.String("name", doc.Name))
	return nil
}
