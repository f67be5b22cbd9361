// Package state carries the per run program environment through context.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"formc/config"
)

type envKey struct{}

// LocalEnv is everything a subcommand needs at run time, from parsed
// configuration to the active logger.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// used by document subcommands
	NoDirs    bool
	Overwrite bool
	CodePage  encoding.Encoding
	// active preview stylesheet, built in theme unless overridden
	Theme []byte

	start         time.Time
	restoreStdLog func()
}

func newLocalEnv() *LocalEnv {
	return &LocalEnv{start: time.Now()}
}

// ContextWithEnv attaches a fresh environment to ctx. Every context the
// program hands to a subcommand descends from one built here.
func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	env, ok := ctx.Value(envKey{}).(*LocalEnv)
	if !ok {
		panic("program environment is missing from context")
	}
	return env
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// RedirectStdLog routes the standard library logger into our logger, so
// output from dependencies does not bypass the log file. Has no effect
// without a logger or when already redirected.
func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil || e.restoreStdLog != nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
		e.restoreStdLog = nil
	}
}
