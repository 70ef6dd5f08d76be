// Package dclog builds the zap logger used by the command-line frontend.
// The core reader package never imports this package directly; it only
// accepts an optional *zap.Logger through LoaderInput.Logger or SetLogger.
package dclog

import "go.uber.org/zap"

// New builds a console-friendly zap logger. verbose selects debug level;
// otherwise only info and above are emitted.
func New(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level.SetLevel(zap.InfoLevel)
	}
	cfg.DisableStacktrace = true
	return cfg.Build()
}
