// Package logging builds the logrus logger used by tugbrowse.
// The terminal belongs to the browser, so entries only ever go to a file.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/datatug/tugbrowse/pkg/fsutils"
	"github.com/sirupsen/logrus"
)

var osOpenFile = os.OpenFile

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger writing text entries to logFile at the given level.
// With no logFile everything is discarded. The returned closer releases the file.
func New(logFile, level string) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	lvl := logrus.InfoLevel
	if level != "" {
		var err error
		if lvl, err = logrus.ParseLevel(level); err != nil {
			return nil, nil, err
		}
	}
	logger.SetLevel(lvl)

	if logFile == "" {
		logger.SetOutput(io.Discard)
		return logger, nopCloser{}, nil
	}
	f, err := osOpenFile(fsutils.ExpandHome(logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger.SetOutput(f)
	return logger, f, nil
}
