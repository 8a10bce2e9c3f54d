// Package profiling writes CPU and heap profiles for a browse session.
package profiling

import (
	"os"
	"runtime/pprof"

	"github.com/sirupsen/logrus"
)

var osCreate = os.Create
var pprofStartCPUProfile = pprof.StartCPUProfile
var pprofStopCPUProfile = pprof.StopCPUProfile
var pprofWriteHeapProfile = pprof.WriteHeapProfile

// DoCPUProfiling starts CPU profiling into path and returns the function that stops it.
// Failures are logged and leave a no-op stop function.
func DoCPUProfiling(path string, log logrus.FieldLogger) func() {
	f, err := osCreate(path)
	if err != nil {
		log.WithError(err).Warn("could not create CPU profile")
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		log.WithError(err).Warn("could not start CPU profile")
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("could not close CPU profile")
		}
	}
}

// DoMemProfiling returns a function that writes a heap profile into path.
func DoMemProfiling(path string, log logrus.FieldLogger) func() {
	return func() {
		f, err := osCreate(path)
		if err != nil {
			log.WithError(err).Warn("could not create memory profile")
			return
		}
		defer func() {
			_ = f.Close()
		}()
		if err = pprofWriteHeapProfile(f); err != nil {
			log.WithError(err).Warn("could not write memory profile")
		}
	}
}

