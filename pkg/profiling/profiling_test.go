package profiling

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestDoCPUProfiling(t *testing.T) {
	// Not parallel: swaps package seams.
	log, hook := test.NewNullLogger()
	path := filepath.Join(t.TempDir(), "cpu.prof")

	stop := DoCPUProfiling(path, log)
	assert.NotNil(t, stop)
	stop()

	_, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Empty(t, hook.AllEntries())
}

func TestDoCPUProfiling_ErrorOsCreate(t *testing.T) {
	orig := osCreate
	defer func() { osCreate = orig }()
	osCreate = func(string) (*os.File, error) {
		return nil, errors.New("mock error")
	}
	log, hook := test.NewNullLogger()

	stop := DoCPUProfiling("invalid", log)
	assert.NotNil(t, stop)
	stop()

	if assert.NotNil(t, hook.LastEntry()) {
		assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
		assert.Equal(t, "could not create CPU profile", hook.LastEntry().Message)
	}
}

func TestDoCPUProfiling_ErrorStart(t *testing.T) {
	orig := pprofStartCPUProfile
	defer func() { pprofStartCPUProfile = orig }()
	pprofStartCPUProfile = func(io.Writer) error {
		return errors.New("mock pprof error")
	}
	log, hook := test.NewNullLogger()

	stop := DoCPUProfiling(filepath.Join(t.TempDir(), "cpu_err.prof"), log)
	stop()

	if assert.NotNil(t, hook.LastEntry()) {
		assert.Equal(t, "could not start CPU profile", hook.LastEntry().Message)
	}
}

func TestDoMemProfiling(t *testing.T) {
	log, hook := test.NewNullLogger()
	path := filepath.Join(t.TempDir(), "mem.prof")

	write := DoMemProfiling(path, log)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "nothing is written before the call")

	write()
	_, err = os.Stat(path)
	assert.NoError(t, err)
	assert.Empty(t, hook.AllEntries())
}

func TestDoMemProfiling_ErrorOsCreate(t *testing.T) {
	orig := osCreate
	defer func() { osCreate = orig }()
	osCreate = func(string) (*os.File, error) {
		return nil, errors.New("mock error")
	}
	log, hook := test.NewNullLogger()

	DoMemProfiling("invalid", log)()

	if assert.NotNil(t, hook.LastEntry()) {
		assert.Equal(t, "could not create memory profile", hook.LastEntry().Message)
	}
}

func TestDoMemProfiling_ErrorWrite(t *testing.T) {
	orig := pprofWriteHeapProfile
	defer func() { pprofWriteHeapProfile = orig }()
	pprofWriteHeapProfile = func(io.Writer) error {
		return errors.New("mock pprof error")
	}
	log, hook := test.NewNullLogger()

	DoMemProfiling(filepath.Join(t.TempDir(), "mem_err.prof"), log)()

	if assert.NotNil(t, hook.LastEntry()) {
		assert.Equal(t, "could not write memory profile", hook.LastEntry().Message)
	}
}
