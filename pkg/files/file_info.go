package files

import (
	"os"
	"time"
)

type FileInfoOption func(*FileInfo)

var _ os.FileInfo = (*FileInfo)(nil)

// FileInfo is a static os.FileInfo for stores that do not sit on a real filesystem.
type FileInfo struct {
	name    string
	mode    os.FileMode
	size    int64
	modTime time.Time
	sys     any
}

func NewFileInfo(name string, o ...FileInfoOption) (info *FileInfo) {
	info = &FileInfo{
		name: name,
	}
	for _, opt := range o {
		opt(info)
	}
	return
}

// NewDirInfo is a shortcut for a FileInfo with os.ModeDir set.
func NewDirInfo(name string, o ...FileInfoOption) *FileInfo {
	return NewFileInfo(name, append([]FileInfoOption{Mode(os.ModeDir | 0o755)}, o...)...)
}

func Size(v int64) FileInfoOption {
	return func(info *FileInfo) {
		info.size = v
	}
}

func ModTime(v time.Time) FileInfoOption {
	return func(info *FileInfo) {
		info.modTime = v
	}
}

func Mode(v os.FileMode) FileInfoOption {
	return func(info *FileInfo) {
		info.mode = v
	}
}

func (f *FileInfo) Name() string {
	if f == nil {
		return ""
	}
	return f.name
}
func (f *FileInfo) Size() int64 {
	if f == nil {
		return 0
	}
	return f.size
}
func (f *FileInfo) Mode() os.FileMode {
	if f == nil {
		return 0
	}
	return f.mode
}
func (f *FileInfo) ModTime() time.Time {
	if f == nil {
		return time.Time{}
	}
	return f.modTime
}
func (f *FileInfo) IsDir() bool {
	if f == nil {
		return false
	}
	return f.mode.IsDir()
}
func (f *FileInfo) Sys() any {
	if f == nil {
		return nil
	}
	return f.sys
}
