package prompt

import "os"

var osReadDir = os.ReadDir

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
