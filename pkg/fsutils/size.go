package fsutils

import "fmt"

// SizeAnnotation renders size as a fixed width "%4d UNIT" column value.
// Units are binary and the value is truncated, not rounded.
func SizeAnnotation(size int64) string {
	switch {
	case size < 1<<10:
		return fmt.Sprintf("%4d  B", size)
	case size < 1<<20:
		return fmt.Sprintf("%4d KB", size>>10)
	case size < 1<<30:
		return fmt.Sprintf("%4d MB", size>>20)
	default:
		return fmt.Sprintf("%4d GB", size>>30)
	}
}
