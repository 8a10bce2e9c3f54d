package fsutils

import (
	"testing"
)

func TestSizeAnnotation(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{0, "   0  B"},
		{500, " 500  B"},
		{1023, "1023  B"},
		{1024, "   1 KB"},
		{1535, "   1 KB"},
		{2047, "   1 KB"},
		{1024*1024 - 1, "1023 KB"},
		{1024 * 1024, "   1 MB"},
		{2 * 1024 * 1024, "   2 MB"},
		{1024 * 1024 * 1024, "   1 GB"},
		{5 * 1024 * 1024 * 1024, "   5 GB"},
		{1024 * 1024 * 1024 * 1024, "1024 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			actual := SizeAnnotation(tt.size)
			if actual != tt.expected {
				t.Errorf("SizeAnnotation(%d) = %q; want %q", tt.size, actual, tt.expected)
			}
		})
	}
}
