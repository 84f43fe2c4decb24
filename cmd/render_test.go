package cmd

import (
	"math"
	"path/filepath"
	"testing"
)

func TestParseAspectRatio(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		wantErr  bool
	}{
		{input: "16:9", expected: 16.0 / 9.0},
		{input: "1:1", expected: 1.0},
		{input: "4:3", expected: 4.0 / 3.0},
		{input: "1.5", expected: 1.5},
		{input: "2", expected: 2.0},
		{input: "16:0", wantErr: true},
		{input: "wide", wantErr: true},
		{input: "a:b", wantErr: true},
		{input: "-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ratio, err := parseAspectRatio(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q, got %v", tt.input, ratio)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseAspectRatio(%q) failed: %v", tt.input, err)
			}
			if math.Abs(ratio-tt.expected) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, ratio)
			}
		})
	}
}

func TestWriteImageFileRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.gif")
	if err := writeImageFile(path, nil); err == nil {
		t.Error("Expected error for unsupported extension")
	}
}
