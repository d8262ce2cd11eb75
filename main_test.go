package main

import (
	"testing"

	"github.com/df07/go-pathtrace-kernel/pkg/core"
)

func TestParseVec3(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  core.Vec3
		expectErr bool
	}{
		{"plain triple", "0.5,0.7,1.0", core.NewVec3(0.5, 0.7, 1.0), false},
		{"spaces allowed", " 1 , 0 , 0.25 ", core.NewVec3(1, 0, 0.25), false},
		{"too few components", "0.5,0.7", core.Vec3{}, true},
		{"too many components", "1,2,3,4", core.Vec3{}, true},
		{"non-numeric component", "0.5,sky,1.0", core.Vec3{}, true},
		{"empty string", "", core.Vec3{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseVec3(tt.input)
			if tt.expectErr {
				if err == nil {
					t.Errorf("Expected error for %q, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
