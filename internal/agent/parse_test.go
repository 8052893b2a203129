// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import (
	"testing"

	"github.com/MuhammadDevX/ngen-consultor/pkg/types"
)

func TestParseAnalysis(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  types.Analysis
	}{
		{
			name:  "both markers present",
			reply: "TECHNICAL ANALYSIS:\nThe stack is Go.\n\nFINANCIAL ANALYSIS:\nIt costs $70.",
			want:  types.Analysis{Technical: "The stack is Go.", Financial: "It costs $70."},
		},
		{
			name:  "financial marker only",
			reply: "The stack is Go.\nFINANCIAL ANALYSIS:\nIt costs $70.",
			want:  types.Analysis{Technical: "The stack is Go.", Financial: "It costs $70."},
		},
		{
			name:  "marker absent puts everything in technical",
			reply: "  Just one analysis, no split.  ",
			want:  types.Analysis{Technical: "Just one analysis, no split."},
		},
		{
			name:  "empty reply",
			reply: "",
			want:  types.Analysis{},
		},
		{
			name:  "marker at start leaves technical empty",
			reply: "FINANCIAL ANALYSIS:\nOnly money talk.",
			want:  types.Analysis{Financial: "Only money talk."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAnalysis(tt.reply)
			if got != tt.want {
				t.Errorf("ParseAnalysis() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(types.ModelConfig{Name: "x", Provider: "mystery"}, Options{})
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
