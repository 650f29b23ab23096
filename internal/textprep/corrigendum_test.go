package textprep

import "testing"

func TestIsCorrigendum(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", false},
		{"short", "corrigendum", false},
		{"corrigendum keyword", "CORRIGENDUM to advertisement no 04/2025 regarding clerk posts", true},
		{"amendment keyword", "Amendment in the eligibility criteria for the post of JE", true},
		{"revised keyword", "Revised schedule for the written examination is published below", true},
		{"notice no keyword", "Notice No. 12/2025: change in exam centre allocation", true},
		{"plain notification", "Applications are invited for the post of Stenographer Grade II in the department", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCorrigendum(tt.text); got != tt.want {
				t.Errorf("IsCorrigendum(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
