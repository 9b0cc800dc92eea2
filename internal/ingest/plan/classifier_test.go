package plan

import "testing"

// TestClassify covers the two-way partition: percent sign anywhere or a
// leading digit means set spec, everything else is a title.
func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want CellKind
	}{
		{"percent with reps", "80%x5", KindSetSpec},
		{"percent only", "%", KindSetSpec},
		{"percent mid-text", "work up to 90%", KindSetSpec},
		{"leading digit", "5", KindSetSpec},
		{"leading digit with text", "3x8 paused", KindSetSpec},
		{"leading digit after whitespace", "  5x5", KindSetSpec},
		{"plain title", "Squat", KindTitle},
		{"hebrew title", "סקוואט", KindTitle},
		{"title with trailing digit", "Bench x3", KindTitle},
		{"empty string", "", KindTitle},
		{"whitespace only", "   ", KindTitle},
		{"digit not first", "x5", KindTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.cell); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.cell, got, tt.want)
			}
		})
	}
}
