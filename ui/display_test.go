package ui

import "testing"

func TestColumnLength(t *testing.T) {
	tests := []struct {
		name string
		line DisplayLine
		want int
	}{
		{"Empty", DisplayLine{}, 0},
		{"Single atom", DisplayLine{{Text: "hello"}}, 5},
		{"Multiple atoms", DisplayLine{{Text: "ab"}, {Text: "cde"}}, 5},
		{"Trailing newline ignored", DisplayLine{{Text: "ab\n"}}, 2},
		{"Wide runes", DisplayLine{{Text: "日本"}}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.line.ColumnLength(); got != tt.want {
				t.Errorf("Expected %d columns, got %d", tt.want, got)
			}
		})
	}
}

func TestLineText(t *testing.T) {
	line := DisplayLine{{Text: "status "}, {Face: Face{Fg: Red}, Text: "ERR"}}
	if got := line.Text(); got != "status ERR" {
		t.Errorf("Expected %q, got %q", "status ERR", got)
	}
}
