package tools

import "testing"

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  string
	}{
		{
			name:  "empty",
			input: "",
			n:     8,
			want:  "",
		},
		{
			name:  "fits",
			input: "short note",
			n:     20,
			want:  "short note",
		},
		{
			name:  "exact boundary",
			input: "boundary",
			n:     8,
			want:  "boundary",
		},
		{
			name:  "ascii preview",
			input: "edited message body",
			n:     6,
			want:  "edited...",
		},
		{
			name:  "cyrillic counted by rune",
			input: "сообщение отредактировано",
			n:     9,
			want:  "сообщение...",
		},
		{
			name:  "emoji counted by rune",
			input: "done ✅✅✅ and more",
			n:     7,
			want:  "done ✅✅...",
		},
		{
			name:  "zero keeps only ellipsis",
			input: "anything",
			n:     0,
			want:  "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateRunes(tt.input, tt.n)
			if got != tt.want {
				t.Errorf("truncateRunes(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
			}
		})
	}
}
