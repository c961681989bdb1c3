package flatfile

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		value string
		width int
		want  string
	}{
		{"pads short values", "ab", 5, "ab   "},
		{"truncates long values", "abcdefgh", 5, "abcde"},
		{"empty value becomes all spaces", "", 3, "   "},
		{"exact width unchanged", "abc", 3, "abc"},
		{"preserves leading spaces", " ab", 5, " ab  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.value, tt.width)
			if got != tt.want {
				t.Errorf("Format(%q, %d) = %q, want %q", tt.value, tt.width, got, tt.want)
			}
			if len(got) != tt.width {
				t.Errorf("len = %d, want %d", len(got), tt.width)
			}
		})
	}
}

func TestFormatInt(t *testing.T) {
	if got := FormatInt(7, 8); got != "00000007" {
		t.Errorf("got %q", got)
	}
	if got := FormatInt(12345678, 8); got != "12345678" {
		t.Errorf("got %q", got)
	}
}

func TestUnformat(t *testing.T) {
	record := "abc  xy   "
	if got := Unformat(record, 0, 5); got != "abc" {
		t.Errorf("got %q", got)
	}
	if got := Unformat(record, 5, 5); got != "xy" {
		t.Errorf("got %q", got)
	}
}

func TestUnformatKeepsLeadingSpaces(t *testing.T) {
	record := "  ab      "
	if got := Unformat(record, 0, 10); got != "  ab" {
		t.Errorf("got %q, want %q", got, "  ab")
	}
}

// A line shorter than the declared layout is padded before slicing, so
// truncated records decode to blank fields instead of failing.
func TestUnformatShortRecord(t *testing.T) {
	if got := Unformat("ab", 0, 5); got != "ab" {
		t.Errorf("got %q", got)
	}
	if got := Unformat("ab", 5, 5); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestUnformatInt(t *testing.T) {
	if got := UnformatInt("00000042rest", 0, 8); got != 42 {
		t.Errorf("got %d", got)
	}
	if got := UnformatInt("        ", 0, 8); got != 0 {
		t.Errorf("blank field: got %d", got)
	}
	if got := UnformatInt("garbage!", 0, 8); got != 0 {
		t.Errorf("unparsable field: got %d", got)
	}
}
