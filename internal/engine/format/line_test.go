package format

import "testing"

func TestLineSpan(t *testing.T) {
	text := "ab\ncdef\n\ngh"

	tests := []struct {
		name       string
		start, end int
		wantStart  int
		wantEnd    int
	}{
		{"first line", 0, 1, 0, 2},
		{"middle of second line", 4, 6, 3, 7},
		{"spanning two lines", 1, 5, 0, 7},
		{"empty line", 8, 8, 8, 8},
		{"last line no newline", 10, 11, 9, 11},
		{"cursor at line start", 3, 3, 3, 7},
		{"selection ending at newline", 0, 2, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, e := lineSpan(text, tt.start, tt.end)
			if s != tt.wantStart || e != tt.wantEnd {
				t.Errorf("lineSpan(%d, %d) = (%d, %d), want (%d, %d)",
					tt.start, tt.end, s, e, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestSplitHeading(t *testing.T) {
	tests := []struct {
		line      string
		wantLevel int
		wantRest  string
		wantOK    bool
	}{
		{"# one", 1, "one", true},
		{"### three", 3, "three", true},
		{"###### six", 6, "six", true},
		{"#nospace", 0, "#nospace", false},
		{"plain", 0, "plain", false},
		{"", 0, "", false},
		{"# ", 1, "", true},
		{" # indented", 0, " # indented", false},
	}

	for _, tt := range tests {
		level, rest, ok := splitHeading(tt.line)
		if level != tt.wantLevel || rest != tt.wantRest || ok != tt.wantOK {
			t.Errorf("splitHeading(%q) = (%d, %q, %v), want (%d, %q, %v)",
				tt.line, level, rest, ok, tt.wantLevel, tt.wantRest, tt.wantOK)
		}
	}
}

func TestApplyLinePrefixCustom(t *testing.T) {
	res, err := ApplyLinePrefix("quoted\nlines", 0, 12, "> ")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if res.Text != "> quoted\n> lines" {
		t.Errorf("unexpected result %q", res.Text)
	}
}

func TestApplyLinePrefixEmptyPrefix(t *testing.T) {
	if _, err := ApplyLinePrefix("x", 0, 1, ""); err != ErrEmptyPrefix {
		t.Errorf("expected ErrEmptyPrefix, got %v", err)
	}
}

func TestApplyHeadingIdempotentToggle(t *testing.T) {
	orig := "alpha\nbeta\ngamma"

	for level := MinTitleLevel; level <= MaxTitleLevel; level++ {
		first, err := ApplyHeading(orig, 0, len(orig), level)
		if err != nil {
			t.Fatalf("level %d: first apply failed: %v", level, err)
		}

		second, err := ApplyHeading(first.Text, 0, len(first.Text), level)
		if err != nil {
			t.Fatalf("level %d: second apply failed: %v", level, err)
		}

		if second.Text != orig {
			t.Errorf("level %d: double toggle gave %q", level, second.Text)
		}
	}
}

func TestApplyLinePrefixEmptyLine(t *testing.T) {
	res, err := ApplyLinePrefix("", 0, 0, "- ")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if res.Text != "- " {
		t.Errorf("unexpected result %q", res.Text)
	}

	if res.CursorOffset != 2 {
		t.Errorf("expected cursor after prefix, got %d", res.CursorOffset)
	}
}
