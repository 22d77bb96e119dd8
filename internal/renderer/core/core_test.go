package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff8000", ColorFromRGB(255, 128, 0)},
		{"FF8000", ColorFromRGB(255, 128, 0)},
		{"#fff", ColorWhite},
		{"default", ColorDefault},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tt.in, err)
		}
		if !got.Equals(tt.want) {
			t.Errorf("ParseColor(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "#12", "#gggggg", "blue"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) should fail", bad)
		}
	}
}

func TestColorString(t *testing.T) {
	if got := ColorFromRGB(1, 171, 255).String(); got != "#01ABFF" {
		t.Errorf("String() = %q", got)
	}
	if got := ColorDefault.String(); got != "default" {
		t.Errorf("String() = %q", got)
	}
}

func TestColorLightenDarken(t *testing.T) {
	base := ColorFromRGB(60, 90, 160)
	if base.Lighten(0.2).Luminance() <= base.Luminance() {
		t.Error("Lighten should raise luminance")
	}
	if base.Darken(0.2).Luminance() >= base.Luminance() {
		t.Error("Darken should lower luminance")
	}
	if !ColorDefault.Lighten(0.5).IsDefault() {
		t.Error("default color should stay default")
	}
}

func TestColorBlend(t *testing.T) {
	if got := ColorBlack.Blend(ColorWhite, 0); !got.Equals(ColorBlack) {
		t.Errorf("Blend(0) = %s", got)
	}
	if got := ColorBlack.Blend(ColorWhite, 1); !got.Equals(ColorWhite) {
		t.Errorf("Blend(1) = %s", got)
	}
	mid := ColorBlack.Blend(ColorWhite, 0.5)
	if mid.R == 0 || mid.R == 255 {
		t.Errorf("Blend(0.5) = %s, want a gray", mid)
	}
}

func TestColorContrast(t *testing.T) {
	c := ColorBlack.Contrast(ColorWhite)
	if c < 20.9 || c > 21.1 {
		t.Errorf("black/white contrast = %v, want 21", c)
	}
	if got := ColorGray.Contrast(ColorGray); got != 1 {
		t.Errorf("self contrast = %v, want 1", got)
	}
}

func TestStyleMerge(t *testing.T) {
	base := NewStyle(ColorWhite, ColorBlack)
	over := DefaultStyle().WithForeground(ColorRed).Bold()
	got := base.Merge(over)
	if !got.Foreground.Equals(ColorRed) || !got.Background.Equals(ColorBlack) {
		t.Errorf("Merge colors = %s/%s", got.Foreground, got.Background)
	}
	if !got.Attributes.Has(AttrBold) {
		t.Error("Merge should carry attributes")
	}
}

func TestStringWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"123", 3},
		{"√", 1},
		{"⌫", 1},
		{"日本", 4},
		{"", 0},
	}
	for _, tt := range tests {
		if got := StringWidth(tt.in); got != tt.want {
			t.Errorf("StringWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if RuneWidth('\t') != 0 {
		t.Error("control runes have no width")
	}
}

func TestCellsFromString(t *testing.T) {
	cells := CellsFromString("a日", DefaultStyle())
	if len(cells) != 3 {
		t.Fatalf("len = %d, want 3", len(cells))
	}
	if cells[0].Rune != 'a' || cells[1].Rune != '日' || cells[1].Width != 2 {
		t.Errorf("cells = %+v", cells)
	}
	if !cells[2].IsContinuation() {
		t.Error("wide rune should be followed by a continuation cell")
	}

	// e + combining acute stays in one cell
	cells = CellsFromString("e\u0301", DefaultStyle())
	if len(cells) != 1 || len(cells[0].Combining) != 1 {
		t.Fatalf("combining cluster = %+v", cells)
	}
	if cells[0].String() != "e\u0301" {
		t.Errorf("String() = %q", cells[0].String())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"12345", 10, "12345"},
		{"12345", 4, "123…"},
		{"日本語", 5, "日本…"},
		{"12345", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width, "…"); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestScreenRectSplit(t *testing.T) {
	r := RectFromSize(0, 0, 10, 20)
	head, rest := r.SplitTop(3)
	if head.Height() != 3 || rest.Height() != 7 || rest.Top != 3 {
		t.Errorf("SplitTop = %+v %+v", head, rest)
	}
	rest, tail := r.SplitBottom(1)
	if tail.Height() != 1 || tail.Top != 9 || rest.Height() != 9 {
		t.Errorf("SplitBottom = %+v %+v", rest, tail)
	}
	if _, tail := r.SplitBottom(50); tail.Height() != 10 {
		t.Error("split larger than rect should clamp")
	}
	if !r.Contains(19, 9) || r.Contains(20, 0) {
		t.Error("Contains bounds wrong")
	}
	if !r.Inset(5, 10, 5, 10).IsEmpty() {
		t.Error("fully inset rect should be empty")
	}
}
