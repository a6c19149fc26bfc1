package snapmark

import (
	"math"
	"testing"
)

func TestSequenceMarkerLabel(t *testing.T) {
	tests := []struct {
		name   string
		number int
		style  LabelStyle
		want   string
	}{
		{name: "number one", number: 1, style: LabelNumber, want: "1"},
		{name: "number large", number: 2024, style: LabelNumber, want: "2024"},
		{name: "letter one", number: 1, style: LabelLetter, want: "A"},
		{name: "letter z", number: 26, style: LabelLetter, want: "Z"},
		{name: "letter wraps past z", number: 27, style: LabelLetter, want: "A"},
		{name: "roman one", number: 1, style: LabelRoman, want: "I"},
		{name: "roman four", number: 4, style: LabelRoman, want: "IV"},
		{name: "roman nine", number: 9, style: LabelRoman, want: "IX"},
		{name: "roman fourteen", number: 14, style: LabelRoman, want: "XIV"},
		{name: "roman ninety", number: 90, style: LabelRoman, want: "XC"},
		{name: "roman 1990", number: 1990, style: LabelRoman, want: "MCMXC"},
		{name: "roman 2024", number: 2024, style: LabelRoman, want: "MMXXIV"},
		{name: "roman 3999", number: 3999, style: LabelRoman, want: "MMMCMXCIX"},
		{name: "sub-one clamps to one", number: 0, style: LabelRoman, want: "I"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := SequenceMarker{Number: tt.number, Style: tt.style}
			if got := m.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArrowDirectionLength(t *testing.T) {
	a := Arrow{Start: Pt(1, 1), End: Pt(4, 5)}
	if got := a.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	d := a.Direction()
	if math.Abs(d.X-0.6) > 1e-12 || math.Abs(d.Y-0.8) > 1e-12 {
		t.Errorf("Direction() = %v, want (0.6, 0.8)", d)
	}

	zero := Arrow{Start: Pt(2, 2), End: Pt(2, 2)}
	if d := zero.Direction(); d != (Point{}) {
		t.Errorf("zero-length Direction() = %v, want zero vector", d)
	}
}

func TestArrowSnapAngle(t *testing.T) {
	tests := []struct {
		name      string
		end       Point
		wantAngle float64 // degrees
	}{
		{name: "nearly horizontal snaps to 0", end: Pt(10, 1), wantAngle: 0},
		{name: "nearly diagonal snaps to 45", end: Pt(9, 11), wantAngle: 45},
		{name: "nearly vertical snaps to 90", end: Pt(-1, 10), wantAngle: 90},
		{name: "up-left snaps to 135", end: Pt(-10, 9), wantAngle: 135},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Arrow{Start: Pt(0, 0), End: tt.end}
			length := a.Length()
			snapped := a.SnapAngle()

			if math.Abs(snapped.Length()-length) > 1e-9 {
				t.Errorf("SnapAngle() length = %v, want %v", snapped.Length(), length)
			}
			d := snapped.End.Sub(snapped.Start)
			gotAngle := math.Atan2(d.Y, d.X) * 180 / math.Pi
			if math.Abs(gotAngle-tt.wantAngle) > 1e-9 {
				t.Errorf("SnapAngle() angle = %v deg, want %v deg", gotAngle, tt.wantAngle)
			}
		})
	}

	degenerate := Arrow{Start: Pt(3, 3), End: Pt(3, 3)}
	if got := degenerate.SnapAngle(); got != degenerate {
		t.Errorf("zero-length SnapAngle() = %v, want unchanged", got)
	}
}

func TestParseLineStyle(t *testing.T) {
	tests := []struct {
		in   string
		want LineStyle
	}{
		{"solid", LineSolid},
		{"dashed", LineDashed},
		{"dotted", LineDotted},
		{"bogus", LineSolid},
		{"", LineSolid},
	}
	for _, tt := range tests {
		if got := ParseLineStyle(tt.in); got != tt.want {
			t.Errorf("ParseLineStyle(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseLabelStyle(t *testing.T) {
	tests := []struct {
		in   string
		want LabelStyle
	}{
		{"number", LabelNumber},
		{"letter", LabelLetter},
		{"roman", LabelRoman},
		{"bogus", LabelNumber},
	}
	for _, tt := range tests {
		if got := ParseLabelStyle(tt.in); got != tt.want {
			t.Errorf("ParseLabelStyle(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStrokeSettingsBuilders(t *testing.T) {
	base := DefaultStrokeSettings()
	got := base.WithWidth(7).WithStyle(LineDotted).WithColor(Blue)

	if got.Width != 7 || got.Style != LineDotted || got.Color != Blue {
		t.Errorf("builder result = %+v", got)
	}
	// base is unchanged (value semantics)
	if base.Width != 2 || base.Style != LineSolid || base.Color != Red {
		t.Errorf("base mutated: %+v", base)
	}
}
