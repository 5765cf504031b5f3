package normalize

import "testing"

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *float64
	}{
		{"turkish separators", "1.234,56 TL", f(1234.56)},
		{"english separators", "1,234.56", f(1234.56)},
		{"plain integer", "2500", f(2500)},
		{"currency and spaces", "  12.500 TL ", f(12.5)}, // rightmost-separator ambiguity, kept on purpose
		{"comma decimal only", "2500,75", f(2500.75)},
		{"empty", "", nil},
		{"no digits", "Fiyat sorunuz", nil},
		{"separators only", ".,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePrice(tt.in)
			if !floatPtrEq(got, tt.want) {
				t.Fatalf("ParsePrice(%q) = %v, want %v", tt.in, fv(got), fv(tt.want))
			}
		})
	}
}

func TestParseRooms(t *testing.T) {
	tests := []struct {
		in   string
		want *string
	}{
		{"3 + 1 daire", s("3+1")},
		{"2+1", s("2+1")},
		{"Genis 4+2 Dubleks", s("4+2")},
		{"studyo daire", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := ParseRooms(tt.in)
		if !strPtrEq(got, tt.want) {
			t.Fatalf("ParseRooms(%q) = %v, want %v", tt.in, sv(got), sv(tt.want))
		}
	}
}

func TestParseArea(t *testing.T) {
	tests := []struct {
		in   string
		want *string
	}{
		{"120 m²", s("120")},
		{"85m2", s("85")},
		{"1200 m2 arsa", s("1200")},
		{"9 m²", nil},     // 1 digit: out of bounds
		{"12345 m²", nil}, // 5 digits: out of bounds
		{"no unit 120", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := ParseArea(tt.in)
		if !strPtrEq(got, tt.want) {
			t.Fatalf("ParseArea(%q) = %v, want %v", tt.in, sv(got), sv(tt.want))
		}
	}
}

func TestParseFloor(t *testing.T) {
	tests := []struct {
		in   string
		want *string
	}{
		{"5. Kat", s("5")},
		{"3 kat", s("3")},
		{"Zemin Kat", s(FloorGround)},
		{"Çatı Dairesi", s(FloorRoof)},
		{"deniz manzarali", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := ParseFloor(tt.in)
		if !strPtrEq(got, tt.want) {
			t.Fatalf("ParseFloor(%q) = %v, want %v", tt.in, sv(got), sv(tt.want))
		}
	}
}

func TestParseFloorNumberBeatsKeyword(t *testing.T) {
	got := ParseFloor("Zemin ustu 2. Kat")
	if !strPtrEq(got, s("2")) {
		t.Fatalf("expected numbered floor to win, got %v", sv(got))
	}
}

func TestSplitLocation(t *testing.T) {
	tests := []struct {
		in           string
		district     string
		neighborhood string
	}{
		{"Kadıköy, Caferağa", "Kadıköy", "Caferağa"},
		{"Beşiktaş", "Beşiktaş", ""},
		{"Üsküdar , Kuzguncuk , İstanbul", "Üsküdar", "Kuzguncuk"},
		{"", "", ""},
	}

	for _, tt := range tests {
		district, neighborhood := SplitLocation(tt.in)
		if district != tt.district || neighborhood != tt.neighborhood {
			t.Fatalf("SplitLocation(%q) = (%q, %q), want (%q, %q)",
				tt.in, district, neighborhood, tt.district, tt.neighborhood)
		}
	}
}

func f(v float64) *float64 { return &v }
func s(v string) *string   { return &v }

func floatPtrEq(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func strPtrEq(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fv(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func sv(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}
