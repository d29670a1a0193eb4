package contact

import "testing"

func TestNormalizeBand(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"20m", "20m"},
		{"12M", "12m"},
		{" 40 m ", "40m"},
		{"20 meters", "20m"},
		{"70 centimeters", "70cm"},
		{"17", "17m"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeBand(tt.input); got != tt.want {
			t.Errorf("NormalizeBand(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsValidBand(t *testing.T) {
	for _, band := range []string{"160m", "20M", "70cm", "6"} {
		if !IsValidBand(band) {
			t.Errorf("expected %q to be a known band", band)
		}
	}
	for _, band := range []string{"", "banana", "999m"} {
		if IsValidBand(band) {
			t.Errorf("expected %q to be unknown", band)
		}
	}
}

func TestSortBands(t *testing.T) {
	bands := []string{"70cm", "junk", "12m", "80m", "2m"}
	SortBands(bands)
	want := []string{"80m", "12m", "2m", "70cm", "junk"}
	for i := range want {
		if bands[i] != want[i] {
			t.Fatalf("SortBands order = %v, want %v", bands, want)
		}
	}
}

func TestSupportedBandNamesOrder(t *testing.T) {
	names := SupportedBandNames()
	if len(names) == 0 {
		t.Fatal("no supported bands")
	}
	if names[0] != "160m" {
		t.Errorf("expected 160m first, got %v", names[0])
	}
	if names[len(names)-1] != "70cm" {
		t.Errorf("expected 70cm last, got %v", names[len(names)-1])
	}
}
