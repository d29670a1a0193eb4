package contact

import (
	"sort"
	"strconv"
	"strings"
)

// BandInfo describes an amateur radio band by name and frequency range in kHz.
type BandInfo struct {
	Name string  // canonical band name (e.g., "20m", "70cm")
	Min  float64 // minimum frequency in kHz
	Max  float64 // maximum frequency in kHz
}

var bandTable = []BandInfo{
	{Name: "160m", Min: 1800, Max: 2000},
	{Name: "80m", Min: 3500, Max: 4000},
	{Name: "60m", Min: 5330, Max: 5405},
	{Name: "40m", Min: 7000, Max: 7300},
	{Name: "30m", Min: 10100, Max: 10150},
	{Name: "20m", Min: 14000, Max: 14350},
	{Name: "17m", Min: 18068, Max: 18168},
	{Name: "15m", Min: 21000, Max: 21450},
	{Name: "12m", Min: 24890, Max: 24990},
	{Name: "10m", Min: 28000, Max: 29700},
	{Name: "6m", Min: 50000, Max: 54000},
	{Name: "4m", Min: 70000, Max: 70500},
	{Name: "2m", Min: 144000, Max: 148000},
	{Name: "70cm", Min: 420000, Max: 450000},
}

var bandLookup = func() map[string]BandInfo {
	m := make(map[string]BandInfo, len(bandTable))
	for _, entry := range bandTable {
		normalized := NormalizeBand(entry.Name)
		if normalized == "" {
			continue
		}
		m[normalized] = entry
	}
	return m
}()

// NormalizeBand returns the canonical lowercase band identifier for the given
// label. It removes whitespace, converts meter/centimeter words to units, and
// appends "m" when the value looks like a bare number. The result is suitable
// for map lookups and case-insensitive band comparison.
func NormalizeBand(label string) string {
	cleaned := strings.ToLower(strings.TrimSpace(label))
	if cleaned == "" {
		return ""
	}

	replacementPairs := []struct{ old, new string }{
		{"meters", "m"},
		{"meter", "m"},
		{"metres", "m"},
		{"metre", "m"},
		{"centimeters", "cm"},
		{"centimeter", "cm"},
		{"centimetres", "cm"},
		{"centimetre", "cm"},
	}
	for _, pair := range replacementPairs {
		cleaned = strings.ReplaceAll(cleaned, pair.old, pair.new)
	}

	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if cleaned == "" {
		return ""
	}

	last := cleaned[len(cleaned)-1]
	if last >= '0' && last <= '9' {
		cleaned += "m"
	}

	return cleaned
}

// IsValidBand returns true if the provided label corresponds to a known band.
func IsValidBand(label string) bool {
	normalized := NormalizeBand(label)
	if normalized == "" {
		return false
	}
	_, ok := bandLookup[normalized]
	return ok
}

// SupportedBandNames returns the canonical names of all tracked bands, longest
// wavelength first.
func SupportedBandNames() []string {
	names := make([]string, len(bandTable))
	for i, entry := range bandTable {
		names[i] = entry.Name
	}
	return names
}

// unknownBandKey sorts bands without a parseable wavelength after every real band.
const unknownBandKey = -1

// bandSortKey converts a band label to an approximate wavelength in meters so
// bands order naturally (160m, 80m, ..., 6m, 2m, 70cm). Centimeter bands
// convert to their meter equivalent; anything unparseable sorts last.
func bandSortKey(label string) float64 {
	band := NormalizeBand(label)
	switch {
	case strings.HasSuffix(band, "cm"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(band, "cm"), 64)
		if err != nil {
			return unknownBandKey
		}
		return v / 100
	case strings.HasSuffix(band, "m"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(band, "m"), 64)
		if err != nil {
			return unknownBandKey
		}
		return v
	default:
		return unknownBandKey
	}
}

// SortBands orders band labels by wavelength descending (80m before 20m before
// 70cm), with unknown labels last in their original relative order.
func SortBands(bands []string) {
	sort.SliceStable(bands, func(i, j int) bool {
		return bandSortKey(bands[i]) > bandSortKey(bands[j])
	})
}
