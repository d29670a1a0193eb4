// Package cty loads and queries the CTY prefix database so contact records
// missing a DXCC tag can be enriched: callsign → entity via longest-prefix
// match, and country display name → entity code via exact or fuzzy match.
package cty

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/agnivade/levenshtein"
	"howett.net/plist"

	"qsltracker/strutil"
)

// EntityInfo describes the metadata stored for each CTY entry.
type EntityInfo struct {
	Country       string `plist:"Country"`
	Prefix        string `plist:"Prefix"`
	ADIF          int    `plist:"ADIF"`
	CQZone        int    `plist:"CQZone"`
	ITUZone       int    `plist:"ITUZone"`
	Continent     string `plist:"Continent"`
	ExactCallsign bool   `plist:"ExactCallsign"`
}

// Database holds the plist data plus the two derived indexes: a prefix trie
// over callsign keys and a name index over country display names.
type Database struct {
	entries map[string]EntityInfo
	keys    []string
	trie    prefixTrie
	// names maps the upper-cased country name to its ADIF entity code.
	names map[string]int
}

// Load reads a cty.plist file into a lookup database.
func Load(path string) (*Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cty: open: %w", err)
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader decodes CTY data from an io.ReadSeeker (exposed for testing).
// Keys are normalized to upper case; the trie and name index are built once
// at load time.
func LoadFromReader(r io.ReadSeeker) (*Database, error) {
	var raw map[string]EntityInfo
	if err := plist.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("cty: decode plist: %w", err)
	}

	entries := make(map[string]EntityInfo, len(raw))
	names := make(map[string]int, len(raw))
	for k, v := range raw {
		key := strutil.NormalizeUpper(k)
		entries[key] = v
		if v.Country != "" && v.ADIF > 0 {
			names[strutil.NormalizeUpper(v.Country)] = v.ADIF
		}
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return &Database{
		entries: entries,
		keys:    keys,
		trie:    buildTrie(keys),
		names:   names,
	}, nil
}

// Size returns the number of CTY entries loaded.
func (db *Database) Size() int {
	if db == nil {
		return 0
	}
	return len(db.entries)
}

// Lookup returns the CTY entry for a callsign: an exact-call entry when one
// exists, otherwise the longest matching prefix.
func (db *Database) Lookup(call string) (EntityInfo, bool) {
	if db == nil {
		return EntityInfo{}, false
	}
	call = normalizeCallsign(call)
	if info, ok := db.entries[call]; ok {
		return info, true
	}
	if key, ok := db.trie.longestPrefix(call); ok {
		return db.entries[key], true
	}
	return EntityInfo{}, false
}

// EntityForCallsign resolves a callsign to its DXCC entity code (as a decimal
// string, matching how the DXCC ADIF tag is logged) and country name.
func (db *Database) EntityForCallsign(call string) (code, country string, ok bool) {
	info, ok := db.Lookup(call)
	if !ok || info.ADIF <= 0 {
		return "", "", false
	}
	return strconv.Itoa(info.ADIF), info.Country, true
}

// maxNameDistance bounds the edit distance accepted by the fuzzy country-name
// match. Logging applications abbreviate and re-spell country names ("Fed.
// Rep. of Germany" vs "Germany"); a small distance catches spelling variants
// without crossing into different countries.
const maxNameDistance = 3

// EntityForCountry resolves a country display name to its entity code. An
// exact (case-insensitive) match is tried first, then the closest name within
// maxNameDistance edits.
func (db *Database) EntityForCountry(name string) (string, bool) {
	if db == nil {
		return "", false
	}
	norm := strutil.NormalizeUpper(name)
	if norm == "" {
		return "", false
	}
	if code, ok := db.names[norm]; ok {
		return strconv.Itoa(code), true
	}

	bestCode := 0
	bestDist := maxNameDistance + 1
	for candidate, code := range db.names {
		d := levenshtein.ComputeDistance(norm, candidate)
		if d < bestDist {
			bestDist = d
			bestCode = code
		}
	}
	if bestCode == 0 {
		return "", false
	}
	return strconv.Itoa(bestCode), true
}
