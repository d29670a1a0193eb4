package adif

import (
	"strings"

	"github.com/zeebo/xxh3"

	"qsltracker/contact"
	"qsltracker/strutil"
)

// ADIF tags the assembler recognizes. Everything else in a record is carried
// in the raw field map until the record is built, then discarded.
const (
	tagCall     = "CALL"
	tagBand     = "BAND"
	tagDXCC     = "DXCC"
	tagCountry  = "COUNTRY"
	tagMode     = "MODE"
	tagFreq     = "FREQ"
	tagQSODate  = "QSO_DATE"
	tagTimeOn   = "TIME_ON"
	tagLoTWRcvd = "LOTW_QSL_RCVD"
	tagQSLRcvd  = "QSL_RCVD"
)

// confirmedSentinel is the ADIF value meaning "received" for both the LoTW
// and the paper QSL flag. Comparison is case-insensitive.
const confirmedSentinel = "Y"

// EntityResolver fills in entity data for records whose DXCC tag is absent.
// Both methods are best-effort; a nil resolver disables enrichment entirely.
type EntityResolver interface {
	// EntityForCallsign resolves a callsign to its DXCC entity code and
	// country name via prefix lookup.
	EntityForCallsign(call string) (code, country string, ok bool)
	// EntityForCountry resolves a country display name to its entity code.
	EntityForCountry(name string) (code string, ok bool)
}

// Assembler groups tokenizer fields into contact records. Fields accumulate
// until an EOR marker; everything before the first EOH marker is the file
// header and is discarded as a block. Within a record the last occurrence of
// a duplicated tag wins.
type Assembler struct {
	tok        *Tokenizer
	resolver   EntityResolver
	fields     map[string]string
	headerDone bool
	seen       map[uint64]struct{}
	warnings   []Warning
}

// NewAssembler wraps a tokenizer. resolver may be nil.
func NewAssembler(tok *Tokenizer, resolver EntityResolver) *Assembler {
	return &Assembler{
		tok:      tok,
		resolver: resolver,
		fields:   make(map[string]string),
		seen:     make(map[uint64]struct{}),
	}
}

// Next returns the next assembled record. Records dropped for a missing
// callsign are skipped with a warning. The second result is false once the
// token stream is exhausted; fields after the final EOR are discarded.
func (a *Assembler) Next() (contact.Record, bool) {
	for {
		tok, ok := a.tok.Next()
		if !ok {
			return contact.Record{}, false
		}
		if tok.Control {
			switch tok.Tag {
			case tagEOH:
				// Header fields are dropped as a block. A second EOH mid-file
				// is ignored rather than wiping an in-progress record.
				if !a.headerDone {
					a.headerDone = true
					clear(a.fields)
				}
			case tagEOR:
				// An EOR before any EOH means the file has no header; the
				// accumulated fields are a record, not header prose.
				a.headerDone = true
				rec, ok := a.buildRecord()
				clear(a.fields)
				if ok {
					return rec, true
				}
			}
			continue
		}
		a.fields[tok.Tag] = tok.Value
	}
}

// Warnings returns record-level warnings (dropped records, missing bands,
// duplicates) accumulated so far. Tokenizer warnings are separate.
func (a *Assembler) Warnings() []Warning {
	return a.warnings
}

func (a *Assembler) buildRecord() (contact.Record, bool) {
	call := strutil.NormalizeUpper(a.fields[tagCall])
	if call == "" {
		a.warn(WarnIncompleteRecord, "record has no CALL field")
		return contact.Record{}, false
	}

	rec := contact.Record{
		Callsign:      call,
		Band:          contact.NormalizeBand(a.fields[tagBand]),
		Entity:        strings.TrimSpace(a.fields[tagDXCC]),
		Country:       strings.TrimSpace(a.fields[tagCountry]),
		Mode:          strutil.NormalizeUpper(a.fields[tagMode]),
		Frequency:     strings.TrimSpace(a.fields[tagFreq]),
		LoTWConfirmed: strutil.FlagEquals(a.fields[tagLoTWRcvd], confirmedSentinel),
		CardConfirmed: strutil.FlagEquals(a.fields[tagQSLRcvd], confirmedSentinel),
	}

	if rec.Band == "" {
		a.warn(WarnMissingBand, "record for "+call+" has no usable BAND")
	}

	a.resolveEntity(&rec)
	a.noteFingerprint(rec)
	return rec, true
}

// resolveEntity derives entity data when the DXCC tag is absent: first from
// the COUNTRY name, then from the callsign prefix. Enrichment is silent;
// a record that stays without an entity is simply excluded from entity lists.
func (a *Assembler) resolveEntity(rec *contact.Record) {
	if a.resolver == nil {
		return
	}
	if rec.Entity == "" && rec.Country != "" {
		if code, ok := a.resolver.EntityForCountry(rec.Country); ok {
			rec.Entity = code
		}
	}
	if rec.Entity == "" {
		if code, country, ok := a.resolver.EntityForCallsign(rec.Callsign); ok {
			rec.Entity = code
			if rec.Country == "" {
				rec.Country = country
			}
		}
	}
}

// noteFingerprint flags byte-identical re-logs of the same QSO. The hash
// covers the fields that identify a contact uniquely in practice.
func (a *Assembler) noteFingerprint(rec contact.Record) {
	key := strings.Join([]string{
		rec.Callsign,
		rec.Band,
		rec.Mode,
		rec.Frequency,
		a.fields[tagQSODate],
		a.fields[tagTimeOn],
	}, "|")
	h := xxh3.HashString(key)
	if _, dup := a.seen[h]; dup {
		a.warn(WarnDuplicateRecord, "repeated QSO for "+rec.Callsign)
		return
	}
	a.seen[h] = struct{}{}
}

func (a *Assembler) warn(kind WarningKind, detail string) {
	a.warnings = append(a.warnings, Warning{
		Kind:   kind,
		Offset: a.tok.offset(),
		Detail: detail,
	})
}
