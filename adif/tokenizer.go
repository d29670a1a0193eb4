// Package adif parses ADIF log files into contact records. The pipeline is
// tokenizer → assembler: the tokenizer yields raw (tag, value) fields from the
// tag-length-value framing, the assembler groups them into records and maps
// the ADIF tag set onto contact.Record. Malformed input degrades to warnings,
// never to a failed parse; a partially corrupt log still yields every record
// that can be recovered.
package adif

import (
	"fmt"
	"strings"

	"qsltracker/strutil"
)

// Token is one raw ADIF field. Control markers (EOH, EOR) are emitted with an
// empty value; Control distinguishes them from a genuine zero-length field.
type Token struct {
	Tag     string // upper-cased field name
	Value   string // exactly the declared number of bytes, possibly empty
	Control bool   // true for EOH/EOR markers
}

const (
	tagEOH = "EOH"
	tagEOR = "EOR"
)

// Tokenizer scans ADIF text for <TAG:LENGTH>value frames and yields them one
// at a time. The sequence is lazy, finite, and not restartable. Frames that
// cannot be parsed are recorded as warnings and skipped; the scan resumes at
// the next '<'.
type Tokenizer struct {
	input    []byte
	pos      int
	warnings []Warning
}

// NewTokenizer wraps the full file content. The caller owns reading the file;
// the tokenizer never touches the filesystem.
func NewTokenizer(input []byte) *Tokenizer {
	return &Tokenizer{input: input}
}

// Next returns the next well-formed field, skipping malformed frames. The
// second result is false once the input is exhausted.
func (t *Tokenizer) Next() (Token, bool) {
	for {
		tok, ok, valid := t.scanOne()
		if !ok {
			return Token{}, false
		}
		if valid {
			return tok, true
		}
	}
}

// Warnings returns the malformed-frame warnings accumulated so far, in input
// order.
func (t *Tokenizer) Warnings() []Warning {
	return t.warnings
}

// offset is the current scan position, used to place record-level warnings.
func (t *Tokenizer) offset() int {
	return t.pos
}

// scanOne advances past one frame attempt. ok is false at end of input; valid
// is false when the frame was malformed and has been recorded as a warning.
func (t *Tokenizer) scanOne() (tok Token, ok bool, valid bool) {
	// Seek the opening bracket; anything between frames is ignorable filler
	// (newlines, header prose before the first tag).
	for t.pos < len(t.input) && t.input[t.pos] != '<' {
		t.pos++
	}
	if t.pos >= len(t.input) {
		return Token{}, false, false
	}

	start := t.pos
	t.pos++ // consume '<'

	end := t.pos
	for end < len(t.input) && t.input[end] != '>' && t.input[end] != '<' {
		end++
	}
	if end >= len(t.input) || t.input[end] == '<' {
		t.warn(start, "unterminated tag")
		t.pos = end
		return Token{}, true, false
	}

	inner := string(t.input[t.pos:end])
	t.pos = end + 1 // consume '>'

	name, length, hasLength, err := splitTag(inner)
	if err != nil {
		t.warn(start, err.Error())
		return Token{}, true, false
	}

	if name == tagEOH || name == tagEOR {
		return Token{Tag: name, Control: true}, true, true
	}
	if !hasLength {
		t.warn(start, fmt.Sprintf("tag %s missing length", name))
		return Token{}, true, false
	}
	if t.pos+length > len(t.input) {
		t.warn(start, fmt.Sprintf("tag %s value truncated at end of input", name))
		t.pos = len(t.input)
		return Token{}, true, false
	}

	value := string(t.input[t.pos : t.pos+length])
	t.pos += length
	return Token{Tag: name, Value: value}, true, true
}

// splitTag parses the interior of a frame: NAME, NAME:LENGTH, or
// NAME:LENGTH:TYPE. The optional type suffix is accepted and discarded.
func splitTag(inner string) (string, int, bool, error) {
	name, rest, found := strings.Cut(inner, ":")
	if !found {
		return validateName(inner, false, 0)
	}
	lenStr, _, _ := strings.Cut(rest, ":")
	length, err := parseDecimal(lenStr)
	if err != nil {
		return "", 0, false, fmt.Errorf("tag %s has non-numeric length %q", strutil.NormalizeUpper(name), lenStr)
	}
	return validateName(name, true, length)
}

func validateName(name string, hasLength bool, length int) (string, int, bool, error) {
	if name == "" {
		return "", 0, false, fmt.Errorf("empty tag name")
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9', c == '_':
		default:
			return "", 0, false, fmt.Errorf("invalid tag name %q", name)
		}
	}
	return strutil.NormalizeUpper(name), length, hasLength, nil
}

func parseDecimal(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty length")
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("non-numeric length")
		}
		n = n*10 + int(c-'0')
		if n > maxFieldBytes {
			return 0, fmt.Errorf("length too large")
		}
	}
	return n, nil
}

// maxFieldBytes bounds a single field value. ADIF fields are short; a
// multi-megabyte length is a corrupt frame, not data.
const maxFieldBytes = 1 << 20

func (t *Tokenizer) warn(offset int, detail string) {
	t.warnings = append(t.warnings, Warning{
		Kind:   WarnMalformedField,
		Offset: offset,
		Detail: detail,
	})
}
