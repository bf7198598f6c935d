// Package cnj parses, validates, and formats the 20-digit standardized
// national judicial case number (numeração única, CNJ Resolution 65) used
// across the Brazilian court systems:
//
//	NNNNNNN-DD.AAAA.J.TR.OOOO
//
// where NNNNNNN is the sequential number, DD the check digits, AAAA the
// filing year, J the judicial-branch segment, TR the court code, and OOOO
// the origin unit. The check digits satisfy a modulo-97 relation over the
// remaining 18 digits; identifiers failing that relation must not be
// trusted for jurisdiction resolution.
package cnj

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Structural field widths of the 20-digit identifier.
const (
	sequenceLen = 7
	checkLen    = 2
	yearLen     = 4
	segmentLen  = 1
	courtLen    = 2
	originLen   = 4

	totalDigits = sequenceLen + checkLen + yearLen + segmentLen + courtLen + originLen
)

// ErrMalformed indicates the input does not contain exactly 20 digits.
var ErrMalformed = errors.New("malformed case identifier")

// ErrCheckDigit indicates the embedded check digits fail the modulo-97
// relation over the remaining 18 digits.
var ErrCheckDigit = errors.New("case identifier check digits do not match")

// CaseIdentifier is the validated, canonical representation of a case
// number. Sub-fields are kept as zero-padded digit strings so that
// formatting round-trips exactly.
type CaseIdentifier struct {
	Sequence    string `json:"sequence"`     // 7 digits
	CheckDigits string `json:"check_digits"` // 2 digits
	Year        string `json:"year"`         // 4 digits
	Segment     string `json:"segment"`      // 1 digit, judicial branch
	Court       string `json:"court"`        // 2 digits
	Origin      string `json:"origin"`       // 4 digits, origin unit
}

// SegmentDigit returns the judicial-branch segment as an integer.
func (id CaseIdentifier) SegmentDigit() int {
	n, _ := strconv.Atoi(id.Segment)
	return n
}

// CourtCode returns the court code as an integer.
func (id CaseIdentifier) CourtCode() int {
	n, _ := strconv.Atoi(id.Court)
	return n
}

// FilingYear returns the filing year as an integer.
func (id CaseIdentifier) FilingYear() int {
	n, _ := strconv.Atoi(id.Year)
	return n
}

// Format returns the canonical punctuated form
// NNNNNNN-DD.AAAA.J.TR.OOOO.
func (id CaseIdentifier) Format() string {
	return fmt.Sprintf("%s-%s.%s.%s.%s.%s",
		id.Sequence, id.CheckDigits, id.Year, id.Segment, id.Court, id.Origin)
}

// String returns the canonical punctuated form.
func (id CaseIdentifier) String() string {
	return id.Format()
}

// Parse extracts and validates a case identifier from text in any common
// punctuation style. All non-digit characters are stripped first; the
// remaining digits must number exactly 20 (ErrMalformed otherwise) and
// the check digits must satisfy the modulo-97 relation (ErrCheckDigit
// otherwise). Errors wrap the exported sentinels for errors.Is probing.
func Parse(text string) (CaseIdentifier, error) {
	digits := stripNonDigits(text)
	if len(digits) != totalDigits {
		return CaseIdentifier{}, fmt.Errorf("%w: got %d digits, want %d",
			ErrMalformed, len(digits), totalDigits)
	}

	id := CaseIdentifier{
		Sequence:    digits[0:7],
		CheckDigits: digits[7:9],
		Year:        digits[9:13],
		Segment:     digits[13:14],
		Court:       digits[14:16],
		Origin:      digits[16:20],
	}

	expected := computeCheckDigits(id)
	if expected != id.CheckDigits {
		return CaseIdentifier{}, fmt.Errorf("%w: embedded %s, computed %s",
			ErrCheckDigit, id.CheckDigits, expected)
	}

	return id, nil
}

// computeCheckDigits derives the check digits from the 18 structural
// digits: 98 minus the 18-digit value modulo 97. The modulus is taken
// digit by digit so the computation never overflows.
func computeCheckDigits(id CaseIdentifier) string {
	structural := id.Sequence + id.Year + id.Segment + id.Court + id.Origin
	remainder := 0
	for _, digit := range structural {
		remainder = (remainder*10 + int(digit-'0')) % 97
	}
	return fmt.Sprintf("%02d", 98-remainder)
}

// stripNonDigits removes every non-digit rune from the text.
func stripNonDigits(text string) string {
	var builder strings.Builder
	builder.Grow(len(text))
	for _, r := range text {
		if r >= '0' && r <= '9' {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
