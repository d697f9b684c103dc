// Package ssin models the Belgian national identification number (SSIN).
//
// An SSIN has eleven digits laid out as YY MM DD III CC: a two-digit year, a
// month, a day, a three-digit registration index and a two-digit control
// number. Any of the date components may be zero when the birth date is
// (partially) unknown, and the month carries a +20 or +40 offset for BIS
// numbers issued to persons without a regular civil registration.
//
// Domain Purity: this package contains only pure functions over fixed-width
// integers. No I/O, no context.Context, no clock.
package ssin

import (
	"errors"
	"fmt"
)

// ErrMalformed indicates the text is not laid out as an SSIN.
var ErrMalformed = errors.New("malformed SSIN: expected 11 digits or YY.MM.DD-III.CC")

// SSIN is the structured form of a national identification number.
// The value is not validated on construction; call IsValid.
type SSIN struct {
	Year              int
	Month             int
	Day               int
	RegistrationIndex int
	Control           int
}

// New builds a structured SSIN from its components without validating it.
func New(year, month, day, registrationIndex, control int) SSIN {
	return SSIN{
		Year:              year,
		Month:             month,
		Day:               day,
		RegistrationIndex: registrationIndex,
		Control:           control,
	}
}

// Parse reads an SSIN from its 11-digit form ("85073003328") or its display
// form ("85.07.30-033.28"). No other layout is accepted.
func Parse(text string) (SSIN, error) {
	digits, ok := extractDigits(text)
	if !ok {
		return SSIN{}, ErrMalformed
	}
	return SSIN{
		Year:              number(digits[0:2]),
		Month:             number(digits[2:4]),
		Day:               number(digits[4:6]),
		RegistrationIndex: number(digits[6:9]),
		Control:           number(digits[9:11]),
	}, nil
}

// MustParse parses text, panicking if it is malformed.
// Use only in tests or with literals known to be well formed.
func MustParse(text string) SSIN {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

// displayLayout marks digit positions with 'd'; every other byte must match.
const displayLayout = "dd.dd.dd-ddd.dd"

func extractDigits(text string) ([]byte, bool) {
	var layout string
	switch len(text) {
	case 11:
		layout = "ddddddddddd"
	case len(displayLayout):
		layout = displayLayout
	default:
		return nil, false
	}

	digits := make([]byte, 0, 11)
	for i := 0; i < len(text); i++ {
		c := text[i]
		if layout[i] == 'd' {
			if c < '0' || c > '9' {
				return nil, false
			}
			digits = append(digits, c)
			continue
		}
		if c != layout[i] {
			return nil, false
		}
	}
	return digits, true
}

func number(digits []byte) int {
	n := 0
	for _, d := range digits {
		n = n*10 + int(d-'0')
	}
	return n
}

// String returns the canonical 11-digit form.
func (s SSIN) String() string {
	return fmt.Sprintf("%02d%02d%02d%03d%02d", s.Year, s.Month, s.Day, s.RegistrationIndex, s.Control)
}

// Format returns the display form YY.MM.DD-III.CC.
func (s SSIN) Format() string {
	return fmt.Sprintf("%02d.%02d.%02d-%03d.%02d", s.Year, s.Month, s.Day, s.RegistrationIndex, s.Control)
}

// Masked returns the display form with the registration index and control
// hidden, suitable for logs.
func (s SSIN) Masked() string {
	return fmt.Sprintf("%02d.%02d.%02d-***.**", s.Year, s.Month, s.Day)
}

// Kind classifies an SSIN by its month encoding.
type Kind string

const (
	KindRegular Kind = "regular"
	KindBIS     Kind = "bis"
	KindUnknown Kind = "unknown"
)

// Kind reports how the month component is encoded. It does not imply validity.
func (s SSIN) Kind() Kind {
	switch {
	case s.Month >= 0 && s.Month <= 12:
		return KindRegular
	case s.Month >= 20 && s.Month <= 32, s.Month >= 40 && s.Month <= 52:
		return KindBIS
	default:
		return KindUnknown
	}
}

// BISOffset returns the month offset (20 or 40) of a BIS number, or 0.
func (s SSIN) BISOffset() int {
	if s.Kind() != KindBIS {
		return 0
	}
	if s.Month >= 40 {
		return 40
	}
	return 20
}
