package ssin

// Result reports the outcome of each validity check.
type Result struct {
	DateValid    bool
	IndexValid   bool
	ControlValid bool
}

// Valid returns true when every check passed.
func (r Result) Valid() bool {
	return r.DateValid && r.IndexValid && r.ControlValid
}

// IsValid reports whether s is a well-formed, internally consistent SSIN.
func (s SSIN) IsValid() bool {
	return s.Check().Valid()
}

// Check runs the date, registration index and control checks independently.
func (s SSIN) Check() Result {
	return Result{
		DateValid:    s.isDatePartValid(),
		IndexValid:   s.isRegistrationIndexValid(),
		ControlValid: s.isControlValid(),
	}
}

// IsValidString parses text and validates it. Malformed text is invalid.
func IsValidString(text string) bool {
	s, err := Parse(text)
	return err == nil && s.IsValid()
}

// isDatePartValid accepts three shapes: a full calendar date, a fully unknown
// date (year 0, month 0, day > 1) and a known year with unknown month.
func (s SSIN) isDatePartValid() bool {
	if s.Month > 52 {
		return false
	}

	// BIS numbers add 20 or 40 to the month.
	month := s.Month
	for month > 12 {
		month -= 20
	}

	if s.Year < 0 || month < 0 || s.Day < 0 {
		return false
	}

	switch {
	case s.Year > 0 && month > 0 && s.Day > 0:
		return validCalendarDate(s.Year, month, s.Day)
	case s.Year == 0 && month == 0 && s.Day > 1:
		return true
	case s.Year > 0 && month == 0 && s.Day >= 0:
		return true
	default:
		return false
	}
}

func (s SSIN) isRegistrationIndexValid() bool {
	// 001-997 for men, 002-998 for women; 998 is never issued.
	return s.RegistrationIndex > 0 && s.RegistrationIndex < 998
}

// isControlValid accepts either century's checksum rather than guessing the
// century from a two-digit year.
func (s SSIN) isControlValid() bool {
	c19, c20 := Compute(s.Year, s.Month, s.Day, s.RegistrationIndex)
	return s.Control == c19 || s.Control == c20
}

// Compute returns the expected control number for a person born in the 1900s
// and for one born in the 2000s. The month is taken as encoded, BIS offset
// included.
func Compute(year, month, day, registrationIndex int) (c19, c20 int) {
	composite := int64(year)*10_000_000 + int64(month)*100_000 + int64(day)*1_000 + int64(registrationIndex)
	return controlFor(composite), controlFor(2_000_000_000 + composite)
}

func controlFor(composite int64) int {
	return int(97 - composite%97)
}

var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// validCalendarDate checks a proleptic Gregorian date. year is taken as-is,
// so a two-digit year is read as year 1..99.
func validCalendarDate(year, month, day int) bool {
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return false
	}
	limit := daysInMonth[month]
	if month == 2 && isLeapYear(year) {
		limit = 29
	}
	return day <= limit
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
