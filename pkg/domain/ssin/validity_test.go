package ssin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsValid_DatePart covers the accepted date shapes and the rejections
// around them. Controls are the 19XX checksum unless noted.
func TestIsValid_DatePart(t *testing.T) {
	tests := []struct {
		name string
		ssin SSIN
		want bool
	}{
		{"full date", New(85, 7, 30, 33, 28), true},
		{"full date, 20XX control", New(85, 7, 30, 33, 57), true},
		{"BIS +20 month", New(90, 32, 15, 1, 14), true},
		{"BIS +40 month", New(85, 47, 30, 33, 17), true},
		{"leap day in leap year", New(20, 2, 29, 1, 48), true},
		{"leap day in common year", New(21, 2, 29, 1, 69), false},
		{"february 30", New(85, 2, 30, 33, 90), false},
		{"april 31", New(85, 4, 31, 33, 74), false},
		{"fully unknown date", New(0, 0, 2, 500, 22), true},
		{"fully unknown date with day 1", New(0, 0, 1, 500, 52), false},
		{"fully unknown date with day 0", New(0, 0, 0, 1, 96), false},
		{"year only", New(10, 0, 0, 1, 15), true},
		{"year known, month unknown, day set", New(10, 0, 5, 1, 59), true},
		{"BIS with unknown month", New(85, 20, 0, 1, 81), true},
		{"year and month, day unknown", New(10, 3, 0, 1, 36), false},
		{"unknown year with known month", New(0, 2, 0, 1, 13), false},
		{"month between bands", New(85, 15, 1, 1, 16), false},
		{"month above 52", New(85, 53, 1, 1, 88), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ssin.IsValid())
		})
	}
}

func TestIsValid_MonthAbove52AlwaysRejected(t *testing.T) {
	for month := 53; month <= 99; month++ {
		c19, c20 := Compute(85, month, 1, 1)
		assert.False(t, New(85, month, 1, 1, c19).IsValid(), "month %d", month)
		assert.False(t, New(85, month, 1, 1, c20).IsValid(), "month %d", month)
	}
}

func TestIsValid_NegativeComponents(t *testing.T) {
	assert.False(t, New(-1, 1, 1, 1, 0).Check().DateValid)
	assert.False(t, New(85, -1, 1, 1, 0).Check().DateValid)
	assert.False(t, New(85, 1, -1, 1, 0).Check().DateValid)
	assert.False(t, New(85, 1, 1, -1, 0).Check().IndexValid)
}

func TestIsValid_BISMonthMatchesRegularCalendar(t *testing.T) {
	regular := New(90, 12, 15, 1, 0).Check()
	bis20 := New(90, 32, 15, 1, 0).Check()
	bis40 := New(90, 52, 15, 1, 0).Check()

	assert.True(t, regular.DateValid)
	assert.Equal(t, regular.DateValid, bis20.DateValid)
	assert.Equal(t, regular.DateValid, bis40.DateValid)
}

func TestIsValid_RegistrationIndex(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  bool
	}{
		{"zero", 0, false},
		{"first male index", 1, true},
		{"first female index", 2, true},
		{"last issued index", 997, true},
		{"998", 998, false},
		{"999", 999, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c19, _ := Compute(85, 7, 30, tt.index)
			s := New(85, 7, 30, tt.index, c19)
			assert.Equal(t, tt.want, s.IsValid())
			assert.True(t, s.Check().ControlValid)
		})
	}
}

func TestIsValid_FullRangeOfCalendarDates(t *testing.T) {
	for year := 1; year <= 99; year++ {
		for month := 1; month <= 12; month++ {
			for day := 1; day <= daysIn(year, month); day++ {
				c19, c20 := Compute(year, month, day, 997)
				require.True(t, New(year, month, day, 997, c19).IsValid(), "%02d-%02d-%02d 19XX", year, month, day)
				require.True(t, New(year, month, day, 997, c20).IsValid(), "%02d-%02d-%02d 20XX", year, month, day)
			}
		}
	}
}

func daysIn(year, month int) int {
	switch month {
	case 2:
		if year%4 == 0 {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func TestCompute(t *testing.T) {
	t.Run("zero-padded composites", func(t *testing.T) {
		// 0507203 and 20507203 as decimal numbers.
		c19, c20 := Compute(5, 7, 20, 3)
		assert.Equal(t, 97-507203%97, c19)
		assert.Equal(t, 97-2000507203%97, c20)
		assert.Equal(t, 36, c19)
		assert.Equal(t, 65, c20)
	})

	t.Run("raw BIS month is part of the composite", func(t *testing.T) {
		regular, _ := Compute(90, 12, 15, 1)
		bis, _ := Compute(90, 32, 15, 1)
		assert.NotEqual(t, regular, bis)
	})

	t.Run("composite divisible by 97 yields 97", func(t *testing.T) {
		_, c20 := Compute(90, 12, 15, 1)
		assert.Equal(t, 97, c20)
		assert.True(t, New(90, 12, 15, 1, 97).IsValid())
	})
}

func TestIsValid_ControlOffByOne(t *testing.T) {
	c19, c20 := Compute(5, 7, 20, 3)
	assert.True(t, New(5, 7, 20, 3, c19).IsValid())
	assert.True(t, New(5, 7, 20, 3, c20).IsValid())

	for _, control := range []int{c19 - 1, c19 + 1, c20 - 1, c20 + 1} {
		assert.False(t, New(5, 7, 20, 3, control).IsValid(), "control %d", control)
	}
}

func TestIsValidString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"digits only", "85073003328", true},
		{"display layout", "85.07.30-033.28", true},
		{"born after 2000", "05072000365", true},
		{"bad control", "85073003329", false},
		{"malformed", "8507300332", false},
		{"empty", "", false},
		{"letters", "85O73003328", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidString(tt.input))
		})
	}
}

func TestResult_Valid(t *testing.T) {
	assert.True(t, Result{DateValid: true, IndexValid: true, ControlValid: true}.Valid())
	assert.False(t, Result{DateValid: true, IndexValid: true}.Valid())
	assert.False(t, Result{IndexValid: true, ControlValid: true}.Valid())

	r := New(85, 2, 30, 998, 0).Check()
	assert.False(t, r.DateValid)
	assert.False(t, r.IndexValid)
	assert.False(t, r.ControlValid)
}
