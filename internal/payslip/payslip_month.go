package payslip

import "strings"

// MonthKey is the three-letter lower-case month used to key payslip data.
type MonthKey string

const (
	Jan MonthKey = "jan"
	Feb MonthKey = "feb"
	Mar MonthKey = "mar"
	Apr MonthKey = "apr"
	May MonthKey = "may"
	Jun MonthKey = "jun"
	Jul MonthKey = "jul"
	Aug MonthKey = "aug"
	Sep MonthKey = "sep"
	Oct MonthKey = "oct"
	Nov MonthKey = "nov"
	Dec MonthKey = "dec"
)

var monthOrder = []MonthKey{Jan, Feb, Mar, Apr, May, Jun, Jul, Aug, Sep, Oct, Nov, Dec}

// NormalizeMonth lower-cases s and keeps its first three letters, so "April",
// "APR" and "apr" all give Apr. The bool is false when the result is not a
// month.
func NormalizeMonth(s string) (MonthKey, bool) {
	r := []rune(strings.ToLower(strings.TrimSpace(s)))
	if len(r) > 3 {
		r = r[:3]
	}
	key := MonthKey(r)
	return key, key.Valid()
}

func (m MonthKey) Valid() bool {
	for _, k := range monthOrder {
		if k == m {
			return true
		}
	}
	return false
}

func (m MonthKey) Title() string {
	if m == "" {
		return ""
	}
	return strings.ToUpper(string(m[:1])) + string(m[1:])
}
