package rfc822

import (
	"strconv"
	"strings"
	"sync"
)

// Zone abbreviations RFC 5322 4.3 still assigns a meaning. Military
// single-letter zones other than Z are deliberately unsupported.
var (
	tzOnce    sync.Once
	tzOffsets map[string]int
)

func zoneOffsets() map[string]int {
	tzOnce.Do(func() {
		tzOffsets = map[string]int{
			"Z":   0,
			"UT":  0,
			"GMT": 0,
			"PST": -28800, // UTC-8
			"PDT": -25200, // UTC-7
			"MST": -25200, // UTC-7
			"MDT": -21600, // UTC-6
			"CST": -21600, // UTC-6
			"CDT": -18000, // UTC-5
			"EST": -18000, // UTC-5
			"EDT": -14400, // UTC-4
		}
	})
	return tzOffsets
}

// resolveZone turns a timezone word into an offset in seconds east of UTC.
// Numeric ±HHMM forms are split digit-group-wise, so "+0545" is 5h45m;
// anything non-numeric is looked up, case sensitively, in the abbreviation
// table.
func resolveZone(word string) (int, error) {
	// Tolerate one explicit '+' on the numeric form.
	num := strings.TrimPrefix(word, "+")
	if i, err := strconv.Atoi(num); err == nil {
		return (i/100)*3600 + (i%100)*60, nil
	}
	if off, ok := zoneOffsets()[word]; ok {
		return off, nil
	}
	return 0, parseErrorf("invalid timezone: %q", word)
}
