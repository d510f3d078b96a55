package rfc822

import (
	"strconv"
	"strings"
	"time"

	u "github.com/araddon/gou"
)

var daysOfWeek = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

var months = []string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

// DateParser recognizes RFC 822 section 5 date-times, including the RFC
// 5322 3.3 additions and the 4.3 obsolete forms still seen in real mail:
// two- and three-digit years, named timezones, and omitted seconds.
//
// A DateParser borrows its input and holds no other state than the scanner
// it wraps; make one per parse.
type DateParser struct {
	s *Scanner
}

func NewDateParser(datestr string) *DateParser {
	return &DateParser{s: NewScanner(datestr)}
}

// Parse interprets datestr as an RFC 822/5322 date-time, returning a time
// anchored at the fixed offset the text expressed. It is not normalized to
// UTC; use t.UTC() for that.
func Parse(datestr string) (time.Time, error) {
	t, err := NewDateParser(datestr).ConsumeDateTime()
	if err != nil {
		u.Debugf("rfc822: %q: %v", datestr, err)
	}
	return t, err
}

// MustParse is Parse but panics if the text is not a valid date-time.
func MustParse(datestr string) time.Time {
	t, err := NewDateParser(datestr).ConsumeDateTime()
	if err != nil {
		panic(err.Error())
	}
	return t
}

// ConsumeDateTime consumes one date-time expression from the current
// position. Any grammar element that fails aborts the whole parse with
// that element's error; there is no partial result.
func (p *DateParser) ConsumeDateTime() (time.Time, error) {
	// Optional "Mon, " prefix. A word that is not a day name is rolled
	// back and re-parsed as the day of month that follows.
	p.s.PushPosition()
	if dow, ok := p.s.ConsumeWord(false); ok && isDayOfWeek(strings.ToLower(dow)) {
		p.s.ConsumeWhile(func(c byte) bool { return c == ',' || isWhitespace(c) })
		p.s.DiscardPosition()
	} else {
		p.s.PopPosition()
	}

	day, ok := p.consumeInt()
	if !ok {
		return time.Time{}, parseErrorf("expected day of month, a number")
	}

	p.s.ConsumeLinearWhitespace()
	month, err := p.consumeMonth()
	if err != nil {
		return time.Time{}, err
	}

	p.s.ConsumeLinearWhitespace()
	year, ok := p.consumeInt()
	if !ok {
		return time.Time{}, parseErrorf("expected year")
	}
	// Obsolete year forms per RFC 5322 4.3: 0-49 land in the 2000s,
	// 50-999 are offset from 1900, four digits and up are literal.
	switch {
	case year <= 49:
		year += 2000
	case year <= 999:
		year += 1900
	}

	p.s.ConsumeLinearWhitespace()
	hour, minute, second, err := p.consumeTime()
	if err != nil {
		return time.Time{}, err
	}

	p.s.ConsumeLinearWhitespace()
	offset, zone, err := p.consumeZone()
	if err != nil {
		return time.Time{}, err
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.FixedZone(zone, offset))
	// time.Date normalizes out-of-range fields instead of failing, so an
	// impossible calendar date has to be caught by reading the fields back.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != second {
		return time.Time{}, parseErrorf("no such date: %04d-%02d-%02d %02d:%02d:%02d",
			year, month, day, hour, minute, second)
	}
	return t, nil
}

// consumeInt reads the next word as a non-negative decimal integer.
func (p *DateParser) consumeInt() (int, bool) {
	w, ok := p.s.ConsumeWord(false)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(w)
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}

func (p *DateParser) consumeMonth() (int, error) {
	w, ok := p.s.ConsumeWord(false)
	if !ok {
		return 0, parseErrorf("expected month")
	}
	lower := strings.ToLower(w)
	for i, m := range months {
		if m == lower {
			// Months are 1-indexed.
			return i + 1, nil
		}
	}
	return 0, parseErrorf("invalid month: %q", lower)
}

func (p *DateParser) consumeTime() (hour, minute, second int, err error) {
	hour, ok := p.consumeInt()
	if !ok {
		return 0, 0, 0, parseErrorf("failed to parse time: expected hour, a number")
	}

	if err := p.s.AssertChar(':'); err != nil {
		return 0, 0, 0, err
	}
	p.s.ConsumeChar()

	minute, ok = p.consumeInt()
	if !ok {
		return 0, 0, 0, parseErrorf("failed to parse time: expected minute")
	}

	// Seconds are optional, present only when their separator is.
	if p.s.AssertChar(':') == nil {
		p.s.ConsumeChar()
		if v, ok := p.consumeInt(); ok {
			second = v
		}
	}
	return hour, minute, second, nil
}

// consumeZone resolves the timezone word to an offset in seconds east of
// UTC, also returning the word itself for use as the fixed zone's name.
func (p *DateParser) consumeZone() (int, string, error) {
	w, ok := p.s.ConsumeWord(false)
	if !ok {
		return 0, "", parseErrorf("expected timezone offset")
	}
	off, err := resolveZone(w)
	if err != nil {
		return 0, "", err
	}
	return off, w, nil
}

func isDayOfWeek(w string) bool {
	for _, d := range daysOfWeek {
		if d == w {
			return true
		}
	}
	return false
}
