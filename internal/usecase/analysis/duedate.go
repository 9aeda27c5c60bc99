package analysis

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

const isoDate = "2006-01-02"

// DateParser resolves a natural-language date phrase against a base time.
// Implementations report ok=false when the phrase is not a date; that is
// expected, not an error.
type DateParser interface {
	Parse(phrase string, base time.Time) (time.Time, bool)
}

type naturalDateParser struct {
	w *when.Parser
}

// NewDateParser builds the default date-parsing collaborator: olebedev/when
// for relative English phrases, araddon/dateparse for absolute literals.
func NewDateParser() DateParser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &naturalDateParser{w: w}
}

var ordinalSuffixRe = regexp.MustCompile(`(?i)(\d{1,2})(st|nd|rd|th)\b`)

func (p *naturalDateParser) Parse(phrase string, base time.Time) (time.Time, bool) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return time.Time{}, false
	}

	if r, err := p.w.Parse(phrase, base); err == nil && r != nil {
		return r.Time, true
	}

	// dateparse chokes on ordinal suffixes ("3rd Mar 2025")
	if t, err := dateparse.ParseAny(ordinalSuffixRe.ReplaceAllString(phrase, "$1")); err == nil {
		return t, true
	}

	return time.Time{}, false
}

// dueDatePattern kinds, in the order the resolver tries them
const (
	kindPhrase   = iota // captured phrase handed to the date parser
	kindWhole           // whole match handed to the date parser
	kindOffset          // relative offset computed against processing time
	kindPeriod          // end-of-period computed against processing time
	kindToday           // today
	kindTomorrow        // tomorrow
)

type dueDatePattern struct {
	re   *regexp.Regexp
	kind int
}

var dueDatePatterns = []dueDatePattern{
	{regexp.MustCompile(`(?i)by\s+([^.!?]+)`), kindPhrase},
	{regexp.MustCompile(`(?i)due\s+([^.!?]+)`), kindPhrase},
	{regexp.MustCompile(`(?i)deadline[:\s]+([^.!?]+)`), kindPhrase},
	{regexp.MustCompile(`(?i)(next|this)\s+(monday|tuesday|wednesday|thursday|friday|week|month|quarter)`), kindWhole},
	{regexp.MustCompile(`(?i)\btomorrow\b`), kindTomorrow},
	{regexp.MustCompile(`(?i)\btoday\b`), kindToday},
	{regexp.MustCompile(`(?i)end\s+of\s+(week|month|quarter|year)`), kindPeriod},
	{regexp.MustCompile(`(?i)(\d{1,2}(?:st|nd|rd|th)?\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{4})`), kindWhole},
	{regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})`), kindWhole},
	{regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`), kindWhole},
	{regexp.MustCompile(`(?i)in\s+(\d+)\s+(day|week|month)s?`), kindOffset},
	{regexp.MustCompile(`(?i)(\d+)\s+(day|week|month)s?\s+from\s+now`), kindOffset},
}

// DueDateResolver extracts a due date from action-item text. Relative
// offsets are computed against the current processing time; everything
// else goes through the natural-language parser. The first pattern whose
// phrase parses successfully wins.
type DueDateResolver struct {
	parser DateParser
	now    func() time.Time
}

// NewDueDateResolver creates a resolver around the given parser.
// A nil parser falls back to the default collaborator.
func NewDueDateResolver(parser DateParser) *DueDateResolver {
	if parser == nil {
		parser = NewDateParser()
	}
	return &DueDateResolver{parser: parser, now: time.Now}
}

// Resolve returns the due date as YYYY-MM-DD, or "" when no date phrase
// is found or nothing parses. Absence of a due date is expected.
func (r *DueDateResolver) Resolve(text string) string {
	base := r.now()

	for _, p := range dueDatePatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		switch p.kind {
		case kindPhrase:
			if t, ok := r.parser.Parse(m[1], base); ok {
				return t.Format(isoDate)
			}
		case kindWhole:
			if t, ok := r.parser.Parse(m[0], base); ok {
				return t.Format(isoDate)
			}
			// "next week"-style period phrases have no weekday for the
			// parser to anchor on; compute them directly.
			if len(m) >= 3 {
				if t, ok := resolvePeriodPhrase(m[1], m[2], base); ok {
					return t.Format(isoDate)
				}
			}
		case kindOffset:
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			return addOffset(base, n, strings.ToLower(m[2])).Format(isoDate)
		case kindPeriod:
			return endOfPeriod(base, strings.ToLower(m[1])).Format(isoDate)
		case kindToday:
			return base.Format(isoDate)
		case kindTomorrow:
			return base.AddDate(0, 0, 1).Format(isoDate)
		}
	}

	return ""
}

func addOffset(base time.Time, n int, unit string) time.Time {
	switch unit {
	case "week":
		return base.AddDate(0, 0, n*7)
	case "month":
		return base.AddDate(0, 0, n*30)
	default:
		return base.AddDate(0, 0, n)
	}
}

// resolvePeriodPhrase handles "next week" / "this month" style phrases
// where the second word is a period rather than a weekday.
func resolvePeriodPhrase(qualifier, period string, base time.Time) (time.Time, bool) {
	switch strings.ToLower(period) {
	case "week":
		if strings.EqualFold(qualifier, "next") {
			return base.AddDate(0, 0, 7), true
		}
		return endOfPeriod(base, "week"), true
	case "month":
		if strings.EqualFold(qualifier, "next") {
			return base.AddDate(0, 0, 30), true
		}
		return endOfPeriod(base, "month"), true
	case "quarter":
		if strings.EqualFold(qualifier, "next") {
			return base.AddDate(0, 0, 90), true
		}
		return endOfPeriod(base, "quarter"), true
	}
	return time.Time{}, false
}

func endOfPeriod(base time.Time, period string) time.Time {
	switch period {
	case "week":
		// end of week = coming Sunday
		days := (7 - int(base.Weekday())) % 7
		return base.AddDate(0, 0, days)
	case "month":
		firstOfMonth := time.Date(base.Year(), base.Month(), 1, 0, 0, 0, 0, base.Location())
		return firstOfMonth.AddDate(0, 1, -1)
	case "quarter":
		quarterEndMonth := ((int(base.Month())-1)/3)*3 + 3
		firstOfNext := time.Date(base.Year(), time.Month(quarterEndMonth), 1, 0, 0, 0, 0, base.Location())
		return firstOfNext.AddDate(0, 1, -1)
	case "year":
		return time.Date(base.Year(), time.December, 31, 0, 0, 0, 0, base.Location())
	}
	return base
}
