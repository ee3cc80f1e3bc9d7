package ioroster

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gnames/gnlib"
	"github.com/pitchwise/tjdelta/pkg/enriched"
)

// DefaultInjury is used when a roster row has no injury description.
const DefaultInjury = "Tommy John surgery"

// pitcherPositions are position labels of the source spreadsheets that
// mean a pitcher.
var pitcherPositions = map[string]struct{}{
	"pitcher":                     {},
	"p":                           {},
	"rp":                          {},
	"sp":                          {},
	"sp/rp":                       {},
	"rp/sp":                       {},
	"pitcher / outfielder":        {},
	"pitcher / designated hitter": {},
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"1/2/2006",
	"1/2/06",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

var yearRe = regexp.MustCompile(`\b(18|19|20)\d{2}\b`)

// NormalizePosition maps known pitcher labels to "Pitcher" and returns
// other labels trimmed.
func NormalizePosition(pos string) string {
	pos = strings.Join(strings.Fields(pos), " ")
	if _, ok := pitcherPositions[strings.ToLower(pos)]; ok {
		return enriched.PositionPitcher
	}
	return pos
}

// ParseYear reads an injury year. Spreadsheet exports often store years as
// floats ("2018.0"), those are accepted too.
func ParseYear(s string) (int, bool) {
	return parseID(s)
}

// parseID reads a positive integer that might have been written as a
// float by a spreadsheet tool.
func parseID(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i, i > 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) || f <= 0 {
		return 0, false
	}
	return int(f), true
}

// YearFromDate extracts the year of an injury date written in one of the
// common spreadsheet formats.
func YearFromDate(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, l := range dateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t.Year(), true
		}
	}
	if m := yearRe.FindString(s); m != "" {
		y, _ := strconv.Atoi(m)
		return y, true
	}
	return 0, false
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(gnlib.FixUtf8(s)), " ")
}
