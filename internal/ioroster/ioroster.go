// Package ioroster reads the cleaned injury roster and the enriched table
// produced from it. Both are CSV files with the same subject columns; the
// enriched table has metric columns in addition.
package ioroster

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pitchwise/tjdelta/pkg/enriched"
	"github.com/pitchwise/tjdelta/pkg/metric"
)

// Stats describes how many roster rows were kept and why others were
// dropped.
type Stats struct {
	Total      int
	Kept       int
	NotPitcher int
	NoYear     int
	BadCells   int
}

// Load reads a roster or enriched table file.
func Load(path string, set *metric.Set) (*enriched.Table, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, ParseError(path, err)
	}
	defer f.Close()

	tbl, stats, err := read(path, f, set)
	if err != nil {
		return nil, stats, err
	}
	slog.Info("Roster loaded",
		"path", path,
		"rows", stats.Total,
		"subjects", stats.Kept,
		"not_pitcher", stats.NotPitcher,
		"no_year", stats.NoYear,
	)
	return tbl, stats, nil
}

// Read parses roster CSV from r. Rows of non-pitchers and rows without an
// injury year are dropped. Metric columns, if any, are parsed into cells;
// every other column is kept as is.
func Read(r io.Reader, set *metric.Set) (*enriched.Table, Stats, error) {
	return read("input", r, set)
}

func read(
	path string,
	r io.Reader,
	set *metric.Set,
) (*enriched.Table, Stats, error) {
	var stats Stats
	rd := csv.NewReader(r)
	rd.FieldsPerRecord = -1
	rd.LazyQuotes = true

	header, err := rd.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, stats, EmptyError(path)
		}
		return nil, stats, ParseError(path, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	colIdx := make(map[string]int, len(header))
	for i, v := range header {
		colIdx[v] = i
	}
	for _, v := range []string{enriched.ColName, enriched.ColPosition} {
		if _, ok := colIdx[v]; !ok {
			return nil, stats, MissingColumnError(path, v)
		}
	}
	_, hasYear := colIdx[enriched.ColInjuryYear]
	_, hasDate := colIdx[enriched.ColInjuryDate]
	if !hasYear && !hasDate {
		return nil, stats, MissingColumnError(path, enriched.ColInjuryYear)
	}

	var plain []string
	cells := make(map[int]metric.Cell)
	for i, v := range header {
		if c, ok := set.Lookup(v); ok {
			cells[i] = c
			continue
		}
		plain = append(plain, v)
	}
	for _, v := range []string{enriched.ColInjury, enriched.ColInjuryYear} {
		if _, ok := colIdx[v]; !ok {
			plain = append(plain, v)
		}
	}

	tbl := enriched.NewTable(set, plain)
	for i := range cells {
		tbl.MarkColumn(header[i])
	}

	for {
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, ParseError(path, err)
		}
		stats.Total++

		fields := make(map[string]string, len(header))
		for i, v := range header {
			if _, ok := cells[i]; ok {
				continue
			}
			if i < len(rec) {
				fields[v] = rec[i]
			}
		}

		s, ok := subject(fields, &stats)
		if !ok {
			continue
		}

		row := tbl.AddRow(s, fields)
		for i, c := range cells {
			if i >= len(rec) {
				continue
			}
			val, err := metric.Parse(rec[i])
			if err != nil {
				stats.BadCells++
				slog.Debug("Unreadable metric cell",
					"subject", s.String(), "column", header[i], "value", rec[i])
				continue
			}
			row.Cells.Set(c, val)
		}
		stats.Kept++
	}

	if stats.Kept == 0 {
		return nil, stats, EmptyError(path)
	}
	return tbl, stats, nil
}

// subject builds a cleaned subject and writes cleaned values back to
// fields.
func subject(fields map[string]string, stats *Stats) (enriched.Subject, bool) {
	var res enriched.Subject

	res.Position = NormalizePosition(fields[enriched.ColPosition])
	if res.Position != enriched.PositionPitcher {
		stats.NotPitcher++
		return res, false
	}

	res.InjuryDate = strings.TrimSpace(fields[enriched.ColInjuryDate])
	year, ok := ParseYear(fields[enriched.ColInjuryYear])
	if !ok {
		year, ok = YearFromDate(res.InjuryDate)
	}
	if !ok {
		stats.NoYear++
		return res, false
	}
	res.InjuryYear = year

	res.Name = cleanText(fields[enriched.ColName])
	res.Injury = cleanText(fields[enriched.ColInjury])
	if res.Injury == "" {
		res.Injury = DefaultInjury
	}

	if id, ok := parseID(fields[enriched.ColTrackingID]); ok {
		res.TrackingID = id
	}
	res.RegisterID = strings.TrimSpace(fields[enriched.ColRegisterID])

	fields[enriched.ColName] = res.Name
	fields[enriched.ColPosition] = res.Position
	fields[enriched.ColInjury] = res.Injury
	fields[enriched.ColInjuryYear] = strconv.Itoa(res.InjuryYear)
	return res, true
}
