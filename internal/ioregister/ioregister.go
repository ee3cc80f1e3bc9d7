// Package ioregister loads season pitching totals from the Lahman
// Pitching.csv file.
package ioregister

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pitchwise/tjdelta/pkg/register"
)

var columns = []string{"playerID", "yearID", "G", "GS", "SV", "IPouts", "BFP"}

// Load reads Pitching.csv into a register table.
func Load(path string) (*register.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ParseError(path, err)
	}
	defer f.Close()

	res, err := Read(f)
	if err != nil {
		return nil, ParseError(path, err)
	}
	slog.Info("Register loaded", "path", path, "seasons", res.Len())
	return res, nil
}

// Read parses Pitching.csv rows from r. Columns are found by name. Empty
// counts are zero; rows without a player or a year are skipped.
func Read(r io.Reader) (*register.Table, error) {
	rd := csv.NewReader(r)
	rd.FieldsPerRecord = -1
	rd.ReuseRecord = true

	header, err := rd.Read()
	if err != nil {
		return nil, err
	}
	idx := make(map[string]int)
	for i, v := range header {
		idx[strings.TrimSpace(v)] = i
	}
	for _, v := range columns {
		if _, ok := idx[v]; !ok {
			return nil, fmt.Errorf("missing column %q", v)
		}
	}

	res := register.New()
	var skipped int
	for {
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		get := func(col string) string {
			i := idx[col]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		id := get("playerID")
		year, err := strconv.Atoi(get("yearID"))
		if id == "" || err != nil {
			skipped++
			continue
		}
		res.Add(id, year, register.Line{
			G:      count(get("G")),
			GS:     count(get("GS")),
			SV:     count(get("SV")),
			IPouts: count(get("IPouts")),
			BFP:    count(get("BFP")),
		})
	}
	if skipped > 0 {
		slog.Warn("Register rows skipped", "rows", humanize.Comma(int64(skipped)))
	}
	return res, nil
}

func count(s string) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}
