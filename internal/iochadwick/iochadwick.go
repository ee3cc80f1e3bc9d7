// Package iochadwick implements identity lookups over the Chadwick Bureau
// people register (people.csv). The register is indexed once in memory.
package iochadwick

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/gnames/gnlib"
	"github.com/pitchwise/tjdelta/pkg/sources"
)

var columns = []string{"key_mlbam", "key_bbref", "name_last", "name_first"}

// People is an in-memory people register. It is read-only after loading
// and safe for concurrent use.
type People struct {
	byName map[string][]sources.Candidate
	size   int
}

// Load reads a people.csv file.
func Load(path string) (*People, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ParseError(path, err)
	}
	defer f.Close()

	res, err := Read(f)
	if err != nil {
		return nil, ParseError(path, err)
	}
	slog.Info("People register loaded", "path", path, "people", res.size)
	return res, nil
}

// Read parses people.csv from r.
func Read(r io.Reader) (*People, error) {
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

	res := &People{byName: make(map[string][]sources.Candidate)}
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

		c := sources.Candidate{
			RegisterID: get("key_bbref"),
			NameLast:   gnlib.FixUtf8(get("name_last")),
			NameFirst:  gnlib.FixUtf8(get("name_first")),
		}
		if c.NameLast == "" {
			continue
		}
		if id, err := strconv.ParseFloat(get("key_mlbam"), 64); err == nil && id > 0 {
			c.TrackingID = int(id)
		}
		k := key(c.NameLast, c.NameFirst)
		res.byName[k] = append(res.byName[k], c)
		res.size++
	}

	// People with identifiers go first, so the first candidate is the one
	// that can be used.
	for _, v := range res.byName {
		slices.SortStableFunc(v, func(a, b sources.Candidate) int {
			return rank(a) - rank(b)
		})
	}
	return res, nil
}

func rank(c sources.Candidate) int {
	switch {
	case c.TrackingID > 0:
		return 0
	case c.RegisterID != "":
		return 1
	default:
		return 2
	}
}

// Lookup returns people with the given surname and given name, ignoring
// case and extra whitespace.
func (p *People) Lookup(
	ctx context.Context,
	last, first string,
) ([]sources.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(p.byName[key(last, first)]), nil
}

// Len returns the number of indexed people.
func (p *People) Len() int {
	return p.size
}

func key(last, first string) string {
	norm := func(s string) string {
		return strings.ToLower(strings.Join(strings.Fields(s), " "))
	}
	return norm(last) + "|" + norm(first)
}
