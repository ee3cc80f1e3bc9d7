package iosavant

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pitchwise/tjdelta/pkg/sources"
)

const (
	colGameID    = "game_pk"
	colGameDate  = "game_date"
	colGameType  = "game_type"
	colPitchType = "pitch_type"
	colInning    = "inning"
	colSpeed     = "release_speed"
	colSpin      = "release_spin_rate"
)

// Parse reads statcast search CSV. An empty body means no pitches. Rows
// without a game id are skipped; other missing fields leave the
// corresponding PitchEvent fields unset.
func Parse(r io.Reader) ([]sources.PitchEvent, error) {
	rd := csv.NewReader(skipBOM(r))
	rd.FieldsPerRecord = -1
	rd.LazyQuotes = true
	rd.ReuseRecord = true

	header, err := rd.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	idx := make(map[string]int, len(header))
	for i, v := range header {
		idx[strings.TrimSpace(v)] = i
	}
	for _, v := range []string{colGameID, colGameType} {
		if _, ok := idx[v]; !ok {
			return nil, fmt.Errorf("missing column %q", v)
		}
	}

	var res []sources.PitchEvent
	for {
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		get := func(col string) string {
			i, ok := idx[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		gameID, err := strconv.ParseInt(get(colGameID), 10, 64)
		if err != nil {
			continue
		}
		ev := sources.PitchEvent{
			GameID:    gameID,
			GameType:  get(colGameType),
			PitchType: get(colPitchType),
		}
		if d, err := time.Parse(time.DateOnly, get(colGameDate)); err == nil {
			ev.GameDate = d
		}
		if inn, ok := number(get(colInning)); ok && inn > 0 {
			ev.Inning = int(inn)
		}
		ev.Speed, ev.HasSpeed = number(get(colSpeed))
		ev.Spin, ev.HasSpin = number(get(colSpin))
		res = append(res, ev)
	}
	return res, nil
}

func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(3); err == nil && bytes.Equal(b, bom) {
		_, _ = br.Discard(3)
	}
	return br
}

var bom = []byte{0xEF, 0xBB, 0xBF}

func number(s string) (float64, bool) {
	switch strings.ToLower(s) {
	case "", "null", "nan", "na":
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// looksLikeHTML detects error pages served with status 200.
func looksLikeHTML(body []byte) bool {
	b := bytes.TrimSpace(body)
	if len(b) > 64 {
		b = b[:64]
	}
	b = bytes.ToLower(b)
	return bytes.HasPrefix(b, []byte("<!doctype")) ||
		bytes.HasPrefix(b, []byte("<html"))
}
