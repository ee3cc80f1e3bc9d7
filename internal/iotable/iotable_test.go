package iotable_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pitchwise/tjdelta/internal/ioroster"
	"github.com/pitchwise/tjdelta/internal/iotable"
	"github.com/pitchwise/tjdelta/pkg/config"
	"github.com/pitchwise/tjdelta/pkg/enriched"
	"github.com/pitchwise/tjdelta/pkg/metric"
	"github.com/pitchwise/tjdelta/pkg/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pitchTypes = []string{"FF", "SI", "SL", "CU", "CH", "FC"}

const roster = `Name,Pos,Injury / Surgery,Injury_Year,Team
Jane Doe,Pitcher,Tommy John surgery,2018,NYY
John Roe,Pitcher,,2012,BOS
`

func writeRoster(t *testing.T) config.DataConfig {
	dir := t.TempDir()
	cfg := config.DataConfig{
		Roster: filepath.Join(dir, "roster.csv"),
		Output: filepath.Join(dir, "out", "enriched.csv"),
	}
	require.NoError(t, os.WriteFile(cfg.Roster, []byte(roster), 0644))
	return cfg
}

func TestOpenRosterThenOutput(t *testing.T) {
	set := metric.NewSet(pitchTypes)
	cfg := writeRoster(t)

	tbl, path, err := iotable.Open(cfg, set)
	require.NoError(t, err)
	assert.Equal(t, cfg.Roster, path)
	assert.NotEmpty(t, tbl.EnsureColumns())

	velo := metric.Cell{Metric: metric.Metric{Kind: metric.Velocity}, Period: period.TPlus1}
	tbl.Rows[0].Subject.TrackingID = 605400
	tbl.Rows[0].Subject.RegisterID = "doeja01"
	tbl.Merge(0, []enriched.CellValue{{Cell: velo, Value: metric.Defined(93.25)}})

	require.NoError(t, iotable.Save(cfg.Output, tbl))

	again, path, err := iotable.Open(cfg, set)
	require.NoError(t, err)
	assert.Equal(t, cfg.Output, path)
	assert.Empty(t, again.MissingColumns())
	require.Len(t, again.Rows, 2)

	jane := again.Rows[0]
	assert.Equal(t, 605400, jane.Subject.TrackingID)
	assert.Equal(t, "doeja01", jane.Subject.RegisterID)
	assert.Equal(t, 93.25, jane.Cells.Get(velo).Float)
	assert.Equal(t, "NYY", jane.Fields["Team"])
	assert.Equal(t, 1, jane.Cells.CountDefined())

	assert.Equal(t, ioroster.DefaultInjury, again.Rows[1].Subject.Injury)
	assert.Equal(t, tbl.Columns(), again.Columns())
}

func TestWrite(t *testing.T) {
	set := metric.NewSet(pitchTypes)
	tbl, _, err := ioroster.Read(strings.NewReader(roster), set)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, iotable.Write(&buf, tbl))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t,
		"Name,Pos,Injury / Surgery,Injury_Year,Team,player_id,lahman_id",
		lines[0], "metric columns are written only after they are added")
	assert.Equal(t, "Jane Doe,Pitcher,Tommy John surgery,2018,NYY,,", lines[1])

	tbl.EnsureColumns()
	buf.Reset()
	require.NoError(t, iotable.Write(&buf, tbl))
	header := strings.Split(strings.Split(buf.String(), "\n")[0], ",")
	assert.Len(t, header, 7+len(set.Cells()))
	assert.Contains(t, header, "avg_pitches_before")
	assert.Contains(t, header, "ff_pct_t_plus_4")
}

func TestOpenMissing(t *testing.T) {
	cfg := config.DataConfig{
		Roster: filepath.Join(t.TempDir(), "none.csv"),
		Output: filepath.Join(t.TempDir(), "none_out.csv"),
	}
	_, _, err := iotable.Open(cfg, metric.NewSet(pitchTypes))
	assert.Error(t, err)
}
