package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pitchwise/tjdelta/internal/iotable"
	"github.com/pitchwise/tjdelta/internal/iotesting"
	"github.com/pitchwise/tjdelta/pkg/config"
	"github.com/pitchwise/tjdelta/pkg/metric"
	"github.com/pitchwise/tjdelta/pkg/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Subjects have no tracking identifiers, so no command below queries
// pitch tracking.
const (
	rosterCSV = `Name,Pos,Injury / Surgery,Injury_Year,lahman_id
John Roe,Pitcher,Tommy John surgery,2012,roejo01
Max Poe,P,,2011,
`
	peopleCSV = `key_mlbam,key_bbref,name_last,name_first
,poema01,Poe,Max
`
	registerCSV = `playerID,yearID,stint,G,GS,SV,IPouts,BFP
roejo01,2011,1,30,30,0,540,800
roejo01,2013,1,20,0,12,60,90
roejo01,2013,2,10,2,3,45,70
`
)

type files struct {
	roster, people, register, output string
}

func setup(t *testing.T) files {
	dir := t.TempDir()
	res := files{
		roster:   filepath.Join(dir, "roster.csv"),
		people:   filepath.Join(dir, "people.csv"),
		register: filepath.Join(dir, "Pitching.csv"),
		output:   filepath.Join(dir, "enriched.csv"),
	}
	require.NoError(t, os.WriteFile(res.roster, []byte(rosterCSV), 0644))
	require.NoError(t, os.WriteFile(res.people, []byte(peopleCSV), 0644))
	require.NoError(t, os.WriteFile(res.register, []byte(registerCSV), 0644))
	return res
}

func run(t *testing.T, args ...string) error {
	cmd := getRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestResolveCmd(t *testing.T) {
	home := iotesting.SetupTempHome(t)
	f := setup(t)

	err := run(t, "resolve", "-q",
		"-r", f.roster, "-o", f.output, "--people", f.people)
	require.NoError(t, err)

	_, err = os.Stat(config.ConfigFilePath(home))
	assert.NoError(t, err, "config file is created on first run")
	_, err = os.Stat(config.IdentityFilePath(home))
	assert.NoError(t, err)

	tbl, _, err := iotable.Open(
		config.DataConfig{Output: f.output},
		metric.NewSet(nil),
	)
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "roejo01", tbl.Rows[0].Subject.RegisterID)
	assert.Equal(t, "poema01", tbl.Rows[1].Subject.RegisterID)
}

func TestEnrichCmd(t *testing.T) {
	iotesting.SetupTempHome(t)
	f := setup(t)
	textfile := filepath.Join(t.TempDir(), "tjdelta.prom")

	err := run(t, "enrich", "-q", "--no-cache",
		"-r", f.roster, "-o", f.output,
		"--register", f.register, "--people", f.people,
		"--metrics", textfile,
	)
	require.NoError(t, err)

	tbl, _, err := iotable.Open(
		config.DataConfig{Output: f.output},
		metric.NewSet(cfg.Enrich.PitchTypes),
	)
	require.NoError(t, err)
	assert.Empty(t, tbl.MissingColumns())

	grid := tbl.Rows[0].Cells
	gs := func(p period.Period) metric.Value {
		return grid.Get(metric.Cell{Metric: metric.Metric{Kind: metric.GamesStarted}, Period: p})
	}
	sv := metric.Cell{Metric: metric.Metric{Kind: metric.Saves}, Period: period.TPlus1}
	assert.Equal(t, 30.0, gs(period.TMinus1).Float)
	assert.Equal(t, 2.0, gs(period.TPlus1).Float)
	assert.False(t, gs(period.TPlus2).Valid)
	assert.Equal(t, 15.0, grid.Get(sv).Float)

	prom, err := os.ReadFile(textfile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "tjdelta_enrich_subjects_total")

	before, err := os.ReadFile(f.output)
	require.NoError(t, err)

	// all columns exist now, a plain rerun changes nothing
	err = run(t, "enrich", "-q", "--no-cache",
		"-r", f.roster, "-o", f.output, "--register", f.register)
	require.NoError(t, err)
	after, err := os.ReadFile(f.output)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	err = run(t, "fill", "-q", "--no-cache",
		"-r", f.roster, "-o", f.output, "--register", f.register)
	require.NoError(t, err)
	after, err = os.ReadFile(f.output)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
