package calc

import (
	"github.com/pitchwise/tjdelta/pkg/metric"
	"github.com/pitchwise/tjdelta/pkg/sources"
)

func (c *Calculator) isPlayoff(e sources.PitchEvent) bool {
	_, ok := c.playoff[e.GameType]
	return ok
}

func (c *Calculator) isRegular(e sources.PitchEvent) bool {
	return e.GameType == c.regular
}

func filter(
	ee []sources.PitchEvent,
	keep func(sources.PitchEvent) bool,
) []sources.PitchEvent {
	var res []sources.PitchEvent
	for _, v := range ee {
		if keep(v) {
			res = append(res, v)
		}
	}
	return res
}

// pitchesPerGame is the mean number of pitches per distinct game.
func pitchesPerGame(ee []sources.PitchEvent) metric.Value {
	if len(ee) == 0 {
		return metric.Undefined()
	}
	games := make(map[int64]int)
	for _, v := range ee {
		games[v.GameID]++
	}
	return metric.Defined(float64(len(ee)) / float64(len(games)))
}

func (c *Calculator) playoffPitches(ee []sources.PitchEvent) metric.Value {
	return pitchesPerGame(filter(ee, c.isPlayoff))
}

func (c *Calculator) regularPitches(ee []sources.PitchEvent) metric.Value {
	return pitchesPerGame(filter(ee, c.isRegular))
}

// mean averages a field over events where the field is present.
func mean(
	ee []sources.PitchEvent,
	field func(sources.PitchEvent) (float64, bool),
) metric.Value {
	var sum float64
	var n int
	for _, v := range ee {
		if f, ok := field(v); ok {
			sum += f
			n++
		}
	}
	if n == 0 {
		return metric.Undefined()
	}
	return metric.Defined(sum / float64(n))
}

func speed(e sources.PitchEvent) (float64, bool) {
	return e.Speed, e.HasSpeed
}

func spin(e sources.PitchEvent) (float64, bool) {
	return e.Spin, e.HasSpin
}

func (c *Calculator) spinRate(ee []sources.PitchEvent) metric.Value {
	return mean(filter(ee, c.isRegular), spin)
}

func (c *Calculator) velocity(ee []sources.PitchEvent) metric.Value {
	return mean(filter(ee, c.isRegular), speed)
}

func (c *Calculator) playoffVelocity(ee []sources.PitchEvent) metric.Value {
	return mean(filter(ee, c.isPlayoff), speed)
}

// appearances counts distinct regular-season games and games where the
// earliest recorded inning of the pitcher is the first one. Rows without
// an inning are ignored. It returns false when no row has an inning.
func (c *Calculator) appearances(
	ee []sources.PitchEvent,
) (games, started int, ok bool) {
	firstInning := make(map[int64]int)
	for _, v := range filter(ee, c.isRegular) {
		if v.Inning <= 0 {
			continue
		}
		if inn, seen := firstInning[v.GameID]; !seen || v.Inning < inn {
			firstInning[v.GameID] = v.Inning
		}
	}
	if len(firstInning) == 0 {
		return 0, 0, false
	}
	for _, inn := range firstInning {
		if inn == 1 {
			started++
		}
	}
	return len(firstInning), started, true
}

func (c *Calculator) gamesStarted(ee []sources.PitchEvent) metric.Value {
	_, started, ok := c.appearances(ee)
	if !ok {
		return metric.Undefined()
	}
	return metric.Defined(float64(started))
}

func (c *Calculator) reliefAppearances(ee []sources.PitchEvent) metric.Value {
	games, started, ok := c.appearances(ee)
	if !ok {
		return metric.Undefined()
	}
	return metric.Defined(float64(max(games-started, 0)))
}

// pitchMix is the share of regular-season pitches of the given type in
// percent, rounded to two decimals. Absent types give 0. Shares are
// rounded one by one, so their sum may exceed 100 by up to 0.01 per type.
func (c *Calculator) pitchMix(
	ee []sources.PitchEvent,
	pitchType string,
) metric.Value {
	regular := filter(ee, c.isRegular)
	if len(regular) == 0 {
		return metric.Undefined()
	}
	var n int
	for _, v := range regular {
		if v.PitchType == pitchType {
			n++
		}
	}
	pct := float64(n) / float64(len(regular)) * 100
	return metric.Defined(metric.Round2(pct))
}
