package identity

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Identity is the pair of identifiers of a person. Any of them may be
// unset.
type Identity struct {
	// TrackingID is the MLBAM identifier, zero if unknown.
	TrackingID int `yaml:"tracking_id"`

	// RegisterID is the Lahman playerID, empty if unknown.
	RegisterID string `yaml:"register_id"`
}

// Found is true when at least one identifier is known.
func (i Identity) Found() bool {
	return i.TrackingID > 0 || i.RegisterID != ""
}

// Data holds name corrections and manual overrides.
type Data struct {
	Version int `yaml:"version"`

	// Corrections map roster spellings to spellings of the people register.
	Corrections map[string]string `yaml:"corrections"`

	// Overrides are keyed by the roster name before corrections.
	Overrides map[string]Identity `yaml:"overrides"`
}

// Parse reads identity data from YAML.
func Parse(bs []byte) (*Data, error) {
	var res Data
	if err := yaml.Unmarshal(bs, &res); err != nil {
		return nil, ParseError(err)
	}
	res.normalize()
	return &res, nil
}

func (d *Data) normalize() {
	corr := make(map[string]string, len(d.Corrections))
	for k, v := range d.Corrections {
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		corr[k] = v
	}
	d.Corrections = corr

	over := make(map[string]Identity, len(d.Overrides))
	for k, v := range d.Overrides {
		k = strings.TrimSpace(k)
		v.RegisterID = strings.TrimSpace(v.RegisterID)
		if k == "" || !v.Found() {
			continue
		}
		over[k] = v
	}
	d.Overrides = over
}
