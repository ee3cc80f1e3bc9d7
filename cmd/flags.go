/*
Copyright © 2026 The tjdelta Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"github.com/pitchwise/tjdelta/pkg/config"
	"github.com/spf13/cobra"
)

// dataFlags adds flags that override file locations.
func dataFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("roster", "r", "",
		"path to the cleaned injury roster CSV")
	cmd.Flags().StringP("output", "o", "",
		"path to the enriched table CSV")
	cmd.Flags().String("register", "",
		"path to Lahman Pitching.csv")
	cmd.Flags().String("people", "",
		"path to Chadwick people register CSV")
}

// enrichFlags adds flags of enrich and fill commands.
func enrichFlags(cmd *cobra.Command) {
	dataFlags(cmd)
	cmd.Flags().IntP("jobs", "j", 0,
		"number of subjects expanded in parallel")
	cmd.Flags().Bool("no-cache", false,
		"do not use the pitch event cache")
	cmd.Flags().String("metrics", "",
		"write run metrics in Prometheus text format to this file")
}

// flagOptions converts explicitly set flags to runtime config options.
// Flags that were not set keep values from the config file and
// environment.
func flagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()

	str := func(name string, opt func(string) config.Option) {
		if f := flags.Lookup(name); f != nil && f.Changed {
			res = append(res, opt(f.Value.String()))
		}
	}
	str("roster", config.OptDataRoster)
	str("output", config.OptDataOutput)
	str("register", config.OptDataRegister)
	str("people", config.OptDataPeople)
	str("metrics", config.OptMetricsTextfile)

	if flags.Changed("jobs") {
		if i, err := flags.GetInt("jobs"); err == nil {
			res = append(res, config.OptJobsNumber(i))
		}
	}
	if flags.Changed("no-cache") {
		if b, err := flags.GetBool("no-cache"); err == nil {
			res = append(res, config.OptTrackingDisableCache(b))
		}
	}
	if flags.Changed("force") {
		if b, err := flags.GetBool("force"); err == nil {
			res = append(res, config.OptEnrichForce(b))
		}
	}
	if flags.Changed("fill") {
		if b, err := flags.GetBool("fill"); err == nil {
			res = append(res, config.OptEnrichFill(b))
		}
	}
	return res
}

func quiet(cmd *cobra.Command) bool {
	res, _ := cmd.Flags().GetBool("quiet")
	return res
}
