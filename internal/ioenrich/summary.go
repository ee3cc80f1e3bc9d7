package ioenrich

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/pitchwise/tjdelta/pkg/enriched"
)

func (e *Enricher) summary(rep *enriched.Report) {
	if e.quiet {
		return
	}
	if rep.NoOp {
		gn.Info(
			"All metric columns exist in the table, nothing to do.\n" +
				"Use <em>--fill</em> to retry missing values.",
		)
		return
	}

	gn.Info(`Enrichment complete
Subjects: %s, updated: %s, new columns: %d.
Missing values before: %s, after: %s, filled: %s.
Elapsed time: <em>%s</em>`,
		humanize.Comma(int64(rep.Subjects)),
		humanize.Comma(int64(rep.Updated)),
		rep.ColumnsAdded,
		humanize.Comma(int64(rep.MissingBefore)),
		humanize.Comma(int64(rep.MissingAfter)),
		humanize.Comma(int64(rep.Filled)),
		gnfmt.TimeString(rep.Duration.Seconds()),
	)

	if top := rep.TopColumns(10); len(top) > 0 {
		var sb strings.Builder
		for _, v := range top {
			fmt.Fprintf(&sb, "\n  %-28s %s", v.Column, humanize.Comma(int64(v.Count)))
		}
		gn.Info("Most filled columns:%s", sb.String())
	}

	if len(rep.Unresolved) > 0 {
		gn.Warn("%d subjects have no identifiers: %s",
			len(rep.Unresolved), names(rep.Unresolved))
	}
	if len(rep.NoData) > 0 {
		gn.Warn("%d subjects have no playoff pitch data: %s",
			len(rep.NoData), names(rep.NoData))
	}
	if rep.Cancelled {
		gn.Warn("The run was interrupted, rerun to continue.")
	}
}

func names(ss []enriched.Subject) string {
	res := make([]string, len(ss))
	for i, v := range ss {
		res[i] = v.String()
	}
	return strings.Join(res, ", ")
}
