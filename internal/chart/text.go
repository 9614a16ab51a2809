package chart

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/eugenenazirov/plate-calculator/internal/narrator"
)

// WriteText renders rows as an aligned table.
func WriteText(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WEIGHT\tACHIEVED\tPER SIDE\tMESSAGE")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			narrator.FormatWeight(row.Required),
			narrator.FormatWeight(row.Result.WeightAchieved),
			perSideLabel(row.Result),
			row.Message,
		)
	}
	return tw.Flush()
}
