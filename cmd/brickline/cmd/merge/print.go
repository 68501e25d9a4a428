package merge

import (
	"fmt"
	"io"

	"github.com/agentstation/brickline"
	"github.com/agentstation/brickline/cmd/application"
	"github.com/agentstation/brickline/internal/cmd/alerts"
	"github.com/agentstation/brickline/internal/cmd/globals"
	"github.com/agentstation/brickline/internal/cmd/output"
)

func printReport(w io.Writer, app application.Application, flags *globals.MergeFlags, res *brickline.MergeResult) error {
	dest := flags.Write
	if dest == "" {
		dest = "stdout"
	}
	report := output.MergeReport{
		Output:    dest,
		Summary:   res.Summary,
		Primary:   output.NamedStatistics{Name: flags.Left, Statistics: res.PrimaryStats},
		Secondary: output.NamedStatistics{Name: flags.Right, Statistics: res.SecondaryStats},
		Merged:    output.NamedStatistics{Name: dest, Statistics: res.MergedStats},
	}

	format := output.Format(app.OutputFormat())
	formatter := output.NewFormatter(format)
	if format != output.FormatTable {
		return formatter.Format(w, report)
	}

	if flags.Write != "" {
		alert := alerts.NewSuccess("wrote " + flags.Write).WithDetails(res.Summary.String())
		if err := alerts.NewFormatWriter(w, format).WriteAlert(alert); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintln(w, res.Summary); err != nil {
		return err
	}
	return formatter.Format(w, output.MergeTable(report))
}
