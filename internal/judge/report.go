package judge

import (
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/sempr/acedit-go/pkg/constants"
)

// CaseReport is one row of the final report.
type CaseReport struct {
	Serial   int
	Input    string
	Expected string
	Output   string
	Verdict  constants.Verdict
}

var verdictColors = map[constants.Verdict]*color.Color{
	constants.AC:  color.New(color.FgGreen, color.Bold),
	constants.WA:  color.New(color.FgRed, color.Bold),
	constants.RTE: color.New(color.FgRed, color.Bold),
	constants.TLE: color.New(color.FgYellow, color.Bold),
}

// RenderReport prints the verdict table. The produced output is shown only
// for AC and WA; for TLE and RTE it is not meaningful and rendered as N/A.
func RenderReport(w io.Writer, cases []CaseReport) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Serial No", "Input", "Expected Output", "Your Output", "Result"})
	table.SetAutoWrapText(false)
	for _, c := range cases {
		output := "N/A"
		if c.Verdict == constants.AC || c.Verdict == constants.WA {
			output = c.Output
		}
		table.Append([]string{
			strconv.Itoa(c.Serial),
			c.Input,
			c.Expected,
			output,
			verdictColors[c.Verdict].Sprint(string(c.Verdict)),
		})
	}
	table.Render()
}
