// Package display renders the banner and the summary tables shown around
// the pipeline's log output.
package display

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/backmassage/picsort/internal/bucket"
	"github.com/backmassage/picsort/internal/config"
	"github.com/backmassage/picsort/internal/sequence"
	"github.com/backmassage/picsort/internal/term"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	subStyle    = lipgloss.NewStyle().Faint(true)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// PrintBanner prints the program banner. Plain text when colors are off.
func PrintBanner(version string) {
	if !term.Enabled() {
		fmt.Fprintf(os.Stdout, "picsort v%s — camera file organizer\n\n", version)
		return
	}
	fmt.Fprintln(os.Stdout, titleStyle.Render("picsort")+" "+subStyle.Render("v"+version+" — camera file organizer"))
	fmt.Fprintln(os.Stdout)
}

// WeekTable renders the per-week breakdown of a bucketing result: week
// index, the calendar date that week starts on, and the file count.
func WeekTable(res bucket.Result) string {
	t := newTable().Headers("WEEK", "STARTS", "FILES")
	for _, idx := range res.Indices() {
		t.Row(
			fmt.Sprintf("%02d", idx),
			res.WeekStart(idx).Format(config.DateLayout),
			strconv.Itoa(len(res.Weeks[idx])),
		)
	}
	return t.Render()
}

// MappingTable renders a rename preview: original name against the
// destination path inside dir.
func MappingTable(dir string, mapping []sequence.Rename) string {
	t := newTable().Headers("FROM", "TO")
	for _, m := range mapping {
		t.Row(m.File.Name, dir+"/"+m.NewName)
	}
	return t.Render()
}

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle })
}
