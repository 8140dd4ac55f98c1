// Package display renders farm lists and operation summaries for the
// terminal.
package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/gabe/raider/internal/gamedata"
	"github.com/gabe/raider/internal/models"
	"github.com/gabe/raider/internal/raid"
	"github.com/gabe/raider/internal/scan"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00D4FF"))
	enabledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E22E"))
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FD971F"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// WriteFarmTable renders the farms of one list as a table.
func WriteFarmTable(w io.Writer, listName string, farms []*models.FarmTarget) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Farm list: %s", listName)))

	if len(farms) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("  no farms in the list"))
		return
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"ID", "Status", "Name", "Coords", "Raids", "Last Raid", "Next Raid"}),
	)

	enabled := 0
	now := time.Now().Unix()
	for _, f := range farms {
		status := disabledStyle.Render("off")
		if f.Enabled {
			status = enabledStyle.Render("on")
			enabled++
		}
		table.Append([]string{
			fmt.Sprintf("%d", f.ID),
			status,
			f.Name,
			fmt.Sprintf("(%d|%d)", f.X, f.Y),
			fmt.Sprintf("%d", f.RaidsSent),
			orNever(f.LastRaid),
			nextRaidLabel(f, now),
		})
	}
	table.Render()

	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("Total: %d farms | Enabled: %d", len(farms), enabled)))
}

func orNever(s string) string {
	if s == "" {
		return "never"
	}
	return s
}

func nextRaidLabel(f *models.FarmTarget, now int64) string {
	if !f.Enabled || !f.HasTroops() {
		return "-"
	}
	if f.NextRaidAt <= now {
		return "due"
	}
	return formatCountdown(f.NextRaidAt - now)
}

func formatCountdown(secs int64) string {
	d := time.Duration(secs) * time.Second
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

// WriteFarmDetails renders one farm with its troop composition.
func WriteFarmDetails(w io.Writer, tribe models.Tribe, f *models.FarmTarget) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Farm #%d: %s", f.ID, f.Name)))
	fmt.Fprintf(w, "  Coordinates: (%d|%d)\n", f.X, f.Y)
	if f.Enabled {
		fmt.Fprintf(w, "  Status:      %s\n", enabledStyle.Render("enabled"))
	} else {
		fmt.Fprintf(w, "  Status:      %s\n", disabledStyle.Render("disabled"))
	}
	fmt.Fprintf(w, "  Raids sent:  %d\n", f.RaidsSent)
	fmt.Fprintf(w, "  Last raid:   %s\n", orNever(f.LastRaid))
	if f.TravelTime > 0 {
		fmt.Fprintf(w, "  Round trip:  %s\n", formatCountdown(int64(f.TravelTime)))
	}
	if f.Notes != "" {
		fmt.Fprintf(w, "  Notes:       %s\n", f.Notes)
	}

	fmt.Fprintln(w, "  Troops:")
	if !f.HasTroops() {
		fmt.Fprintln(w, warnStyle.Render("    no troops configured"))
		return
	}
	for _, slot := range gamedata.SlotKeys() {
		if count := f.Troops[slot]; count > 0 {
			fmt.Fprintf(w, "    %-20s %d\n", gamedata.UnitName(tribe, slot), count)
		}
	}
}

// WriteScanSummary renders the result counts of a completed scan.
func WriteScanSummary(w io.Writer, stats scan.Stats) {
	fmt.Fprintln(w, headerStyle.Render("Scan complete"))
	fmt.Fprintf(w, "  Tiles scanned:       %d\n", stats.Scanned)
	fmt.Fprintf(w, "  Matches found:       %d\n", stats.Found)
	fmt.Fprintf(w, "  Farms added:         %d\n", stats.Added)
	fmt.Fprintf(w, "  Skipped (duplicate): %d\n", stats.SkippedDuplicate)
	fmt.Fprintf(w, "  Skipped (filter):    %d\n", stats.SkippedFilter)
	if stats.Errors > 0 {
		fmt.Fprintf(w, "  %s\n", warnStyle.Render(fmt.Sprintf("Errors:              %d", stats.Errors)))
	} else {
		fmt.Fprintf(w, "  Errors:              0\n")
	}
}

// WriteWaveSummary renders the result counts of a one-shot raid wave.
func WriteWaveSummary(w io.Writer, stats raid.WaveStats) {
	parts := []string{
		enabledStyle.Render(fmt.Sprintf("%d sent", stats.Sent)),
	}
	if stats.Failed > 0 {
		parts = append(parts, warnStyle.Render(fmt.Sprintf("%d failed", stats.Failed)))
	} else {
		parts = append(parts, "0 failed")
	}
	parts = append(parts, mutedStyle.Render(fmt.Sprintf("%d skipped", stats.Skipped)))
	fmt.Fprintf(w, "Raids: %s\n", strings.Join(parts, ", "))
}
