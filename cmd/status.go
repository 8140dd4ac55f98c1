package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00D4FF"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EEEEEE"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E22E"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FD971F"))
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Summarize lists, farms, and scan history",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fatal(err)
		}
		store := openStore(cfg)
		defer store.Close()
		history := openHistory()
		defer history.Close()

		homeX, homeY := store.Home()
		fmt.Println(headerStyle.Render("raider status"))
		fmt.Printf("%s %s\n", labelStyle.Render("  tribe:       "),
			valueStyle.Render(fmt.Sprintf("%s (%dx)", store.Tribe(), store.ServerSpeed())))
		fmt.Printf("%s %s\n", labelStyle.Render("  home:        "),
			valueStyle.Render(fmt.Sprintf("(%d|%d)", homeX, homeY)))

		totalFarms, enabledFarms, raidsSent := 0, 0, 0
		for _, name := range store.ListNames() {
			l, _ := store.List(name)
			for _, f := range l.Farms {
				totalFarms++
				raidsSent += f.RaidsSent
				if f.Enabled {
					enabledFarms++
				}
			}
		}
		fmt.Printf("%s %s\n", labelStyle.Render("  lists:       "),
			valueStyle.Render(fmt.Sprintf("%d (active: %s)", len(store.ListNames()), store.ActiveList())))
		fmt.Printf("%s %s\n", labelStyle.Render("  farms:       "),
			valueStyle.Render(fmt.Sprintf("%d/%d enabled", enabledFarms, totalFarms)))
		fmt.Printf("%s %s\n", labelStyle.Render("  raids sent:  "),
			valueStyle.Render(fmt.Sprintf("%d", raidsSent)))
		fmt.Printf("%s %s\n", labelStyle.Render("  scan history:"),
			valueStyle.Render(fmt.Sprintf("%d coordinates", history.Count())))

		now := time.Now().Unix()
		due := 0
		var soonest int64
		for _, f := range store.EnabledFarms() {
			if !f.HasTroops() {
				continue
			}
			if f.NextRaidAt <= now {
				due++
			} else if soonest == 0 || f.NextRaidAt < soonest {
				soonest = f.NextRaidAt
			}
		}
		if due > 0 {
			fmt.Printf("%s %s\n", labelStyle.Render("  due now:     "),
				warningStyle.Render(fmt.Sprintf("%d farms", due)))
		} else if soonest > 0 {
			wait := time.Duration(soonest-now) * time.Second
			fmt.Printf("%s %s\n", labelStyle.Render("  next raid:   "),
				successStyle.Render(fmt.Sprintf("in %s", wait.Round(time.Second))))
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
