package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/naveenspark/courtside/internal/tui"
)

func newRankingsCmd() *cobra.Command {
	var pf pageFlags
	cmd := &cobra.Command{
		Use:   "rankings [year]",
		Short: "Show the end-of-year ranking (default: latest season)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year := tui.LastRankingYear
			if len(args) == 1 {
				y, err := strconv.Atoi(args[0])
				if err != nil || y < tui.FirstRankingYear || y > tui.LastRankingYear {
					return fmt.Errorf("year must be between %d and %d", tui.FirstRankingYear, tui.LastRankingYear)
				}
				year = y
			}
			r, err := session.Backend.Rankings(cmd.Context(), year, pf.page, pf.perPage)
			if err != nil {
				return err
			}
			output(cmd).Print(r)
			return nil
		},
	}
	pf.register(cmd)
	return cmd
}
