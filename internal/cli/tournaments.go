package cli

import (
	"github.com/spf13/cobra"

	"github.com/naveenspark/courtside/internal/normalize"
)

func newTournamentsCmd() *cobra.Command {
	var pf pageFlags
	cmd := &cobra.Command{
		Use:   "tournaments <level>",
		Short: "List tournaments of a level (grand-slam, masters-1000, atp-finals, atp-500, atp-250)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := levelArg(args[0])
			if err != nil {
				return err
			}
			t, err := session.Backend.TournamentsByLevel(cmd.Context(), level, pf.page, pf.perPage)
			if err != nil {
				return err
			}
			output(cmd).Print(t)
			return nil
		},
	}
	pf.register(cmd)
	return cmd
}

func newWinnersCmd() *cobra.Command {
	var pf pageFlags
	cmd := &cobra.Command{
		Use:   "winners <tournament>",
		Short: "List the champions of a tournament",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := session.Backend.TournamentWinners(cmd.Context(), normalize.Slug(args[0]), pf.page, pf.perPage)
			if err != nil {
				return err
			}
			output(cmd).Print(e)
			return nil
		},
	}
	pf.register(cmd)
	return cmd
}
