package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/naveenspark/courtside/internal/normalize"
	"github.com/naveenspark/courtside/pkg/domain"
)

type pageFlags struct {
	page    int
	perPage int
}

func (p *pageFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.page, "page", 1, "Page number")
	cmd.Flags().IntVar(&p.perPage, "per-page", 20, "Results per page")
}

func newPlayersCmd() *cobra.Command {
	var pf pageFlags
	cmd := &cobra.Command{
		Use:   "players [last-name]",
		Short: "List players, optionally filtered by last name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			last := ""
			if len(args) == 1 {
				last = args[0]
			}
			page, err := session.Backend.ListPlayers(cmd.Context(), pf.page, pf.perPage, last)
			if err != nil {
				return err
			}
			output(cmd).Print(page)
			return nil
		},
	}
	pf.register(cmd)
	return cmd
}

func newPlayerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "player <id>",
		Short: "Show a player's profile and career statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := session.Backend.GetPlayer(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			output(cmd).Print(p)
			return nil
		},
	}
}

// levelArg validates and slugifies a tournament level argument.
func levelArg(arg string) (string, error) {
	level := normalize.Slug(arg)
	if !slices.Contains(domain.Levels, level) {
		return "", fmt.Errorf("unknown level %q (want one of %v)", arg, domain.Levels)
	}
	return level, nil
}

func newTitlesCmd() *cobra.Command {
	var pf pageFlags
	cmd := &cobra.Command{
		Use:   "titles <level>",
		Short: "Rank players by titles won at a tournament level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := levelArg(args[0])
			if err != nil {
				return err
			}
			h, err := session.Backend.TitlesByLevel(cmd.Context(), level, pf.page, pf.perPage)
			if err != nil {
				return err
			}
			output(cmd).Print(h)
			return nil
		},
	}
	pf.register(cmd)
	return cmd
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Find player ids by full name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := session.Backend.SearchPlayerNames(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			output(cmd).Print(names)
			return nil
		},
	}
}

func newDeletePlayerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-player <id>",
		Short: "Delete a player (requires login)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(session, "/delete-player/"+args[0]); err != nil {
				return err
			}
			st, err := session.Backend.DeletePlayer(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			session.Log.Info("player deleted", "id", args[0])
			output(cmd).Print(st)
			return nil
		},
	}
}
