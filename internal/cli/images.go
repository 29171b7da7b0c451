package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/naveenspark/courtside/internal/wiki"
)

func newPhotoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "photo <wikidata-id|name>",
		Short: "Resolve a player photo from Wikidata or Wikimedia Commons",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			id, name := "", query
			if wiki.IsEntityID(query) {
				id, name = strings.ToUpper(query), ""
			}
			img, err := session.Images.PlayerPhoto(cmd.Context(), id, name)
			if err != nil {
				return err
			}
			output(cmd).Print(img)
			return nil
		},
	}
}

func newLogoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logo <tournament>",
		Short: "Resolve a tournament logo from Wikidata",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := session.Images.TournamentLogo(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			output(cmd).Print(img)
			return nil
		},
	}
}
