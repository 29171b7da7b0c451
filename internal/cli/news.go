package cli

import (
	"github.com/spf13/cobra"
)

func newNewsCmd() *cobra.Command {
	var sources []string
	cmd := &cobra.Command{
		Use:   "news",
		Short: "Show popular tennis headlines from the news proxy",
		RunE: func(cmd *cobra.Command, args []string) error {
			feed, err := session.News.TennisNews(cmd.Context(), sources)
			if err != nil {
				return err
			}
			output(cmd).Print(feed)
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&sources, "source", "s", nil, "Limit to source ids (repeatable or comma separated)")
	return cmd
}

func newSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List the news sources available for filtering",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session.News.Sources(cmd.Context())
			if err != nil {
				return err
			}
			output(cmd).Print(s)
			return nil
		},
	}
}
