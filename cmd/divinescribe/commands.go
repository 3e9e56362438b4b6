package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"divinescribe/internal/hymn"
)

func newHymnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hymns",
		Short: "List the hymn catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, h := range hymn.Catalog() {
				fmt.Fprintf(w, "%s\t%s\t%d verses\n", h.Title, h.Author, len(h.Verses))
			}
			return w.Flush()
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "divinescribe %s\n", version)
			return err
		},
	}
}
