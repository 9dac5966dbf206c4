package options

import (
	"github.com/spf13/cobra"
)

// EntryOptions
type EntryOptions struct {
	Title string
	Star  bool
	Tags  []string
}

func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Entry title, taken from the first sentence when empty.")
	cmd.Flags().BoolVarP(&o.Star, "star", "s", false,
		`Star the entry. Content starting with "*" is starred too.`)
	cmd.Flags().StringSliceVar(&o.Tags, "tag", nil,
		"Tag the entry, repeat or separate with commas.")
}
