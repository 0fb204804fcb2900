package inspect

import (
	"github.com/spf13/cobra"
)

const (
	FlagFormat = "format"
	FlagSize   = "size"
	FlagLink   = "link"
	FlagDate   = "date"
	FlagOutput = "output"
)

func GetCommand() *cobra.Command {
	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print accessor output for tweet json files",
	}
	inspectCmd.PersistentFlags().StringP(FlagOutput, "o", "", "Output format (json, yaml)")
	inspectCmd.AddCommand(
		newSummaryCmd(),
		newTextCmd(),
		newAuthorCmd(),
		newHashtagsCmd(),
		newSymbolsCmd(),
		newMentionsCmd(),
		newUrlsCmd(),
		newMediasCmd(),
	)
	return inspectCmd
}
