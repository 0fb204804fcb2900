package cmd

import (
	"github.com/jchavannes/jgo/jerr"
	"github.com/memocash/tweetjson/cmd/inspect"
	"github.com/memocash/tweetjson/config"
	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "tweetjson",
	Short: "Read-only views over tweet JSON payloads",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := config.InitConfig(); err != nil {
			jerr.Get("error initializing config", err).Fatal()
		}
	},
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func Execute() error {
	indexCmd.AddCommand(
		inspect.GetCommand(),
	)
	if err := indexCmd.Execute(); err != nil {
		return jerr.Get("error executing tweetjson command", err)
	}
	return nil
}
