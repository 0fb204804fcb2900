package inspect

import (
	"fmt"
	"github.com/jchavannes/jgo/jerr"
	"github.com/memocash/tweetjson/config"
	"github.com/memocash/tweetjson/model"
	"github.com/memocash/tweetjson/render"
	"github.com/spf13/cobra"
)

func getVideoFormat(c *cobra.Command) model.VideoFormat {
	if format, _ := c.Flags().GetString(FlagFormat); format != "" {
		return model.VideoFormat(format)
	}
	return config.GetConfig().GetVideoFormat()
}

func newTextCmd() *cobra.Command {
	textCmd := &cobra.Command{
		Use:   "text",
		Short: "text <file>",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			tweets, err := LoadFile(args[0], c.InOrStdin())
			if err != nil {
				return jerr.Get("error loading tweets", err)
			}
			size, _ := c.Flags().GetInt(FlagSize)
			if size <= 0 {
				size = config.GetConfig().PostSize
			}
			if size <= 0 {
				size = render.MaxPostSize
			}
			flagLink, _ := c.Flags().GetBool(FlagLink)
			flagDate, _ := c.Flags().GetBool(FlagDate)
			videoFormat := getVideoFormat(c)
			for _, tweet := range tweets {
				text := render.FromTweet(tweet, videoFormat)
				text.FlagLink = flagLink
				text.FlagDate = flagDate
				if _, err := fmt.Fprintln(c.OutOrStdout(), text.Gen(size)); err != nil {
					return jerr.Get("error writing tweet text", err)
				}
			}
			return nil
		},
	}
	textCmd.Flags().Int(FlagSize, 0, "Max text size in bytes")
	textCmd.Flags().Bool(FlagLink, false, "Append tweet link")
	textCmd.Flags().Bool(FlagDate, false, "Append tweet date")
	textCmd.Flags().StringP(FlagFormat, "f", "", "Video format for the media line (mp4, webm, all)")
	return textCmd
}
