package inspect

import (
	"github.com/memocash/tweetjson/model"
	"github.com/spf13/cobra"
)

func newEntityCmd(use string, fn func(*model.Tweet) interface{}) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: use + " <file>",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return forEachTweet(c, args, fn)
		},
	}
}

func newHashtagsCmd() *cobra.Command {
	return newEntityCmd("hashtags", func(tweet *model.Tweet) interface{} {
		return tweet.GetHashtags()
	})
}

func newSymbolsCmd() *cobra.Command {
	return newEntityCmd("symbols", func(tweet *model.Tweet) interface{} {
		return tweet.GetSymbols()
	})
}

func newMentionsCmd() *cobra.Command {
	return newEntityCmd("mentions", func(tweet *model.Tweet) interface{} {
		return tweet.GetMentions()
	})
}

func newUrlsCmd() *cobra.Command {
	return newEntityCmd("urls", func(tweet *model.Tweet) interface{} {
		return tweet.GetUrls()
	})
}

func newMediasCmd() *cobra.Command {
	mediasCmd := &cobra.Command{
		Use:   "medias",
		Short: "medias <file>",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			videoFormat := getVideoFormat(c)
			return forEachTweet(c, args, func(tweet *model.Tweet) interface{} {
				return tweet.GetMedias(videoFormat)
			})
		},
	}
	mediasCmd.Flags().StringP(FlagFormat, "f", "", "Video format (mp4, webm, all)")
	return mediasCmd
}
