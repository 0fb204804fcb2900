package inspect

import (
	"github.com/memocash/tweetjson/model"
	"github.com/spf13/cobra"
)

type Summary struct {
	ID             string              `json:"id" yaml:"id"`
	Url            string              `json:"url" yaml:"url"`
	Author         string              `json:"author" yaml:"author"`
	CreatedAt      string              `json:"created_at" yaml:"created_at"`
	Timestamp      *int64              `json:"timestamp" yaml:"timestamp"`
	LocalTimestamp *int64              `json:"local_timestamp" yaml:"local_timestamp"`
	Lang           string              `json:"lang" yaml:"lang"`
	Reply          bool                `json:"reply" yaml:"reply"`
	ReplyTo        model.ReplyToUser   `json:"reply_to" yaml:"reply_to"`
	Retweet        bool                `json:"retweet" yaml:"retweet"`
	Truncated      bool                `json:"truncated" yaml:"truncated"`
	Sensitive      bool                `json:"sensitive" yaml:"sensitive"`
	RetweetCount   int                 `json:"retweet_count" yaml:"retweet_count"`
	FavoriteCount  int                 `json:"favorite_count" yaml:"favorite_count"`
	Place          *string             `json:"place" yaml:"place"`
	Country        *string             `json:"country" yaml:"country"`
	Contributors   []model.Contributor `json:"contributors,omitempty" yaml:"contributors,omitempty"`
}

// GetSummary leaves timestamps nil when they cannot be parsed. Author fields
// need a user object.
func GetSummary(tweet *model.Tweet) Summary {
	var summary = Summary{
		ID:            tweet.GetId(),
		Url:           tweet.GetTwitterUrl(),
		Author:        tweet.GetUser().GetScreenName(),
		CreatedAt:     tweet.GetCreatedAt(),
		Lang:          tweet.GetLang(),
		Reply:         tweet.IsReply(),
		ReplyTo:       tweet.GetReplyToUser(),
		Retweet:       tweet.IsRetweet(),
		Truncated:     tweet.IsTruncated(),
		Sensitive:     tweet.IsSensitive(),
		RetweetCount:  tweet.GetRetweetCount(),
		FavoriteCount: tweet.GetFavoriteCount(),
		Place:         tweet.GetPlaceFullName(),
		Country:       tweet.GetCountryCode(),
		Contributors:  tweet.GetContributors(),
	}
	if timestamp, err := tweet.GetTimestamp(); err == nil {
		summary.Timestamp = &timestamp
	}
	if timestamp, err := tweet.GetLocalTimestamp(); err == nil {
		summary.LocalTimestamp = &timestamp
	}
	return summary
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "summary <file>",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return forEachTweet(c, args, func(tweet *model.Tweet) interface{} {
				return GetSummary(tweet)
			})
		},
	}
}

func newAuthorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "author",
		Short: "author <file>",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return forEachTweet(c, args, func(tweet *model.Tweet) interface{} {
				user := tweet.GetUser()
				return map[string]interface{}{
					"id":          user.GetId(),
					"name":        user.GetName(),
					"screen_name": user.GetScreenName(),
					"description": user.GetDescription(),
					"location":    user.GetLocation(),
					"url":         user.GetTwitterUrl(),
					"followers":   user.GetFollowersCount(),
					"friends":     user.GetFriendsCount(),
					"statuses":    user.GetStatusesCount(),
					"verified":    user.IsVerified(),
					"protected":   user.IsProtected(),
				}
			})
		},
	}
}
