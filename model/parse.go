package model

import (
	"encoding/json"
	"github.com/dghubble/go-twitter/twitter"
	"github.com/jchavannes/jgo/jerr"
)

func Parse(data []byte) (*Tweet, error) {
	var tweet = new(Json)
	if err := json.Unmarshal(data, tweet); err != nil {
		return nil, jerr.Get("error unmarshalling tweet json", err)
	}
	return New(tweet), nil
}

func ParseList(data []byte) ([]*Tweet, error) {
	var tweetJsons []*Json
	if err := json.Unmarshal(data, &tweetJsons); err != nil {
		return nil, jerr.Get("error unmarshalling tweet json list", err)
	}
	var tweets = make([]*Tweet, len(tweetJsons))
	for i := range tweetJsons {
		tweets[i] = New(tweetJsons[i])
	}
	return tweets, nil
}

// FromTwitter maps a go-twitter tweet onto the payload schema. Sub-objects are
// shared with the source tweet, not copied. Zero reply ids map to null and a nil
// retweeted status maps to an absent one.
func FromTwitter(tweet *twitter.Tweet) *Tweet {
	return New(jsonFromTwitter(tweet))
}

func jsonFromTwitter(tweet *twitter.Tweet) *Json {
	var j = &Json{
		ID:               tweet.ID,
		IDStr:            tweet.IDStr,
		CreatedAt:        tweet.CreatedAt,
		Text:             tweet.Text,
		Source:           tweet.Source,
		Truncated:        tweet.Truncated,
		User:             tweet.User,
		Coordinates:      tweet.Coordinates,
		Place:            tweet.Place,
		RetweetCount:     tweet.RetweetCount,
		FavoriteCount:    tweet.FavoriteCount,
		ExtendedEntities: tweet.ExtendedEntities,
		Favorited:        tweet.Favorited,
		Retweeted:        tweet.Retweeted,
		Lang:             tweet.Lang,
	}
	if tweet.InReplyToStatusID != 0 {
		j.InReplyToStatusID = &tweet.InReplyToStatusID
		j.InReplyToStatusIDStr = &tweet.InReplyToStatusIDStr
	}
	if tweet.InReplyToUserID != 0 {
		j.InReplyToUserID = &tweet.InReplyToUserID
		j.InReplyToUserIDStr = &tweet.InReplyToUserIDStr
		j.InReplyToScreenName = &tweet.InReplyToScreenName
	}
	if tweet.PossiblySensitive {
		j.PossiblySensitive = &tweet.PossiblySensitive
	}
	if tweet.Entities != nil {
		j.Entities = &Entities{
			Hashtags:     tweet.Entities.Hashtags,
			UserMentions: tweet.Entities.UserMentions,
			Urls:         tweet.Entities.Urls,
			Media:        tweet.Entities.Media,
		}
	}
	if tweet.RetweetedStatus != nil {
		j.RetweetedStatus = Status{
			Present: true,
			Json:    jsonFromTwitter(tweet.RetweetedStatus),
		}
	}
	return j
}
