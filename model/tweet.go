package model

import (
	"errors"
	"fmt"
	"github.com/araddon/dateparse"
	"github.com/dghubble/go-twitter/twitter"
	"github.com/jchavannes/jgo/jerr"
	"strings"
	"time"
)

const (
	UtcOffsetMarker = "+0000 "
	TwitterUrl      = "https://twitter.com"
)

var ErrInvalidTimestamp = errors.New("invalid tweet timestamp")

// Tweet is a read-only view over a tweet payload.
// Accessors for entities, media and the author URL expect those objects to exist.
type Tweet struct {
	tweet *Json
}

func New(tweet *Json) *Tweet {
	return &Tweet{tweet: tweet}
}

func (t *Tweet) GetJson() *Json {
	return t.tweet
}

func (t *Tweet) GetId() string {
	return t.tweet.IDStr
}

func (t *Tweet) GetIdNumber() int64 {
	return t.tweet.ID
}

func (t *Tweet) GetCreatedAt() string {
	return t.tweet.CreatedAt
}

// GetTimestamp drops the "+0000 " offset and reads the rest as local time.
// Dates with any other offset return ErrInvalidTimestamp.
func (t *Tweet) GetTimestamp() (int64, error) {
	if !strings.Contains(t.tweet.CreatedAt, UtcOffsetMarker) {
		return 0, ErrInvalidTimestamp
	}
	created, err := dateparse.ParseIn(strings.Replace(t.tweet.CreatedAt, UtcOffsetMarker, "", 1), time.Local)
	if err != nil {
		return 0, jerr.Get("error parsing tweet created at without offset", err)
	}
	return created.UnixMilli(), nil
}

func (t *Tweet) GetLocalTimestamp() (int64, error) {
	created, err := dateparse.ParseIn(t.tweet.CreatedAt, time.Local)
	if err != nil {
		return 0, jerr.Get("error parsing tweet created at", err)
	}
	return created.UnixMilli(), nil
}

// GetText returns the tweet text. With fulltext set, a truncated tweet returns
// its retweeted status payload in place of text.
func (t *Tweet) GetText(fulltext bool) (string, *Json) {
	if fulltext && t.tweet.Truncated {
		return "", t.tweet.RetweetedStatus.Json
	}
	return t.tweet.Text, nil
}

func (t *Tweet) GetSource() string {
	return t.tweet.Source
}

func (t *Tweet) IsTruncated() bool {
	return t.tweet.Truncated
}

// IsReply treats an absent in_reply_to_status_id the same as null, unlike IsRetweet.
func (t *Tweet) IsReply() bool {
	return t.tweet.InReplyToStatusID != nil
}

func (t *Tweet) GetReplyToId() *string {
	return t.tweet.InReplyToStatusIDStr
}

func (t *Tweet) GetReplyToUserId() *string {
	return t.tweet.InReplyToUserIDStr
}

func (t *Tweet) GetReplyToUserScreenName() *string {
	return t.tweet.InReplyToScreenName
}

type ReplyToUser struct {
	ID         *string `json:"id" yaml:"id"`
	ScreenName *string `json:"screen_name" yaml:"screen_name"`
}

func (t *Tweet) GetReplyToUser() ReplyToUser {
	return ReplyToUser{
		ID:         t.tweet.InReplyToUserIDStr,
		ScreenName: t.tweet.InReplyToScreenName,
	}
}

func (t *Tweet) GetUser() *User {
	return NewUser(t.tweet.User)
}

func (t *Tweet) GetUserJson() *twitter.User {
	return t.tweet.User
}

func (t *Tweet) GetCoordinates() *twitter.Coordinates {
	return t.tweet.Coordinates
}

func (t *Tweet) GetPlace() *twitter.Place {
	return t.tweet.Place
}

func (t *Tweet) GetPlaceName() *string {
	if t.tweet.Place != nil {
		return &t.tweet.Place.Name
	}
	return nil
}

func (t *Tweet) GetPlaceFullName() *string {
	if t.tweet.Place != nil {
		return &t.tweet.Place.FullName
	}
	return nil
}

func (t *Tweet) GetCountry() *string {
	if t.tweet.Place != nil {
		return &t.tweet.Place.Country
	}
	return nil
}

func (t *Tweet) GetCountryCode() *string {
	if t.tweet.Place != nil {
		return &t.tweet.Place.CountryCode
	}
	return nil
}

func (t *Tweet) GetContributors() []Contributor {
	return t.tweet.Contributors
}

// IsRetweet is true whenever the retweeted_status key was present, even as null.
func (t *Tweet) IsRetweet() bool {
	return t.tweet.RetweetedStatus.Present
}

func (t *Tweet) GetRetweet() *Tweet {
	return New(t.tweet.RetweetedStatus.Json)
}

func (t *Tweet) GetRetweetJson() *Json {
	return t.tweet.RetweetedStatus.Json
}

func (t *Tweet) GetRetweetCount() int {
	return t.tweet.RetweetCount
}

func (t *Tweet) GetFavoriteCount() int {
	return t.tweet.FavoriteCount
}

func (t *Tweet) IsFavoritedByMe() bool {
	return t.tweet.Favorited
}

func (t *Tweet) IsRetweetedByMe() bool {
	return t.tweet.Retweeted
}

func (t *Tweet) IsSensitive() bool {
	return t.tweet.PossiblySensitive != nil && *t.tweet.PossiblySensitive
}

func (t *Tweet) GetLang() string {
	return t.tweet.Lang
}

func (t *Tweet) IsMyLang(lang string) bool {
	return t.tweet.Lang == lang
}

func (t *Tweet) GetTwitterUrl() string {
	return fmt.Sprintf("%s/%s/statuses/%s", TwitterUrl, t.tweet.User.ScreenName, t.tweet.IDStr)
}
