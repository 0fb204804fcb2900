package model

import (
	"encoding/json"
	"github.com/dghubble/go-twitter/twitter"
	"github.com/jchavannes/jgo/jerr"
)

// Json is a v1.1 tweet payload. Nullable fields are pointers.
type Json struct {
	ID                   int64                   `json:"id"`
	IDStr                string                  `json:"id_str"`
	CreatedAt            string                  `json:"created_at"`
	Text                 string                  `json:"text"`
	Source               string                  `json:"source"`
	Truncated            bool                    `json:"truncated"`
	InReplyToStatusID    *int64                  `json:"in_reply_to_status_id"`
	InReplyToStatusIDStr *string                 `json:"in_reply_to_status_id_str"`
	InReplyToUserID      *int64                  `json:"in_reply_to_user_id"`
	InReplyToUserIDStr   *string                 `json:"in_reply_to_user_id_str"`
	InReplyToScreenName  *string                 `json:"in_reply_to_screen_name"`
	User                 *twitter.User           `json:"user"`
	Coordinates          *twitter.Coordinates    `json:"coordinates"`
	Place                *twitter.Place          `json:"place"`
	Contributors         []Contributor           `json:"contributors"`
	RetweetedStatus      Status                  `json:"retweeted_status,omitzero"`
	RetweetCount         int                     `json:"retweet_count"`
	FavoriteCount        int                     `json:"favorite_count"`
	Entities             *Entities               `json:"entities"`
	ExtendedEntities     *twitter.ExtendedEntity `json:"extended_entities,omitempty"`
	Favorited            bool                    `json:"favorited"`
	Retweeted            bool                    `json:"retweeted"`
	PossiblySensitive    *bool                   `json:"possibly_sensitive,omitempty"`
	Lang                 string                  `json:"lang"`
}

type Contributor struct {
	ID         int64  `json:"id" yaml:"id"`
	IDStr      string `json:"id_str" yaml:"id_str"`
	ScreenName string `json:"screen_name" yaml:"screen_name"`
}

// Entities differs from twitter.Entities by carrying symbols.
type Entities struct {
	Hashtags     []twitter.HashtagEntity `json:"hashtags"`
	Symbols      []SymbolEntity          `json:"symbols"`
	UserMentions []twitter.MentionEntity `json:"user_mentions"`
	Urls         []twitter.URLEntity     `json:"urls"`
	Media        []twitter.MediaEntity   `json:"media"`
}

type SymbolEntity struct {
	Indices twitter.Indices `json:"indices"`
	Text    string          `json:"text"`
}

// Status holds an embedded tweet and whether its key appeared in the payload.
// A key present with a null value leaves Present set and Json nil.
type Status struct {
	Present bool
	Json    *Json
}

func (s Status) IsZero() bool {
	return !s.Present
}

func (s *Status) UnmarshalJSON(data []byte) error {
	s.Present = true
	if string(data) == "null" {
		s.Json = nil
		return nil
	}
	var status = new(Json)
	if err := json.Unmarshal(data, status); err != nil {
		return jerr.Get("error unmarshalling retweeted status", err)
	}
	s.Json = status
	return nil
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Json)
}
