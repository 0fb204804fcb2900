package model

type Mention struct {
	ID         string `json:"id" yaml:"id"`
	ScreenName string `json:"screen_name" yaml:"screen_name"`
	Name       string `json:"name" yaml:"name"`
}

type Url struct {
	URL        string `json:"url" yaml:"url"`
	TwitterURL string `json:"twitter_url" yaml:"twitter_url"`
}

func (t *Tweet) GetHashtags() []string {
	var hashtags = make([]string, 0, len(t.tweet.Entities.Hashtags))
	for _, hashtag := range t.tweet.Entities.Hashtags {
		hashtags = append(hashtags, hashtag.Text)
	}
	return hashtags
}

func (t *Tweet) HasHashtag(hashtag string) bool {
	for _, entity := range t.tweet.Entities.Hashtags {
		if entity.Text == hashtag {
			return true
		}
	}
	return false
}

func (t *Tweet) GetSymbols() []string {
	var symbols = make([]string, 0, len(t.tweet.Entities.Symbols))
	for _, symbol := range t.tweet.Entities.Symbols {
		symbols = append(symbols, symbol.Text)
	}
	return symbols
}

func (t *Tweet) GetMentions() []Mention {
	var mentions = make([]Mention, 0, len(t.tweet.Entities.UserMentions))
	for _, mention := range t.tweet.Entities.UserMentions {
		mentions = append(mentions, Mention{
			ID:         mention.IDStr,
			ScreenName: mention.ScreenName,
			Name:       mention.Name,
		})
	}
	return mentions
}

func (t *Tweet) GetMentionsId() []string {
	var ids = make([]string, 0, len(t.tweet.Entities.UserMentions))
	for _, mention := range t.tweet.Entities.UserMentions {
		ids = append(ids, mention.IDStr)
	}
	return ids
}

func (t *Tweet) GetMentionsScreenName() []string {
	var screenNames = make([]string, 0, len(t.tweet.Entities.UserMentions))
	for _, mention := range t.tweet.Entities.UserMentions {
		screenNames = append(screenNames, mention.ScreenName)
	}
	return screenNames
}

func (t *Tweet) GetMentionsName() []string {
	var names = make([]string, 0, len(t.tweet.Entities.UserMentions))
	for _, mention := range t.tweet.Entities.UserMentions {
		names = append(names, mention.Name)
	}
	return names
}

func (t *Tweet) GetUrls() []Url {
	var urls = make([]Url, 0, len(t.tweet.Entities.Urls))
	for _, url := range t.tweet.Entities.Urls {
		urls = append(urls, Url{
			URL:        url.ExpandedURL,
			TwitterURL: url.URL,
		})
	}
	return urls
}
