package render

import (
	"fmt"
	"github.com/memocash/tweetjson/model"
	"unicode/utf8"
)

const (
	MaxPostSize = 217
	Ellipsis    = "..."
)

// Text is a plain-text digest of a tweet with optional trailing lines.
type Text struct {
	Text     string
	Link     string
	Date     string
	Media    string
	FlagLink bool
	FlagDate bool
}

func FromTweet(tweet *model.Tweet, videoFormat model.VideoFormat) Text {
	text, retweet := tweet.GetText(true)
	if retweet != nil {
		text = retweet.Text
	} else if tweet.IsTruncated() {
		text, _ = tweet.GetText(false)
	}
	var t = Text{
		Text: text,
		Link: tweet.GetTwitterUrl(),
		Date: tweet.GetCreatedAt(),
	}
	for _, media := range tweet.GetMedias(videoFormat) {
		if media.URL != "" {
			t.Media = media.URL
			break
		}
	}
	return t
}

// Gen joins the text and trailing lines within size bytes. The trailing block
// keeps at most half of size and the text absorbs the rest.
func (t Text) Gen(size int) string {
	tweetText := t.Text
	var appendText string
	if t.Media != "" {
		appendText += fmt.Sprintf("\n%s", t.Media)
	}
	if t.FlagLink {
		appendText += fmt.Sprintf("\n%s", t.Link)
	}
	if t.FlagDate {
		appendText += fmt.Sprintf("\n%s", t.Date)
	}
	if len(tweetText)+len(appendText) <= size {
		return tweetText + appendText
	}
	if len(appendText) > size/2 {
		appendText = truncate(appendText, size/2-len(Ellipsis)) + Ellipsis
	}
	trim := size - len(appendText) - len(Ellipsis)
	if trim > 0 && trim < len(tweetText) {
		tweetText = truncate(tweetText, trim) + Ellipsis
	}
	return tweetText + appendText
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
