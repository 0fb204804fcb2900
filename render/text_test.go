package render_test

import (
	"github.com/memocash/tweetjson/model"
	"github.com/memocash/tweetjson/render"
	"log"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestText_Gen(t *testing.T) {
	text := render.Text{
		Text:     "@spacesudoer @TeslaSynopsis @teslaownersSV @EvaFoxU @dvorahfr @Kristennetten @imPenny2x @JaneidyEve @SirineAti @kerrikgray That BBC reporter obviously had no idea what he was saying, but someone told him to make those false claims. \n\nThe question is who.",
		Link:     "https://twitter.com/elonmusk/status/1693470151331426631",
		FlagLink: true,
	}
	tweetText := text.Gen(render.MaxPostSize)
	log.Printf("tweetText: %s\n", tweetText)
	if len(tweetText) > render.MaxPostSize {
		t.Errorf("tweet text is too long, got: %d, expected at most: %d", len(tweetText), render.MaxPostSize)
	}
	if !strings.HasSuffix(tweetText, "...\n"+text.Link) {
		t.Errorf("tweet text missing link suffix, got: %s", tweetText)
	}
}

func TestText_GenShort(t *testing.T) {
	text := render.Text{
		Text:     "hello",
		Link:     "https://twitter.com/a/statuses/1",
		Date:     "Wed Oct 10 20:19:24 +0000 2018",
		Media:    "http://pbs.twimg.com/media/x.jpg",
		FlagDate: true,
	}
	expected := "hello\nhttp://pbs.twimg.com/media/x.jpg\nWed Oct 10 20:19:24 +0000 2018"
	if got := text.Gen(render.MaxPostSize); got != expected {
		t.Errorf("gen mismatch, got: %q, expected: %q", got, expected)
	}
}

func TestText_GenMultiByte(t *testing.T) {
	text := render.Text{
		Text: strings.Repeat("絵文字", 40),
	}
	tweetText := text.Gen(50)
	if len(tweetText) > 50 {
		t.Errorf("tweet text is too long, got: %d", len(tweetText))
	}
	if !utf8.ValidString(tweetText) {
		t.Errorf("tweet text split a rune: %q", tweetText)
	}
}

func TestFromTweet(t *testing.T) {
	tweet, err := model.Parse([]byte(`{"id_str":"5","text":"cut…","truncated":true,
		"retweeted_status":{"id_str":"4","text":"full retweet text"},
		"user":{"screen_name":"memo"},
		"created_at":"Wed Oct 10 20:19:24 +0000 2018",
		"entities":{"media":[]},
		"extended_entities":{"media":[
			{"id_str":"1","type":"video","media_url":"http://pbs.twimg.com/thumb.jpg",
			 "video_info":{"variants":[{"content_type":"video/mp4","url":"https://video.twimg.com/v.mp4"}]}}]}}`))
	if err != nil {
		t.Error(err)
		return
	}
	text := render.FromTweet(tweet, model.VideoFormatMp4)
	if text.Text != "full retweet text" {
		t.Errorf("text mismatch, got: %s, expected: %s", text.Text, "full retweet text")
	}
	if text.Link != "https://twitter.com/memo/statuses/5" {
		t.Errorf("link mismatch, got: %s", text.Link)
	}
	if text.Media != "https://video.twimg.com/v.mp4" {
		t.Errorf("media mismatch, got: %s", text.Media)
	}
	if text.Date != "Wed Oct 10 20:19:24 +0000 2018" {
		t.Errorf("date mismatch, got: %s", text.Date)
	}
}

func TestFromTweet_TruncatedWithoutRetweet(t *testing.T) {
	tweet, err := model.Parse([]byte(`{"id_str":"6","text":"a long tweet that got cut…","truncated":true,
		"user":{"screen_name":"memo"},"entities":{}}`))
	if err != nil {
		t.Error(err)
		return
	}
	text := render.FromTweet(tweet, model.VideoFormatMp4)
	if text.Text != "a long tweet that got cut…" {
		t.Errorf("text mismatch, got: %q, expected: %q", text.Text, "a long tweet that got cut…")
	}
	if got := text.Gen(render.MaxPostSize); got != "a long tweet that got cut…" {
		t.Errorf("gen mismatch, got: %q", got)
	}
}
