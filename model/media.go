package model

import (
	"github.com/dghubble/go-twitter/twitter"
	"strings"
)

type VideoFormat string

const (
	VideoFormatMp4  VideoFormat = "mp4"
	VideoFormatWebm VideoFormat = "webm"
	VideoFormatAll  VideoFormat = "all"
)

const (
	MediaTypePhoto       = "photo"
	MediaTypeVideo       = "video"
	MediaTypeAnimatedGif = "animated_gif"
)

var videoContentTypes = map[VideoFormat]string{
	VideoFormatMp4:  "video/mp4",
	VideoFormatWebm: "video/webm",
}

// Media is one attachment. URL is empty when no video variant matched the
// requested format. Variants is only set for VideoFormatAll.
type Media struct {
	ID         string                 `json:"id" yaml:"id"`
	Name       string                 `json:"name" yaml:"name"`
	URL        string                 `json:"url,omitempty" yaml:"url,omitempty"`
	Variants   []twitter.VideoVariant `json:"variants,omitempty" yaml:"variants,omitempty"`
	Poster     string                 `json:"poster" yaml:"poster"`
	TwitterURL string                 `json:"twitter_url" yaml:"twitter_url"`
	Type       string                 `json:"type" yaml:"type"`
}

// GetMedias reads extended entities, but only when entities.media is present.
// An empty format is treated as VideoFormatMp4.
func (t *Tweet) GetMedias(videoFormat VideoFormat) []Media {
	if videoFormat == "" {
		videoFormat = VideoFormatMp4
	}
	var medias = []Media{}
	if t.tweet.Entities.Media == nil || t.tweet.ExtendedEntities == nil {
		return medias
	}
	for _, entity := range t.tweet.ExtendedEntities.Media {
		switch entity.Type {
		case MediaTypePhoto:
			medias = append(medias, Media{
				ID:         entity.IDStr,
				Name:       entity.IDStr + getExtension(entity.MediaURL),
				URL:        entity.MediaURL,
				Poster:     entity.MediaURL,
				TwitterURL: entity.URL,
				Type:       entity.Type,
			})
		case MediaTypeVideo, MediaTypeAnimatedGif:
			var media = Media{
				ID:         entity.IDStr,
				Name:       entity.IDStr,
				Poster:     entity.MediaURL,
				TwitterURL: entity.URL,
				Type:       entity.Type,
			}
			if videoFormat == VideoFormatAll {
				media.Variants = entity.VideoInfo.Variants
			} else if contentType, ok := videoContentTypes[videoFormat]; ok {
				for _, variant := range entity.VideoInfo.Variants {
					if variant.ContentType == contentType {
						media.URL = variant.URL
						media.Name += "." + string(videoFormat)
						break
					}
				}
			}
			medias = append(medias, media)
		default:
			medias = append(medias, Media{
				ID:         entity.IDStr,
				Name:       entity.IDStr + getExtension(entity.MediaURL),
				URL:        entity.MediaURL,
				Poster:     "",
				TwitterURL: entity.URL,
				Type:       entity.Type,
			})
		}
	}
	return medias
}

// getExtension returns s from its last dot. Without a dot it keeps only the last byte.
func getExtension(s string) string {
	if s == "" {
		return ""
	}
	i := strings.LastIndex(s, ".")
	if i == -1 {
		return s[len(s)-1:]
	}
	return s[i:]
}
