package inspect

import (
	"bytes"
	"encoding/json"
	"github.com/jchavannes/jgo/jerr"
	"github.com/jchavannes/jgo/jlog"
	"github.com/memocash/tweetjson/config"
	"github.com/memocash/tweetjson/model"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"io"
	"os"
)

const StdinPath = "-"

// LoadFile reads one tweet object or an array of them. StdinPath reads from r.
func LoadFile(path string, r io.Reader) ([]*model.Tweet, error) {
	var data []byte
	var err error
	if path == StdinPath {
		data, err = io.ReadAll(r)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, jerr.Getf(err, "error reading tweet file: %s", path)
	}
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		tweets, err := model.ParseList(data)
		if err != nil {
			return nil, jerr.Get("error parsing tweet list", err)
		}
		return tweets, nil
	}
	tweet, err := model.Parse(data)
	if err != nil {
		return nil, jerr.Get("error parsing tweet", err)
	}
	return []*model.Tweet{tweet}, nil
}

func Print(w io.Writer, outputFormat string, v interface{}) error {
	switch outputFormat {
	case config.OutputFormatYaml:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return jerr.Get("error encoding yaml output", err)
		}
		if err := enc.Close(); err != nil {
			return jerr.Get("error closing yaml encoder", err)
		}
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return jerr.Get("error encoding json output", err)
		}
	}
	return nil
}

// forEachTweet loads args[0] and prints fn's result for every tweet in it.
func forEachTweet(c *cobra.Command, args []string, fn func(*model.Tweet) interface{}) error {
	tweets, err := LoadFile(args[0], c.InOrStdin())
	if err != nil {
		return jerr.Get("error loading tweets", err)
	}
	cfg := config.GetConfig()
	if cfg.Verbose {
		jlog.Logf("Loaded %d tweets from %s\n", len(tweets), args[0])
	}
	outputFormat := cfg.OutputFormat
	if output, _ := c.Flags().GetString(FlagOutput); output != "" {
		outputFormat = output
	}
	for _, tweet := range tweets {
		if err := Print(c.OutOrStdout(), outputFormat, fn(tweet)); err != nil {
			return jerr.Getf(err, "error printing tweet: %s", tweet.GetId())
		}
	}
	return nil
}
