package inspect_test

import (
	"bytes"
	"encoding/json"
	"github.com/memocash/tweetjson/cmd/inspect"
	"github.com/memocash/tweetjson/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"strings"
	"testing"
)

const fixturePath = "../../model/testdata/tweet.json"

func run(t *testing.T, stdin string, args ...string) string {
	var out bytes.Buffer
	c := inspect.GetCommand()
	c.SetArgs(args)
	c.SetOut(&out)
	c.SetIn(strings.NewReader(stdin))
	require.NoError(t, c.Execute())
	return out.String()
}

func TestLoadFile_Stdin(t *testing.T) {
	tweets, err := inspect.LoadFile(inspect.StdinPath, strings.NewReader(`  [{"id_str":"1"},{"id_str":"2"}]`))
	require.NoError(t, err)
	require.Len(t, tweets, 2)
	assert.Equal(t, "2", tweets[1].GetId())

	tweets, err = inspect.LoadFile(inspect.StdinPath, strings.NewReader(`{"id_str":"3"}`))
	require.NoError(t, err)
	require.Len(t, tweets, 1)

	_, err = inspect.LoadFile("testdata/missing.json", nil)
	assert.Error(t, err)
}

func TestHashtagsCmd(t *testing.T) {
	out := run(t, "", "hashtags", fixturePath)
	var hashtags []string
	require.NoError(t, json.Unmarshal([]byte(out), &hashtags))
	assert.Equal(t, []string{"emoji", "Twitter"}, hashtags)
}

func TestHashtagsCmdYaml(t *testing.T) {
	out := run(t, `{"entities":{"hashtags":[{"text":"a"},{"text":"b"}]}}`, "hashtags", "-o", "yaml", "-")
	var hashtags []string
	require.NoError(t, yaml.Unmarshal([]byte(out), &hashtags))
	assert.Equal(t, []string{"a", "b"}, hashtags)
}

func TestMediasCmd(t *testing.T) {
	out := run(t, "", "medias", "--format", "webm", fixturePath)
	var medias []model.Media
	require.NoError(t, json.Unmarshal([]byte(out), &medias))
	require.Len(t, medias, 4)
	assert.Equal(t, "1050118600000000002.webm", medias[2].Name)
}

func TestSummaryCmd(t *testing.T) {
	out := run(t, "", "summary", fixturePath)
	var summary inspect.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, "1050118621198921728", summary.ID)
	assert.Equal(t, "TwitterAPI", summary.Author)
	assert.True(t, summary.Reply)
	assert.False(t, summary.Retweet)
	require.NotNil(t, summary.Place)
	assert.Equal(t, "San Francisco, CA", *summary.Place)
	require.NotNil(t, summary.LocalTimestamp)
	assert.Equal(t, int64(1539202764000), *summary.LocalTimestamp)
}

func TestTextCmd(t *testing.T) {
	out := run(t, "", "text", "--link", fixturePath)
	assert.Equal(t, "To make room for more expression, we will now count all emojis as equal #emoji #Twitter $TWTR\n"+
		"http://pbs.twimg.com/media/DpOWD8tUUAApm1a.jpg\n"+
		"https://twitter.com/TwitterAPI/statuses/1050118621198921728\n", out)
}
