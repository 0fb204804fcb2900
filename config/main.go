package config

import (
	"errors"
	"github.com/jchavannes/jgo/jerr"
	"github.com/memocash/tweetjson/model"
	"github.com/memocash/tweetjson/render"
	"github.com/spf13/viper"
	"strings"
)

const (
	OutputFormatJson = "json"
	OutputFormatYaml = "yaml"
	EnvPrefix        = "TWEETJSON"
)

type Config struct {
	VideoFormat  string `mapstructure:"VIDEO_FORMAT"`
	OutputFormat string `mapstructure:"OUTPUT_FORMAT"`
	PostSize     int    `mapstructure:"POST_SIZE"`
	Verbose      bool   `mapstructure:"VERBOSE"`
}

func (c Config) GetVideoFormat() model.VideoFormat {
	return model.VideoFormat(c.VideoFormat)
}

var _config Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("VIDEO_FORMAT", string(model.VideoFormatMp4))
	v.SetDefault("OUTPUT_FORMAT", OutputFormatJson)
	v.SetDefault("POST_SIZE", render.MaxPostSize)
	v.SetDefault("VERBOSE", false)
}

// InitConfig reads ./config.(yaml|json|toml) when present, then TWEETJSON_* env vars.
func InitConfig() error {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		return jerr.Get("error loading config", err)
	}
	_config = cfg
	return nil
}

func Load(v *viper.Viper) (Config, error) {
	setDefaults(v)
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, jerr.Get("error reading config", err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, jerr.Get("error unmarshalling config", err)
	}
	cfg.OutputFormat = strings.ToLower(cfg.OutputFormat)
	if cfg.OutputFormat != OutputFormatJson && cfg.OutputFormat != OutputFormatYaml {
		return Config{}, jerr.Newf("invalid output format: %s", cfg.OutputFormat)
	}
	return cfg, nil
}

func GetConfig() Config {
	return _config
}
