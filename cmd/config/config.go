package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	ServerAddr   string
	DatabasePath string
	JWTSecret    string
	AWSRegion    string
	S3Bucket     string
	UploadFolder string
}

// Load reads config.yaml (if present) and environment variables prefixed
// with SCROLLIT_. The JWT secret has no default and must be provided.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("cmd/config/")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("scrollit")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("database.path", "scrollit.db")
	viper.SetDefault("aws.region", "us-east-1")
	viper.SetDefault("upload.folder", "scrollit-videos")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		ServerAddr:   viper.GetString("server.addr"),
		DatabasePath: viper.GetString("database.path"),
		JWTSecret:    viper.GetString("jwt.secret"),
		AWSRegion:    viper.GetString("aws.region"),
		S3Bucket:     viper.GetString("aws.s3_bucket"),
		UploadFolder: viper.GetString("upload.folder"),
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret is not configured")
	}
	return cfg, nil
}
