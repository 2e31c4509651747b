package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"diary/internal/infrastructure/broker"
	"diary/internal/infrastructure/database"
	"diary/internal/infrastructure/minio"
	"diary/internal/infrastructure/token"
)

const (
	defaultMaxUploadSize = 5 << 20
	defaultBodyLimit     = "10M"
	defaultRateLimit     = 20
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	Default         DefaultConfig          `yaml:"default"`
	Diary           DiaryConfig            `yaml:"diary"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOUploader   minio.UploaderConfig   `yaml:"minio_uploader"`
	MinIORemover    minio.RemoverConfig    `yaml:"minio_remover"`
	MinIOReader     minio.ReaderConfig     `yaml:"minio_reader"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	ReceiverConfig  broker.ReceiverConfig  `yaml:"receiver_config"`
	Token           token.Config           `yaml:"token"`
	Logger          logger.Config          `yaml:"logger"`
}

type DefaultConfig struct {
	Address   string `yaml:"address"`
	BodyLimit string `yaml:"body_limit"`
	RateLimit int    `yaml:"rate_limit"`
}

type DiaryConfig struct {
	MaxUploadSize int64 `yaml:"max_upload_size"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")
	config.Token.Secret = os.Getenv("AUTH_JWT_SECRET")

	config.setDefaults()

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

func (c *Config) setDefaults() {
	if c.Diary.MaxUploadSize <= 0 {
		c.Diary.MaxUploadSize = defaultMaxUploadSize
	}
	if c.Default.BodyLimit == "" {
		c.Default.BodyLimit = defaultBodyLimit
	}
	if c.Default.RateLimit <= 0 {
		c.Default.RateLimit = defaultRateLimit
	}
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	required := []struct {
		name  string
		value string
	}{
		{"default.address", c.Default.Address},
		{"DATABASE_URI", c.DBConfig.URI},
		{"db_config.db_name", c.DBConfig.DBName},
		{"minio_client.endpoint", c.MinIOClient.Endpoint},
		{"minio_client.bucket", c.MinIOClient.Bucket},
		{"minio_client.public_base_url", c.MinIOClient.PublicBaseURL},
		{"BROKER_URI", c.BrokerConfig.URI},
		{"redis_broker_config.result_stream", c.BrokerConfig.ResultStream},
		{"redis_broker_config.request_stream", c.BrokerConfig.RequestStream},
		{"redis_broker_config.group_name", c.BrokerConfig.GroupName},
		{"AUTH_JWT_SECRET", c.Token.Secret},
	}

	for _, r := range required {
		if r.value == "" {
			return errors.New(r.name + " is required")
		}
	}

	return nil
}
