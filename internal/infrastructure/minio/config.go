package minio

type ClientConfig struct {
	AccessKey     string
	SecretKey     string
	Endpoint      string `yaml:"endpoint"`
	Secure        bool   `yaml:"secure"`
	Bucket        string `yaml:"bucket"`
	PublicBaseURL string `yaml:"public_base_url"`
	Timeout       int64  `yaml:"timeout_in_ms"`
}

type UploaderConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}

type RemoverConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}

type ReaderConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}
