package broker

type Config struct {
	URI           string
	RequestStream string `yaml:"request_stream"`
	ResultStream  string `yaml:"result_stream"`
	GroupName     string `yaml:"group_name"`
	Timeout       int64  `yaml:"timeout_in_ms"`
}

type PublisherConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
	// MaxLen trims the request stream approximately; zero keeps everything.
	MaxLen int64 `yaml:"max_len"`
}

type ReceiverConfig struct {
	Consumer  string `yaml:"consumer"`
	BlockInMs int64  `yaml:"block_in_ms"`
	BatchSize int64  `yaml:"batch_size"`
}
