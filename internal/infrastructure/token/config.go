package token

type Config struct {
	Secret string
	Issuer string `yaml:"issuer"`
	Leeway int64  `yaml:"leeway_in_sec"`
}
