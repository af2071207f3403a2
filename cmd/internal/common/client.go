package common

import (
	"fmt"

	"github.com/caarlos0/env/v10"

	"github.com/dsh2dsh/edgar-links/client"
)

const maxProcs = 10

type Config struct {
	UA    string `env:"EDGAR_UA,notEmpty"`
	Procs int    `env:"EDGAR_PROCS" envDefault:"4"`
	Rate  int    `env:"EDGAR_RATE" envDefault:"5"`
}

func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse edgar envs: %w", err)
	}
	return cfg, nil
}

// ProcsLimit returns number of parallel workers, between 1 and 10.
func (self *Config) ProcsLimit() int {
	return min(max(self.Procs, 1), maxProcs)
}

// NewClient returns EDGAR client. All of its requests share one rate limit.
func (self *Config) NewClient() *client.Client {
	return client.New(client.WithRateLimiter(client.NewLimiter(self.Rate))).
		WithUserAgent(self.UA)
}
