package tinvest

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the Invest API client settings. The token is usually supplied
// on the command line and only falls back to the environment.
type Config struct {
	Token   string        `env:"TINVEST_TOKEN"`
	BaseURL string        `env:"TINVEST_BASE_URL" envDefault:"https://invest-public-api.tinkoff.ru/rest"`
	Timeout time.Duration `env:"TINVEST_TIMEOUT" envDefault:"30s"`
	Debug   bool          `env:"TINVEST_DEBUG"`
}

// ConfigFromEnv reads the client settings from the environment.
func ConfigFromEnv() (Config, error) {
	return env.ParseAs[Config]()
}
