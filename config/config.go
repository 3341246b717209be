package config

import (
	"log"
	"sync"
	"time"

	"github.com/cristalhq/aconfig"
)

type Config struct {
	ListenAddr      string        `env:"LISTEN_ADDR" default:":8080"`
	GNewsAPIKey     string        `env:"GNEWS_API_KEY" required:"true"`
	GNewsBaseURL    string        `env:"GNEWS_BASE_URL" default:"https://gnews.io/api/v4"`
	NATSUrl         string        `env:"NATS_URL" default:"nats://localhost:4222"`
	DefaultCountry  string        `env:"DEFAULT_COUNTRY" default:"in"`
	PageSize        int           `env:"PAGE_SIZE" default:"50"`
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" default:"10m"`
	LoginLatency    time.Duration `env:"LOGIN_LATENCY" default:"1s"`
}

var (
	cfg  Config
	once sync.Once
)

// Get loads the configuration from the environment exactly once.
func Get() Config {
	once.Do(func() {
		loader := aconfig.LoaderFor(&cfg, aconfig.Config{
			EnvPrefix: "BNS",
			SkipFlags: true,
			SkipFiles: true,
		})
		if err := loader.Load(); err != nil {
			log.Fatalf("[ERROR] Failed to load config: %v", err)
		}
	})
	return cfg
}
