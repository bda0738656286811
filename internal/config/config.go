package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Project        string   `env:"PROJECT"            envDefault:"Galaxy API Adoption"`
	ProjectDomain  string   `env:"PROJECT_DOMAIN"     envDefault:"galaxy-api-adoption"`
	Port           int      `env:"PORT"               envDefault:"8080"`
	Secret         string   `env:"SECRET"`
	StoreDriver    string   `env:"STORE_DRIVER"       envDefault:"json"`
	DataFile       string   `env:"DATA_FILE"`
	// 0 이하면 요청 제한 없음
	RateLimitRPS   float64  `env:"RATE_LIMIT_RPS"     envDefault:"0"`
	RateLimitBurst int      `env:"RATE_LIMIT_BURST"   envDefault:"20"`
	AllowOrigins   []string `env:"CORS_ALLOW_ORIGINS" envSeparator:","`
}

// Load는 .env 파일(있으면)을 읽은 뒤 환경 변수를 Config로 파싱한다.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("config.Load(): no .env file loaded (%v), using process environment", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return cfg, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
