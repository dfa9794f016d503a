package config

import "time"

type DealsAPI struct {
	URL           string        `env:"DEALS_API_URL" validate:"required,url"`
	Token         string        `env:"DEALS_API_TOKEN" json:"-"`
	Timeout       time.Duration `env:"DEALS_API_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	PageSize      int           `env:"DEALS_PAGE_SIZE" envDefault:"20" validate:"min=1,max=100"`
	MaxPages      int           `env:"DEALS_MAX_PAGES" envDefault:"5" validate:"min=1"`
	CacheTTL      time.Duration `env:"DEALS_CACHE_TTL" envDefault:"1m"`
	LogBodyMaxLen int           `env:"DEALS_LOG_BODY_MAX_LEN" envDefault:"2048" validate:"min=0"`
	// LogMaskFields дополнительные JSON-поля, скрываемые в логах запросов.
	LogMaskFields []string      `env:"DEALS_LOG_MASK_FIELDS" envSeparator:","`
}
