package config

import "time"

type Watch struct {
	Tick    time.Duration `env:"WATCH_TICK" envDefault:"1s" validate:"gt=0"`
	Refresh time.Duration `env:"WATCH_REFRESH" envDefault:"30s" validate:"gt=0"`
}

type Bot struct {
	Token  string `env:"BOT_TOKEN" json:"-"`
	ChatID int64  `env:"BOT_CHAT_ID" validate:"required_with=Token"`
	// AdminID кто может управлять ботом; по умолчанию владелец чата уведомлений.
	AdminID int64 `env:"BOT_ADMIN_ID"`
}

func (b Bot) Enabled() bool {
	return b.Token != ""
}

func (b Bot) Admin() int64 {
	if b.AdminID != 0 {
		return b.AdminID
	}
	return b.ChatID
}

// Observability пустой адрес отключает соответствующий сервер.
type Observability struct {
	MetricsAddress string `env:"METRICS_ADDRESS"`
	ProbeAddress   string `env:"PROBE_ADDRESS"`
}
