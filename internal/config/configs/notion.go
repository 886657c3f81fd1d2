package configs

import "time"

// Notion configures access to the record store. The token is the secret of
// a Notion integration connected to the campaigns database.
type Notion struct {
	Token   string        `env:"TOKEN"`
	BaseURL string        `env:"BASE_URL" envDefault:"https://api.notion.com/v1"`
	Version string        `env:"VERSION" envDefault:"2022-06-28"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
