package configs

// HTTP configures the calendar API listener.
type HTTP struct {
	Port uint16 `env:"PORT" envDefault:"8080"`
	// AllowedOrigins is the CORS allow list, comma separated. The calendar
	// page is usually served from another origin than the API.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}
