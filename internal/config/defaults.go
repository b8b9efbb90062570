package config

import "time"

// defaultConfig returns the built-in fallback values used when no other
// configuration source provides them. Deliberately contains no secrets.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "microfund",
			TokenDuration: 24 * time.Hour,
		},
		Storage: Storage{
			DB: DB{
				Driver: "pgx",
			},
		},
		Server: Server{
			HTTPAddress:            ":5000",
			RequestTimeout:         30 * time.Second,
			CORSAllowedOrigins:     []string{"http://localhost:5173", "http://127.0.0.1:5173"},
			AuthRatePerMinute:      10,
			AuthRateBurst:          10,
			LimiterCleanupInterval: 5 * time.Minute,
		},
	}
}
