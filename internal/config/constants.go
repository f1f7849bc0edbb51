package config

import "time"

// Database connection pool settings
const (
	DBMaxOpenConns    = 25
	DBMaxIdleConns    = 5
	DBConnMaxLifetime = 5 * time.Minute
)

// HTTP server timeouts
const (
	ServerRequestTimeout  = 60 * time.Second
	ServerReadTimeout     = 15 * time.Second
	ServerIdleTimeout     = 120 * time.Second
	ServerShutdownTimeout = 30 * time.Second
)

// Connection ping timeouts for startup checks
const (
	DBPingTimeout    = 5 * time.Second
	MongoPingTimeout = 10 * time.Second
)

// Outbound collaborator call timeouts
const (
	TelegramCallTimeout = 30 * time.Second
	FlightSearchTimeout = 60 * time.Second
)

// Background job intervals
const CleanupJobInterval = 5 * time.Minute

// Airport resolution cache lifetime (redis)
const AirportCacheTTL = 24 * time.Hour
