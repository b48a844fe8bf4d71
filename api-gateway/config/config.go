package config

import (
	"os"
	"strings"
	"time"
)

// GatewayConfig holds the main gateway configuration
type GatewayConfig struct {
	Port        string
	POSName     string
	POSServers  []string
	Timeout     time.Duration
	HealthCheck string
}

// LoadConfig loads the gateway configuration. POS_SERVICE_URLS accepts
// a comma separated list when several terminals run behind the gateway.
func LoadConfig() *GatewayConfig {
	servers := strings.Split(getEnv("POS_SERVICE_URLS", "http://localhost:8080"), ",")
	for i := range servers {
		servers[i] = strings.TrimSpace(servers[i])
	}

	return &GatewayConfig{
		Port:        getEnv("GATEWAY_PORT", "8000"),
		POSName:     "pos-service",
		POSServers:  servers,
		Timeout:     30 * time.Second,
		HealthCheck: "/health",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
