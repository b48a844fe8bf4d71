package health

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/dhaba/restaurant-pos/api-gateway/config"
)

// InstanceHealth represents the health status of one POS instance
type InstanceHealth struct {
	URL       string        `json:"url"`
	Status    string        `json:"status"` // healthy, unhealthy
	Latency   time.Duration `json:"latency_ms"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// GatewayHealth represents the overall gateway health
type GatewayHealth struct {
	Gateway   string           `json:"gateway"`
	Status    string           `json:"status"` // healthy, degraded, unhealthy
	Instances []InstanceHealth `json:"instances"`
	Uptime    float64          `json:"uptime_seconds"`
}

// HealthChecker checks health of POS instances behind the gateway
type HealthChecker struct {
	config    *config.GatewayConfig
	client    *http.Client
	startTime time.Time
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(cfg *config.GatewayConfig) *HealthChecker {
	return &HealthChecker{
		config: cfg,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		startTime: time.Now(),
	}
}

// QuickCheck reports gateway liveness without probing instances
func (h *HealthChecker) QuickCheck() GatewayHealth {
	return GatewayHealth{
		Gateway: "api-gateway",
		Status:  "healthy",
		Uptime:  time.Since(h.startTime).Seconds(),
	}
}

// CheckInstance probes a single POS instance
func (h *HealthChecker) CheckInstance(ctx context.Context, baseURL string) InstanceHealth {
	start := time.Now()
	result := InstanceHealth{
		URL:       baseURL,
		Timestamp: time.Now(),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+h.config.HealthCheck, nil)
	if err != nil {
		result.Status = "unhealthy"
		result.Error = err.Error()
		return result
	}

	resp, err := h.client.Do(req)
	result.Latency = time.Since(start)
	if err != nil {
		result.Status = "unhealthy"
		result.Error = err.Error()
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		result.Status = "unhealthy"
		result.Error = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		return result
	}

	result.Status = "healthy"
	return result
}

// CheckAllInstances probes every POS instance concurrently
func (h *HealthChecker) CheckAllInstances(ctx context.Context) GatewayHealth {
	instances := make([]InstanceHealth, len(h.config.POSServers))

	var wg sync.WaitGroup
	for i, server := range h.config.POSServers {
		wg.Add(1)
		go func(i int, server string) {
			defer wg.Done()
			instances[i] = h.CheckInstance(ctx, server)
		}(i, server)
	}
	wg.Wait()

	healthy := 0
	for _, inst := range instances {
		if inst.Status == "healthy" {
			healthy++
		}
	}

	status := "healthy"
	if healthy == 0 {
		status = "unhealthy"
	} else if healthy < len(instances) {
		status = "degraded"
	}

	return GatewayHealth{
		Gateway:   "api-gateway",
		Status:    status,
		Instances: instances,
		Uptime:    time.Since(h.startTime).Seconds(),
	}
}
