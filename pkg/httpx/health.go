package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (database.Database and events.EventBus both qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Resource pairs a HealthChecker with the name it reports under.
type Resource struct {
	Name    string
	Checker HealthChecker
}

// ResourceStatus is the per-resource entry in the health body.
type ResourceStatus struct {
	Name   string `json:"name"`
	Status bool   `json:"status"`
}

// HealthStatus is the health endpoint body. Status is the logical AND of
// every resource's status. Computed fresh on every request, never persisted.
type HealthStatus struct {
	Status    bool             `json:"status"`
	Name      string           `json:"name"`
	Version   string           `json:"version"`
	Resources []ResourceStatus `json:"resources"`
}

// HealthHandler returns an http.HandlerFunc that probes every registered
// resource and aggregates the results. A probe error is recorded as
// status=false, never propagated. The body is written on both outcomes:
// 200 when every resource is up, 500 otherwise.
func HealthHandler(name, version string, resources []Resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := HealthStatus{
			Status:    true,
			Name:      name,
			Version:   version,
			Resources: make([]ResourceStatus, 0, len(resources)),
		}

		for _, res := range resources {
			up := res.Checker.Ping(ctx) == nil
			if !up {
				resp.Status = false
			}
			resp.Resources = append(resp.Resources, ResourceStatus{Name: res.Name, Status: up})
		}

		status := http.StatusOK
		if !resp.Status {
			status = http.StatusInternalServerError
		}
		JSON(w, status, resp)
	}
}
