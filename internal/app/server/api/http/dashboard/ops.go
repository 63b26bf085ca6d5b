package dashboard

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) metricsOp() huma.Operation {
	return huma.Operation{
		OperationID: "dashboard-metrics",
		Method:      http.MethodGet,
		Path:        "/api/dashboard/metrics",
		Summary:     "Latest wristband metrics",
		Description: "Derives the dashboard view from the most recent reading. Placeholder values are returned while no reading exists yet.",
		Tags:        []string{"dashboard"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) ingestOp() huma.Operation {
	return huma.Operation{
		OperationID:   "dashboard-readings-create",
		Method:        http.MethodPost,
		Path:          "/api/dashboard/readings",
		Summary:       "Record a wristband reading",
		Tags:          []string{"dashboard"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}
