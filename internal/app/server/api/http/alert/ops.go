package alert

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "alerts-list",
		Method:      http.MethodGet,
		Path:        "/api/alerts",
		Summary:     "Alerts for the caregiver, newest first",
		Tags:        []string{"alerts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "alerts-create",
		Method:        http.MethodPost,
		Path:          "/api/alerts",
		Summary:       "Create an alert",
		Tags:          []string{"alerts"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) markReadOp() huma.Operation {
	return huma.Operation{
		OperationID: "alerts-mark-read",
		Method:      http.MethodPut,
		Path:        "/api/alerts/{id}/read",
		Summary:     "Mark an alert as read",
		Tags:        []string{"alerts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
