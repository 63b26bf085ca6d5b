package alert

import "time"

type listOutput struct {
	Body []alertResponse
}

type alertResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Type    string `json:"type" doc:"Alert category, e.g. stress, battery, connection"`
	Title   string `json:"title"`
	Message string `json:"message,omitempty"`
}

type createOutput struct {
	Body createResponse
}

type createResponse struct {
	Message string        `json:"message"`
	Alert   alertResponse `json:"alert"`
}

type markReadInput struct {
	ID int64 `path:"id" example:"1" doc:"Alert id"`
}

type markReadOutput struct {
	Body messageResponse
}

type messageResponse struct {
	Message string `json:"message"`
}
