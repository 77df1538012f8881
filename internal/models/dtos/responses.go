package dtos

// APIResponse is the standard JSON envelope for every endpoint.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time,omitempty"`
	Data         any    `json:"data,omitempty"`
}

// PilotDTO is the wire form of a roster entry.
type PilotDTO struct {
	ID                string   `json:"id"`
	DisplayName       string   `json:"display_name"`
	CategoryIDs       []string `json:"category_ids"`
	CertificateExpiry string   `json:"certificate_expiry,omitempty"`
}

// CategoryDTO carries the resolved role tag so clients never re-derive it
// from display text.
type CategoryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Tag  string `json:"tag"`
}

// PurposeDTO is one flight purpose catalog row.
type PurposeDTO struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}
