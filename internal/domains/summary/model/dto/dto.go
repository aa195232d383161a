package dto

type SummaryResponse struct {
	Summary    string `json:"summary"`
	Generation uint64 `json:"generation"`
	UpdatedAt  string `json:"updated_at,omitempty"`
	Enabled    bool   `json:"enabled"`
}
