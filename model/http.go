package model

// ConvertRequestBody is the JSON body for POST /convert and POST /check.
type ConvertRequestBody struct {
	Score string `json:"score"`
}

// TrackSummary describes one sequenced track in a check result.
type TrackSummary struct {
	Label         string  `json:"label,omitempty"`
	TempoBPM      float64 `json:"tempo_bpm"`
	TimeSignature string  `json:"time_signature"`
	Key           string  `json:"key"`
	Instrument    int     `json:"instrument"`
	Tokens        int     `json:"tokens"`
	Events        int     `json:"events"`
	Beats         float64 `json:"beats"`
}

// CheckResponse is the summary produced by `jianpu check --json` and
// POST /check.
type CheckResponse struct {
	Tracks      []TrackSummary `json:"tracks"`
	TotalEvents uint64         `json:"total_events"`
	Warnings    []string       `json:"warnings,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
