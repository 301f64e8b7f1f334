package dto

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Timestamp int64  `json:"timestamp" example:"1714557600"`
	Backend   string `json:"asr_backend" example:"iitm"`
	Stored    int    `json:"stored_transcripts" example:"3"`
}
