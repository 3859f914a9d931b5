package transcript

// transcriptResponse is the body of a synchronous transcript request, or of
// an accepted asynchronous one when JobID is set.
type transcriptResponse struct {
	Lang    string  `json:"lang"`
	Content []chunk `json:"content"`
	JobID   string  `json:"jobId"`
}

// chunk offsets and durations are milliseconds.
type chunk struct {
	Text     string  `json:"text"`
	Offset   float64 `json:"offset"`
	Duration float64 `json:"duration"`
}

type jobResponse struct {
	Status  string  `json:"status"`
	Content []chunk `json:"content"`
	Error   string  `json:"error"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
