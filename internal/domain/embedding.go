package domain

// EmbeddingChunk is a window of consecutive transcript segments embedded as
// one vector.
type EmbeddingChunk struct {
	Index     int
	StartTime float64
	EndTime   float64
	Content   string
	Vector    []float32
}
