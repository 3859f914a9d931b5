package domain

type EventType string

const (
	EventStatus   EventType = "status"
	EventProgress EventType = "progress"
	EventComplete EventType = "complete"
	EventError    EventType = "error"
	// EventVideo carries the per-video audit outcome. It is not part of the
	// client-facing stream.
	EventVideo EventType = "video"
)

// Event is one progress notification of an import run.
type Event struct {
	Type    EventType
	Message string

	Current    int
	Total      int
	VideoTitle string

	Channel               *Channel
	VideosProcessed       int
	TranscriptsDownloaded int

	ExternalID string
	Action     LogAction
	Transcript bool
}

func StatusEvent(msg string) Event {
	return Event{Type: EventStatus, Message: msg}
}

func ProgressEvent(current, total int, title string) Event {
	return Event{Type: EventProgress, Current: current, Total: total, VideoTitle: title}
}

func ErrorEvent(err error) Event {
	return Event{Type: EventError, Message: err.Error()}
}
