package domain

import "errors"

var (
	ErrChannelNotFound         = errors.New("channel not found on source")
	ErrTranscriptCountMismatch = errors.New("transcript segment count mismatch")
	ErrJobNotFound             = errors.New("import job not found")
	ErrLocked                  = errors.New("channel import already running")
)
