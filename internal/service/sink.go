package service

import (
	"context"

	"channel_importer/internal/domain"
)

// Sink receives the progress events of an import run.
type Sink interface {
	Emit(ctx context.Context, event domain.Event) error
}

// ChannelImporter is implemented by Importer.
type ChannelImporter interface {
	Import(ctx context.Context, req domain.ImportRequest, sink Sink) (*domain.ImportResult, error)
}

type nopSink struct{}

func (nopSink) Emit(context.Context, domain.Event) error { return nil }
