package history

import "context"

// NoopStore discards records. Used when no history path is configured.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) Append(context.Context, Record) error   { return nil }
func (n *NoopStore) List(context.Context) ([]Record, error) { return nil, nil }
func (n *NoopStore) Clear(context.Context) error            { return nil }
func (n *NoopStore) Close() error                           { return nil }
