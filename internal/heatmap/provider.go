package heatmap

import (
	"context"
)

// Source abstracts where the dataset comes from (the remote JSON document, a local file).
type Source interface {
	Name() string
	Fetch(ctx context.Context) (Dataset, error)
}

// Store is the contract the in-memory snapshot store must satisfy.
type Store interface {
	Save(snapshot Snapshot)
	GetLatest() (Snapshot, error)
	Get(id string) (Snapshot, error)
	List() []Snapshot
}
