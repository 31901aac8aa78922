package out

import "context"

// BlobStore is the durable slot storage the saved list lives in.
type BlobStore interface {
	GetItem(ctx context.Context, slot string) (string, bool, error)
	SetItem(ctx context.Context, slot, value string) error
	RemoveItem(ctx context.Context, slot string) error
}

// Exporter hands a rendered export to the user and reports where it went.
type Exporter interface {
	Export(ctx context.Context, filename string, payload []byte) (string, error)
}
