package out

import "context"

// UserStore is the slot storage the signed-in user is kept in.
type UserStore interface {
	GetItem(ctx context.Context, slot string) (string, bool, error)
	SetItem(ctx context.Context, slot, value string) error
	RemoveItem(ctx context.Context, slot string) error
}
