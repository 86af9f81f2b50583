package contentplan

import "context"

type ItemRepository interface {
	Create(ctx context.Context, item Item) (Item, error)
	GetByID(ctx context.Context, id string) (Item, error)
	GetForPeriod(ctx context.Context, month, year int) ([]Item, error)
	Update(ctx context.Context, req UpdateItemRequest) error
	Delete(ctx context.Context, id string) error
}
