package contentplan

import "context"

type ContentPlanService interface {
	CreateItem(ctx context.Context, req CreateItemRequest) (ItemResponse, error)
	GetPlan(ctx context.Context, month, year int) ([]ItemResponse, error)
	UpdateItem(ctx context.Context, req UpdateItemRequest) (ItemResponse, error)
	DeleteItem(ctx context.Context, id string) error
}
