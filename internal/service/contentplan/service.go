package contentplan

import (
	"context"
	"fmt"
	"time"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/contentplan"
)

type ContentPlanServiceImpl struct {
	itemRepo contentplan.ItemRepository
}

func NewContentPlanService(itemRepo contentplan.ItemRepository) contentplan.ContentPlanService {
	return &ContentPlanServiceImpl{itemRepo: itemRepo}
}

func (s *ContentPlanServiceImpl) CreateItem(ctx context.Context, req contentplan.CreateItemRequest) (contentplan.ItemResponse, error) {
	if err := req.Validate(); err != nil {
		return contentplan.ItemResponse{}, err
	}

	item := contentplan.Item{
		Month:   req.Month,
		Year:    req.Year,
		Channel: req.Channel,
		Title:   req.Title,
		OwnerID: req.OwnerID,
		Status:  contentplan.ItemStatusIdea,
		Notes:   req.Notes,
	}

	if req.PublishDate != nil {
		date, err := time.Parse("2006-01-02", *req.PublishDate)
		if err != nil {
			return contentplan.ItemResponse{}, fmt.Errorf("invalid publish date: %w", err)
		}
		item.PublishDate = &date
	}

	created, err := s.itemRepo.Create(ctx, item)
	if err != nil {
		return contentplan.ItemResponse{}, fmt.Errorf("failed to create content plan item: %w", err)
	}

	return mapItemResponse(created), nil
}

func (s *ContentPlanServiceImpl) GetPlan(ctx context.Context, month, year int) ([]contentplan.ItemResponse, error) {
	if month < 1 || month > 12 || year < 2000 {
		return nil, contentplan.ErrInvalidPeriod
	}

	items, err := s.itemRepo.GetForPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}

	result := make([]contentplan.ItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, mapItemResponse(item))
	}

	return result, nil
}

func (s *ContentPlanServiceImpl) UpdateItem(ctx context.Context, req contentplan.UpdateItemRequest) (contentplan.ItemResponse, error) {
	if err := req.Validate(); err != nil {
		return contentplan.ItemResponse{}, err
	}

	if err := s.itemRepo.Update(ctx, req); err != nil {
		return contentplan.ItemResponse{}, err
	}

	item, err := s.itemRepo.GetByID(ctx, req.ID)
	if err != nil {
		return contentplan.ItemResponse{}, err
	}

	return mapItemResponse(item), nil
}

func (s *ContentPlanServiceImpl) DeleteItem(ctx context.Context, id string) error {
	return s.itemRepo.Delete(ctx, id)
}

func mapItemResponse(i contentplan.Item) contentplan.ItemResponse {
	var publishDate *string
	if i.PublishDate != nil {
		str := i.PublishDate.Format("2006-01-02")
		publishDate = &str
	}

	return contentplan.ItemResponse{
		ID:          i.ID,
		Month:       i.Month,
		Year:        i.Year,
		Channel:     i.Channel,
		Title:       i.Title,
		OwnerID:     i.OwnerID,
		PublishDate: publishDate,
		Status:      string(i.Status),
		Notes:       i.Notes,
	}
}
