package contentplan

import "time"

// ItemStatus enum
type ItemStatus string

const (
	ItemStatusIdea      ItemStatus = "idea"
	ItemStatusDrafting  ItemStatus = "drafting"
	ItemStatusScheduled ItemStatus = "scheduled"
	ItemStatusPublished ItemStatus = "published"
)

func (s ItemStatus) Valid() bool {
	switch s {
	case ItemStatusIdea, ItemStatusDrafting, ItemStatusScheduled, ItemStatusPublished:
		return true
	}
	return false
}

// Item is one row of the monthly content-plan sheet.
type Item struct {
	ID          string
	Month       int
	Year        int
	Channel     string
	Title       string
	OwnerID     *string
	PublishDate *time.Time
	Status      ItemStatus
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
