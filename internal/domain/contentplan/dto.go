package contentplan

type CreateItemRequest struct {
	Month       int     `json:"month"`
	Year        int     `json:"year"`
	Channel     string  `json:"channel"`
	Title       string  `json:"title"`
	OwnerID     *string `json:"owner_id,omitempty"`
	PublishDate *string `json:"publish_date,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

func (r CreateItemRequest) Validate() error {
	if r.Month < 1 || r.Month > 12 || r.Year < 2000 {
		return ErrInvalidPeriod
	}
	return nil
}

type UpdateItemRequest struct {
	ID          string  `json:"-"`
	Channel     *string `json:"channel,omitempty"`
	Title       *string `json:"title,omitempty"`
	OwnerID     *string `json:"owner_id,omitempty"`
	PublishDate *string `json:"publish_date,omitempty"`
	Status      *string `json:"status,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

func (r UpdateItemRequest) Validate() error {
	if r.Status != nil && !ItemStatus(*r.Status).Valid() {
		return ErrInvalidItemStatus
	}
	return nil
}

type ItemResponse struct {
	ID          string  `json:"id"`
	Month       int     `json:"month"`
	Year        int     `json:"year"`
	Channel     string  `json:"channel"`
	Title       string  `json:"title"`
	OwnerID     *string `json:"owner_id,omitempty"`
	PublishDate *string `json:"publish_date,omitempty"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
}
