package leave

import "time"

type CreateLeaveRequestRequest struct {
	EmployeeID string  `json:"employee_id"`
	Type       string  `json:"type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	HoursCount *int    `json:"hours_count,omitempty"`
	Reason     *string `json:"reason,omitempty"`
}

func (r CreateLeaveRequestRequest) Validate() error {
	if !LeaveType(r.Type).Valid() {
		return ErrInvalidLeaveType
	}
	start, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return ErrInvalidDateRange
	}
	end, err := time.Parse("2006-01-02", r.EndDate)
	if err != nil {
		return ErrInvalidDateRange
	}
	if end.Before(start) {
		return ErrInvalidDateRange
	}
	return nil
}

type UpdateLeaveRequestRequest struct {
	ID             string
	Status         *string
	ManagerComment *string
	ProcessedBy    *string
	ProcessedAt    *time.Time
}

type ProcessLeaveRequestRequest struct {
	ID      string `json:"-"`
	Comment string `json:"comment"`
}

type LeaveRequestResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	Type           string  `json:"type"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	DaysCount      int     `json:"days_count"`
	HoursCount     *int    `json:"hours_count,omitempty"`
	Reason         *string `json:"reason,omitempty"`
	Status         string  `json:"status"`
	ManagerComment *string `json:"manager_comment,omitempty"`
}
