package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FullName            string           `json:"full_name"`
	Email               string           `json:"email"`
	JobTitle            string           `json:"job_title"`
	BaseSalary          decimal.Decimal  `json:"base_salary"`
	LeaveBalance        int              `json:"leave_balance"`
	IsSalesSpecialist   bool             `json:"is_sales_specialist"`
	SalesCommissionRate *decimal.Decimal `json:"sales_commission_rate,omitempty"`
	MonthlySalesTarget  *decimal.Decimal `json:"monthly_sales_target,omitempty"`
	HireDate            string           `json:"hire_date"`
}

func (r CreateEmployeeRequest) Validate() error {
	if r.BaseSalary.IsNegative() {
		return ErrInvalidBaseSalary
	}
	if r.HireDate != "" {
		hireDate, err := time.Parse("2006-01-02", r.HireDate)
		if err != nil {
			return ErrInvalidHireDate
		}
		if hireDate.After(time.Now()) {
			return ErrInvalidHireDate
		}
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                  string           `json:"-"`
	FullName            *string          `json:"full_name,omitempty"`
	Email               *string          `json:"email,omitempty"`
	JobTitle            *string          `json:"job_title,omitempty"`
	BaseSalary          *decimal.Decimal `json:"base_salary,omitempty"`
	LeaveBalance        *int             `json:"leave_balance,omitempty"`
	IsSalesSpecialist   *bool            `json:"is_sales_specialist,omitempty"`
	SalesCommissionRate *decimal.Decimal `json:"sales_commission_rate,omitempty"`
	MonthlySalesTarget  *decimal.Decimal `json:"monthly_sales_target,omitempty"`
}

type EmployeeResponse struct {
	ID                  string           `json:"id"`
	FullName            string           `json:"full_name"`
	Email               string           `json:"email"`
	JobTitle            string           `json:"job_title"`
	BaseSalary          decimal.Decimal  `json:"base_salary"`
	LeaveBalance        int              `json:"leave_balance"`
	IsSalesSpecialist   bool             `json:"is_sales_specialist"`
	SalesCommissionRate *decimal.Decimal `json:"sales_commission_rate,omitempty"`
	MonthlySalesTarget  *decimal.Decimal `json:"monthly_sales_target,omitempty"`
	HireDate            string           `json:"hire_date"`
}
