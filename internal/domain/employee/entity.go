package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                  string
	FullName            string
	Email               string
	JobTitle            string
	BaseSalary          decimal.Decimal
	LeaveBalance        int
	IsSalesSpecialist   bool
	SalesCommissionRate *decimal.Decimal
	MonthlySalesTarget  *decimal.Decimal
	HireDate            time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
