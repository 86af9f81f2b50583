package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/opsdesk/opsdesk-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate := time.Now()
	if req.HireDate != "" {
		hireDate, _ = time.Parse("2006-01-02", req.HireDate)
	}

	emp := employee.Employee{
		FullName:            req.FullName,
		Email:               req.Email,
		JobTitle:            req.JobTitle,
		BaseSalary:          req.BaseSalary,
		LeaveBalance:        req.LeaveBalance,
		IsSalesSpecialist:   req.IsSalesSpecialist,
		SalesCommissionRate: req.SalesCommissionRate,
		MonthlySalesTarget:  req.MonthlySalesTarget,
		HireDate:            hireDate,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeResponse(created), nil
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if req.BaseSalary != nil && req.BaseSalary.IsNegative() {
		return employee.EmployeeResponse{}, employee.ErrInvalidBaseSalary
	}

	if err := s.employeeRepo.Update(ctx, req.ID, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.GetEmployee(ctx, req.ID)
}

func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, mapEmployeeResponse(emp))
	}

	return result, nil
}

func mapEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:                  e.ID,
		FullName:            e.FullName,
		Email:               e.Email,
		JobTitle:            e.JobTitle,
		BaseSalary:          e.BaseSalary,
		LeaveBalance:        e.LeaveBalance,
		IsSalesSpecialist:   e.IsSalesSpecialist,
		SalesCommissionRate: e.SalesCommissionRate,
		MonthlySalesTarget:  e.MonthlySalesTarget,
		HireDate:            e.HireDate.Format("2006-01-02"),
	}
}
