package main

import (
	"fmt"
	"net/http"

	"github.com/opsdesk/opsdesk-backend-go/internal/config"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/analysis"
	appHTTP "github.com/opsdesk/opsdesk-backend-go/internal/handler/http"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/database"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/gemini"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/jwt"
	"github.com/opsdesk/opsdesk-backend-go/internal/repository/postgresql"
	analysisService "github.com/opsdesk/opsdesk-backend-go/internal/service/analysis"
	attendanceService "github.com/opsdesk/opsdesk-backend-go/internal/service/attendance"
	contentPlanService "github.com/opsdesk/opsdesk-backend-go/internal/service/contentplan"
	employeeService "github.com/opsdesk/opsdesk-backend-go/internal/service/employee"
	financeService "github.com/opsdesk/opsdesk-backend-go/internal/service/finance"
	kpiService "github.com/opsdesk/opsdesk-backend-go/internal/service/kpi"
	leaveService "github.com/opsdesk/opsdesk-backend-go/internal/service/leave"
	payrollService "github.com/opsdesk/opsdesk-backend-go/internal/service/payroll"
	problemService "github.com/opsdesk/opsdesk-backend-go/internal/service/problem"
	taskService "github.com/opsdesk/opsdesk-backend-go/internal/service/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	kpiConfigRepo := postgresql.NewKPIConfigRepository(db)
	kpiRecordRepo := postgresql.NewKPIRecordRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	financialsRepo := postgresql.NewFinancialsRepository(db)
	commissionLogRepo := postgresql.NewCommissionLogRepository(db)
	problemLogRepo := postgresql.NewProblemLogRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	contentPlanRepo := postgresql.NewContentPlanRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var remoteAnalyzer analysis.Analyzer
	geminiClient := gemini.NewClient(cfg.Gemini)
	if geminiClient.Configured() {
		remoteAnalyzer = geminiClient
	}

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	kpiSvc := kpiService.NewKPIService(kpiConfigRepo, kpiRecordRepo)
	financeSvc := financeService.NewFinanceService(db, financialsRepo, commissionLogRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, employeeRepo, attendanceRepo, financeSvc)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	problemSvc := problemService.NewProblemService(problemLogRepo)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, kpiConfigRepo, kpiRecordRepo, problemLogRepo, financialsRepo, commissionLogRepo)
	taskSvc := taskService.NewTaskService(taskRepo)
	contentPlanSvc := contentPlanService.NewContentPlanService(contentPlanRepo)
	analysisSvc := analysisService.NewAnalysisService(
		remoteAnalyzer,
		analysisService.NewRuleBasedAnalyzer(),
		employeeRepo,
		kpiConfigRepo,
		kpiRecordRepo,
		problemLogRepo,
		financialsRepo,
	)

	handlers := appHTTP.Handlers{
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		KPI:         appHTTP.NewKPIHandler(kpiSvc),
		Leave:       appHTTP.NewLeaveHandler(leaveSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Payroll:     appHTTP.NewPayrollHandler(payrollSvc),
		Finance:     appHTTP.NewFinanceHandler(financeSvc),
		Problem:     appHTTP.NewProblemHandler(problemSvc),
		Task:        appHTTP.NewTaskHandler(taskSvc),
		ContentPlan: appHTTP.NewContentPlanHandler(contentPlanSvc),
		Analysis:    appHTTP.NewAnalysisHandler(analysisSvc),
	}

	router := appHTTP.NewRouter(jwtSvc, cfg.App.Env, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
