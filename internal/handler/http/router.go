package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/opsdesk/opsdesk-backend-go/internal/handler/http/middleware"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Employee    EmployeeHandler
	KPI         KPIHandler
	Leave       LeaveHandler
	Attendance  AttendanceHandler
	Payroll     PayrollHandler
	Finance     FinanceHandler
	Problem     ProblemHandler
	Task        TaskHandler
	ContentPlan ContentPlanHandler
	Analysis    AnalysisHandler
}

func NewRouter(jwtService jwt.Service, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "opsdesk"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.ListEmployees)
			r.Get("/{id}", h.Employee.GetEmployee)

			r.Group(func(r chi.Router) {
				r.Use(middleware.ManagerOnly)
				r.Post("/", h.Employee.CreateEmployee)
				r.Put("/{id}", h.Employee.UpdateEmployee)
				r.Delete("/{id}", h.Employee.DeleteEmployee)
			})
		})

		r.Route("/kpi", func(r chi.Router) {
			r.Route("/configs", func(r chi.Router) {
				r.Post("/", h.KPI.CreateConfig)
				r.Put("/{id}", h.KPI.UpdateConfig)
				r.Delete("/{id}", h.KPI.DeleteConfig)
				r.Post("/{id}/submit", h.KPI.SubmitConfig)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/{id}/approve", h.KPI.ApproveConfig)
					r.Post("/{id}/reject", h.KPI.RejectConfig)
				})
			})

			r.Route("/records", func(r chi.Router) {
				r.Post("/", h.KPI.AddRecord)
				r.Delete("/{id}", h.KPI.DeleteRecord)
			})

			r.Route("/employees/{employeeID}", func(r chi.Router) {
				r.Get("/configs", h.KPI.ListConfigs)
				r.Get("/records", h.KPI.ListRecords)
				r.Get("/progress", h.KPI.GetProgress)
			})
		})

		r.Route("/leave", func(r chi.Router) {
			r.Post("/", h.Leave.SubmitRequest)
			r.Get("/{id}", h.Leave.GetRequest)
			r.Get("/employees/{employeeID}", h.Leave.ListRequests)

			r.Group(func(r chi.Router) {
				r.Use(middleware.ManagerOnly)
				r.Get("/pending", h.Leave.ListPending)
				r.Post("/{id}/approve", h.Leave.Approve)
				r.Post("/{id}/reject", h.Leave.Reject)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/", h.Attendance.Mark)
			r.Get("/employees/{employeeID}", h.Attendance.ListForPeriod)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.ManagerOnly)

			r.Get("/payroll/{employeeID}", h.Payroll.GetBreakdown)

			r.Route("/finance", func(r chi.Router) {
				r.Post("/deductions", h.Finance.UpsertDeduction)
				r.Post("/reviews", h.Finance.SetReview)
				r.Post("/commissions", h.Finance.AddCommissionLog)
				r.Delete("/commissions/{id}", h.Finance.DeleteCommissionLog)
				r.Get("/{employeeID}", h.Finance.GetFinancials)
				r.Delete("/{employeeID}", h.Finance.ResetPeriod)
				r.Get("/{employeeID}/commissions", h.Finance.ListCommissionLogs)
			})

			r.Post("/analysis/workforce", h.Analysis.AnalyzeWorkforce)
		})

		r.Route("/problems", func(r chi.Router) {
			r.Post("/", h.Problem.CreateLog)
			r.Get("/employees/{employeeID}", h.Problem.ListLogs)
			r.Post("/{id}/solve", h.Problem.MarkSolved)
			r.Delete("/{id}", h.Problem.DeleteLog)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", h.Task.CreateTask)
			r.Get("/", h.Task.ListTasks)
			r.Get("/{id}", h.Task.GetTask)
			r.Put("/{id}", h.Task.UpdateTask)
			r.Post("/{id}/move", h.Task.MoveTask)
			r.Delete("/{id}", h.Task.DeleteTask)
		})

		r.Route("/content-plan", func(r chi.Router) {
			r.Post("/", h.ContentPlan.CreateItem)
			r.Get("/", h.ContentPlan.GetPlan)
			r.Put("/{id}", h.ContentPlan.UpdateItem)
			r.Delete("/{id}", h.ContentPlan.DeleteItem)
		})
	})

	return r
}
