package http

import (
	"log/slog"
	"os"

	"github.com/UserShri98/employee-system/internal/config"
	"github.com/UserShri98/employee-system/internal/domain/user"
	"github.com/UserShri98/employee-system/internal/handler/http/middleware"
	"github.com/UserShri98/employee-system/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Holiday    HolidayHandler
	Salary     SalaryHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "employee-system"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/profile", h.Auth.Profile)

			r.Route("/employees", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(user.RoleOwner))
					r.Get("/", h.Employee.List)
					r.Get("/leads", h.Employee.ListLeads)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(user.RoleOwner, user.RoleLead))
					r.Get("/{id}", h.Employee.Get)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/punch-in", h.Attendance.PunchIn)
				r.Post("/punch-out", h.Attendance.PunchOut)
				r.Get("/me", h.Attendance.MyAttendance)
				r.Get("/stats", h.Attendance.Stats)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(user.RoleOwner, user.RoleLead))
					r.Get("/", h.Attendance.List)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Apply)
				r.Get("/me", h.Leave.MyLeaves)
				r.Get("/stats", h.Leave.Stats)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(user.RoleLead))
					r.Get("/team", h.Leave.TeamLeaves)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(user.RoleOwner))
					r.Get("/all", h.Leave.AllLeaves)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(user.RoleOwner, user.RoleLead))
					r.Patch("/{id}", h.Leave.UpdateStatus)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Holiday.List)
				r.Get("/{id}", h.Holiday.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(user.RoleOwner))
					r.Post("/", h.Holiday.Create)
					r.Put("/{id}", h.Holiday.Update)
					r.Delete("/{id}", h.Holiday.Delete)
				})
			})

			r.Route("/salary", func(r chi.Router) {
				r.Get("/me", h.Salary.MySalaries)
				r.Get("/stats", h.Salary.Stats)
				// Numeric-constrained so the pattern can share the segment
				// with the record-id route below.
				r.Get("/{month:[0-9]+}/{year:[0-9]+}", h.Salary.Calculate)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(user.RoleOwner))
					r.Get("/all", h.Salary.ListAll)
					r.Put("/{id}", h.Salary.UpdateStatus)
				})
			})
		})
	})

	return r
}
