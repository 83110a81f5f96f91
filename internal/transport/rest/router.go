package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/colvahr/backoffice/internal/attendance"
	"github.com/colvahr/backoffice/internal/catalog"
	"github.com/colvahr/backoffice/internal/employee"
	"github.com/colvahr/backoffice/internal/incidence"
	"github.com/colvahr/backoffice/internal/leave"
	"github.com/colvahr/backoffice/internal/profile"
	"github.com/colvahr/backoffice/internal/transport/middleware"
	"github.com/colvahr/backoffice/internal/transport/swagger"
	"github.com/go-chi/chi"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Employee   *employee.Handler
	Attendance *attendance.Handler
	Incidence  *incidence.Handler
	Leave      *leave.Handler
	Catalog    *catalog.Handler
	Profile    *profile.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, handlers Handlers, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Time clock: the terminal only ever posts a PIN. The editor rides
		// under the same /clock prefix.
		if handlers.Attendance != nil {
			r.Route("/clock", func(cr chi.Router) {
				cr.Post("/checkin-out", handlers.Attendance.CheckInOut)
				cr.Get("/active-employees", handlers.Attendance.ActiveEmployees)
				cr.Get("/editor/{employeeID}", handlers.Attendance.ListForEmployee)
				cr.Post("/editor", handlers.Attendance.InsertEvent)
				cr.Put("/editor/{id}", handlers.Attendance.UpdateEvent)
				cr.Delete("/editor/{id}", handlers.Attendance.DeleteEvent)
				cr.Get("/nocturnal", handlers.Attendance.NocturnalHours)
			})
		}

		if handlers.Incidence != nil {
			r.Route("/incidences", func(ir chi.Router) {
				ir.Post("/", handlers.Incidence.Report)
				ir.Get("/", handlers.Incidence.ListOpen)
				ir.Put("/complete/{id}", handlers.Incidence.Complete)
			})
		}

		if handlers.Employee != nil || handlers.Profile != nil {
			r.Route("/employees", func(er chi.Router) {
				if handlers.Employee != nil {
					er.Post("/", handlers.Employee.CreateEmployee)
					er.Get("/", handlers.Employee.ListEmployees)
					er.Get("/{id}", handlers.Employee.GetEmployee)
					er.Put("/{id}", handlers.Employee.UpdateEmployee)
					er.Delete("/{id}", handlers.Employee.DeleteEmployee)
				}
				if handlers.Profile != nil {
					er.Get("/{id}/contact", handlers.Profile.GetContact)
					er.Put("/{id}/contact", handlers.Profile.UpdateContact)
					er.Get("/{id}/compensation", handlers.Profile.GetCompensation)
					er.Put("/{id}/compensation", handlers.Profile.UpdateCompensation)
					er.Get("/{id}/academic", handlers.Profile.GetAcademic)
					er.Put("/{id}/academic", handlers.Profile.UpdateAcademic)
					er.Get("/{id}/administrative", handlers.Profile.GetAdministrative)
					er.Put("/{id}/administrative", handlers.Profile.UpdateAdministrative)
					er.Get("/{id}/assignment", handlers.Profile.GetAssignment)
					er.Put("/{id}/assignment", handlers.Profile.UpdateAssignment)
				}
			})
		}

		if handlers.Leave != nil {
			r.Route("/leaves", func(lr chi.Router) {
				lr.Post("/", handlers.Leave.CreateLeave)
				lr.Get("/", handlers.Leave.ListLeaves)
				lr.Put("/{id}", handlers.Leave.UpdateLeave)
				lr.Delete("/{id}", handlers.Leave.DeleteLeave)
			})
		}

		if handlers.Catalog != nil {
			r.Route("/departments", func(dr chi.Router) {
				dr.Post("/", handlers.Catalog.CreateDepartment)
				dr.Get("/", handlers.Catalog.ListDepartments)
				dr.Put("/{id}", handlers.Catalog.UpdateDepartment)
				dr.Delete("/{id}", handlers.Catalog.DeleteDepartment)
			})
			r.Route("/jobs", func(jr chi.Router) {
				jr.Post("/", handlers.Catalog.CreateJob)
				jr.Get("/", handlers.Catalog.ListJobs)
				jr.Put("/{id}", handlers.Catalog.UpdateJob)
				jr.Delete("/{id}", handlers.Catalog.DeleteJob)
			})
		}
	})
}
