package rest_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/colvahr/backoffice/internal/attendance"
	"github.com/colvahr/backoffice/internal/incidence"
	"github.com/colvahr/backoffice/internal/profile"
	"github.com/colvahr/backoffice/internal/transport"
	"github.com/colvahr/backoffice/internal/transport/rest"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type stubClockService struct{}

func (s *stubClockService) CheckInOut(ctx context.Context, pin string) (*attendance.PunchResponse, error) {
	return &attendance.PunchResponse{Message: "Welcome, Marta Vidal", Employee: "Marta Vidal", Working: true}, nil
}

func (s *stubClockService) ActiveEmployees(department string) ([]*attendance.ActiveEmployee, error) {
	return nil, nil
}

func (s *stubClockService) ListForEmployee(employeeID int64) ([]*attendance.Event, error) {
	return nil, nil
}

func (s *stubClockService) InsertEvent(dto attendance.InsertEventDTO) (*attendance.Event, error) {
	return &attendance.Event{ID: 1, EmployeeID: dto.EmployeeID, Date: dto.Date, Time: dto.Time, Working: dto.Working}, nil
}

func (s *stubClockService) UpdateEvent(id int64, dto attendance.UpdateEventDTO) (*attendance.Event, error) {
	return &attendance.Event{ID: id, Date: dto.Date, Time: dto.Time, Working: dto.Working}, nil
}

func (s *stubClockService) DeleteEvent(id int64) error {
	return nil
}

func (s *stubClockService) NocturnalHours(employeeID int64, month string) (*attendance.NocturnalReport, error) {
	return &attendance.NocturnalReport{EmployeeID: employeeID, Month: month, Duration: "00:00:00"}, nil
}

type stubIncidenceService struct{}

func (s *stubIncidenceService) Report(dto incidence.ReportIncidenceDTO) (*incidence.Incidence, error) {
	return &incidence.Incidence{ID: 1, Type: dto.Type, Status: incidence.StatusOpen}, nil
}

func (s *stubIncidenceService) Resolve(id int64) (*incidence.Incidence, error) {
	return &incidence.Incidence{ID: id, Status: incidence.StatusCompleted}, nil
}

func (s *stubIncidenceService) ListOpen(filter incidence.ListOpenFilter) ([]*incidence.OpenListing, error) {
	return nil, nil
}

type stubProfileService struct{}

func (s *stubProfileService) GetContact(employeeID int64) (*profile.Contact, error) {
	return &profile.Contact{EmployeeID: employeeID}, nil
}

func (s *stubProfileService) UpdateContact(employeeID int64, dto profile.ContactDTO) (*profile.Contact, error) {
	return &profile.Contact{EmployeeID: employeeID}, nil
}

func (s *stubProfileService) GetCompensation(employeeID int64) (*profile.Compensation, error) {
	return &profile.Compensation{EmployeeID: employeeID}, nil
}

func (s *stubProfileService) UpdateCompensation(employeeID int64, dto profile.CompensationDTO) (*profile.Compensation, error) {
	return &profile.Compensation{EmployeeID: employeeID}, nil
}

func (s *stubProfileService) GetAcademic(employeeID int64) (*profile.Academic, error) {
	return &profile.Academic{EmployeeID: employeeID}, nil
}

func (s *stubProfileService) UpdateAcademic(employeeID int64, dto profile.AcademicDTO) (*profile.Academic, error) {
	return &profile.Academic{EmployeeID: employeeID}, nil
}

func (s *stubProfileService) GetAdministrative(employeeID int64) (*profile.Administrative, error) {
	return &profile.Administrative{EmployeeID: employeeID}, nil
}

func (s *stubProfileService) UpdateAdministrative(employeeID int64, dto profile.AdministrativeDTO) (*profile.Administrative, error) {
	return &profile.Administrative{EmployeeID: employeeID}, nil
}

func (s *stubProfileService) GetAssignment(employeeID int64) (*profile.Assignment, error) {
	return &profile.Assignment{EmployeeID: employeeID}, nil
}

func (s *stubProfileService) UpdateAssignment(employeeID int64, dto profile.AssignmentDTO) (*profile.Assignment, error) {
	return &profile.Assignment{EmployeeID: employeeID}, nil
}

var _ = Describe("Router", func() {
	var router *chi.Mux

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		base := transport.NewBaseHandler(logger)

		router = chi.NewRouter()
		rest.RegisterAllRoutes(router, nil, rest.Handlers{
			Attendance: attendance.NewHandler(base, &stubClockService{}),
			Incidence:  incidence.NewHandler(base, &stubIncidenceService{}),
			Profile:    profile.NewHandler(base, &stubProfileService{}),
		}, "*", logger)
	})

	serve := func(method, target, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	It("should mount the clock terminal endpoints", func() {
		rec := serve(http.MethodPost, "/api/v1/clock/checkin-out", `{"pin_code":"1111"}`)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring("Welcome"))

		rec = serve(http.MethodGet, "/api/v1/clock/active-employees", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
	})

	It("should mount the editor under /clock/editor", func() {
		rec := serve(http.MethodGet, "/api/v1/clock/editor/5", "")
		Expect(rec.Code).To(Equal(http.StatusOK))

		rec = serve(http.MethodPost, "/api/v1/clock/editor",
			`{"employee_id":1,"date":"2026-08-03","time":"08:00:00","working":true}`)
		Expect(rec.Code).To(Equal(http.StatusCreated))

		rec = serve(http.MethodPut, "/api/v1/clock/editor/9",
			`{"date":"2026-08-03","time":"09:00:00","working":false}`)
		Expect(rec.Code).To(Equal(http.StatusOK))

		rec = serve(http.MethodDelete, "/api/v1/clock/editor/9", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
	})

	It("should mount the nocturnal report at /clock/nocturnal", func() {
		rec := serve(http.MethodGet, "/api/v1/clock/nocturnal?employee_id=1&month=2026-08", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring("2026-08"))
	})

	It("should complete incidences at /incidences/complete/{id}", func() {
		rec := serve(http.MethodPut, "/api/v1/incidences/complete/7", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring("Completed"))
	})

	It("should serve profiles directly under the employee resource", func() {
		rec := serve(http.MethodGet, "/api/v1/employees/3/contact", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring(`"employee_id":3`))

		rec = serve(http.MethodPut, "/api/v1/employees/3/assignment",
			`{"weekly_hours":40,"start_date":"2026-09-01"}`)
		Expect(rec.Code).To(Equal(http.StatusOK))
	})
})
