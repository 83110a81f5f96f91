package attendance_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/colvahr/backoffice/internal"
	"github.com/colvahr/backoffice/internal/attendance"
	"github.com/colvahr/backoffice/internal/transport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// MockServiceAPI is a canned-response implementation of the handler's
// service contract.
type MockServiceAPI struct {
	punchResp  *attendance.PunchResponse
	punchErr   error
	active     []*attendance.ActiveEmployee
	insertResp *attendance.Event
	insertErr  error
}

func (m *MockServiceAPI) CheckInOut(ctx context.Context, pin string) (*attendance.PunchResponse, error) {
	return m.punchResp, m.punchErr
}

func (m *MockServiceAPI) ActiveEmployees(department string) ([]*attendance.ActiveEmployee, error) {
	return m.active, nil
}

func (m *MockServiceAPI) ListForEmployee(employeeID int64) ([]*attendance.Event, error) {
	return nil, nil
}

func (m *MockServiceAPI) InsertEvent(dto attendance.InsertEventDTO) (*attendance.Event, error) {
	if m.insertErr != nil {
		return nil, m.insertErr
	}
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	return m.insertResp, nil
}

func (m *MockServiceAPI) UpdateEvent(id int64, dto attendance.UpdateEventDTO) (*attendance.Event, error) {
	return nil, internal.ErrEventNotFound
}

func (m *MockServiceAPI) DeleteEvent(id int64) error {
	return internal.ErrEventNotFound
}

func (m *MockServiceAPI) NocturnalHours(employeeID int64, month string) (*attendance.NocturnalReport, error) {
	return &attendance.NocturnalReport{EmployeeID: employeeID, Month: month, Duration: "00:00:00"}, nil
}

var _ = Describe("Attendance Handler", func() {
	var (
		mockService *MockServiceAPI
		handler     *attendance.Handler
	)

	BeforeEach(func() {
		mockService = &MockServiceAPI{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		handler = attendance.NewHandler(transport.NewBaseHandler(logger), mockService)
	})

	Describe("CheckInOut", func() {
		It("should return 200 with the punch response", func() {
			mockService.punchResp = &attendance.PunchResponse{
				Message: "Welcome, Marta Vidal", Employee: "Marta Vidal", Working: true,
			}

			body, _ := json.Marshal(map[string]string{"pin_code": "1111"})
			req := httptest.NewRequest(http.MethodPost, "/clock/checkin-out", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.CheckInOut(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var resp attendance.PunchResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Working).To(BeTrue())
			Expect(resp.Message).To(ContainSubstring("Welcome"))
		})

		It("should return 404 for an unknown PIN", func() {
			mockService.punchErr = internal.ErrPinNotFound

			body, _ := json.Marshal(map[string]string{"pin_code": "9999"})
			req := httptest.NewRequest(http.MethodPost, "/clock/checkin-out", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.CheckInOut(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(rec.Body.String()).To(ContainSubstring("PIN_NOT_FOUND"))
		})

		It("should return 400 for a missing pin_code", func() {
			body, _ := json.Marshal(map[string]string{})
			req := httptest.NewRequest(http.MethodPost, "/clock/checkin-out", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.CheckInOut(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should return 400 for a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/clock/checkin-out", bytes.NewReader([]byte("{not json")))
			rec := httptest.NewRecorder()

			handler.CheckInOut(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("ActiveEmployees", func() {
		It("should return the active listing", func() {
			mockService.active = []*attendance.ActiveEmployee{
				{EmployeeID: 1, FullName: "Marta Vidal", Date: "2026-08-03", Time: "08:00:00"},
			}

			req := httptest.NewRequest(http.MethodGet, "/clock/active-employees", nil)
			rec := httptest.NewRecorder()

			handler.ActiveEmployees(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring("Marta Vidal"))
		})
	})

	Describe("InsertEvent", func() {
		It("should return 400 for an invalid date", func() {
			body, _ := json.Marshal(attendance.InsertEventDTO{
				EmployeeID: 1, Date: "bad", Time: "08:00:00", Working: true,
			})
			req := httptest.NewRequest(http.MethodPost, "/clock/editor", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.InsertEvent(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("INVALID_DATE"))
		})

		It("should return 201 on success", func() {
			mockService.insertResp = &attendance.Event{
				ID: 1, EmployeeID: 1, Date: "2026-08-03", Time: "08:00:00", Working: true,
			}

			body, _ := json.Marshal(attendance.InsertEventDTO{
				EmployeeID: 1, Date: "2026-08-03", Time: "08:00:00", Working: true,
			})
			req := httptest.NewRequest(http.MethodPost, "/clock/editor", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.InsertEvent(rec, req)

			Expect(rec.Code).To(Equal(http.StatusCreated))
		})
	})

	Describe("NocturnalHours", func() {
		It("should require employee_id and month", func() {
			req := httptest.NewRequest(http.MethodGet, "/clock/nocturnal", nil)
			rec := httptest.NewRecorder()

			handler.NocturnalHours(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should return the report when both are given", func() {
			req := httptest.NewRequest(http.MethodGet, "/clock/nocturnal?employee_id=1&month=2026-08", nil)
			rec := httptest.NewRecorder()

			handler.NocturnalHours(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring("2026-08"))
		})
	})
})
