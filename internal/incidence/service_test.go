package incidence_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/colvahr/backoffice/internal"
	"github.com/colvahr/backoffice/internal/core/events"
	"github.com/colvahr/backoffice/internal/employee"
	"github.com/colvahr/backoffice/internal/incidence"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestIncidenceService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Incidence Service Suite")
}

type MockRepository struct {
	incidences map[int64]*incidence.Incidence
	nextID     int64
}

func NewMockRepository() *MockRepository {
	return &MockRepository{incidences: make(map[int64]*incidence.Incidence), nextID: 1}
}

func (m *MockRepository) Create(inc *incidence.Incidence) error {
	inc.ID = m.nextID
	m.nextID++
	copied := *inc
	m.incidences[inc.ID] = &copied
	return nil
}

func (m *MockRepository) GetByID(id int64) (*incidence.Incidence, error) {
	inc, ok := m.incidences[id]
	if !ok {
		return nil, internal.ErrIncidenceNotFound
	}
	copied := *inc
	return &copied, nil
}

func (m *MockRepository) MarkCompleted(id int64, resolvedAt time.Time) error {
	inc, ok := m.incidences[id]
	if !ok {
		return internal.ErrIncidenceNotFound
	}
	inc.Status = incidence.StatusCompleted
	inc.ResolvedAt = &resolvedAt
	return nil
}

func (m *MockRepository) ListOpen(filter incidence.ListOpenFilter) ([]*incidence.OpenListing, error) {
	var listings []*incidence.OpenListing
	for _, inc := range m.incidences {
		if inc.Status != incidence.StatusOpen {
			continue
		}
		listings = append(listings, &incidence.OpenListing{
			ID:         inc.ID,
			EmployeeID: inc.EmployeeID,
			Type:       inc.Type,
			CreatedAt:  inc.CreatedAt,
		})
	}
	return listings, nil
}

type MockResolver struct {
	employees map[int64]*employee.Employee
}

func NewMockResolver() *MockResolver {
	return &MockResolver{employees: make(map[int64]*employee.Employee)}
}

func (m *MockResolver) AddEmployee(emp *employee.Employee) {
	m.employees[emp.ID] = emp
}

func (m *MockResolver) ResolveByPin(pin string) (*employee.Employee, error) {
	for _, emp := range m.employees {
		if emp.PinCode == pin {
			return emp, nil
		}
	}
	return nil, internal.ErrPinNotFound
}

func (m *MockResolver) GetEmployee(id int64) (*employee.Employee, error) {
	emp, ok := m.employees[id]
	if !ok {
		return nil, internal.ErrEmployeeNotFound
	}
	return emp, nil
}

var _ = Describe("Incidence Service", func() {
	var (
		mockRepo *MockRepository
		resolver *MockResolver
		service  *incidence.Service
		bus      *events.EventBus
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		resolver = NewMockResolver()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		bus = events.NewEventBus(logger)
		service = incidence.NewService(mockRepo, resolver, bus, logger)

		resolver.AddEmployee(&employee.Employee{ID: 1, FullName: "Marta Vidal", PinCode: "1111"})
	})

	Describe("Report", func() {
		It("should open an incidence for the PIN's employee", func() {
			inc, err := service.Report(incidence.ReportIncidenceDTO{
				PinCode: "1111", Type: "machine-failure", Description: "oven down",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(inc.EmployeeID).To(Equal(int64(1)))
			Expect(inc.Status).To(Equal(incidence.StatusOpen))
			Expect(inc.ResolvedAt).To(BeNil())
		})

		It("should reject an unknown PIN", func() {
			_, err := service.Report(incidence.ReportIncidenceDTO{
				PinCode: "9999", Type: "machine-failure",
			})
			Expect(err).To(MatchError(internal.ErrPinNotFound))
		})

		It("should require a type", func() {
			_, err := service.Report(incidence.ReportIncidenceDTO{PinCode: "1111"})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("OpenForEmployee", func() {
		It("should open an incidence for a known employee id", func() {
			id, err := service.OpenForEmployee(1, "auto-checkout >10h", "session force-closed")
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(BeNumerically(">", 0))

			inc, err := mockRepo.GetByID(id)
			Expect(err).NotTo(HaveOccurred())
			Expect(inc.Status).To(Equal(incidence.StatusOpen))
		})

		It("should refuse an unknown employee id", func() {
			_, err := service.OpenForEmployee(42, "auto-checkout >10h", "")
			Expect(err).To(MatchError(internal.ErrEmployeeNotFound))
		})
	})

	Describe("Resolve", func() {
		var opened *incidence.Incidence

		BeforeEach(func() {
			var err error
			opened, err = service.Report(incidence.ReportIncidenceDTO{
				PinCode: "1111", Type: "machine-failure",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should complete an open incidence and stamp the resolution time", func() {
			resolved, err := service.Resolve(opened.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resolved.Status).To(Equal(incidence.StatusCompleted))
			Expect(resolved.ResolvedAt).NotTo(BeNil())
		})

		It("should conflict on a second resolve", func() {
			_, err := service.Resolve(opened.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Resolve(opened.ID)
			Expect(err).To(MatchError(internal.ErrIncidenceCompleted))
		})

		It("should not move the original resolution date on a retried resolve", func() {
			first, err := service.Resolve(opened.ID)
			Expect(err).NotTo(HaveOccurred())
			stamp := *first.ResolvedAt

			_, err = service.Resolve(opened.ID)
			Expect(err).To(HaveOccurred())

			stored, err := mockRepo.GetByID(opened.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.ResolvedAt.Equal(stamp)).To(BeTrue())
		})

		It("should return not found for a missing id", func() {
			_, err := service.Resolve(999)
			Expect(err).To(MatchError(internal.ErrIncidenceNotFound))
		})
	})

	Describe("ListOpen", func() {
		It("should return only open incidences", func() {
			first, err := service.Report(incidence.ReportIncidenceDTO{PinCode: "1111", Type: "a"})
			Expect(err).NotTo(HaveOccurred())
			_, err = service.Report(incidence.ReportIncidenceDTO{PinCode: "1111", Type: "b"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Resolve(first.ID)
			Expect(err).NotTo(HaveOccurred())

			listings, err := service.ListOpen(incidence.ListOpenFilter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(listings).To(HaveLen(1))
			Expect(listings[0].Type).To(Equal("b"))
		})
	})

	Describe("Event publication", func() {
		It("should announce every opened incidence on the bus", func() {
			received := make(chan events.Event, 1)
			bus.Subscribe(events.TypeIncidenceOpened, func(ctx context.Context, e events.Event) error {
				received <- e
				return nil
			})

			_, err := service.Report(incidence.ReportIncidenceDTO{PinCode: "1111", Type: "machine-failure"})
			Expect(err).NotTo(HaveOccurred())

			Eventually(received, "1s").Should(Receive())
		})
	})
})
