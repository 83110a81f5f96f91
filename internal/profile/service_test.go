package profile_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/colvahr/backoffice/internal"
	"github.com/colvahr/backoffice/internal/employee"
	"github.com/colvahr/backoffice/internal/profile"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestProfileService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Profile Service Suite")
}

// MockRepository keeps one row of each profile per employee, the way
// onboarding seeds them.
type MockRepository struct {
	contacts        map[int64]*profile.Contact
	compensations   map[int64]*profile.Compensation
	academics       map[int64]*profile.Academic
	administratives map[int64]*profile.Administrative
	assignments     map[int64]*profile.Assignment
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		contacts:        make(map[int64]*profile.Contact),
		compensations:   make(map[int64]*profile.Compensation),
		academics:       make(map[int64]*profile.Academic),
		administratives: make(map[int64]*profile.Administrative),
		assignments:     make(map[int64]*profile.Assignment),
	}
}

func (m *MockRepository) Seed(employeeID int64) {
	m.contacts[employeeID] = &profile.Contact{EmployeeID: employeeID}
	m.compensations[employeeID] = &profile.Compensation{EmployeeID: employeeID}
	m.academics[employeeID] = &profile.Academic{EmployeeID: employeeID}
	m.administratives[employeeID] = &profile.Administrative{EmployeeID: employeeID}
	m.assignments[employeeID] = &profile.Assignment{EmployeeID: employeeID}
}

func (m *MockRepository) GetContact(employeeID int64) (*profile.Contact, error) {
	c, ok := m.contacts[employeeID]
	if !ok {
		return nil, internal.ErrProfileNotFound
	}
	return c, nil
}

func (m *MockRepository) UpdateContact(c *profile.Contact) error {
	m.contacts[c.EmployeeID] = c
	return nil
}

func (m *MockRepository) GetCompensation(employeeID int64) (*profile.Compensation, error) {
	c, ok := m.compensations[employeeID]
	if !ok {
		return nil, internal.ErrProfileNotFound
	}
	return c, nil
}

func (m *MockRepository) UpdateCompensation(c *profile.Compensation) error {
	m.compensations[c.EmployeeID] = c
	return nil
}

func (m *MockRepository) GetAcademic(employeeID int64) (*profile.Academic, error) {
	a, ok := m.academics[employeeID]
	if !ok {
		return nil, internal.ErrProfileNotFound
	}
	return a, nil
}

func (m *MockRepository) UpdateAcademic(a *profile.Academic) error {
	m.academics[a.EmployeeID] = a
	return nil
}

func (m *MockRepository) GetAdministrative(employeeID int64) (*profile.Administrative, error) {
	a, ok := m.administratives[employeeID]
	if !ok {
		return nil, internal.ErrProfileNotFound
	}
	return a, nil
}

func (m *MockRepository) UpdateAdministrative(a *profile.Administrative) error {
	m.administratives[a.EmployeeID] = a
	return nil
}

func (m *MockRepository) GetAssignment(employeeID int64) (*profile.Assignment, error) {
	a, ok := m.assignments[employeeID]
	if !ok {
		return nil, internal.ErrProfileNotFound
	}
	return a, nil
}

func (m *MockRepository) UpdateAssignment(a *profile.Assignment) error {
	m.assignments[a.EmployeeID] = a
	return nil
}

type MockDirectory struct {
	employees map[int64]*employee.Employee
}

func (m *MockDirectory) GetEmployee(id int64) (*employee.Employee, error) {
	emp, ok := m.employees[id]
	if !ok {
		return nil, internal.ErrEmployeeNotFound
	}
	return emp, nil
}

type MockCatalog struct {
	jobs        map[int64]bool
	departments map[int64]bool
}

func (m *MockCatalog) JobExists(id int64) error {
	if !m.jobs[id] {
		return internal.ErrJobNotFound
	}
	return nil
}

func (m *MockCatalog) DepartmentExists(id int64) error {
	if !m.departments[id] {
		return internal.ErrDepartmentNotFound
	}
	return nil
}

var _ = Describe("Profile Service", func() {
	var (
		mockRepo  *MockRepository
		directory *MockDirectory
		catalog   *MockCatalog
		service   *profile.Service
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		mockRepo.Seed(1)
		directory = &MockDirectory{employees: map[int64]*employee.Employee{
			1: {ID: 1, FullName: "Marta Vidal", PinCode: "1111"},
		}}
		catalog = &MockCatalog{
			jobs:        map[int64]bool{10: true},
			departments: map[int64]bool{20: true},
		}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = profile.NewService(mockRepo, directory, catalog, logger)
	})

	Describe("Contact", func() {
		It("should return the seeded empty row", func() {
			c, err := service.GetContact(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.EmployeeID).To(Equal(int64(1)))
			Expect(c.Address).To(BeEmpty())
		})

		It("should update the row in place", func() {
			c, err := service.UpdateContact(1, profile.ContactDTO{
				Address: "Carrer Major 1", PhoneNumber: "600123123",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Address).To(Equal("Carrer Major 1"))

			stored, err := service.GetContact(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.PhoneNumber).To(Equal("600123123"))
		})

		It("should return not found for an unknown employee", func() {
			_, err := service.GetContact(42)
			Expect(err).To(MatchError(internal.ErrEmployeeNotFound))

			_, err = service.UpdateContact(42, profile.ContactDTO{})
			Expect(err).To(MatchError(internal.ErrEmployeeNotFound))
		})
	})

	Describe("Compensation", func() {
		It("should reject a negative salary", func() {
			_, err := service.UpdateCompensation(1, profile.CompensationDTO{GrossAnnualSalary: -1})
			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeValidationFailed))
		})

		It("should store a valid update", func() {
			c, err := service.UpdateCompensation(1, profile.CompensationDTO{
				BankAccount: "ES12 3456", GrossAnnualSalary: 28000, ContractType: "indefinite",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(c.GrossAnnualSalary).To(Equal(int64(28000)))
		})
	})

	Describe("Administrative", func() {
		It("should reject a malformed seniority date", func() {
			_, err := service.UpdateAdministrative(1, profile.AdministrativeDTO{SeniorityDate: "01/09/2026"})
			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidDate))
		})
	})

	Describe("Assignment", func() {
		It("should link a known job and department", func() {
			jobID, deptID := int64(10), int64(20)
			a, err := service.UpdateAssignment(1, profile.AssignmentDTO{
				JobID: &jobID, DepartmentID: &deptID, WeeklyHours: 40, StartDate: "2026-09-01",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(*a.JobID).To(Equal(jobID))
			Expect(a.WeeklyHours).To(Equal(40.0))
		})

		It("should refuse an unknown job", func() {
			jobID := int64(99)
			_, err := service.UpdateAssignment(1, profile.AssignmentDTO{JobID: &jobID})
			Expect(err).To(MatchError(internal.ErrJobNotFound))
		})

		It("should refuse an unknown department", func() {
			deptID := int64(99)
			_, err := service.UpdateAssignment(1, profile.AssignmentDTO{DepartmentID: &deptID})
			Expect(err).To(MatchError(internal.ErrDepartmentNotFound))
		})

		It("should reject negative weekly hours", func() {
			_, err := service.UpdateAssignment(1, profile.AssignmentDTO{WeeklyHours: -5})
			Expect(err).To(HaveOccurred())
		})
	})
})
