package employee_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/colvahr/backoffice/internal"
	"github.com/colvahr/backoffice/internal/employee"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestEmployeeService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee Service Suite")
}

// MockRepository implements employee.Repository for testing.
type MockRepository struct {
	employees  map[int64]*employee.Employee
	nextID     int64
	shouldFail bool
	failError  error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{employees: make(map[int64]*employee.Employee), nextID: 1}
}

func (m *MockRepository) SetShouldFail(shouldFail bool, err error) {
	m.shouldFail = shouldFail
	m.failError = err
}

func (m *MockRepository) Create(emp *employee.Employee) error {
	if m.shouldFail {
		return m.failError
	}
	emp.ID = m.nextID
	m.nextID++
	m.employees[emp.ID] = emp
	return nil
}

func (m *MockRepository) GetByID(id int64) (*employee.Employee, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	emp, ok := m.employees[id]
	if !ok {
		return nil, internal.ErrEmployeeNotFound
	}
	return emp, nil
}

func (m *MockRepository) GetByPin(pin string) (*employee.Employee, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	for _, emp := range m.employees {
		if emp.PinCode == pin {
			return emp, nil
		}
	}
	return nil, internal.ErrPinNotFound
}

func (m *MockRepository) GetAll(department string) ([]*employee.Employee, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	var result []*employee.Employee
	for _, emp := range m.employees {
		result = append(result, emp)
	}
	return result, nil
}

func (m *MockRepository) Update(emp *employee.Employee) error {
	if m.shouldFail {
		return m.failError
	}
	m.employees[emp.ID] = emp
	return nil
}

func (m *MockRepository) Delete(id int64) error {
	if m.shouldFail {
		return m.failError
	}
	delete(m.employees, id)
	return nil
}

func (m *MockRepository) PinTaken(pin string, excludeID int64) (bool, error) {
	if m.shouldFail {
		return false, m.failError
	}
	for _, emp := range m.employees {
		if emp.PinCode == pin && emp.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

var _ = Describe("Employee Service", func() {
	var (
		mockRepo *MockRepository
		service  *employee.Service
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = employee.NewService(mockRepo, logger)
	})

	Describe("CreateEmployee", func() {
		It("should create an employee with a valid PIN", func() {
			emp, err := service.CreateEmployee(employee.CreateEmployeeDTO{
				FullName: "Marta Vidal", PinCode: "1111",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(emp.ID).To(BeNumerically(">", 0))
			Expect(emp.PinCode).To(Equal("1111"))
		})

		It("should reject a PIN that is not four digits", func() {
			for _, pin := range []string{"", "123", "12345", "12a4", "١٢٣"} {
				_, err := service.CreateEmployee(employee.CreateEmployeeDTO{
					FullName: "Marta Vidal", PinCode: pin,
				})
				Expect(err).To(HaveOccurred())
				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidPin))
			}
		})

		It("should reject a missing full name", func() {
			_, err := service.CreateEmployee(employee.CreateEmployeeDTO{PinCode: "1111"})
			Expect(err).To(HaveOccurred())
		})

		It("should refuse a PIN already assigned", func() {
			_, err := service.CreateEmployee(employee.CreateEmployeeDTO{
				FullName: "Marta Vidal", PinCode: "1111",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateEmployee(employee.CreateEmployeeDTO{
				FullName: "Jordi Serra", PinCode: "1111",
			})
			Expect(err).To(MatchError(internal.ErrPinTaken))
		})

		It("should wrap repository failures as internal errors", func() {
			mockRepo.SetShouldFail(true, errors.New("db down"))
			_, err := service.CreateEmployee(employee.CreateEmployeeDTO{
				FullName: "Marta Vidal", PinCode: "1111",
			})
			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(500))
		})
	})

	Describe("ResolveByPin", func() {
		BeforeEach(func() {
			_, err := service.CreateEmployee(employee.CreateEmployeeDTO{
				FullName: "Marta Vidal", PinCode: "1111",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should resolve a known PIN", func() {
			emp, err := service.ResolveByPin("1111")
			Expect(err).NotTo(HaveOccurred())
			Expect(emp.FullName).To(Equal("Marta Vidal"))
		})

		It("should return not found for an unknown PIN", func() {
			_, err := service.ResolveByPin("9999")
			Expect(err).To(MatchError(internal.ErrPinNotFound))
		})

		It("should reject a malformed PIN before touching the store", func() {
			mockRepo.SetShouldFail(true, errors.New("must not be called"))
			_, err := service.ResolveByPin("abc")
			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidPin))
		})
	})

	Describe("UpdateEmployee", func() {
		var created *employee.Employee

		BeforeEach(func() {
			var err error
			created, err = service.CreateEmployee(employee.CreateEmployeeDTO{
				FullName: "Marta Vidal", PinCode: "1111",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should update fields in place", func() {
			emp, err := service.UpdateEmployee(created.ID, employee.UpdateEmployeeDTO{
				FullName: "Marta Vidal Roca", PinCode: "1111",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(emp.FullName).To(Equal("Marta Vidal Roca"))
		})

		It("should allow keeping the same PIN", func() {
			_, err := service.UpdateEmployee(created.ID, employee.UpdateEmployeeDTO{
				FullName: "Marta Vidal", PinCode: "1111",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should refuse another employee's PIN", func() {
			_, err := service.CreateEmployee(employee.CreateEmployeeDTO{
				FullName: "Jordi Serra", PinCode: "2222",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.UpdateEmployee(created.ID, employee.UpdateEmployeeDTO{
				FullName: "Marta Vidal", PinCode: "2222",
			})
			Expect(err).To(MatchError(internal.ErrPinTaken))
		})

		It("should return not found for a missing employee", func() {
			_, err := service.UpdateEmployee(999, employee.UpdateEmployeeDTO{
				FullName: "Nobody", PinCode: "4444",
			})
			Expect(err).To(MatchError(internal.ErrEmployeeNotFound))
		})
	})

	Describe("DeleteEmployee", func() {
		It("should delete an existing employee", func() {
			created, err := service.CreateEmployee(employee.CreateEmployeeDTO{
				FullName: "Marta Vidal", PinCode: "1111",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteEmployee(created.ID)).To(Succeed())
			_, err = service.GetEmployee(created.ID)
			Expect(err).To(MatchError(internal.ErrEmployeeNotFound))
		})

		It("should return not found for a missing employee", func() {
			Expect(service.DeleteEmployee(999)).To(MatchError(internal.ErrEmployeeNotFound))
		})
	})
})
