package attendance_test

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/colvahr/backoffice/internal/attendance"
	"github.com/colvahr/backoffice/internal/core/events"
	"github.com/colvahr/backoffice/internal/employee"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Session Guard", func() {
	var (
		mockRepo   *MockRepository
		directory  *MockDirectory
		incidences *MockIncidenceOpener
		service    *attendance.Service
		guard      *attendance.Guard
		logger     *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		directory = NewMockDirectory()
		incidences = &MockIncidenceOpener{}
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		bus := events.NewEventBus(logger)
		service = attendance.NewService(mockRepo, directory, incidences, bus, 10*time.Hour, true, logger)
		guard = attendance.NewGuard(service, 5*time.Minute, 30*time.Second, logger)

		directory.AddEmployee(&employee.Employee{ID: 1, FullName: "Marta Vidal", PinCode: "1111"})
	})

	Context("with a session open longer than the ceiling", func() {
		var openedAt time.Time

		BeforeEach(func() {
			openedAt = time.Now().Add(-12 * time.Hour)
			insertPunch(service, 1, openedAt.Format("2006-01-02"), openedAt.Format("15:04:05"), true)
		})

		It("should force-close the session with a forced check-out", func() {
			Expect(guard.SweepAt(context.Background(), time.Now())).To(Succeed())

			latest, err := mockRepo.LatestForEmployee(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(latest.Working).To(BeFalse())
			Expect(latest.Forced).To(BeTrue())
		})

		It("should credit exactly the ceiling, not the elapsed time", func() {
			Expect(guard.SweepAt(context.Background(), time.Now())).To(Succeed())

			latest, err := mockRepo.LatestForEmployee(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(latest.Daily).To(Equal("10:00:00"))
		})

		It("should open an auto-checkout incidence", func() {
			Expect(guard.SweepAt(context.Background(), time.Now())).To(Succeed())

			Expect(incidences.Opened).To(HaveLen(1))
			Expect(incidences.Opened[0].EmployeeID).To(Equal(int64(1)))
			Expect(incidences.Opened[0].Type).To(Equal("auto-checkout >10h"))
			Expect(incidences.Opened[0].Description).To(ContainSubstring("10h"))
		})

		It("should leave the ledger closed on the next sweep", func() {
			Expect(guard.SweepAt(context.Background(), time.Now())).To(Succeed())
			Expect(guard.SweepAt(context.Background(), time.Now())).To(Succeed())

			evs, err := mockRepo.ListForEmployee(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(evs).To(HaveLen(2))
			Expect(incidences.Opened).To(HaveLen(1))
		})
	})

	Context("with a session still inside the ceiling", func() {
		BeforeEach(func() {
			openedAt := time.Now().Add(-2 * time.Hour)
			insertPunch(service, 1, openedAt.Format("2006-01-02"), openedAt.Format("15:04:05"), true)
		})

		It("should leave the session open", func() {
			Expect(guard.SweepAt(context.Background(), time.Now())).To(Succeed())

			latest, err := mockRepo.LatestForEmployee(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(latest.Working).To(BeTrue())
			Expect(incidences.Opened).To(BeEmpty())
		})
	})

	Context("when the session was closed between the sweep query and the lock", func() {
		It("should skip the stale session without writing anything", func() {
			openedAt := time.Now().Add(-12 * time.Hour)
			stale := insertPunch(service, 1, openedAt.Format("2006-01-02"), openedAt.Format("15:04:05"), true)

			// A live punch closes the session after the sweep snapshot is taken.
			mockRepo.openSessionsOverride = []*attendance.Event{stale}
			closedAt := time.Now()
			insertPunch(service, 1, closedAt.Format("2006-01-02"), closedAt.Format("15:04:05"), false)

			Expect(guard.SweepAt(context.Background(), time.Now())).To(Succeed())

			evs, err := mockRepo.ListForEmployee(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(evs).To(HaveLen(2))
			Expect(incidences.Opened).To(BeEmpty())
		})
	})

	Context("with no events at all", func() {
		It("should sweep without error", func() {
			Expect(guard.SweepAt(context.Background(), time.Now())).To(Succeed())
		})
	})

	Describe("Run", func() {
		It("should stop promptly when the context is cancelled", func() {
			quickGuard := attendance.NewGuard(service, time.Hour, time.Hour, logger)
			ctx, cancel := context.WithCancel(context.Background())

			done := make(chan struct{})
			go func() {
				quickGuard.Run(ctx)
				close(done)
			}()

			cancel()
			Eventually(done, "2s").Should(BeClosed())
		})
	})
})
