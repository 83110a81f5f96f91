package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		deps, err := initializeDependencies()
		if err != nil {
			log.Fatalf("failed to init dependencies: %v", err)
		}
		db := deps.GormDB

		if clearData {
			tables := []string{
				"attendance_events", "incidences", "leaves",
				"contact_profiles", "compensation_profiles", "academic_profiles",
				"administrative_profiles", "assignment_profiles",
				"employees", "jobs", "departments",
			}
			for _, t := range tables {
				if err := db.Exec("DELETE FROM " + t).Error; err != nil {
					log.Fatalf("failed to clear table %s: %v", t, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		departments := []string{"Kitchen", "Dining Room", "Administration", "Maintenance"}
		for _, name := range departments {
			var exists int
			if err := db.Raw("SELECT 1 FROM departments WHERE name = ?", name).Row().Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec("INSERT INTO departments (name, created_at, updated_at) VALUES (?, now(), now())", name).Error; err != nil {
				log.Fatalf("failed to insert department %s: %v", name, err)
			}
			fmt.Printf("Seeded department: %s\n", name)
		}

		jobs := []struct {
			Name       string
			Department string
		}{
			{"Cook", "Kitchen"},
			{"Kitchen Assistant", "Kitchen"},
			{"Waiter", "Dining Room"},
			{"Office Clerk", "Administration"},
			{"Janitor", "Maintenance"},
		}
		for _, j := range jobs {
			var exists int
			if err := db.Raw("SELECT 1 FROM jobs WHERE name = ?", j.Name).Row().Scan(&exists); err == nil {
				continue
			}
			var deptID int64
			if err := db.Raw("SELECT id FROM departments WHERE name = ?", j.Department).Row().Scan(&deptID); err != nil {
				log.Fatalf("department not found for job %s: %v", j.Name, err)
			}
			if err := db.Exec("INSERT INTO jobs (name, department_id, created_at, updated_at) VALUES (?, ?, now(), now())", j.Name, deptID).Error; err != nil {
				log.Fatalf("failed to insert job %s: %v", j.Name, err)
			}
			fmt.Printf("Seeded job: %s\n", j.Name)
		}

		employees := []struct {
			FullName string
			Pin      string
		}{
			{"Marta Vidal", "1111"},
			{"Jordi Serra", "2222"},
			{"Nuria Pons", "3333"},
		}
		for _, e := range employees {
			var exists int
			if err := db.Raw("SELECT 1 FROM employees WHERE pin_code = ?", e.Pin).Row().Scan(&exists); err == nil {
				fmt.Printf("employee with PIN %s already exists, skipping\n", e.Pin)
				continue
			}
			if err := seedEmployee(db, e.FullName, e.Pin); err != nil {
				log.Fatalf("failed to seed employee %s: %v", e.FullName, err)
			}
			fmt.Printf("Seeded employee: %s\n", e.FullName)
		}

		fmt.Println("Sample data seeded successfully")
	},
}

// seedEmployee inserts the employee row plus its five empty profile rows, the
// same shape onboarding through the API produces.
func seedEmployee(db *gorm.DB, fullName, pin string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("INSERT INTO employees (full_name, pin_code, created_at, updated_at) VALUES (?, ?, now(), now())", fullName, pin).Error; err != nil {
			return err
		}

		var employeeID int64
		if err := tx.Raw("SELECT id FROM employees WHERE pin_code = ?", pin).Row().Scan(&employeeID); err != nil {
			return err
		}

		profileTables := []string{
			"contact_profiles", "compensation_profiles", "academic_profiles",
			"administrative_profiles", "assignment_profiles",
		}
		for _, t := range profileTables {
			if err := tx.Exec("INSERT INTO "+t+" (employee_id, updated_at) VALUES (?, now())", employeeID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
