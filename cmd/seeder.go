package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample users and tasks for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer sqlDB.Close()

		db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open gorm connection: %v", err)
		}

		if clearData {
			fmt.Println("Clearing existing data")
			for _, table := range []string{"comments", "task_assignments", "todos", "users"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
		}

		password := "password123"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), cfg.Security.BCryptCost)

		users := []struct {
			Name       string
			Email      string
			Role       string
			Department string
		}{
			{"Alya Admin", "alya@mail.com", "admin", "Operations"},
			{"Maman Manager", "maman@mail.com", "manager", "Engineering"},
			{"Eka Employee", "eka@mail.com", "employee", "Engineering"},
			{"Edo Employee", "edo@mail.com", "employee", "Design"},
		}

		for _, u := range users {
			var exists int
			row := db.Raw("SELECT 1 FROM users WHERE email = ?", u.Email).Row()
			if err := row.Scan(&exists); err == nil {
				fmt.Printf("user %s already exists, skipping\n", u.Email)
				continue
			}

			if err := db.Exec(
				"INSERT INTO users (name, email, password_hash, role, department, created_at, updated_at) VALUES (?, ?, ?, ?, ?, now(), now())",
				u.Name, u.Email, string(hash), u.Role, u.Department,
			).Error; err != nil {
				log.Fatalf("failed to insert user %s: %v", u.Email, err)
			}
			fmt.Printf("Seeded %s user: %s\n", u.Role, u.Email)
		}

		userID := func(email string) int64 {
			var id int64
			if err := db.Raw("SELECT id FROM users WHERE email = ?", email).Row().Scan(&id); err != nil {
				log.Fatalf("failed to lookup user id for %s: %v", email, err)
			}
			return id
		}

		managerID := userID("maman@mail.com")
		ekaID := userID("eka@mail.com")
		edoID := userID("edo@mail.com")

		todos := []struct {
			Title       string
			Description string
			Priority    string
			Status      string
			AssignedTo  *int64
		}{
			{"Prepare onboarding checklist", "Collect access requests and draft the day-one checklist", "high", "pending", &ekaID},
			{"Review design mockups", "Walk through the latest mockups and leave feedback", "medium", "in-progress", &edoID},
			{"Archive old sprint boards", "Boards older than six months can go to the archive", "low", "pending", nil},
		}

		for _, t := range todos {
			var exists int
			row := db.Raw("SELECT 1 FROM todos WHERE title = ?", t.Title).Row()
			if err := row.Scan(&exists); err == nil {
				fmt.Printf("task %q already exists, skipping\n", t.Title)
				continue
			}

			var todoID int64
			if err := db.Raw(
				"INSERT INTO todos (title, description, priority, status, created_at, updated_at) VALUES (?, ?, ?, ?, now(), now()) RETURNING id",
				t.Title, t.Description, t.Priority, t.Status,
			).Row().Scan(&todoID); err != nil {
				log.Fatalf("failed to insert task %q: %v", t.Title, err)
			}

			if t.AssignedTo != nil {
				if err := db.Exec(
					"INSERT INTO task_assignments (todo_id, assigned_by, assigned_to, created_at) VALUES (?, ?, ?, now())",
					todoID, managerID, *t.AssignedTo,
				).Error; err != nil {
					log.Fatalf("failed to assign task %q: %v", t.Title, err)
				}
			}
			fmt.Printf("Seeded task: %s\n", t.Title)
		}

		fmt.Println("Database seeded successfully")
	},
}
