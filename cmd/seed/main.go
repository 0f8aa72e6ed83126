package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"salonbook/internal/database"
	"salonbook/internal/domain"
	"salonbook/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "salonbook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM salons")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	db.Exec(
		"INSERT INTO users (username, email, password, role, created_at) VALUES (?, ?, ?, ?, ?)",
		"admin", "admin@salonbook.lt", string(adminHash), string(domain.RoleAdmin), time.Now(),
	)
	log.Println("Admin created: admin@salonbook.lt / admin123")

	clientEmails := []string{"ruta@mail.lt", "jonas@gmail.com", "egle@inbox.lt"}
	for i, email := range clientEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
		db.Exec(
			"INSERT INTO users (username, email, password, role, created_at) VALUES (?, ?, ?, ?, ?)",
			fmt.Sprintf("client%d", i+1), email, string(hash), string(domain.RoleUser), time.Now(),
		)
	}

	log.Println("Creating salons...")
	salons := []struct {
		name     string
		category string
		rating   int
	}{
		{"Grožio Namai", "hair", 5},
		{"Nagų Studija", "nails", 4},
		{"SPA Centras", "spa", 5},
		{"Barber Broliai", "barber", 3},
	}
	for _, s := range salons {
		db.Exec(
			"INSERT INTO salons (salon, category, rating, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
			s.name, s.category, s.rating, time.Now(), time.Now(),
		)
	}

	log.Println("Creating reservations...")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	reservations := []struct {
		userID, salonID int64
		service, clock  string
		duration        int
		status          string
	}{
		{2, 1, "haircut", "10:00", 60, "confirmed"},
		{3, 1, "coloring", "13:00", 90, "pending"},
		{4, 2, "manicure", "11:30", 60, "confirmed"},
	}
	for _, r := range reservations {
		db.Exec(
			`INSERT INTO reservations
			 (user_id, salon_id, service_type, reservation_date, reservation_time, duration, status, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.userID, r.salonID, r.service, tomorrow, r.clock, r.duration, r.status, time.Now(), time.Now(),
		)
	}

	log.Println("Seed complete.")
}
