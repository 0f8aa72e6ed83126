package repository

import "gorm.io/gorm"

// AutoMigrate creates the schema for all repositories.
//
// The partial unique index on (salon_id, reservation_date, reservation_time)
// cannot be expressed with struct tags, so it is created with raw SQL. It is
// the authoritative guard against double-booking: application-level conflict
// checks may race, the index may not.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&userModel{}, &salonModel{}, &reservationModel{}); err != nil {
		return err
	}

	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_reservations_active_slot
		 ON reservations(salon_id, reservation_date, reservation_time)
		 WHERE status IN ('pending', 'confirmed')`,
		`CREATE INDEX IF NOT EXISTS idx_reservations_user_id ON reservations(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_reservations_salon_date ON reservations(salon_id, reservation_date)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
