package db

import (
	"log"
	"time"

	"github.com/KennethOlusegun/barberBoss-sub001/internal/config"
	"github.com/KennethOlusegun/barberBoss-sub001/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Settings{},
		&models.TimeBlock{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Storage-level backstop for the conflict check: two active
	// appointments on the same barber can never hold overlapping ranges,
	// no matter how the writes interleave. The application-level check
	// stays responsible for the friendly 409 message.
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`
        DO $$ BEGIN
            IF NOT EXISTS (
                SELECT 1 FROM pg_constraint WHERE conname = 'appointments_no_overlap'
            ) THEN
                ALTER TABLE appointments
                    ADD CONSTRAINT appointments_no_overlap
                    EXCLUDE USING gist (
                        barber_id WITH =,
                        tstzrange(starts_at, ends_at) WITH &&
                    )
                    WHERE (status IN ('PENDING', 'CONFIRMED') AND barber_id IS NOT NULL);
            END IF;
        END $$;
    `)

	return db
}
