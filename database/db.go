package database

import (
	"fmt"

	"hostel-booking/config"
	"hostel-booking/logger"
	accommodationModel "hostel-booking/models/accommodation"
	allotmentModel "hostel-booking/models/allotment"
	logModel "hostel-booking/models/log"
	paymentModel "hostel-booking/models/payment"
	roomModel "hostel-booking/models/room"
	supportModel "hostel-booking/models/support"
	userModel "hostel-booking/models/user"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB opens the database connection, migrates the schema and creates
// the supporting indexes and constraints.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createForeignKeyConstraints(); err != nil {
		logger.Error("Failed to create foreign key constraints", err)
		return nil, err
	}

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// autoMigrate runs auto migration for all models in dependency order.
func autoMigrate() error {
	// Stage 1: core foundation models
	stage1Models := []interface{}{
		&userModel.User{},
		&roomModel.Room{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: models with dependencies on stage 1
	stage2Models := []interface{}{
		&accommodationModel.Accommodation{},
		&supportModel.SupportTicket{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: remaining models
	remainingModels := []interface{}{
		&allotmentModel.Allotment{},
		&paymentModel.PaymentTransaction{},
		&logModel.Log{},
	}

	for _, model := range remainingModels {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createIndexes creates additional indexes for better performance.
func createIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_participant_id ON users(participant_id)",
		"CREATE INDEX IF NOT EXISTS idx_accommodations_user_id ON accommodations(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_accommodations_order_id ON accommodations(order_id)",
		"CREATE INDEX IF NOT EXISTS idx_accommodations_status ON accommodations(status)",
		"CREATE INDEX IF NOT EXISTS idx_accommodations_created_at ON accommodations(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_rooms_hostel_name ON rooms(hostel_name)",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_rooms_number_hostel ON rooms(room_number, hostel_name)",
		"CREATE INDEX IF NOT EXISTS idx_payment_transactions_order_id ON payment_transactions(order_id)",
		"CREATE INDEX IF NOT EXISTS idx_payment_transactions_status ON payment_transactions(status)",
		"CREATE INDEX IF NOT EXISTS idx_support_tickets_status ON support_tickets(status)",
		"CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)",
	}

	for _, idx := range indexes {
		if err := DB.Exec(idx).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// createForeignKeyConstraints creates foreign key constraints after auto
// migration.
func createForeignKeyConstraints() error {
	constraints := []struct {
		name string
		sql  string
	}{
		{
			name: "fk_accommodations_user",
			sql: `ALTER TABLE accommodations ADD CONSTRAINT fk_accommodations_user
				  FOREIGN KEY (user_id) REFERENCES users(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_allotments_accommodation",
			sql: `ALTER TABLE allotments ADD CONSTRAINT fk_allotments_accommodation
				  FOREIGN KEY (accommodation_id) REFERENCES accommodations(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_allotments_room",
			sql: `ALTER TABLE allotments ADD CONSTRAINT fk_allotments_room
				  FOREIGN KEY (room_id) REFERENCES rooms(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
	}

	for _, constraint := range constraints {
		var exists bool
		checkSQL := `
			SELECT EXISTS (
				SELECT 1 FROM information_schema.table_constraints
				WHERE constraint_name = $1
			)
		`

		err := DB.Raw(checkSQL, constraint.name).Scan(&exists).Error
		if err != nil {
			logger.Warning(fmt.Sprintf("Failed to check constraint existence: %s - Error: %v", constraint.name, err))
			continue
		}

		if !exists {
			if err := DB.Exec(constraint.sql).Error; err != nil {
				logger.Warning(fmt.Sprintf("Failed to create constraint: %s - Error: %v", constraint.name, err))
			} else {
				logger.Success(fmt.Sprintf("Successfully created constraint: %s", constraint.name))
			}
		}
	}

	return nil
}

// GetDB returns the database instance.
func GetDB() *gorm.DB {
	return DB
}
