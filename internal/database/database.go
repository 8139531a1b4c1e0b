// Package database implements the operation interfaces on top of gorm.
package database

import (
	"context"
	"database/sql"
	"fmt"

	c "github.com/flightline-dev/flightline/internal/interfaces/config"
	"github.com/flightline-dev/flightline/internal/interfaces/global"
	"github.com/flightline-dev/flightline/internal/interfaces/log"
	"github.com/flightline-dev/flightline/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type shutdownCallback struct {
	pool *sql.DB
}

func (s *shutdownCallback) Invoke(_ context.Context) error {
	return s.pool.Close()
}

// ConnectDatabase opens the configured database, migrates the schema and
// seeds the bootstrap admin account when no admin exists yet.
func ConnectDatabase(log log.LoggerInterface, config *c.Config, debugMode bool) (global.Callable, *operation.DatabaseOperations, error) {
	gormConfig := &gorm.Config{}
	if debugMode {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	dialector := config.Database.GetConnection(log)
	if dialector == nil {
		return nil, nil, fmt.Errorf("unsupported database type %s", config.Database.Type)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("error occurred while connecting to database: %v", err)
	}

	err = db.Migrator().AutoMigrate(
		&operation.User{},
		&operation.Flight{},
		&operation.Aircraft{},
		&operation.Image{},
		&operation.RevokedToken{},
	)
	if err != nil {
		return nil, nil, fmt.Errorf("error occurred while migrating database: %v", err)
	}

	dbPool, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("error occurred while creating database pool: %v", err)
	}

	maxOpenConnections := float32(config.Database.ServerMaxConnections) * 0.8 // stay under the server connection cap
	maxIdleConnections := maxOpenConnections / 5

	dbPool.SetMaxIdleConns(int(maxIdleConnections))
	dbPool.SetMaxOpenConns(int(maxOpenConnections))
	dbPool.SetConnMaxLifetime(config.Database.ConnectIdleDuration)

	if err := dbPool.Ping(); err != nil {
		return nil, nil, fmt.Errorf("error occurred while pinging database: %v", err)
	}

	queryTimeout := config.Database.QueryDuration

	userOperation := NewUserOperation(db, queryTimeout, config.Database)
	flightOperation := NewFlightOperation(db, queryTimeout)
	aircraftOperation := NewAircraftOperation(db, queryTimeout)
	imageOperation := NewImageOperation(db, queryTimeout)
	tokenOperation := NewTokenOperation(db, queryTimeout)

	operations := operation.NewDatabaseOperations(
		userOperation,
		flightOperation,
		aircraftOperation,
		imageOperation,
		tokenOperation,
	)

	if err := bootstrapAdmin(log, config, userOperation); err != nil {
		return nil, nil, err
	}

	return &shutdownCallback{pool: dbPool}, operations, nil
}

func bootstrapAdmin(log log.LoggerInterface, config *c.Config, users *UserOperation) error {
	exists, err := users.HasAdminUser()
	if err != nil {
		return fmt.Errorf("error occurred while checking for admin account: %v", err)
	}
	if exists {
		return nil
	}

	admin, err := users.NewUser(config.Bootstrap.AdminUsername, config.Bootstrap.AdminPassword, operation.LevelAdmin)
	if err != nil {
		return fmt.Errorf("error occurred while building admin account: %v", err)
	}
	if err := users.AddUser(admin); err != nil {
		return fmt.Errorf("error occurred while creating admin account: %v", err)
	}
	log.InfoF("No admin account found, created %s with the configured bootstrap password", admin.Username)
	return nil
}
