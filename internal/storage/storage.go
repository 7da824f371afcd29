package storage

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/carson-networks/account-server/internal/config"
)

// ErrNotFound is returned by lookups that match no row.
var ErrNotFound = gorm.ErrRecordNotFound

// Storage bundles the table gateways over one database connection.
type Storage struct {
	DB           *gorm.DB
	Accounts     IAccountTable
	Transactions ITransactionTable
}

// NewStorage opens the configured database and wires the table gateways.
//
// In test mode the connection is a transient in-memory database: statement
// logging is silenced, the per-write implicit transaction is skipped, and the
// schema is created directly from the models instead of the migrations.
func NewStorage(env *config.Config) (*Storage, error) {
	var dialector gorm.Dialector
	switch env.DatabaseDriver {
	case "sqlite":
		dialector = sqlite.Open(env.SQLiteDSN)
	case "postgres":
		dialector = postgres.Open(env.PostgresDSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", env.DatabaseDriver)
	}

	gormConfig := &gorm.Config{}
	if env.TestMode {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
		gormConfig.SkipDefaultTransaction = true
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", env.DatabaseDriver, err)
	}

	if env.TestMode {
		if err := db.AutoMigrate(&Account{}, &Transaction{}); err != nil {
			return nil, fmt.Errorf("migrate test schema: %w", err)
		}
	}

	return &Storage{
		DB:           db,
		Accounts:     NewAccountsTable(db),
		Transactions: NewTransactionsTable(db),
	}, nil
}

// Close releases the underlying database connection.
func (s *Storage) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
