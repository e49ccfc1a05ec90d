package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/status-im/market-data/config"
)

// kvRecord is one row of the market_data_kv table
type kvRecord struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Value     []byte    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (kvRecord) TableName() string {
	return "market_data_kv"
}

// GormStore persists values in a SQL database through gorm
type GormStore struct {
	db        *gorm.DB
	namespace string
}

func NewGormStore(driver, dsn, namespace string) (*GormStore, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.StorageDriverPostgres:
		dialector = postgres.Open(dsn)
	case config.StorageDriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedDriver, driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if driver == config.StorageDriverSQLite {
		// sqlite allows one writer, concurrent connections fail with SQLITE_BUSY
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return &GormStore{db: db, namespace: namespace}, nil
}

func (s *GormStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&kvRecord{})
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var record kvRecord
	result := s.db.WithContext(ctx).Where("key = ?", namespacedKey(s.namespace, key)).Limit(1).Find(&record)
	if result.Error != nil {
		return nil, false, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, false, nil
	}
	return record.Value, true, nil
}

func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	record := kvRecord{
		Key:       namespacedKey(s.namespace, key),
		Value:     value,
		UpdatedAt: time.Now(),
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
}

func (s *GormStore) Remove(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&kvRecord{}, "key = ?", namespacedKey(s.namespace, key)).Error
}

func (s *GormStore) Clear(ctx context.Context) error {
	tx := s.db.WithContext(ctx)
	if s.namespace == "" {
		return tx.Where("1 = 1").Delete(&kvRecord{}).Error
	}
	return tx.Where("key LIKE ? ESCAPE '\\'", escapeLike(namespacedKey(s.namespace, ""))+"%").Delete(&kvRecord{}).Error
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
