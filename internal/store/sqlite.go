package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/xhy51/wordfreq/internal/freq"
)

var _ Store = (*SQLite)(nil)

const insertBatch = 500

// SQLite stores runs in a SQLite database.
type SQLite struct {
	db *gorm.DB
}

type runRecord struct {
	ID        string `gorm:"primaryKey"`
	Source    string
	Tokens    int
	Kept      int
	CreatedAt time.Time     `gorm:"index"`
	Entries   []entryRecord `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE"`
}

func (runRecord) TableName() string { return "runs" }

type entryRecord struct {
	RunID    string `gorm:"primaryKey"`
	Position int    `gorm:"primaryKey"`
	Token    string
	Count    int
}

func (entryRecord) TableName() string { return "entries" }

// NewSQLite opens (or creates) the database at path. ":memory:" gives a
// private in-memory database.
func NewSQLite(path string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// one connection, so ":memory:" is the same database for every query
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		sqlDB.Close()
		return nil, err
	}
	if err := db.AutoMigrate(&runRecord{}, &entryRecord{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	return &SQLite{db: db}, nil
}

// Save implements Store. The run and its entries are written in one
// transaction.
func (s *SQLite) Save(ctx context.Context, run *Run) error {
	rec := runRecord{
		ID:        run.ID,
		Source:    run.Source,
		Tokens:    run.Tokens,
		Kept:      run.Kept,
		CreatedAt: run.CreatedAt,
	}
	entries := make([]entryRecord, 0, len(run.Entries))
	for i, e := range run.Entries {
		entries = append(entries, entryRecord{RunID: run.ID, Position: i, Token: e.Token, Count: e.Count})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Entries").Create(&rec).Error; err != nil {
			return fmt.Errorf("save run %s: %w", run.ID, err)
		}
		if len(entries) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(entries, insertBatch).Error; err != nil {
			return fmt.Errorf("save entries for %s: %w", run.ID, err)
		}
		return nil
	})
}

// Get implements Store.
func (s *SQLite) Get(ctx context.Context, id string) (*Run, error) {
	var rec runRecord
	err := s.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	run := fromRecord(rec)
	run.Entries = make([]freq.Entry, 0, len(rec.Entries))
	for _, e := range rec.Entries {
		run.Entries = append(run.Entries, freq.Entry{Token: e.Token, Count: e.Count})
	}
	return &run, nil
}

// List implements Store.
func (s *SQLite) List(ctx context.Context) ([]Run, error) {
	var recs []runRecord
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&recs).Error; err != nil {
		return nil, err
	}
	runs := make([]Run, 0, len(recs))
	for _, rec := range recs {
		runs = append(runs, fromRecord(rec))
	}
	return runs, nil
}

// Close implements Store.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func fromRecord(rec runRecord) Run {
	return Run{
		ID:        rec.ID,
		Source:    rec.Source,
		Tokens:    rec.Tokens,
		Kept:      rec.Kept,
		CreatedAt: rec.CreatedAt,
	}
}
