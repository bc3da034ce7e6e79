package storage

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	lf "github.com/bluegreyowl/gradebook/internal/logfield"
	"github.com/bluegreyowl/gradebook/internal/models"
)

// studentRow keeps its own autoincrement key so that load order
// follows insertion order, matching the CSV backend.
type studentRow struct {
	ID         uint   `gorm:"primaryKey"`
	RollNumber string `gorm:"uniqueIndex"`
	Name       string
	Age        int
	Marks      float64
}

func (studentRow) TableName() string {
	return "students"
}

type SqliteBackend struct {
	db     *gorm.DB
	path   string
	logger *zap.Logger
}

func OpenSqliteBackend(logger *zap.Logger, path string) (*SqliteBackend, error) {
	zapLogger := zapgorm2.New(logger.Named("gorm"))
	zapLogger.SetAsDefault()
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: zapLogger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "Failed to open sqlite database")
	}

	if err := db.AutoMigrate(&studentRow{}); err != nil {
		return nil, errors.Wrap(err, "Failed to migrate sqlite database")
	}

	return &SqliteBackend{
		db:     db,
		path:   path,
		logger: logger.Named("sqlite"),
	}, nil
}

func (b *SqliteBackend) Describe() string {
	return fmt.Sprintf("sqlite(%s)", b.path)
}

func (b *SqliteBackend) Load() ([]models.Student, error) {
	var rows []studentRow
	if err := b.db.Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "Failed to load records")
	}

	students := make([]models.Student, 0, len(rows))
	for _, row := range rows {
		students = append(students, models.Student{
			RollNumber: row.RollNumber,
			Name:       row.Name,
			Age:        row.Age,
			Marks:      row.Marks,
		})
	}

	b.logger.Info("Loaded records", lf.Path(b.path), lf.Count(len(students)))
	return students, nil
}

// Save replaces the table wholesale in a single transaction,
// mirroring the whole-file CSV contract.
func (b *SqliteBackend) Save(students []models.Student) error {
	rows := make([]studentRow, 0, len(students))
	for i := range students {
		rows = append(rows, studentRow{
			RollNumber: students[i].RollNumber,
			Name:       students[i].Name,
			Age:        students[i].Age,
			Marks:      students[i].Marks,
		})
	}

	err := b.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&studentRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return errors.Wrap(err, "Failed to save records")
	}

	b.logger.Debug("Saved records", lf.Path(b.path), lf.Count(len(students)))
	return nil
}

func (b *SqliteBackend) Close() error {
	db, err := b.db.DB()
	if err != nil {
		return errors.Wrap(err, "Failed to get underlying connection")
	}
	return errors.Wrap(db.Close(), "Failed to close sqlite database")
}
