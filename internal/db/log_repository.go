package db

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNoUpdatableFields is returned when a partial update carries no column
// from the kind's mutable whitelist.
var ErrNoUpdatableFields = errors.New("no fields to update")

// DefaultListLimit caps an unfiltered listing, matching the API contract of
// "most recent 200 rows".
const DefaultListLimit = 200

// ListFilter narrows a listing to an exact date or an inclusive date range.
// The zero value selects the most recent DefaultListLimit rows.
type ListFilter struct {
	Date string
	From string
	To   string
}

// LogRepository is the single CRUD path shared by the three append-only log
// kinds (entries, weights, moods). Partial updates are gated by a per-kind
// whitelist of mutable column names, so id and created_at can never be
// rewritten through it.
type LogRepository[T any] struct {
	database       *gorm.DB
	mutableColumns []string
}

func NewLogRepository[T any](database *gorm.DB, mutableColumns []string) *LogRepository[T] {
	return &LogRepository[T]{database: database, mutableColumns: mutableColumns}
}

func (repo *LogRepository[T]) Create(record *T) error {
	return repo.database.Create(record).Error
}

func (repo *LogRepository[T]) List(filter ListFilter) ([]T, error) {
	query := repo.database.Model(new(T))
	switch {
	case filter.Date != "":
		query = query.Where("date = ?", filter.Date)
	case filter.From != "" && filter.To != "":
		query = query.Where("date BETWEEN ? AND ?", filter.From, filter.To)
	default:
		query = query.Limit(DefaultListLimit)
	}

	records := make([]T, 0)
	if err := query.Order("date DESC, id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *LogRepository[T]) Latest(limit int) ([]T, error) {
	records := make([]T, 0, limit)
	if err := repo.database.Model(new(T)).Order("date DESC, id DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *LogRepository[T]) ListAll() ([]T, error) {
	records := make([]T, 0)
	if err := repo.database.Model(new(T)).Order("date DESC, id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// UpdateFields applies the whitelisted subset of fields to the row with the
// given id. A missing row is not an error: the update affects zero rows and
// reports success, same as the delete below.
func (repo *LogRepository[T]) UpdateFields(id int64, fields map[string]any) error {
	values := make(map[string]any, len(fields))
	for _, column := range repo.mutableColumns {
		if value, present := fields[column]; present {
			values[column] = value
		}
	}
	if len(values) == 0 {
		return ErrNoUpdatableFields
	}
	return repo.database.Model(new(T)).Where("id = ?", id).Updates(values).Error
}

func (repo *LogRepository[T]) Delete(id int64) error {
	return repo.database.Where("id = ?", id).Delete(new(T)).Error
}
