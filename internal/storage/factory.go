package storage

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// NewBackend builds a backend by name: "csv" or "sqlite".
func NewBackend(logger *zap.Logger, kind, path string, persistGrade bool) (Backend, error) {
	switch kind {
	case "csv":
		return NewCsvBackend(logger, path, persistGrade), nil
	case "sqlite":
		return OpenSqliteBackend(logger, path)
	}
	return nil, errors.Errorf("unknown storage backend %q", kind)
}
