package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bizlens/bizlens/internal/domain"
)

// specToValue serializes a chart spec for SQLite storage.
// Returns nil (SQL NULL) when the message carries no chart.
func specToValue(spec *domain.ChartSpec) (interface{}, error) {
	if spec == nil {
		return nil, nil
	}
	data, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("marshaling chart spec: %w", err)
	}
	return string(data), nil
}

// specFromValue deserializes a stored chart spec.
// Returns nil for SQL NULL or empty text.
func specFromValue(s sql.NullString) (*domain.ChartSpec, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	var spec domain.ChartSpec
	if err := json.Unmarshal([]byte(s.String), &spec); err != nil {
		return nil, fmt.Errorf("unmarshaling chart spec: %w", err)
	}
	return &spec, nil
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
