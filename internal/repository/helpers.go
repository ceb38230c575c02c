package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ffc/club/api/internal/database"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// isUniqueConstraintError checks if an error is a unique constraint violation
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "unique") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "already exists")
}

// extractRecordID converts a SurrealDB record ID (which may be a complex
// object) to its string form.
func extractRecordID(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return v.String()
	case *models.RecordID:
		if v != nil {
			return v.String()
		}
	case map[string]interface{}:
		if tb, ok := v["tb"].(string); ok {
			if id, ok := v["id"].(string); ok {
				return tb + ":" + id
			}
		}
	}

	if data, err := json.Marshal(id); err == nil {
		var recordID models.RecordID
		if err := json.Unmarshal(data, &recordID); err == nil {
			return recordID.String()
		}
	}

	return ""
}

// parseTime parses a gateway time value from its various wire formats
func parseTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
	case models.CustomDateTime:
		return t.Time
	case *models.CustomDateTime:
		if t != nil {
			return t.Time
		}
	}
	return time.Time{}
}

// extractQueryResults extracts the results array from a SurrealDB response
func extractQueryResults(result interface{}) ([]interface{}, bool) {
	if results, ok := result.([]interface{}); ok {
		if len(results) > 0 {
			if firstResult, ok := results[0].(map[string]interface{}); ok {
				if resultArray, ok := firstResult["result"].([]interface{}); ok {
					return resultArray, true
				}
			}
			// Direct array format
			return results, true
		}
	}
	return nil, false
}

// normalizeRecord rewrites driver-specific value types in a record map so
// that a plain JSON round-trip lands in model structs: record IDs become
// strings and datetimes become RFC 3339 strings. Nested maps are walked too.
func normalizeRecord(data map[string]interface{}) map[string]interface{} {
	if id, ok := data["id"]; ok {
		data["id"] = extractRecordID(id)
	}
	for k, v := range data {
		switch val := v.(type) {
		case models.CustomDateTime:
			data[k] = val.Time.Format(time.RFC3339Nano)
		case *models.CustomDateTime:
			if val != nil {
				data[k] = val.Time.Format(time.RFC3339Nano)
			}
		case time.Time:
			data[k] = val.Format(time.RFC3339Nano)
		case map[string]interface{}:
			if k != "id" {
				data[k] = normalizeRecord(val)
			}
		}
	}
	return data
}

// decodeRecord maps one gateway record into the target struct via a JSON
// round-trip after normalizing driver types.
func decodeRecord(record interface{}, target interface{}) error {
	data, ok := record.(map[string]interface{})
	if !ok {
		return errors.New("unexpected result format")
	}

	jsonBytes, err := json.Marshal(normalizeRecord(data))
	if err != nil {
		return err
	}
	return json.Unmarshal(jsonBytes, target)
}

// decodeList maps a full query response into a slice of records using decode,
// which receives each raw record in fetch order.
func decodeList(result []interface{}, decode func(record interface{}) error) error {
	records, ok := extractQueryResults(result)
	if !ok {
		return nil
	}
	for i, record := range records {
		if err := decode(record); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

// notFoundToNil maps database.ErrNotFound to nil so that read misses surface
// as a nil record rather than an error.
func notFoundToNil(err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return nil
	}
	return err
}
