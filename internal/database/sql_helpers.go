package database

import "database/sql"

// nullableID converts an int64 to sql.NullInt64 for optional foreign keys.
// Values <= 0 are treated as NULL.
func nullableID(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v > 0}
}
