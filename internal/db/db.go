package db

import "database/sql"

// DB wraps the shared sql.DB handle so stores depend on one local type.
type DB struct {
	*sql.DB
}
