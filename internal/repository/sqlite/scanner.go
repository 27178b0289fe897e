package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// ScanSession scans a single session row. Timestamps are stored as RFC3339 text.
func ScanSession(scanner Scanner) (*Session, error) {
	session := &Session{}
	var createdAt string
	var lastUsedAt sql.NullString

	err := scanner.Scan(
		&session.Email,
		&session.Token,
		&createdAt,
		&lastUsedAt,
	)
	if err != nil {
		return nil, err
	}

	session.CreatedAt, err = ParseTimeFromDB(createdAt)
	if err != nil {
		return nil, err
	}

	if lastUsedAt.Valid {
		used, err := ParseTimeFromDB(lastUsedAt.String)
		if err != nil {
			return nil, err
		}
		session.LastUsedAt = &used
	}

	return session, nil
}
