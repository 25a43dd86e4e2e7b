package readstore

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

func timePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	t := pt.Time
	return &t
}
