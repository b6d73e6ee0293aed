package app

import (
	"fmt"
	"time"

	"github.com/recnet/recnet-be/db"
)

// GetFeed resolves a cursor type plus an optional raw cursor (the previous
// page's marker, as decoded JSON) into a PostCursor over the store.
func GetFeed(database db.Database, cursorType PostCursorType, rawCursor RawCursor) (PostCursor, error) {
	switch cursorType {
	case PostCursorTypeMostRecent:
		if rawCursor == nil {
			return &mostRecentCursor{
				db:       database,
				LastDate: time.Now().UTC(),
				LastId:   "",
			}, nil
		}
		return MostRecentCursorFromRaw(database, rawCursor)
	default:
		return nil, fmt.Errorf("unsupported feed type %v", cursorType)
	}
}
