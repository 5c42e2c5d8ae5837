package m_setting

import (
	"time"

	"cloud.google.com/go/spanner"
)

// UpsertMutation writes one setting. Settings rows are created lazily, so every write is an upsert.
func UpsertMutation(key, value string, updatedAt time.Time) *spanner.Mutation {
	return spanner.InsertOrUpdate(TableName,
		[]string{ColKey, ColValue, ColUpdatedAt},
		[]interface{}{key, value, updatedAt},
	)
}

func DeleteMutation(key string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{key})
}
