// Package watchstore persists domkit MutationRecords to SQLite via gorm,
// the way domkit's teacher persists its own stage/apply records: a plain
// gorm model plus a Connect/Migrate pair.
package watchstore

import "time"

// MutationLog is one persisted MutationRecord, flattened to scalar columns
// since *dom.Node cannot itself be stored. NodeDesc is a short human-readable
// description (tag name, or "#text"/"#comment") rather than a foreign key,
// since domkit's in-memory nodes have no stable identity outside the process
// that created them.
type MutationLog struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	SessionID     string    `gorm:"type:varchar(36);index"`
	RecordType    string    `gorm:"type:varchar(20);not null"`
	TargetDesc    string    `gorm:"type:varchar(255)"`
	AddedDesc     string    `gorm:"type:text"`
	RemovedDesc   string    `gorm:"type:text"`
	AttributeName string    `gorm:"type:varchar(255)"`
	OldValue      string    `gorm:"type:text"`
	ObservedAt    time.Time `gorm:"autoCreateTime;index"`
}
