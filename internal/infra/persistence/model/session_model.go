package model

import "time"

// SessionRecordModel mirrors the 'session_records' table: one row per
// session key, the same shape the browser's key/value storage had.
type SessionRecordModel struct {
	Key       string `gorm:"type:varchar(64);primary_key"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionRecordModel) TableName() string {
	return "session_records"
}
