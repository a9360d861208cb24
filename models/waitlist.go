package models

import "time"

// WaitlistEntry repräsentiert eine Anmeldung auf der Warteliste.
// Die E-Mail ist getrimmt und kleingeschrieben gespeichert.
type WaitlistEntry struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null"`
}

// TableName gibt den expliziten Tabellennamen für GORM an.
func (WaitlistEntry) TableName() string {
	return "waitlist_entries"
}
