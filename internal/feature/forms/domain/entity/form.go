// Package entity defines the domain entities for the forms feature.
package entity

import "time"

// Topic values a form may carry. The set is fixed; submissions with any
// other value are rejected.
const (
	TopicSolidFertilizers        = "Engrais solides"
	TopicWaterSolubleFertilizers = "Engrais spéciaux hydrosolubles"
	TopicDeficiencyCorrectors    = "Correcteurs de carence"
	TopicBiostimulants           = "Biostimulants"
)

// Topics lists every allowed topic value, in display order.
var Topics = []string{
	TopicSolidFertilizers,
	TopicWaterSolubleFertilizers,
	TopicDeficiencyCorrectors,
	TopicBiostimulants,
}

// ValidTopic reports whether s is one of the allowed topic values.
func ValidTopic(s string) bool {
	for _, t := range Topics {
		if s == t {
			return true
		}
	}
	return false
}

// Form represents a submitted inquiry.
// UserID records the owner and is set from the authenticated identity
// at creation; it is never exposed in API responses.
type Form struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	Email     string `gorm:"size:255;not null"`
	Region    string `gorm:"size:100;not null"`
	Place     string `gorm:"size:100;not null"`
	Topic     string `gorm:"size:50;not null"`
	Question  string `gorm:"type:text;not null"`
	CreatedAt time.Time
}
