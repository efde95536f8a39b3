package specification

import "gorm.io/gorm"

// SharedWithPatient limits medical records to those the author exposed to
// the patient.
type SharedWithPatient struct{}

func (s SharedWithPatient) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("shared_with_owner = ?", true)
}
