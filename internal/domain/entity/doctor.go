package entity

import "time"

// Doctor represents a requesting physician known to the practice.
type Doctor struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	PracticeAddress string    `gorm:"type:text" json:"practice_address,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}
