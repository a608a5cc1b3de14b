package model

import "time"

// Course groups items by the class they belong to (MATH 201, CS 350, ...).
type Course struct {
	ID        uint   `gorm:"primaryKey"`
	OwnerID   uint   `gorm:"index;uniqueIndex:idx_owner_course_name"`
	Name      string `gorm:"uniqueIndex:idx_owner_course_name"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
