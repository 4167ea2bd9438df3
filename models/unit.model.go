package models

// Unit titles are unique within their course.
type Unit struct {
	Model
	Title       string  `json:"title" gorm:"not null;uniqueIndex:idx_units_course_title"`
	Description string  `json:"description"`
	CourseID    uint    `json:"course_id" gorm:"not null;index;uniqueIndex:idx_units_course_title"`
	Order       int     `json:"order" gorm:"default:0"`
	Course      *Course `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
