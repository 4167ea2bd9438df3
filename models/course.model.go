package models

// Course titles are unique within their category.
type Course struct {
	Model
	Title       string    `json:"title" gorm:"not null;uniqueIndex:idx_courses_category_title"`
	Description string    `json:"description"`
	CategoryID  uint      `json:"category_id" gorm:"not null;index;uniqueIndex:idx_courses_category_title"`
	Order       int       `json:"order" gorm:"default:0"`
	Category    *Category `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}
