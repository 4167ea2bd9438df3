package testutil

import (
	"testing"

	"learnhub/auth"
	"learnhub/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Password is the plain-text password of every seeded user.
const Password = "password123"

func SeedUser(tb testing.TB, tx *gorm.DB, email string, admin bool) *models.User {
	tb.Helper()
	hashed, err := auth.HashPassword(Password, 4)
	if err != nil {
		tb.Fatalf("hash password: %v", err)
	}
	u := &models.User{
		Email:          email,
		FullName:       "Test User",
		HashedPassword: hashed,
		IsActive:       true,
		IsAdmin:        admin,
	}
	if err := tx.Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedCategory(tb testing.TB, tx *gorm.DB, name string) *models.Category {
	tb.Helper()
	c := &models.Category{Name: name, Description: "about " + name}
	if err := tx.Create(c).Error; err != nil {
		tb.Fatalf("seed category: %v", err)
	}
	return c
}

func SeedCourse(tb testing.TB, tx *gorm.DB, categoryID uint, title string, order int) *models.Course {
	tb.Helper()
	c := &models.Course{Title: title, Description: "course", CategoryID: categoryID, Order: order}
	if err := tx.Create(c).Error; err != nil {
		tb.Fatalf("seed course: %v", err)
	}
	return c
}

func SeedUnit(tb testing.TB, tx *gorm.DB, courseID uint, title string, order int) *models.Unit {
	tb.Helper()
	u := &models.Unit{Title: title, Description: "unit", CourseID: courseID, Order: order}
	if err := tx.Create(u).Error; err != nil {
		tb.Fatalf("seed unit: %v", err)
	}
	return u
}

func SeedVideo(tb testing.TB, tx *gorm.DB, unitID uint, title string, order int) *models.Video {
	tb.Helper()
	v := &models.Video{
		Title:         title,
		Description:   "video",
		URL:           "https://videos.example.com/" + title,
		UnitID:        unitID,
		Order:         order,
		VideoMetadata: datatypes.JSONMap{},
	}
	if err := tx.Create(v).Error; err != nil {
		tb.Fatalf("seed video: %v", err)
	}
	return v
}

func SeedQuiz(tb testing.TB, tx *gorm.DB, videoID uint, questions ...models.QuizQuestion) *models.Quiz {
	tb.Helper()
	q := &models.Quiz{Title: "quiz", VideoID: videoID, Questions: questions}
	if err := tx.Create(q).Error; err != nil {
		tb.Fatalf("seed quiz: %v", err)
	}
	return q
}

// Hierarchy is one category with one course, one unit and one video.
type Hierarchy struct {
	Category *models.Category
	Course   *models.Course
	Unit     *models.Unit
	Video    *models.Video
}

func SeedHierarchy(tb testing.TB, tx *gorm.DB) Hierarchy {
	tb.Helper()
	cat := SeedCategory(tb, tx, "Math")
	course := SeedCourse(tb, tx, cat.ID, "Algebra", 1)
	unit := SeedUnit(tb, tx, course.ID, "Equations", 1)
	video := SeedVideo(tb, tx, unit.ID, "Linear", 1)
	return Hierarchy{Category: cat, Course: course, Unit: unit, Video: video}
}
