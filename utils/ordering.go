package utils

import (
	"fmt"

	"learnhub/apierr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderAsc sorts by the "order" column, quoted for the active dialect, then by id.
var OrderAsc = clause.OrderBy{Columns: []clause.OrderByColumn{
	{Column: clause.Column{Name: "order"}},
	{Column: clause.Column{Name: "id"}},
}}

// NextOrder returns the order value for a new sibling: the number of existing siblings plus one.
func NextOrder(tx *gorm.DB, model interface{}, parentColumn string, parentID uint) (int, error) {
	var count int64
	if err := tx.Model(model).Where(parentColumn+" = ?", parentID).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count) + 1, nil
}

// TitleTaken reports whether a sibling under parentID already uses title. excludeID skips the
// record being renamed; pass 0 on create.
func TitleTaken(tx *gorm.DB, model interface{}, parentColumn string, parentID uint, title string, excludeID uint) (bool, error) {
	q := tx.Model(model).Where(parentColumn+" = ? AND title = ?", parentID, title)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// OrderUpdate is one requested position change.
type OrderUpdate struct {
	ID    uint
	Order int
}

// Reorder overwrites the order column of each listed row inside a single transaction. If any id
// does not exist nothing is written and a NotFound error naming it is returned.
func Reorder(db *gorm.DB, model interface{}, entity string, updates []OrderUpdate) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			res := tx.Model(model).Where("id = ?", u.ID).Update("order", u.Order)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// RowsAffected is 0 both for a missing row and for MySQL's unchanged row.
				var count int64
				if err := tx.Model(model).Where("id = ?", u.ID).Count(&count).Error; err != nil {
					return err
				}
				if count == 0 {
					return apierr.NotFound(fmt.Sprintf("%s with id %d not found", entity, u.ID))
				}
			}
		}
		return nil
	})
}
