// Package repository implements the gorm-backed finders used by the services.
// Finders that look up a single row return (nil, nil) when nothing matches.
package repository

import (
	"strings"

	"gorm.io/gorm"
)

// containsPattern builds a LIKE pattern matching s anywhere, case-folded,
// with LIKE wildcards in s escaped.
func containsPattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(s)) + "%"
}

// whereContains restricts column to rows containing s, ignoring case.
func whereContains(db *gorm.DB, column, s string) *gorm.DB {
	return db.Where("LOWER("+column+") LIKE ? ESCAPE '\\'", containsPattern(s))
}

func first[T any](tx *gorm.DB, conds ...any) (*T, error) {
	var out T
	res := tx.Limit(1).Find(&out, conds...)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &out, nil
}
