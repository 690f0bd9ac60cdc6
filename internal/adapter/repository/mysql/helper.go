package mysql

import "gorm.io/gorm"

// paginate returns a scope applying page/perPage offsets. Page and perPage
// are normalized by the HTTP layer; zero values mean "no paging".
func paginate(page, perPage int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if perPage <= 0 {
			return db
		}
		if page < 1 {
			page = 1
		}
		return db.Offset((page - 1) * perPage).Limit(perPage)
	}
}
