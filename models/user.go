package models

// User is the site owner's account row. There is no login endpoint; the row is
// provisioned at startup from ADMIN_USERNAME / ADMIN_PASSWORD.
type User struct {
	ID       uint   `json:"id" db:"id" gorm:"primaryKey"`
	Username string `json:"username" db:"username" gorm:"type:text;not null;uniqueIndex:idx_users_username"`
	Password string `json:"-" db:"password" gorm:"type:text;not null"`
}
