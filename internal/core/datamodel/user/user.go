package user

import "time"

// User is the persistence model for application accounts. The password
// column holds a bcrypt hash and must never be serialized.
type User struct {
	UserID    int64     `gorm:"column:user_id;primaryKey;autoIncrement"`
	Username  string    `gorm:"column:username;uniqueIndex;not null"`
	Password  string    `gorm:"column:password;not null"`
	Role      string    `gorm:"column:role;not null;default:student"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}
