package user

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;size:254;not null;uniqueIndex"`
	Username     string    `gorm:"column:username;size:150;not null;uniqueIndex"`
	FirstName    string    `gorm:"column:first_name;size:150;not null"`
	LastName     string    `gorm:"column:last_name;size:150;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Role         Role      `gorm:"column:role;size:16;not null;default:user"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
