package domain

// Role strings. Self-registration may only ever grant RoleUser.
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// User is an account record. Password holds a bcrypt hash once persisted;
// it is never serialized.
type User struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	Email     string   `gorm:"uniqueIndex;size:255;not null" json:"email" validate:"required,email"`
	Password  string   `gorm:"size:100;not null" json:"-" validate:"required"`
	Nom       string   `gorm:"size:64" json:"nom" validate:"required"`
	Prenom    string   `gorm:"size:64" json:"prenom" validate:"required"`
	Telephone string   `gorm:"size:32" json:"telephone" validate:"required"`
	Roles     []string `gorm:"serializer:json;type:text" json:"roles"`
}

func (User) TableName() string { return "user" }

type UserRepository interface {
	Create(u *User) error
	FindByID(id uint) (*User, error)
	FindByEmail(email string) (*User, error)
}
