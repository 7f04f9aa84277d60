package model

// swagger:model User
type User struct {
	BaseModel
	FullName string `gorm:"size:100;not null" json:"fullName"`
	Email    string `gorm:"size:100;unique;not null" json:"email"`
	Password string `gorm:"size:100;not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}
