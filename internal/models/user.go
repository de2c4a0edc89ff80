package models

type User struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"not null" json:"email"`

	Tasks []Task `gorm:"foreignKey:UserID" json:"tasks,omitempty"`
}
