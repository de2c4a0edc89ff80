package models

// Dates are calendar-date strings (YYYY-MM-DD), no timezone component.
type Project struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	StartDate   string `gorm:"type:date;not null" json:"startDate"`
	EndDate     string `gorm:"type:date;not null" json:"endDate"`

	Tasks []Task `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
}
