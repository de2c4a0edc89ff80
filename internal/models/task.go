package models

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

type Task struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"not null" json:"description"`
	Status      TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	Deadline    string     `gorm:"type:date;not null" json:"deadline"`
	ProjectID   string     `gorm:"size:36;not null" json:"projectId"`
	UserID      string     `gorm:"size:36;not null" json:"userId"`

	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
