package entities

import "time"

type TaskStatus string

const (
	TaskPending    TaskStatus = "PENDING"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
	TaskCancelled  TaskStatus = "CANCELLED"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
	PriorityUrgent TaskPriority = "URGENT"
)

type Task struct {
	Base
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	DueDate     time.Time    `gorm:"index" json:"due_date"`
	Priority    TaskPriority `gorm:"size:16" json:"priority"`
	Status      TaskStatus   `gorm:"index;size:16" json:"status"`
	CropID      *string      `gorm:"size:36;index" json:"crop_id"`
	Crop        *Crop        `json:"crop,omitempty"`
}
