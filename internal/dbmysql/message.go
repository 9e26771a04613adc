package dbmysql

import (
	"time"

	"msgboard/internal/common"
)

// Message is a board post.
type Message struct {
	ID        uint64               `gorm:"primaryKey;autoIncrement" json:"id"`
	Author    string               `gorm:"column:author;size:15;not null;index" json:"author"`
	Content   string               `gorm:"column:content;type:text;not null" json:"content"`
	Status    common.MessageStatus `gorm:"column:status;not null;default:1" json:"status"`
	CreatedAt time.Time            `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt *time.Time           `gorm:"column:updated_at;autoUpdateTime:false" json:"updated_at,omitempty"`
}

func (Message) TableName() string {
	return "messages"
}
