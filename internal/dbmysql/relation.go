package dbmysql

import (
	"time"

	"msgboard/internal/common"
)

// UserRelation links two logins. The pair is unordered for lookups; User is
// whoever applied.
type UserRelation struct {
	ID        uint64                `gorm:"primaryKey;autoIncrement" json:"id"`
	User      string                `gorm:"column:user;size:15;not null;index" json:"user"`
	Friend    string                `gorm:"column:friend;size:15;not null;index" json:"friend"`
	Status    common.RelationStatus `gorm:"column:status;not null" json:"status"`
	CreatedAt time.Time             `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time             `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserRelation) TableName() string {
	return "user_relations"
}

// Other returns the side of the relation that is not login.
func (r *UserRelation) Other(login string) string {
	if r.User == login {
		return r.Friend
	}
	return r.User
}
