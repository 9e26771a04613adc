package common

import (
	"time"
)

// RelationStatus is the status of a UserRelation row. The numeric values are
// persisted as-is.
type RelationStatus int

const (
	RelationNotAdded  RelationStatus = 1
	RelationApplying  RelationStatus = 2
	RelationApplied   RelationStatus = 3
	RelationAdded     RelationStatus = 4
	RelationRejecting RelationStatus = 5
	RelationRejected  RelationStatus = 6
	RelationDeleted   RelationStatus = 7
)

var relationStatusNames = map[RelationStatus]string{
	RelationNotAdded:  "NOT_ADDED",
	RelationApplying:  "APPLYING",
	RelationApplied:   "APPLIED",
	RelationAdded:     "ADDED",
	RelationRejecting: "REJECTING",
	RelationRejected:  "REJECTED",
	RelationDeleted:   "DELETED",
}

func (s RelationStatus) String() string {
	if name, ok := relationStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// MessageStatus is the visibility of a board post.
type MessageStatus int

const (
	MessageDeleted MessageStatus = 0
	MessagePublic  MessageStatus = 1
	MessagePrivate MessageStatus = 2
)

func (s MessageStatus) String() string {
	switch s {
	case MessageDeleted:
		return "DELETED"
	case MessagePublic:
		return "PUBLIC"
	case MessagePrivate:
		return "PRIVATE"
	}
	return "UNKNOWN"
}

type NotificationType int

const (
	ApplyFriendType    NotificationType = 1
	AnswerQuestionType NotificationType = 2
	SystemMessageType  NotificationType = 3
)

func (t NotificationType) String() string {
	switch t {
	case ApplyFriendType:
		return "APPLY_FRIEND"
	case AnswerQuestionType:
		return "ANSWER_QUESTION"
	case SystemMessageType:
		return "SYSTEM_MESSAGE"
	}
	return "UNKNOWN"
}

type NotificationStatus int

const (
	StatusUnprocessed NotificationStatus = 0
	StatusProcessed   NotificationStatus = 1
)

func (s NotificationStatus) String() string {
	if s == StatusProcessed {
		return "PROCESSED"
	}
	return "UNPROCESSED"
}

// NotificationEvent is the kind-specific part of a notification. Each
// variant carries only the fields its kind needs.
type NotificationEvent interface {
	Type() NotificationType
}

// FriendApplied is sent to the recipient of a friend application.
type FriendApplied struct{}

func (FriendApplied) Type() NotificationType { return ApplyFriendType }

// QuestionAnswered is sent to the asker when someone answers.
type QuestionAnswered struct {
	QuestionID string
}

func (QuestionAnswered) Type() NotificationType { return AnswerQuestionType }

type SystemNotice struct {
	Content string
}

func (SystemNotice) Type() NotificationType { return SystemMessageType }

type Notification struct {
	ID        string
	ToUser    string
	FromUser  string
	Status    NotificationStatus
	CreatedAt time.Time
	Event     NotificationEvent
}

// FeedEntry is a notification as shown to its recipient. Question fields are
// filled only for answer events.
type FeedEntry struct {
	ID            string    `json:"message_id"`
	FromUser      string    `json:"from_user"`
	Type          string    `json:"type"`
	Status        string    `json:"status"`
	Content       string    `json:"content,omitempty"`
	QuestionID    string    `json:"question_id,omitempty"`
	QuestionTitle string    `json:"question_title,omitempty"`
	QuestionURL   string    `json:"question_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
