package notif

import (
	"context"
	"log/slog"

	"msgboard/internal/common"
)

// Observer is told about every notification after it has been stored.
type Observer interface {
	Name() string
	Update(ctx context.Context, n *common.Notification) error
}

// LogObserver writes one structured line per appended notification.
type LogObserver struct {
	logger *slog.Logger
}

func NewLogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) Name() string {
	return "log"
}

func (o *LogObserver) Update(ctx context.Context, n *common.Notification) error {
	o.logger.InfoContext(ctx, "notification appended",
		"message_id", n.ID,
		"type", n.Event.Type().String(),
		"to_user", n.ToUser,
		"from_user", n.FromUser,
	)
	return nil
}
