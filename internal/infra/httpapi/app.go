package httpapi

import (
	"activity_notification_bot/internal/domain/settings"

	"github.com/sirupsen/logrus"
)

// SweepTrigger starts one sweep if none is running. Implemented by the
// scheduler so manual triggers share its single-flight guard.
type SweepTrigger interface {
	RunOnce()
}

type App struct {
	Settings settings.Store
	Sweeper  SweepTrigger
	Logger   *logrus.Logger
}
