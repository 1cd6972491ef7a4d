// internal/app/sweep_service.go
package app

import (
	"context"
	"fmt"
	"time"

	"activity_notification_bot/internal/domain/activity"
	"activity_notification_bot/internal/domain/discord"
	"activity_notification_bot/internal/domain/settings"
	"activity_notification_bot/internal/domain/user"
	"activity_notification_bot/internal/infra/config"
	idb "activity_notification_bot/internal/infra/database"

	"github.com/sirupsen/logrus"
)

// SweepRunner defines the single entry point the scheduler (and the manual
// trigger endpoint) invoke on the orchestrator.
type SweepRunner interface {
	// RunSweep performs one best-effort select/format/deliver pass with ref as
	// the reference date. Delivery failures are logged and swallowed per
	// activity; only host-side query failures abort the run.
	RunSweep(ctx context.Context, ref time.Time) error
}

// SweepService implements the SweepRunner interface.
type SweepService struct {
	activityRepo  activity.Repository
	userRepo      user.Repository
	settingsStore settings.Store
	discordClient discord.Client
	logger        *logrus.Logger
	shape         config.MessageShape
	skipArchived  bool
}

func NewSweepService(
	ar activity.Repository,
	ur user.Repository,
	ss settings.Store,
	dc discord.Client,
	logger *logrus.Logger,
	shape config.MessageShape,
	skipArchived bool,
) *SweepService {
	return &SweepService{
		activityRepo:  ar,
		userRepo:      ur,
		settingsStore: ss,
		discordClient: dc,
		logger:        logger,
		shape:         shape,
		skipArchived:  skipArchived,
	}
}

// RunSweep performs one sweep. Nothing here persists state: the same activities
// are re-sent on every run for as long as they match the filter. That is the
// documented behavior of this bridge, not an oversight.
func (s *SweepService) RunSweep(ctx context.Context, ref time.Time) error {
	s.logger.Info("Starting to fetch and send activities")

	token, err := s.readParam(ctx, settings.KeyDiscordBotToken)
	if err != nil {
		return fmt.Errorf("failed to read bot token setting: %w", err)
	}
	channelID, err := s.readParam(ctx, settings.KeyDiscordChannelID)
	if err != nil {
		return fmt.Errorf("failed to read channel ID setting: %w", err)
	}
	if token == "" || channelID == "" {
		s.logger.Warn("Discord token or channel ID not set. Skipping sweep.")
		return nil
	}

	activities, err := s.activityRepo.ListNotifiable(ctx, ref, s.skipArchived)
	if err != nil {
		return fmt.Errorf("failed to list notifiable activities: %w", err)
	}
	if len(activities) == 0 {
		s.logger.Info("No activities found to send")
		return nil
	}
	s.logger.Infof("Fetched %d activities with deadline <= %s", len(activities), ref.Format("2006-01-02"))

	userIDs := collectAssigneeIDs(activities)

	handles, err := s.userRepo.MapDiscordHandles(ctx, userIDs)
	if err != nil {
		return fmt.Errorf("failed to fetch discord handles: %w", err)
	}
	assignees, err := s.userRepo.ListByIDs(ctx, userIDs)
	if err != nil {
		return fmt.Errorf("failed to fetch assignees: %w", err)
	}
	names := make(map[int64]string, len(assignees))
	for _, u := range assignees {
		names[u.ID] = u.Name
	}
	s.logger.Debugf("Resolved %d discord handles for %d assignees", len(handles), len(userIDs))

	webBaseURL := ""
	if s.shape == config.ShapeLead {
		if webBaseURL, err = s.readParam(ctx, settings.KeyWebBaseURL); err != nil {
			return fmt.Errorf("failed to read web base URL setting: %w", err)
		}
	}

	for _, a := range activities {
		handle := ""
		name := ""
		if a.Assigned() {
			handle = handles[a.UserID.Int64]
			name = names[a.UserID.Int64]
		}

		body := FormatActivityMessage(s.shape, a, name, webBaseURL)
		channelMessage := body
		if handle != "" {
			channelMessage = WithMention(body, handle)
		}

		if err := s.discordClient.PostMessage(ctx, token, channelID, channelMessage); err != nil {
			s.logger.Errorf("Failed to send message to Discord channel for activity %d: %v", a.ID, err)
		} else {
			s.logger.Infof("Successfully sent channel message for activity %d", a.ID)
		}

		// DM is attempted even when the channel post failed: every delivery
		// operation is independent.
		if handle != "" {
			s.sendDirectMessage(ctx, token, handle, body, a.ID)
		}
	}

	s.logger.Info("Sweep finished")
	return nil
}

// sendDirectMessage runs the resolve/open/post sequence for one activity. Any
// failure ends the sequence for this activity only.
func (s *SweepService) sendDirectMessage(ctx context.Context, token, handle, message string, activityID int64) {
	discordUserID, err := s.discordClient.LookupUserID(ctx, token, handle)
	if err != nil {
		s.logger.Errorf("Failed to get Discord user ID for handle %q (activity %d): %v", handle, activityID, err)
		return
	}

	dmChannelID, err := s.discordClient.CreateDMChannel(ctx, token, discordUserID)
	if err != nil {
		s.logger.Errorf("Failed to create DM channel for handle %q (activity %d): %v", handle, activityID, err)
		return
	}

	if err := s.discordClient.PostMessage(ctx, token, dmChannelID, message); err != nil {
		s.logger.Errorf("Failed to send DM for handle %q (activity %d): %v", handle, activityID, err)
		return
	}
	s.logger.Infof("Successfully sent DM for activity %d", activityID)
}

// readParam reads one optional settings key; an unset key comes back as "".
func (s *SweepService) readParam(ctx context.Context, key string) (string, error) {
	value, err := s.settingsStore.Get(ctx, key)
	if err != nil {
		if err == idb.ErrParamNotFound {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// collectAssigneeIDs gathers the distinct assignee IDs of a batch, skipping
// unassigned activities, preserving first-seen order.
func collectAssigneeIDs(activities []*activity.Activity) []int64 {
	seen := make(map[int64]bool, len(activities))
	ids := make([]int64, 0, len(activities))
	for _, a := range activities {
		if !a.Assigned() || seen[a.UserID.Int64] {
			continue
		}
		seen[a.UserID.Int64] = true
		ids = append(ids, a.UserID.Int64)
	}
	return ids
}
