// internal/app/message.go
package app

import (
	"fmt"

	"activity_notification_bot/internal/domain/activity"
	"activity_notification_bot/internal/infra/config"
)

const (
	// PlaceholderUnassigned replaces the assignee name when an activity has no
	// assigned user.
	PlaceholderUnassigned = "Unassigned"
	// PlaceholderNoLeadTitle replaces an empty record title in the lead shape.
	PlaceholderNoLeadTitle = "No Lead Title"

	deadlineLayout = "2006-01-02"
)

// FormatActivityMessage renders the message body for one activity. It is total:
// missing data becomes a placeholder, never an error. The result carries no
// mention tag; use WithMention for the shared-channel variant.
func FormatActivityMessage(shape config.MessageShape, a *activity.Activity, assigneeName, webBaseURL string) string {
	if shape == config.ShapeLead {
		title := a.ResName
		if title == "" {
			title = PlaceholderNoLeadTitle
		}
		link := fmt.Sprintf("%s/web#id=%d&model=%s", webBaseURL, a.ResID, a.ResModel)
		return fmt.Sprintf("Lead: %s\nLink: %s\nDeadline: %s\n",
			title, link, a.DateDeadline.Format(deadlineLayout))
	}

	if assigneeName == "" {
		assigneeName = PlaceholderUnassigned
	}
	return fmt.Sprintf("Activity: %s\nType: %s\nDeadline: %s\nAssigned to: %s",
		a.ResName, a.TypeName, a.DateDeadline.Format(deadlineLayout), assigneeName)
}

// WithMention appends the mention tag for the shared-channel variant. The DM
// variant stays unmentioned so recipients are not pinged twice.
func WithMention(body, handle string) string {
	return fmt.Sprintf("%s\n<@%s>", body, handle)
}
