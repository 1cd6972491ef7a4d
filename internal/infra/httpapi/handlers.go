package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"activity_notification_bot/internal/domain/settings"
	idb "activity_notification_bot/internal/infra/database"
)

// SettingsPayload carries the two Discord parameters the admin screen manages.
type SettingsPayload struct {
	DiscordBotToken  string `json:"discord_bot_token"`
	DiscordChannelID string `json:"discord_channel_id"`
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// getSettingsHandler is a pure passthrough to the configuration store; unset
// keys come back as empty strings, not errors.
func (a *App) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	token, err := a.readParam(r.Context(), settings.KeyDiscordBotToken)
	if err != nil {
		a.Logger.Errorf("Failed to read bot token setting: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load settings"})
		return
	}
	channelID, err := a.readParam(r.Context(), settings.KeyDiscordChannelID)
	if err != nil {
		a.Logger.Errorf("Failed to read channel ID setting: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load settings"})
		return
	}
	writeJSON(w, http.StatusOK, SettingsPayload{DiscordBotToken: token, DiscordChannelID: channelID})
}

func (a *App) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var req SettingsPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := a.Settings.Set(r.Context(), settings.KeyDiscordBotToken, req.DiscordBotToken); err != nil {
		a.Logger.Errorf("Failed to store bot token setting: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to store settings"})
		return
	}
	if err := a.Settings.Set(r.Context(), settings.KeyDiscordChannelID, req.DiscordChannelID); err != nil {
		a.Logger.Errorf("Failed to store channel ID setting: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to store settings"})
		return
	}
	writeJSON(w, http.StatusOK, req)
}

// triggerSweepHandler kicks off a sweep outside the cron schedule. The sweep
// runs in the background under the scheduler's single-flight guard.
func (a *App) triggerSweepHandler(w http.ResponseWriter, r *http.Request) {
	go a.Sweeper.RunOnce()
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "sweep triggered"})
}

func (a *App) readParam(ctx context.Context, key string) (string, error) {
	value, err := a.Settings.Get(ctx, key)
	if err != nil {
		if err == idb.ErrParamNotFound {
			return "", nil
		}
		return "", err
	}
	return value, nil
}
