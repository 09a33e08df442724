package controllers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	m "github.com/fitgate/fitgate/settings/models"
	u "github.com/fitgate/fitgate/settings/utils"
)

// In-memory state; the settings service is per-user UI state, not the
// source of truth for anything access control depends on.
var (
	mu      sync.Mutex
	display = m.DisplayPreferences{Units: "metric", WeekStart: "monday", Theme: "system", Language: "en"}
	training = m.TrainingPreferences{
		PreferredDays:  []string{"monday", "wednesday", "friday"},
		SessionMinutes: 45,
	}
	notifications = m.NotificationPreferences{WorkoutReminders: true, WeeklySummary: true, ReminderTime: "07:00"}
	privacy       = m.PrivacyPreferences{}
)

// Display

func GetDisplayPreferences(c *gin.Context) {
	mu.Lock()
	defer mu.Unlock()
	u.JSON(c, http.StatusOK, display)
}

func UpdateDisplayPreferences(c *gin.Context) {
	var req m.UpdateDisplayPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		u.Error(c, http.StatusBadRequest, "invalid body")
		return
	}

	mu.Lock()
	defer mu.Unlock()
	if req.Units != nil {
		if *req.Units != "metric" && *req.Units != "imperial" {
			u.Error(c, http.StatusBadRequest, "units must be metric or imperial")
			return
		}
		display.Units = *req.Units
	}
	if req.WeekStart != nil {
		display.WeekStart = *req.WeekStart
	}
	if req.Theme != nil {
		display.Theme = *req.Theme
	}
	if req.Language != nil {
		display.Language = *req.Language
	}
	u.JSON(c, http.StatusOK, display)
}

// Training

func GetTrainingPreferences(c *gin.Context) {
	mu.Lock()
	defer mu.Unlock()
	u.JSON(c, http.StatusOK, training)
}

func UpdateTrainingPreferences(c *gin.Context) {
	var req m.UpdateTrainingPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		u.Error(c, http.StatusBadRequest, "invalid body")
		return
	}

	mu.Lock()
	defer mu.Unlock()
	if req.PreferredDays != nil {
		training.PreferredDays = req.PreferredDays
	}
	if req.SessionMinutes != nil {
		if *req.SessionMinutes < 10 || *req.SessionMinutes > 240 {
			u.Error(c, http.StatusBadRequest, "sessionMinutes must be between 10 and 240")
			return
		}
		training.SessionMinutes = *req.SessionMinutes
	}
	if req.HomeEquipment != nil {
		training.HomeEquipment = req.HomeEquipment
	}
	if req.RestDayReminders != nil {
		training.RestDayReminders = *req.RestDayReminders
	}
	u.JSON(c, http.StatusOK, training)
}

// Notifications

func GetNotificationPreferences(c *gin.Context) {
	mu.Lock()
	defer mu.Unlock()
	u.JSON(c, http.StatusOK, notifications)
}

func UpdateNotificationPreferences(c *gin.Context) {
	var req m.UpdateNotificationPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		u.Error(c, http.StatusBadRequest, "invalid body")
		return
	}

	mu.Lock()
	defer mu.Unlock()
	if req.WorkoutReminders != nil {
		notifications.WorkoutReminders = *req.WorkoutReminders
	}
	if req.MealReminders != nil {
		notifications.MealReminders = *req.MealReminders
	}
	if req.WeeklySummary != nil {
		notifications.WeeklySummary = *req.WeeklySummary
	}
	if req.ReminderTime != nil {
		notifications.ReminderTime = *req.ReminderTime
	}
	u.JSON(c, http.StatusOK, notifications)
}

// Privacy

func GetPrivacyPreferences(c *gin.Context) {
	mu.Lock()
	defer mu.Unlock()
	u.JSON(c, http.StatusOK, privacy)
}

func UpdatePrivacyPreferences(c *gin.Context) {
	var req m.UpdatePrivacyPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		u.Error(c, http.StatusBadRequest, "invalid body")
		return
	}

	mu.Lock()
	defer mu.Unlock()
	if req.ShareProgress != nil {
		privacy.ShareProgress = *req.ShareProgress
	}
	if req.PublicProfile != nil {
		privacy.PublicProfile = *req.PublicProfile
	}
	if req.AnalyticsOptOut != nil {
		privacy.AnalyticsOptOut = *req.AnalyticsOptOut
	}
	u.JSON(c, http.StatusOK, privacy)
}
