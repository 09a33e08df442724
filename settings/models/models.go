package models

// ---- Display preferences ----

type DisplayPreferences struct {
	Units     string `json:"units"` // metric or imperial
	WeekStart string `json:"weekStart"`
	Theme     string `json:"theme"`
	Language  string `json:"language"`
}

type UpdateDisplayPreferencesRequest struct {
	Units     *string `json:"units"`
	WeekStart *string `json:"weekStart"`
	Theme     *string `json:"theme"`
	Language  *string `json:"language"`
}

// ---- Training preferences ----

type TrainingPreferences struct {
	PreferredDays    []string `json:"preferredDays"`
	SessionMinutes   int      `json:"sessionMinutes"`
	HomeEquipment    []string `json:"homeEquipment"`
	RestDayReminders bool     `json:"restDayReminders"`
}

type UpdateTrainingPreferencesRequest struct {
	PreferredDays    []string `json:"preferredDays"`
	SessionMinutes   *int     `json:"sessionMinutes"`
	HomeEquipment    []string `json:"homeEquipment"`
	RestDayReminders *bool    `json:"restDayReminders"`
}

// ---- Notifications ----

type NotificationPreferences struct {
	WorkoutReminders bool   `json:"workoutReminders"`
	MealReminders    bool   `json:"mealReminders"`
	WeeklySummary    bool   `json:"weeklySummary"`
	ReminderTime     string `json:"reminderTime"`
}

type UpdateNotificationPreferencesRequest struct {
	WorkoutReminders *bool   `json:"workoutReminders"`
	MealReminders    *bool   `json:"mealReminders"`
	WeeklySummary    *bool   `json:"weeklySummary"`
	ReminderTime     *string `json:"reminderTime"`
}

// ---- Privacy ----

type PrivacyPreferences struct {
	ShareProgress   bool `json:"shareProgress"`
	PublicProfile   bool `json:"publicProfile"`
	AnalyticsOptOut bool `json:"analyticsOptOut"`
}

type UpdatePrivacyPreferencesRequest struct {
	ShareProgress   *bool `json:"shareProgress"`
	PublicProfile   *bool `json:"publicProfile"`
	AnalyticsOptOut *bool `json:"analyticsOptOut"`
}
