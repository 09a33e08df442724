package routes

import (
	"github.com/gin-gonic/gin"

	c "github.com/fitgate/fitgate/settings/controllers"
)

func RegisterSettingsRoutes(r *gin.Engine) {
	// Display
	r.GET("/preferences/display", c.GetDisplayPreferences)
	r.PUT("/preferences/display", c.UpdateDisplayPreferences)

	// Training
	r.GET("/preferences/training", c.GetTrainingPreferences)
	r.PUT("/preferences/training", c.UpdateTrainingPreferences)

	// Notifications
	r.GET("/preferences/notifications", c.GetNotificationPreferences)
	r.PUT("/preferences/notifications", c.UpdateNotificationPreferences)

	// Privacy
	r.GET("/preferences/privacy", c.GetPrivacyPreferences)
	r.PUT("/preferences/privacy", c.UpdatePrivacyPreferences)
}
