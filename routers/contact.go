package routers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/scalaxyz/hausnation-backend/files"
	"github.com/scalaxyz/hausnation-backend/logger"
	"github.com/scalaxyz/hausnation-backend/models"
	"github.com/scalaxyz/hausnation-backend/modules"
	"github.com/scalaxyz/hausnation-backend/utilities"
	"github.com/sirupsen/logrus"
)

// APIContact receives a contact-form submission. The bot check runs as
// middleware before this handler.
func APIContact(context *gin.Context) {
	var request models.ContactRequest
	if err := context.ShouldBindJSON(&request); err != nil {
		context.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	if request.Name == "" || request.Email == "" || request.Message == "" {
		context.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name, email, and message are required"})
		return
	}

	if !utilities.ValidateEmailFormat(request.Email) {
		context.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid email address"})
		return
	}

	subject := request.Subject
	if subject == "" {
		subject = "No subject"
	}

	referenceID := uuid.New().String()
	logger.Log.WithFields(logrus.Fields{
		"reference": referenceID,
		"name":      request.Name,
		"email":     request.Email,
		"subject":   subject,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}).Info("contact form submission: " + request.Message)

	config, err := files.GetConfig()
	if err == nil && config.SMTPEnabled {
		err = modules.SendContactNotification(config, request)
		if err != nil {
			logger.Log.Error("failed to forward contact submission " + referenceID + " by email. error: " + err.Error())
		}
	}

	context.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Your message has been sent successfully!",
	})
}
