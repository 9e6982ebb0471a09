package routers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scalaxyz/hausnation-backend/files"
	"github.com/scalaxyz/hausnation-backend/logger"
	"github.com/scalaxyz/hausnation-backend/middleware"
	"github.com/scalaxyz/hausnation-backend/models"
	"golang.org/x/crypto/bcrypt"
)

// APILogin validates the admin credential and issues a session token.
func APILogin(context *gin.Context) {
	var request models.LoginRequest
	if err := context.ShouldBindJSON(&request); err != nil || request.Username == "" || request.Password == "" {
		context.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username and password are required"})
		return
	}

	admin, err := files.ReadAdmin()
	if err != nil {
		logger.Log.Error("failed to read admin credential. error: " + err.Error())
		context.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed"})
		return
	}

	if request.Username != admin.Username {
		context.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(request.Password))
	if err != nil {
		context.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, err := middleware.GenerateAdminSession(admin.Username)
	if err != nil {
		logger.Log.Error("failed to generate session token. error: " + err.Error())
		context.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed"})
		return
	}

	context.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
	})
}
