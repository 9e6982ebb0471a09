package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scalaxyz/hausnation-backend/files"
	"github.com/scalaxyz/hausnation-backend/logger"
	"github.com/scalaxyz/hausnation-backend/modules"
)

// VerifyRecaptcha gates a route on a reCAPTCHA token in the request body.
// The body is restored for the wrapped handler.
func VerifyRecaptcha() gin.HandlerFunc {
	return func(context *gin.Context) {
		body, err := io.ReadAll(context.Request.Body)
		if err != nil {
			context.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
			return
		}
		context.Request.Body = io.NopCloser(bytes.NewBuffer(body))

		var payload struct {
			RecaptchaToken string `json:"recaptchaToken"`
		}
		err = json.Unmarshal(body, &payload)
		if err != nil || payload.RecaptchaToken == "" {
			context.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "message": "reCAPTCHA token is required"})
			return
		}

		config, err := files.GetConfig()
		if err != nil {
			logger.Log.Error("failed to load config for recaptcha check. error: " + err.Error())
			context.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "reCAPTCHA verification error"})
			return
		}

		err = modules.VerifyRecaptchaToken(payload.RecaptchaToken, config.RecaptchaSecretKey)
		if err != nil {
			if errors.Is(err, modules.ErrRecaptchaRejected) {
				context.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "message": "reCAPTCHA verification failed"})
				return
			}
			context.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "reCAPTCHA verification error"})
			return
		}

		context.Next()
	}
}
