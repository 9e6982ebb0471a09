package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/scalaxyz/hausnation-backend/files"
	"github.com/scalaxyz/hausnation-backend/logger"
	"golang.org/x/crypto/bcrypt"
)

const sessionDuration = 24 * time.Hour

// GenerateAdminSession issues a signed session token for the admin identity.
func GenerateAdminSession(username string) (string, error) {
	privateKey, err := files.GetPrivateKey()
	if err != nil {
		return "", err
	}

	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionDuration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(privateKey)
}

// validateSessionToken parses a session token and checks it names the
// stored admin identity.
func validateSessionToken(tokenString string, adminUsername string) error {
	privateKey, err := files.GetPrivateKey()
	if err != nil {
		return err
	}

	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return privateKey, nil
	})
	if err != nil {
		return err
	}

	if !token.Valid || claims.Subject != adminUsername {
		return errors.New("invalid session token")
	}

	return nil
}

// ValidateAdminSession gates a route on the single admin identity. The
// bearer value is accepted either as a session token from the login
// endpoint or as the admin secret itself, compared against the stored
// bcrypt hash.
func ValidateAdminSession() gin.HandlerFunc {
	return func(context *gin.Context) {
		header := context.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			context.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization required"})
			return
		}
		bearer := strings.TrimPrefix(header, "Bearer ")

		admin, err := files.ReadAdmin()
		if err != nil {
			logger.Log.Error("failed to read admin credential. error: " + err.Error())
			context.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}

		if err := validateSessionToken(bearer, admin.Username); err == nil {
			context.Next()
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(bearer)); err == nil {
			context.Next()
			return
		}

		context.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired credentials"})
	}
}
