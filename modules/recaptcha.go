package modules

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/scalaxyz/hausnation-backend/logger"
	"github.com/scalaxyz/hausnation-backend/models"
)

// ErrRecaptchaRejected means the provider reported failure or a trust score
// below the threshold.
var ErrRecaptchaRejected = errors.New("reCAPTCHA verification failed")

// recaptchaMinScore is the v3 trust threshold. Scores below it are
// rejected, the threshold itself passes.
const recaptchaMinScore = 0.5

var recaptchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"
var recaptchaHTTP = &http.Client{Timeout: 10 * time.Second}

// VerifyRecaptchaToken posts the client token and server secret to the
// siteverify endpoint. Returns ErrRecaptchaRejected when the provider says
// no or scores the request below the threshold, any other error means the
// verification itself could not be performed.
func VerifyRecaptchaToken(token string, secret string) error {
	form := url.Values{}
	form.Set("secret", secret)
	form.Set("response", token)

	resp, err := recaptchaHTTP.PostForm(recaptchaVerifyURL, form)
	if err != nil {
		logger.Log.Error("recaptcha verification request failed. error: " + err.Error())
		return errors.New("reCAPTCHA verification error")
	}
	defer resp.Body.Close()

	var verification models.RecaptchaVerifyResponse
	err = json.NewDecoder(resp.Body).Decode(&verification)
	if err != nil {
		logger.Log.Error("failed to parse recaptcha response. error: " + err.Error())
		return errors.New("reCAPTCHA verification error")
	}

	if !verification.Success || verification.Score < recaptchaMinScore {
		logger.Log.Debug("recaptcha rejected. success: " + boolString(verification.Success))
		return ErrRecaptchaRejected
	}

	return nil
}

// SetRecaptchaVerifyURL overrides the siteverify endpoint. Used by tests.
func SetRecaptchaVerifyURL(verifyURL string) {
	recaptchaVerifyURL = verifyURL
}

func boolString(value bool) string {
	if value {
		return "true"
	}
	return "false"
}
