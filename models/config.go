package models

type ConfigStruct struct {
	Timezone                     string `json:"timezone"`
	PrivateKey                   string `json:"private_key"`
	HausnationPort               int    `json:"hausnation_port"`
	HausnationName               string `json:"hausnation_name"`
	HausnationExternalURL        string `json:"hausnation_external_url"`
	HausnationVersion            string `json:"hausnation_version"`
	HausnationEnvironment        string `json:"hausnation_environment"`
	HausnationLogLevel           string `json:"hausnation_log_level"`
	HausnationBackupOnStartUp    bool   `json:"hausnation_backup_on_start_up"`
	HausnationBackupCronSchedule string `json:"hausnation_backup_cron_schedule"`
	AdminUsername                string `json:"admin_username"`
	AdminPassword                string `json:"admin_password"`
	SpotifyClientID              string `json:"spotify_client_id"`
	SpotifyClientSecret          string `json:"spotify_client_secret"`
	RecaptchaSecretKey           string `json:"recaptcha_secret_key"`
	SMTPEnabled                  bool   `json:"smtp_enabled"`
	SMTPHost                     string `json:"smtp_host"`
	SMTPPort                     int    `json:"smtp_port"`
	SMTPUsername                 string `json:"smtp_username"`
	SMTPPassword                 string `json:"smtp_password"`
	SMTPFrom                     string `json:"smtp_from"`
	ContactRecipient             string `json:"contact_recipient"`
}

// ConfigEnvironment mirrors the environment variables the server accepts.
// Values set in the environment override the config file.
type ConfigEnvironment struct {
	Port                int    `env:"PORT"`
	AdminUsername       string `env:"ADMIN_USERNAME"`
	AdminPassword       string `env:"ADMIN_PASSWORD"`
	SpotifyClientID     string `env:"SPOTIFY_CLIENT_ID"`
	SpotifyClientSecret string `env:"SPOTIFY_CLIENT_SECRET"`
	RecaptchaSecretKey  string `env:"RECAPTCHA_SECRET_KEY"`
}
