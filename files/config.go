package files

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joeshaw/envdecode"
	"github.com/scalaxyz/hausnation-backend/models"
	"github.com/sirupsen/logrus"
)

var hausnationVersionParameter = "{{RELEASE_TAG}}"
var configPath, _ = filepath.Abs("./config")
var configFile = filepath.Join(configPath, "config.json")

// SetConfigPath points the config loader at a different directory. Used by tests.
func SetConfigPath(path string) {
	configPath = path
	configFile = filepath.Join(configPath, "config.json")
}

func GetConfig() (config models.ConfigStruct, err error) {
	config = models.ConfigStruct{}

	// Create config.json if it doesn't exist
	if _, err := os.Stat(configFile); errors.Is(err, os.ErrNotExist) {
		fmt.Println("Config file does not exist. Creating...")

		err := CreateConfigFile()
		if err != nil {
			return config, err
		}
	}

	file, err := os.Open(configFile)
	if err != nil {
		fmt.Println("Get config file threw error trying to open the file.")
		return config, err
	}
	defer file.Close()
	decoder := json.NewDecoder(file)

	err = decoder.Decode(&config)
	if err != nil {
		fmt.Println("Get config file threw error trying to parse the file.")
		return config, err
	}

	anythingChanged := false

	if config.PrivateKey == "" {
		// Set new value
		newKey, err := GenerateSecureKey(64)
		if err != nil {
			return config, errors.New("Failed to generate secure key. Error: " + err.Error())
		}
		config.PrivateKey = newKey
		anythingChanged = true
	}

	if config.HausnationName == "" {
		// Set new value
		config.HausnationName = "Hausnation"
		anythingChanged = true
	}

	if config.HausnationEnvironment == "" {
		// Set new value
		config.HausnationEnvironment = "prod"
		anythingChanged = true
	}

	if config.HausnationPort == 0 {
		// Set new value
		config.HausnationPort = 3000
		anythingChanged = true
	}

	if config.AdminUsername == "" {
		// Set new value
		config.AdminUsername = "admin"
		anythingChanged = true
	}

	if config.AdminPassword == "" {
		// Set new value
		config.AdminPassword = "changethispassword"
		anythingChanged = true
	}

	if config.HausnationBackupCronSchedule == "" {
		// Set new value
		config.HausnationBackupCronSchedule = "0 0 4 * * *"
		anythingChanged = true
	}

	if config.ContactRecipient == "" {
		// Set new value
		config.ContactRecipient = "contact@hausnation.com"
		anythingChanged = true
	}

	if config.HausnationLogLevel == "" {
		level := logrus.InfoLevel
		config.HausnationLogLevel = level.String()
		anythingChanged = true
	} else {
		_, err := logrus.ParseLevel(config.HausnationLogLevel)
		if err != nil {
			level := logrus.InfoLevel
			config.HausnationLogLevel = level.String()
			anythingChanged = true
		}
	}

	if anythingChanged {
		// Save new version of config json
		err = SaveConfig(config)
		if err != nil {
			return config, err
		}
	}

	config = applyEnvironment(config)
	config.HausnationVersion = hausnationVersionParameter

	// Return config object
	return config, nil
}

// applyEnvironment overlays environment variables on top of the config file.
// Environment values are not written back to disk.
func applyEnvironment(config models.ConfigStruct) models.ConfigStruct {
	environment := models.ConfigEnvironment{}

	err := envdecode.Decode(&environment)
	if err != nil && !errors.Is(err, envdecode.ErrInvalidTarget) {
		fmt.Println("failed to decode environment variables. error: " + err.Error())
		return config
	}

	if environment.Port != 0 {
		config.HausnationPort = environment.Port
	}
	if environment.AdminUsername != "" {
		config.AdminUsername = environment.AdminUsername
	}
	if environment.AdminPassword != "" {
		config.AdminPassword = environment.AdminPassword
	}
	if environment.SpotifyClientID != "" {
		config.SpotifyClientID = environment.SpotifyClientID
	}
	if environment.SpotifyClientSecret != "" {
		config.SpotifyClientSecret = environment.SpotifyClientSecret
	}
	if environment.RecaptchaSecretKey != "" {
		config.RecaptchaSecretKey = environment.RecaptchaSecretKey
	}

	return config
}

// Creates empty config.json
func CreateConfigFile() error {
	var config models.ConfigStruct

	config.HausnationPort = 3000
	config.HausnationName = "Hausnation"
	config.HausnationEnvironment = "prod"
	config.HausnationVersion = hausnationVersionParameter
	config.HausnationBackupCronSchedule = "0 0 4 * * *"
	config.AdminUsername = "admin"
	config.AdminPassword = "changethispassword"
	config.ContactRecipient = "contact@hausnation.com"

	level := logrus.InfoLevel
	config.HausnationLogLevel = level.String()

	privateKey, err := GenerateSecureKey(64)
	if err != nil {
		fmt.Println("Failed to generate private key. Error: " + err.Error())
		return err
	}
	config.PrivateKey = privateKey

	err = SaveConfig(config)
	if err != nil {
		fmt.Println("Create config file threw error trying to save the file.")
		return err
	}

	return nil
}

// Saves the given config struct as config.json
func SaveConfig(config models.ConfigStruct) error {

	err := os.MkdirAll(configPath, os.ModePerm)
	if err != nil {
		return errors.New("Failed to create directory for config.")
	}

	file, err := json.MarshalIndent(config, "", "	")
	if err != nil {
		return err
	}

	err = os.WriteFile(configFile, file, 0644)
	if err != nil {
		return err
	}

	return nil
}

// GetPrivateKey returns the token signing key from the config file.
func GetPrivateKey() ([]byte, error) {
	configFile, err := GetConfig()
	if err != nil {
		return nil, errors.New("failed to load config for private key. error: " + err.Error())
	}

	secretKey, err := base64.StdEncoding.DecodeString(configFile.PrivateKey)
	if err != nil {
		return nil, errors.New("failed to decode private key. error: " + err.Error())
	}

	return secretKey, nil
}

// GenerateSecureKey creates a cryptographically secure random key of the given length (in bytes).
func GenerateSecureKey(length int) (string, error) {
	key := make([]byte, length)
	_, err := rand.Read(key)
	if err != nil {
		return "", err
	}
	// Encode to Base64 to make it easy to store
	return base64.StdEncoding.EncodeToString(key), nil
}
