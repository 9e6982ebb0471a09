package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	_ "time/tzdata"

	"codnect.io/chrono"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/scalaxyz/hausnation-backend/files"
	"github.com/scalaxyz/hausnation-backend/logger"
	"github.com/scalaxyz/hausnation-backend/middleware"
	"github.com/scalaxyz/hausnation-backend/models"
	"github.com/scalaxyz/hausnation-backend/modules"
	"github.com/scalaxyz/hausnation-backend/routers"
	"github.com/scalaxyz/hausnation-backend/utilities"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	utilities.PrintASCII()

	// Load config file
	configFile, err := files.GetConfig()
	if err != nil {
		fmt.Println("failed to load configuration file. error: " + err.Error())
		os.Exit(1)
	}
	fmt.Println("configuration file loaded")

	// Create and define file for logging
	logger.InitLogger(configFile)

	// Set GIN mode
	if configFile.HausnationEnvironment != "test" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Change the config to respect flags
	configFile, err = parseFlags(configFile)
	if err != nil {
		logger.Log.Fatal("failed to parse input flags. error: " + err.Error())
		os.Exit(1)
	}
	logger.Log.Info("flags parsed")

	// Set time zone from config if it is not empty
	if configFile.Timezone != "" {
		loc, err := time.LoadLocation(configFile.Timezone)
		if err != nil {
			logger.Log.Info("failed to set time zone from config. error: " + err.Error())
			logger.Log.Info("removing value...")

			configFile.Timezone = ""
			err = files.SaveConfig(configFile)
			if err != nil {
				logger.Log.Fatal("failed to set new time zone in the config. error: " + err.Error())
				os.Exit(1)
			}

		} else {
			time.Local = loc
		}
	}
	logger.Log.Info("timezone set")

	// Initialize data files
	err = files.InitDataFiles()
	if err != nil {
		logger.Log.Fatal("failed to initialize data files. error: " + err.Error())
		os.Exit(1)
	}
	logger.Log.Info("data files initialized")

	// Seed admin account if not present
	err = initAdmin(configFile)
	if err != nil {
		logger.Log.Fatal("failed to initialize admin account. error: " + err.Error())
		os.Exit(1)
	}

	// Create task scheduler for data file backups
	taskScheduler := chrono.NewDefaultTaskScheduler()

	_, err = taskScheduler.ScheduleWithCron(func(ctx context.Context) {
		backupData()
	}, configFile.HausnationBackupCronSchedule)
	if err != nil {
		logger.Log.Info("backup task was not scheduled successfully.")
	}

	if configFile.HausnationBackupOnStartUp {
		backupData()
	}

	// Shared Spotify session for the artist routes
	routers.SetSpotifyClient(modules.NewSpotifyClient(configFile.SpotifyClientID, configFile.SpotifyClientSecret))

	// Initialize Router
	router := initRouter()

	logger.Log.Info("router initialized.")

	log.Fatal(router.Run(":" + strconv.Itoa(configFile.HausnationPort)))
}

func initRouter() *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowOriginFunc:  func(origin string) bool { return true },
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", routers.APIIndex)

	// API endpoint
	api := router.Group("/api")
	{
		api.GET("/health", routers.APIHealth)

		auth := api.Group("/auth")
		{
			auth.POST("/login", routers.APILogin)
		}

		artists := api.Group("/artists")
		{
			artists.GET("", routers.APIGetArtists)
			artists.GET("/:id", routers.APIGetArtist)
			artists.POST("/search-spotify", middleware.ValidateAdminSession(), routers.APISearchSpotify)
			artists.POST("", middleware.ValidateAdminSession(), routers.APIAddArtist)
			artists.DELETE("/:id", middleware.ValidateAdminSession(), routers.APIDeleteArtist)
		}

		releases := api.Group("/releases")
		{
			releases.GET("", routers.APIGetReleases)
			releases.GET("/:id", routers.APIGetRelease)
			releases.GET("/artist/:artistId", routers.APIGetArtistReleases)
			releases.DELETE("/:id", middleware.ValidateAdminSession(), routers.APIDeleteRelease)
		}

		api.POST("/contact", middleware.VerifyRecaptcha(), routers.APIContact)
	}

	router.NoRoute(routers.APINotFound)

	return router
}

// initAdmin writes the single admin credential on first boot.
func initAdmin(configFile models.ConfigStruct) error {
	admin, err := files.ReadAdmin()
	if err != nil {
		return err
	}

	if admin.Username != "" && admin.Password != "" {
		return nil
	}

	valid, requirements, err := utilities.ValidatePasswordFormat(configFile.AdminPassword)
	if err != nil {
		return err
	} else if !valid {
		logger.Log.Warn("admin password is weak. " + requirements)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(configFile.AdminPassword), 10)
	if err != nil {
		return err
	}

	err = files.WriteAdmin(models.AdminCredential{
		Username: configFile.AdminUsername,
		Password: string(hash),
	})
	if err != nil {
		return err
	}

	logger.Log.Info("admin account initialized")
	return nil
}

func parseFlags(configFile models.ConfigStruct) (models.ConfigStruct, error) {
	// Define flag variables with the configuration file as default values
	var port = flag.Int("port", configFile.HausnationPort, "The port Hausnation is listening on.")
	var externalURL = flag.String("externalurl", configFile.HausnationExternalURL, "The URL others would use to access Hausnation.")
	var timezone = flag.String("tz", configFile.Timezone, "The timezone Hausnation is running in.")
	var dataDir = flag.String("datadir", "", "The directory the JSON data files live in.")

	// Parse the flags from input
	flag.Parse()

	if port != nil {
		configFile.HausnationPort = *port
	}

	if externalURL != nil {
		configFile.HausnationExternalURL = *externalURL
	}

	if timezone != nil {
		configFile.Timezone = *timezone
	}

	if dataDir != nil && *dataDir != "" {
		files.SetDataPath(*dataDir)
	}

	// Failsafe, if port is 0, set to default 3000
	if configFile.HausnationPort == 0 {
		configFile.HausnationPort = 3000
	}

	// Flags are runtime overrides like the environment, never written back
	// to config.json.
	return configFile, nil
}

func backupData() {
	logger.Log.Info("data backup task starting...")

	backupDir, err := files.BackupDataFiles()
	if err != nil {
		logger.Log.Error("failed to back up data files. error: " + err.Error())
		return
	}

	logger.Log.Info("data backup task finished. backup written to: " + backupDir)
}
