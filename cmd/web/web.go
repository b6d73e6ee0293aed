package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/recnet/recnet-be/config"
	"github.com/recnet/recnet-be/controllers"
	"github.com/recnet/recnet-be/db/firestore"
	"github.com/recnet/recnet-be/routes"
	"github.com/recnet/recnet-be/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("error loading config: ", err)
	}

	if err := configureFirebaseCredentials(); err != nil {
		log.Fatal("an error occurred while configuring firebase credentials ", err)
	}
	app, err := firebase.NewApp(context.Background(), nil)
	if err != nil {
		log.Fatalf("error initializing firebase: %v\n", err)
	}

	database, err := firestore.GetDatabase(context.Background(), app)
	if err != nil {
		log.Fatal("received err when attempting to connect to the store ", err)
	}
	defer database.Close()

	var postBucket *services.StorageBucket
	if cfg.StorageBucket != "" {
		postBucket, err = services.NewStorageBucket(context.Background(), app, cfg.StorageBucket)
		if err != nil {
			log.Fatal("an error occurred while connecting to the post images bucket ", err)
		}
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.FrontendOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	userController := controllers.NewUserController(database, controllers.BcryptHasher{}, cfg.EmailDomain)
	communityController := controllers.NewCommunityController(database)
	var blobs controllers.BlobChecker
	if postBucket != nil {
		blobs = postBucket
	}
	postController := controllers.NewPostController(database, blobs)
	commentController := controllers.NewCommentController(database)
	voteController := controllers.NewVoteController(database)

	routes.AddUserRoutes(&r.RouterGroup, userController, communityController)
	routes.AddCommunityRoutes(&r.RouterGroup, communityController, postController)
	routes.AddPostRoutes(&r.RouterGroup, postController, commentController, voteController)
	routes.AddFeedRoutes(&r.RouterGroup, database)
	routes.AddHealthCheckRoutes(&r.RouterGroup)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("error when attempting to run web server ", err)
	}
}

const (
	CredentialsPathEnvVar = "GOOGLE_APPLICATION_CREDENTIALS"
	CredentialsJsonEnvVar = "GOOGLE_APPLICATION_CREDENTIALS_JSON"
	TargetCredentialsFile = "./google-application-credentials.json"
)

func configureFirebaseCredentials() error {
	credentialsPath, hasCredentialsPath := os.LookupEnv(CredentialsPathEnvVar)
	if hasCredentialsPath {
		log.Printf("Credentials path detected in env. Expecting credentials to be at %v\n", credentialsPath)
		return nil
	}
	credentialsJson, hasCredentialsJson := os.LookupEnv(CredentialsJsonEnvVar)
	if hasCredentialsJson {
		log.Println("Credentials JSON string detected in env.")
		err := os.WriteFile(TargetCredentialsFile, []byte(credentialsJson), 0400)
		if err != nil {
			return fmt.Errorf("error writing credentials to temp file, %w", err)
		}
		err = os.Setenv(CredentialsPathEnvVar, TargetCredentialsFile)
		if err != nil {
			return fmt.Errorf("error setting %v env var %w", CredentialsPathEnvVar, err)
		}
		return nil
	}
	return fmt.Errorf("must specify either %v (a path)"+
		" or %v (credentials as JSON string)", CredentialsPathEnvVar, CredentialsJsonEnvVar)
}
