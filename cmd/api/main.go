package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"dapurkita/internal/adapter/api"
	"dapurkita/internal/adapter/api/handler"
	apimiddleware "dapurkita/internal/adapter/api/middleware"
	"dapurkita/internal/adapter/api/router"
	"dapurkita/internal/adapter/repository"
	"dapurkita/internal/infrastructure/firebase"
	"dapurkita/internal/infrastructure/notification"
	"dapurkita/internal/infrastructure/websocket"
	"dapurkita/internal/usecase"
	"dapurkita/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	// Try to get service account from environment variable (for production)
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		// Fallback to file path (for local development)
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	dispatcher := notification.NewDispatcher(wsManager)
	dispatcher.Start(ctx)

	handler.SetupHealthHandler(firebaseAuthClient)
	handler.SetupDevTokenHandler(firebaseAuthClient, userRepo)

	contactUseCase := usecase.NewContactUseCase(userRepo)
	messagingUseCase := usecase.NewMessagingUseCase(messageRepo, userRepo, dispatcher)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)

	contactHandler := handler.NewContactHandler(contactUseCase)
	messageHandler := handler.NewMessageHandler(messagingUseCase)
	wsHandler := handler.NewWebSocketHandler(wsManager, authMiddleware)

	router.SetupHealthRouter(e)
	router.SetupMessageRouter(e, messageHandler, contactHandler, authMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)
	router.SetupDevRouter(e, cfg.Environment)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
