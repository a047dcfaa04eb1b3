package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"schoolapp-backend/handler"
	"schoolapp-backend/log"
	"schoolapp-backend/mail"
	"schoolapp-backend/onboarding"
	"schoolapp-backend/store"
)

func envOrDefaultString(env, def string) string {
	if val, ok := os.LookupEnv(env); ok {
		return val
	}

	return def
}

func buildStores() (onboarding.Stores, handler.UserStore) {
	if envOrDefaultString("STORAGE", "mongo") == "memory" {
		log.Logger.Warn("using in-memory stores, records will not survive a restart")
		users := store.NewMemoryUsers()
		return onboarding.Stores{
			Users:     users,
			Profiles:  store.NewMemoryProfiles(),
			Addresses: store.NewMemoryAddresses(),
			Parents:   store.NewMemoryParents(),
			Files:     store.NewMemoryFiles(),
		}, users
	}

	mongoAddr := envOrDefaultString("MONGO_URI", "mongodb://localhost:27017")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoAddr))
	if err != nil {
		log.Logger.Fatal("failed connecting to database", zap.Error(err))
	}

	users := store.NewUsers(client)
	return onboarding.Stores{
		Users:     users,
		Profiles:  store.NewProfiles(client),
		Addresses: store.NewAddresses(client),
		Parents:   store.NewParents(client),
		Files:     store.NewFiles(client),
	}, users
}

func main() {
	flag.Parse()
	_ = godotenv.Load()
	log.EnsureLogger()

	listenAddr := envOrDefaultString("PORT", "5000")
	key := []byte(envOrDefaultString("JWT_KEY", "test-key"))

	stores, users := buildStores()
	svc := onboarding.NewService(stores)

	var notifiers []handler.Notifier
	if envOrDefaultString("EVENTS_ENABLED", "") == "true" {
		notifiers = append(notifiers, handler.EventNotifier{})
	}
	if domain := envOrDefaultString("MAILGUN_DOMAIN", ""); domain != "" {
		m := mail.NewMailer(domain,
			envOrDefaultString("MAILGUN_API_KEY", ""),
			envOrDefaultString("MAILGUN_SENDER", "noreply@"+domain))
		notifiers = append(notifiers, handler.MailNotifier{Mailer: m})
	}

	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterHealth(r)
	handler.NewAuthHandler(svc, users, key, notifiers...).RegisterRoutes(r)
	handler.NewUserHandler(svc, users).RegisterRoutes(r)
	handler.NewRecordsHandler(stores.Profiles, stores.Addresses, stores.Parents, stores.Files).RegisterRoutes(r)

	log.Logger.Info(fmt.Sprintf("Listening on port: %s", listenAddr))
	if err := r.Run(fmt.Sprintf("0.0.0.0:%s", listenAddr)); err != nil {
		log.Logger.Fatal("couldn't serve http", zap.Error(err))
	}
}
