package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"mealgate/config"
	httpapi "mealgate/web-svc/internal/api/http"
	"mealgate/web-svc/internal/cache"
	"mealgate/web-svc/internal/client"

	"github.com/google/uuid"
	"github.com/rs/cors"
)

const invalidationTopic = "cache-invalidation"

func main() {
	config.Load()

	api := client.New(client.Config{
		APIURL:  config.Getenv("API_URL", "http://localhost:4000/api/v1"),
		AuthURL: config.Getenv("AUTH_URL", "http://localhost:4000/api/auth"),
	}, &http.Client{})

	rdb := config.MustInitRedis()
	pages := cache.NewPageCache(rdb, 10*time.Second)

	writer := config.NewKafkaWriter(invalidationTopic)
	defer writer.Close()
	tags := cache.NewInvalidator(pages, cache.NewKafkaPublisher(writer))

	// Unique group per instance so every instance sees every invalidation.
	reader := config.NewKafkaReader(invalidationTopic, "web-svc-"+uuid.NewString())
	defer reader.Close()
	consumer := cache.NewConsumer(reader, pages)
	go consumer.Start(context.Background())

	h := httpapi.NewHandler(api, pages, tags)
	h.PublicURL = config.Getenv("PUBLIC_URL", "http://localhost:8080")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(h.SetupRoutes())

	port := config.Getenv("PORT", "8080")
	log.Println("Web service starting on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
