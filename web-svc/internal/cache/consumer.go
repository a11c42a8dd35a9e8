package cache

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
)

// Consumer applies invalidation events published by other instances to the
// local cache view.
type Consumer struct {
	Reader *kafka.Reader
	Cache  TagCache
}

func NewConsumer(reader *kafka.Reader, cache TagCache) *Consumer {
	return &Consumer{
		Reader: reader,
		Cache:  cache,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting cache invalidation consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading invalidation message: %v", err)
			continue
		}

		var msg InvalidationMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling invalidation message: %v", err)
			continue
		}

		c.Process(ctx, msg)
	}
}

func (c *Consumer) Process(ctx context.Context, msg InvalidationMessage) {
	if msg.Type != "invalidate" {
		return
	}
	for _, tag := range msg.Tags {
		if err := c.Cache.InvalidateTag(ctx, tag); err != nil {
			log.Printf("Error invalidating tag %q: %v", tag, err)
		}
	}
}
