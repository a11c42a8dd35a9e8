package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

type InvalidationMessage struct {
	Type      string    `json:"type"`
	Tags      []string  `json:"tags"`
	Timestamp time.Time `json:"timestamp"`
}

type Publisher interface {
	PublishInvalidation(ctx context.Context, msg InvalidationMessage) error
}

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishInvalidation(ctx context.Context, msg InvalidationMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("WARNING: failed to encode invalidation for %v: %v", msg.Tags, err)
		return err
	}
	key := ""
	if len(msg.Tags) > 0 {
		key = msg.Tags[0]
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
	})
}

// Invalidator expires tags locally and fans the invalidation out to the other
// instances. Publish failures are logged and swallowed: the short cache TTL is
// the backstop, a stale listing for a few seconds beats a failed mutation.
type Invalidator struct {
	Cache     TagCache
	Publisher Publisher
}

func NewInvalidator(cache TagCache, publisher Publisher) *Invalidator {
	return &Invalidator{Cache: cache, Publisher: publisher}
}

func (i *Invalidator) Invalidate(ctx context.Context, tags ...string) {
	for _, tag := range tags {
		if err := i.Cache.InvalidateTag(ctx, tag); err != nil {
			log.Printf("WARNING: failed to invalidate tag %q: %v", tag, err)
		}
	}

	if i.Publisher != nil {
		msg := InvalidationMessage{
			Type:      "invalidate",
			Tags:      tags,
			Timestamp: time.Now(),
		}
		if err := i.Publisher.PublishInvalidation(ctx, msg); err != nil {
			log.Printf("WARNING: failed to publish invalidation for %v: %v", tags, err)
		}
	}
}
