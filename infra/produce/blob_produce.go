package produce

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	BlobExchange = "photo.exchange"

	// BlobCleanupQueue carries filenames whose compensating delete failed
	// during ingestion. The consumer retries the delete so orphan blobs do
	// not accumulate.
	BlobCleanupQueue      = "photo.blob_cleanup"
	BlobCleanupRoutingKey = "photo.blob_cleanup"
)

// BlobCleanupMessage asks the consumer to remove an orphaned object.
type BlobCleanupMessage struct {
	Filename  string `json:"filename"`
	Reason    string `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}

type BlobService struct {
	channel *amqp.Channel
}

func InitBlobService(channel *amqp.Channel) *BlobService {
	service := &BlobService{
		channel: channel,
	}

	err := channel.ExchangeDeclare(
		BlobExchange,
		"direct",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		panic("Failed to declare Blob exchange: " + err.Error())
	}

	_, err = channel.QueueDeclare(
		BlobCleanupQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		panic("Failed to declare Blob cleanup queue: " + err.Error())
	}

	err = channel.QueueBind(
		BlobCleanupQueue,
		BlobCleanupRoutingKey,
		BlobExchange,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to bind Blob cleanup queue: " + err.Error())
	}

	return service
}

func (s *BlobService) PublishBlobCleanup(ctx context.Context, filename, reason string) error {
	message := BlobCleanupMessage{
		Filename:  filename,
		Reason:    reason,
		Timestamp: time.Now().Unix(),
	}

	body, err := json.Marshal(message)
	if err != nil {
		return err
	}

	return s.channel.PublishWithContext(
		ctx,
		BlobExchange,
		BlobCleanupRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
}
