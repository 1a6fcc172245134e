package worker

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/tnqbao/gau-photo-service/infra"
	"github.com/tnqbao/gau-photo-service/infra/produce"
)

// BlobConsumer retries blob deletes that the ingestion path could not
// complete in-line, closing the orphan window the compensating delete leaves
// open when storage is briefly unavailable.
type BlobConsumer struct {
	channel *amqp.Channel
	infra   *infra.Infra
}

func NewBlobConsumer(channel *amqp.Channel, infra *infra.Infra) *BlobConsumer {
	return &BlobConsumer{
		channel: channel,
		infra:   infra,
	}
}

func (c *BlobConsumer) Start(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		produce.BlobCleanupQueue,
		"",
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register blob cleanup consumer: %w", err)
	}

	c.infra.Logger.InfoWithContextf(ctx, "[Blob Consumer] Started listening for cleanup jobs on queue: %s", produce.BlobCleanupQueue)

	go func() {
		for {
			select {
			case <-ctx.Done():
				c.infra.Logger.InfoWithContextf(ctx, "[Blob Consumer] Shutting down...")
				return
			case msg, ok := <-msgs:
				if !ok {
					c.infra.Logger.WarningWithContextf(ctx, "[Blob Consumer] Channel closed")
					return
				}
				c.handleCleanup(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *BlobConsumer) handleCleanup(ctx context.Context, msg amqp.Delivery) {
	var payload produce.BlobCleanupMessage
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[Blob Consumer] Failed to unmarshal cleanup message: %s", string(msg.Body))
		_ = msg.Nack(false, false)
		return
	}

	c.infra.Logger.InfoWithContextf(ctx, "[Blob Consumer] Cleaning up blob %s (%s)", payload.Filename, payload.Reason)

	exists, err := c.infra.Minio.Exists(ctx, payload.Filename)
	if err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[Blob Consumer] Failed to check blob %s, requeueing", payload.Filename)
		_ = msg.Nack(false, true)
		return
	}
	if !exists {
		// Someone already removed it; nothing left to do.
		_ = msg.Ack(false)
		return
	}

	if err := c.infra.Minio.Delete(ctx, payload.Filename); err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[Blob Consumer] Failed to delete blob %s, requeueing", payload.Filename)
		_ = msg.Nack(false, true)
		return
	}

	c.infra.Logger.InfoWithContextf(ctx, "[Blob Consumer] Deleted orphaned blob %s", payload.Filename)
	_ = msg.Ack(false)
}
