package produce

import amqp "github.com/rabbitmq/amqp091-go"

type Produce struct {
	BlobService *BlobService
}

var produceInstance *Produce

func InitProduce(channel *amqp.Channel) *Produce {
	if produceInstance != nil {
		return produceInstance
	}

	blobService := InitBlobService(channel)
	if blobService == nil {
		panic("Failed to initialize Blob produce service")
	}

	produceInstance = &Produce{
		BlobService: blobService,
	}

	return produceInstance
}

func GetProduce() *Produce {
	if produceInstance == nil {
		panic("Produce not initialized. Call InitProduce() first.")
	}
	return produceInstance
}
