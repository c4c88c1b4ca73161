package kafka

import (
	"fmt"

	"storefront-service/src/pkg/log"

	k "gopkg.in/confluentinc/confluent-kafka-go.v1/kafka"
)

type producer struct {
	producer *k.Producer
	log      log.Log
}

func NewProducer(config *k.ConfigMap, logger log.Log) (Producer, error) {
	p, err := k.NewProducer(config)
	if err != nil {
		return nil, err
	}

	// drain delivery reports so the internal queue never fills up
	go func() {
		for e := range p.Events() {
			switch ev := e.(type) {
			case *k.Message:
				if ev.TopicPartition.Error != nil {
					logger.Error("kafka-producer", fmt.Sprintf("Delivery failed: %v", ev.TopicPartition.Error), "delivery", "")
				}
			case k.Error:
				logger.Error("kafka-producer", ev.Error(), "event", "")
			}
		}
	}()

	return &producer{producer: p, log: logger}, nil
}

func (p *producer) Publish(message *k.Message) error {
	return p.producer.Produce(message, nil)
}

func (p *producer) Close() {
	p.producer.Flush(5000)
	p.producer.Close()
}
