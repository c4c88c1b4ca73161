package messaging

import (
	"storefront-service/src/internal/model"
	kafka "storefront-service/src/pkg/kafka/confluent"
	"storefront-service/src/pkg/log"
)

type OrderProducer struct {
	OrderCreatedProducer  Producer[*model.OrderCreatedEvent]
	StatusChangedProducer Producer[*model.OrderStatusChangedEvent]
}

func NewOrderProducer(producer kafka.Producer, log log.Log) *OrderProducer {
	return &OrderProducer{
		OrderCreatedProducer: Producer[*model.OrderCreatedEvent]{
			Producer: producer,
			Topic:    "order-created",
			Log:      log,
		},
		StatusChangedProducer: Producer[*model.OrderStatusChangedEvent]{
			Producer: producer,
			Topic:    "order-status-changed",
			Log:      log,
		},
	}
}

func (p *OrderProducer) SendOrderCreated(event *model.OrderCreatedEvent) error {
	return p.OrderCreatedProducer.Send(event)
}

func (p *OrderProducer) SendStatusChanged(event *model.OrderStatusChangedEvent) error {
	return p.StatusChangedProducer.Send(event)
}
