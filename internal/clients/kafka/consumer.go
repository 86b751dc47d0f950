package kafka

import (
	"context"
	"fmt"

	"github.com/Shopify/sarama"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

type consumerConfig interface {
	producerConfig
	ConsumerGroup() string
}

type changeSink interface {
	Publish(ev expense.ChangeEvent)
}

// Consumer reads the change topic and hands every event to the sink. Each
// process joins its own consumer group so all instances see every change,
// starting from the newest offset.
type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	topic         string
	sink          changeSink
}

func NewConsumer(cfg consumerConfig, sink changeSink) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Consumer.Offsets.Initial = sarama.OffsetNewest

	group := fmt.Sprintf("%s-%s", cfg.ConsumerGroup(), uuid.NewString())
	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers(), group, config)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create consumer group")
	}
	return &Consumer{
		consumerGroup: consumerGroup,
		topic:         cfg.ChangesTopic(),
		sink:          sink,
	}, nil
}

func (c *Consumer) StartConsuming(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			err := c.consumerGroup.Consume(ctx, []string{c.topic}, c)
			if err != nil {
				return errors.Wrap(err, fmt.Sprintf("consume from %s", c.topic))
			}
		}
	}
}

func (c *Consumer) Close() {
	if err := c.consumerGroup.Close(); err != nil {
		logger.Error("failed to close consumer group", zap.Error(err))
	}
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - setup")
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - cleanup")
	return nil
}

func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		c.handle(message)
		session.MarkMessage(message, "")
	}
	return nil
}

func (c *Consumer) handle(message *sarama.ConsumerMessage) {
	ev, err := decodeEvent(message.Value)
	if err != nil {
		logger.Error("cannot decode change event", zap.ByteString("key", message.Key), zap.Error(err))
		return
	}
	logger.Debug(
		"received change",
		zap.String("kind", string(ev.Kind)),
		zap.String("id", ev.Record.ID),
		zap.String("owner", ev.Owner()),
	)
	c.sink.Publish(ev)
}
