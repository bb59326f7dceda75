package kafka

import (
	"context"

	"github.com/Shopify/sarama"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"max.ks1230/ledger-bot/internal/entity/record"
	"max.ks1230/ledger-bot/internal/logger"
)

type producerConfig interface {
	Brokers() []string
	RecordsTopic() string
}

// Producer publishes created records to the records topic.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(cfg producerConfig) (*Producer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers(), config)
	if err != nil {
		return nil, errors.Wrap(err, "new sync producer")
	}
	return NewProducerWith(producer, cfg.RecordsTopic()), nil
}

func NewProducerWith(producer sarama.SyncProducer, topic string) *Producer {
	return &Producer{
		producer: producer,
		topic:    topic,
	}
}

func (p *Producer) PublishRecord(ctx context.Context, rec record.Record) error {
	span, _ := opentracing.StartSpanFromContext(ctx, "publishRecord")
	defer span.Finish()

	payload, err := EncodeRecord(rec)
	if err != nil {
		return errors.Wrap(err, "encode record event")
	}
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(uuid.NewString()),
		Value: sarama.ByteEncoder(payload),
	})
	return errors.Wrap(err, "publish record event")
}

// EncodeRecord serialises the persisted document as a protobuf Struct.
func EncodeRecord(rec record.Record) ([]byte, error) {
	doc := rec.Document()
	fields := map[string]interface{}{
		"type":        string(doc.Type),
		"description": doc.Description,
		"datetime":    doc.Datetime,
	}
	if rec.IsExpense() {
		fields["amount"] = rec.Amount.InexactFloat64()
		fields["category"] = doc.Category
	}
	msg, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(msg)
}

func (p *Producer) Close() {
	err := p.producer.Close()
	if err != nil {
		logger.Error("failed to close producer", zap.Error(err))
	}
}
