package messages

import (
	"context"
	"fmt"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"

	"max.ks1230/ledger-bot/internal/entity/user"
	"max.ks1230/ledger-bot/internal/logger"
)

const welcomeTemplate = "✅ 你已成功註冊！每日 %s 會收到行程提醒！"

//go:generate minimock -i messageSender -o ./mock/ -s "_mock.go"

type messageSender interface {
	SendMessage(text string, userID user.ID) error
	SendImage(png []byte, userID user.ID) error
}

type userRegistrar interface {
	RegisterUser(ctx context.Context, id user.ID) (bool, error)
}

type config interface {
	DigestAt() string
}

type MessageHandler interface {
	HandleMessage(ctx context.Context, text string) (Reply, error)
}

// Deps are the collaborators a Service routes messages to.
type Deps struct {
	Registrar  userRegistrar
	Classifier recordClassifier
	Reports    reportsEngine
	Renderer   calendarRenderer
	Publisher  recordPublisher
}

type Service struct {
	client    messageSender
	registrar userRegistrar
	handler   MessageHandler
	welcome   string
}

func NewService(client messageSender, deps Deps, config config) *Service {
	return &Service{
		client:    client,
		registrar: deps.Registrar,
		handler:   newHandler(deps),
		welcome:   fmt.Sprintf(welcomeTemplate, config.DigestAt()),
	}
}

type Message struct {
	Text   string
	UserID user.ID
}

// HandleIncomingMessage registers a new sender and sends exactly one reply.
func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	observeResponse(elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (s *Service) handle(ctx context.Context, msg Message) error {
	s.register(ctx, msg.UserID)

	reply, err := s.handler.HandleMessage(ctx, msg.Text)
	sendErr := s.send(reply, msg.UserID)
	if err != nil {
		return err
	}
	return sendErr
}

func (s *Service) register(ctx context.Context, id user.ID) {
	added, err := s.registrar.RegisterUser(ctx, id)
	if err != nil {
		logger.Error("cannot register user", zap.String("user", id.String()), zap.Error(err))
		return
	}
	if !added {
		return
	}
	if err = s.client.SendMessage(s.welcome, id); err != nil {
		logger.Warn("cannot send welcome message", zap.String("user", id.String()), zap.Error(err))
	}
}

func (s *Service) send(reply Reply, id user.ID) error {
	if len(reply.Image) > 0 {
		return s.client.SendImage(reply.Image, id)
	}
	return s.client.SendMessage(reply.Text, id)
}
