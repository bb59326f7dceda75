package tg

import (
	"context"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/ledger-bot/internal/entity/user"
	"max.ks1230/ledger-bot/internal/logger"
	"max.ks1230/ledger-bot/internal/model/messages"
)

const (
	defaultUpdateOffset = 0
	timeoutSeconds      = 5
	calendarFileName    = "calendar.png"
)

type config interface {
	Token() string
	Debug() bool
	PollingTimeoutSeconds() int
}

type messageHandler interface {
	HandleIncomingMessage(ctx context.Context, msg messages.Message) error
}

type Client struct {
	client         *tgbotapi.BotAPI
	pollingTimeout int
}

func New(config config) (*Client, error) {
	client, err := tgbotapi.NewBotAPI(config.Token())
	if err != nil {
		return nil, errors.Wrap(err, "cannot NewBotApi")
	}
	client.Debug = config.Debug()
	return &Client{client: client, pollingTimeout: config.PollingTimeoutSeconds()}, nil
}

func (c *Client) SendMessage(text string, userID user.ID) error {
	chatID, err := chatID(userID)
	if err != nil {
		return err
	}
	_, err = c.client.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return errors.Wrap(err, "client.Send")
	}
	return nil
}

func (c *Client) SendImage(png []byte, userID user.ID) error {
	chatID, err := chatID(userID)
	if err != nil {
		return err
	}
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: calendarFileName, Bytes: png})
	_, err = c.client.Send(photo)
	if err != nil {
		return errors.Wrap(err, "client.Send photo")
	}
	return nil
}

func (c *Client) ListenUpdates(ctx context.Context, msgModel messageHandler) {
	u := tgbotapi.NewUpdate(defaultUpdateOffset)
	u.Timeout = c.pollingTimeout

	updates := c.client.GetUpdatesChan(u)

	logger.Info("Start listening for messages")

	for {
		select {
		case <-ctx.Done():
			c.client.StopReceivingUpdates()
			logger.Info("Stop listening for messages")
			return
		case update := <-updates:
			c.listenOnce(ctx, update, msgModel)
		}
	}
}

func (c *Client) listenOnce(ctx context.Context, update tgbotapi.Update, msgModel messageHandler) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}
	logger.Info(update.Message.Text, zap.Int64("chat", update.Message.Chat.ID))

	ctx, cancel := context.WithTimeout(ctx, time.Second*timeoutSeconds)
	defer cancel()

	err := msgModel.HandleIncomingMessage(ctx, messages.Message{
		Text:   update.Message.Text,
		UserID: user.ID(strconv.FormatInt(update.Message.Chat.ID, 10)),
	})
	if err != nil {
		logger.Error("error processing message:", zap.Error(err))
	}
}

func chatID(userID user.ID) (int64, error) {
	id, err := strconv.ParseInt(userID.String(), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "user id %q is not a telegram chat id", userID)
	}
	return id, nil
}
