package mqtt

import (
	"errors"
	"time"

	paho_mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

const DefaultTopicPrefix = "tariff-simulator"

var ErrTimeout = errors.New("mqtt operation timed out")

type service struct {
	client paho_mqtt.Client
	prefix string
	logger *zap.Logger
}

func New(client paho_mqtt.Client, prefix string) *service {
	if prefix == "" {
		prefix = DefaultTopicPrefix
	}
	return &service{
		client: client,
		prefix: slug.Make(prefix),
		logger: zap.L(),
	}
}

func (s *service) Connect() error {
	token := s.client.Connect()
	res := token.WaitTimeout(time.Second * 5)
	if res {
		return token.Error()
	}
	if err := token.Error(); err != nil {
		return err
	}
	return errors.New("unable to connect in time")
}

func (s *service) Disconnect() {
	s.client.Disconnect(250)
}
