package config

import (
	"fmt"
	"net"
	"p2p/utils"
	"strconv"

	"github.com/segmentio/kafka-go"
)

const updatesTopic = "p2p-updates"

func CreateUpdatesTopic() error {
	broker := Env().KafkaBroker
	if broker == "" {
		return fmt.Errorf("KAFKA_BROKER environment variable not set")
	}

	conn, err := kafka.Dial("tcp", broker)
	if err != nil {
		return err
	}
	defer utils.Closer(conn)()

	controller, err := conn.Controller()
	if err != nil {
		return err
	}
	controllerConn, err := kafka.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return err
	}
	defer utils.Closer(controllerConn)()

	topicConfig := kafka.TopicConfig{
		Topic:             updatesTopic,
		NumPartitions:     1,
		ReplicationFactor: 1,
		ConfigEntries: []kafka.ConfigEntry{
			// 1 day retention, updates are only relevant on event day
			{
				ConfigName:  "retention.ms",
				ConfigValue: "86400000",
			},
		},
	}

	return controllerConn.CreateTopics(topicConfig)
}

func GetUpdatesWriter() (*kafka.Writer, error) {
	broker := Env().KafkaBroker
	if broker == "" {
		return nil, fmt.Errorf("KAFKA_BROKER environment variable not set")
	}
	return kafka.NewWriter(kafka.WriterConfig{
		Brokers: []string{broker},
		Topic:   updatesTopic,
	}), nil
}

func GetUpdatesReader(consumerId string) (*kafka.Reader, error) {
	broker := Env().KafkaBroker
	if broker == "" {
		return nil, fmt.Errorf("KAFKA_BROKER environment variable not set")
	}

	err := CreateUpdatesTopic()
	if err != nil {
		return nil, err
	}
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       updatesTopic,
		GroupID:     fmt.Sprintf("%s-%s", updatesTopic, consumerId),
		StartOffset: kafka.LastOffset,
	}), nil
}
