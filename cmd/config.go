package cmd

import (
	"fmt"
	"strings"
)

// Event bus selectors for Config.EventBus.
const (
	EventBusNone     = "none"
	EventBusKafka    = "kafka"
	EventBusRabbitMQ = "rabbitmq"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// RedisAddr enables the live driver status cache when set.
	RedisAddr string

	EventBus               string
	KafkaHost              string
	KafkaConsumerGroup     string
	KafkaOrderChangedTopic string
	RabbitMQURL            string
	RabbitMQExchange       string

	CoveragePollSchedule   string
	EscalationScanSchedule string
}

// DSN is the PostgreSQL connection string, shared by gorm and the change listener.
func (c Config) DSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode)
}

// KafkaBrokers splits the comma separated KafkaHost.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// Bus returns the selected event bus, EventBusNone when unset.
func (c Config) Bus() (string, error) {
	switch bus := strings.ToLower(strings.TrimSpace(c.EventBus)); bus {
	case "", EventBusNone:
		return EventBusNone, nil
	case EventBusKafka, EventBusRabbitMQ:
		return bus, nil
	default:
		return "", fmt.Errorf("unknown event bus %q", c.EventBus)
	}
}
