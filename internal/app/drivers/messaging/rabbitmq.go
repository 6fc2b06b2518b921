package messaging

import (
	"cardioflow-service/internal/app/config"
	"fmt"
	"log"

	"github.com/rabbitmq/amqp091-go"
)

// NewRabbitMQ dials the broker carrying audit events. Channels are opened
// per publish by the consumers of this connection.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	url := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)

	connection, err := amqp091.Dial(url)
	if err != nil {
		log.Fatalf("rabbitmq dial failed: %s", err.Error())
	}

	log.Println("connected to rabbitmq")
	return connection
}
