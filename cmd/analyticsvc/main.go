package main

import (
	"os"
	"os/signal"
	"time"

	log "github.com/sirupsen/logrus"

	config "github.com/kosakata/vocab-services/configs"
	"github.com/kosakata/vocab-services/internal/analyticsvc/consumer"
	natscli "github.com/kosakata/vocab-services/internal/nats"
)

const SERVICE_NAME = "analytics"

var instanceId string

func init() {
	instanceId = config.CreateUniqueInstance(SERVICE_NAME)
	config.Logging(SERVICE_NAME + "_service_" + instanceId)
	config.LoadEnv(SERVICE_NAME)
}

func main() {
	// Connect to NATS
	n, err := natscli.Connect()
	if err != nil {
		log.Errorf("Error: unable to connect to NATS server %v", err)
		os.Exit(1)
	}
	defer n.Conn.Close()
	log.Printf("NATS connection established successfully %s", n.Url)

	c := consumer.NewConsumer(n.Conn)
	subs, err := c.Subscribe()
	if err != nil {
		log.Errorf("Error: unable to subscribe to vocab events %v", err)
		os.Exit(1)
	}
	log.Infof("%s service tailing vocab events", SERVICE_NAME)

	// periodic digest of the running counters
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	for {
		select {
		case <-ticker.C:
			reviews, lapses, sessions := c.Snapshot()
			log.Infof("digest reviews=%d lapses=%d sessions=%d", reviews, lapses, sessions)
		case <-stop:
			for _, sub := range subs {
				sub.Unsubscribe()
			}
			log.Infof("%s service gracefully stopped", SERVICE_NAME)
			return
		}
	}
}
