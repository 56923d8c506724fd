package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"p2p/config"

	"github.com/segmentio/kafka-go"
)

type UpdateType string

const (
	UpdateRoster   UpdateType = "roster"
	UpdateSchedule UpdateType = "schedule"
	UpdateRatings  UpdateType = "ratings"
)

// UpdateMessage is the compact change notification fanned out to every
// backend replica. Clients refetch the affected resource on receipt, the
// message itself carries no payload.
type UpdateMessage struct {
	Type      UpdateType `json:"type"`
	Timestamp time.Time  `json:"timestamp"`
}

type SyncService struct {
	writer *kafka.Writer
}

func NewSyncService() *SyncService {
	writer, err := config.GetUpdatesWriter()
	if err != nil {
		log.Printf("updates bus unavailable, changes will not be broadcast: %v", err)
	}
	return &SyncService{writer: writer}
}

// Publish announces a state change on the updates bus. Failures are logged
// and swallowed, a missed broadcast only delays the next refetch.
func (s *SyncService) Publish(updateType UpdateType) {
	if s.writer == nil {
		return
	}
	message := UpdateMessage{Type: updateType, Timestamp: time.Now()}
	serialized, err := json.Marshal(message)
	if err != nil {
		log.Printf("failed to serialize update message: %v", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.writer.WriteMessages(ctx, kafka.Message{Value: serialized}); err != nil {
		log.Printf("failed to publish %s update: %v", updateType, err)
	}
}

// Updates subscribes this replica to the bus and streams decoded messages
// until the context is cancelled.
func (s *SyncService) Updates(ctx context.Context) (<-chan UpdateMessage, error) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = fmt.Sprintf("replica-%d", os.Getpid())
	}
	reader, err := config.GetUpdatesReader(hostname)
	if err != nil {
		return nil, err
	}

	updates := make(chan UpdateMessage)
	go func() {
		defer close(updates)
		defer reader.Close()
		for {
			msg, err := reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() == nil {
					log.Printf("updates bus read failed: %v", err)
				}
				return
			}
			var update UpdateMessage
			if err := json.Unmarshal(msg.Value, &update); err != nil {
				log.Printf("discarding malformed update message: %v", err)
				continue
			}
			select {
			case updates <- update:
			case <-ctx.Done():
				return
			}
		}
	}()
	return updates, nil
}
