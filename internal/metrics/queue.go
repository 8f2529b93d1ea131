package metrics

import (
	"log"
	"sync"
	"time"

	"fiufit-users/pkg/rabbitmq"
)

// Usage metric names.
const (
	UserSearch  = "user_search"
	UserCreated = "user_created"
	UserLogin   = "user_login"
	UserBlocked = "user_blocked"
)

// Recorder counts one occurrence of a usage metric. Implementations never block the caller.
type Recorder interface {
	Record(metric, label string)
}

// Publisher sends a JSON payload to a named queue. *rabbitmq.Client satisfies it.
type Publisher interface {
	Publish(queue string, payload interface{}) error
}

// Event is the message consumed by the metrics service.
type Event struct {
	Metric string `json:"metric"`
	Value  int    `json:"value"`
	Label  string `json:"label,omitempty"`
	Date   string `json:"date"`
}

// Queue publishes usage metrics in the background. Publish failures are logged and dropped.
type Queue struct {
	publisher Publisher
	queue     string
	now       func() time.Time
	wg        sync.WaitGroup
}

// NewQueue creates a Queue that publishes to the metrics queue.
func NewQueue(publisher Publisher) *Queue {
	return &Queue{
		publisher: publisher,
		queue:     rabbitmq.MetricsQueue,
		now:       time.Now,
	}
}

// Record publishes the metric from a new goroutine and returns immediately.
func (q *Queue) Record(metric, label string) {
	event := Event{
		Metric: metric,
		Value:  1,
		Label:  label,
		Date:   q.now().UTC().Format(time.RFC3339),
	}
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		if err := q.publisher.Publish(q.queue, event); err != nil {
			log.Printf("Failed to queue metric %s: %v", metric, err)
		}
	}()
}

// Wait blocks until every metric recorded so far has been handed to the publisher.
func (q *Queue) Wait() {
	q.wg.Wait()
}

// Nop discards every metric. Used when no broker is configured.
type Nop struct{}

// Record does nothing.
func (Nop) Record(string, string) {}
