package queue

import (
	"time"

	"github.com/mikestefanello/backlite"
)

const (
	FetchQueue    = "fetch"
	DeliveryQueue = "deliver"
)

// DeliverJob posts a serialized activity to one recipient, signed as From.
type DeliverJob struct {
	To   string
	From string
	Body map[string]any
}

func (j DeliverJob) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        DeliveryQueue,
		MaxAttempts: 5,
		Backoff:     30 * time.Second,
		Timeout:     30 * time.Second,
		Retention: &backlite.Retention{
			Duration:   12 * time.Hour,
			OnlyFailed: false,
			Data: &backlite.RetainData{
				OnlyFailed: true,
			},
		},
	}
}

// FetchJob dereferences an actor IRI and stores the result. Next, when set, is
// enqueued once the fetch succeeds, so a delivery to a not-yet-known actor waits
// for its inbox to be discovered.
type FetchJob struct {
	Iri  string
	Next *DeliverJob
}

func (j FetchJob) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        FetchQueue,
		MaxAttempts: 5,
		Backoff:     5 * time.Second,
		Timeout:     10 * time.Second,
		Retention: &backlite.Retention{
			Duration:   12 * time.Hour,
			OnlyFailed: false,
			Data: &backlite.RetainData{
				OnlyFailed: true,
			},
		},
	}
}
