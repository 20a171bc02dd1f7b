// Package queue decouples post creation from federation delivery. Jobs are stored
// in a SQLite-backed backlite queue and executed by background workers, so the
// request that created a post returns without waiting on any remote server.
package queue

import (
	"context"
	"errors"
	"net/url"

	"code.superseriousbusiness.org/activity/streams"
	"code.superseriousbusiness.org/activity/streams/vocab"
	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/microblog/internal/client"
	"github.com/sidereusnuntius/microblog/internal/config"
	"github.com/sidereusnuntius/microblog/internal/db"
	"github.com/sidereusnuntius/microblog/internal/domain"
)

type ApQueue interface {
	// Fetch enqueues a task that dereferences the IRI and stores the actor.
	Fetch(iri *url.URL) error
	// Deliver enqueues the delivery of an activity to one recipient, signed as from.
	// It returns as soon as the job is stored.
	Deliver(ctx context.Context, activity vocab.Type, to *url.URL, from *url.URL) error
	// CreateLocalPost fans the post's Create activity out to the author's followers.
	CreateLocalPost(ctx context.Context, post domain.PostFed) error
	// Stop drains the workers. In-flight jobs are released back to the queue and
	// picked up again on the next start.
	Stop(ctx context.Context)
}

type apQueueImpl struct {
	db     db.DB
	queues *backlite.Client
	client *client.HttpClient
	cfg    *config.Configuration
}

func New(ctx context.Context, db db.DB, client *client.HttpClient, cfg *config.Configuration, blClient *backlite.Client) ApQueue {
	q := &apQueueImpl{
		db:     db,
		queues: blClient,
		client: client,
		cfg:    cfg,
	}
	q.register()
	q.queues.Start(ctx)
	log.Info().Msg("started task queue")
	return q
}

func (q *apQueueImpl) Fetch(iri *url.URL) error {
	log.Debug().Str("iri", iri.String()).Msg("enqueing fetch task")
	task := FetchJob{
		Iri: iri.String(),
	}
	_, err := q.queues.Add(task).Save()
	return err
}

func (q *apQueueImpl) Deliver(ctx context.Context, activity vocab.Type, to *url.URL, from *url.URL) error {
	data, err := streams.Serialize(activity)
	if err != nil {
		return err
	}
	return q.rawDeliver(ctx, data, to, from)
}

func (q *apQueueImpl) rawDeliver(ctx context.Context, activity map[string]any, to *url.URL, from *url.URL) error {
	job := DeliverJob{
		To:   to.String(),
		From: from.String(),
		Body: activity,
	}

	var task backlite.Task = job
	if _, err := q.db.GetActorInbox(ctx, to); err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			return err
		}
		// Unknown actor, resolve the inbox first and chain the delivery.
		task = FetchJob{
			Iri:  to.String(),
			Next: &job,
		}
	}

	_, err := q.queues.Add(task).Save()
	if err != nil {
		log.Error().Err(err).Str("to", to.String()).Msg("adding delivery task to queue")
	}
	return err
}

func (q *apQueueImpl) Stop(ctx context.Context) {
	q.queues.Stop(ctx)
}
