package queue

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/microblog/internal/conversions"
	"github.com/sidereusnuntius/microblog/internal/db"
	"github.com/sidereusnuntius/microblog/internal/domain"
)

func (q *apQueueImpl) CreateLocalPost(ctx context.Context, post domain.PostFed) error {
	id := post.ApID.JoinPath("activity")
	note := conversions.PostToNote(post)
	create := conversions.NewCreate(id, post.Author.URL, note)

	followers, err := q.db.GetFollowers(ctx, post.Author.URL)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			err = nil
		}
		return err
	}

	for _, f := range followers {
		if err = q.Deliver(ctx, create, f, post.Author.URL); err != nil {
			log.Error().Err(err).Str("to", f.String()).Msg("failed to enqueue delivery job")
		}
	}

	return nil
}
