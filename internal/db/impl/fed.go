package impl

import (
	"context"
	"database/sql"
	"net/url"
)

func (d *dbImpl) GetActorInbox(ctx context.Context, actor *url.URL) (*url.URL, error) {
	row := d.db.QueryRowContext(ctx, "SELECT inbox, shared_inbox FROM users WHERE url = ?", actor.String())

	var inbox string
	var sharedInbox sql.NullString
	if err := row.Scan(&inbox, &sharedInbox); err != nil {
		return nil, d.HandleError(err)
	}

	if sharedInbox.Valid {
		return url.Parse(sharedInbox.String)
	}
	return url.Parse(inbox)
}

func (d *dbImpl) GetFollowers(ctx context.Context, followed *url.URL) ([]*url.URL, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT fu.url FROM followers f
		JOIN users fu ON fu.id = f.follower_id
		JOIN users tu ON tu.id = f.followed_id
		WHERE tu.url = ?`, followed.String())
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	var ids []*url.URL
	for rows.Next() {
		var urlStr string
		if err = rows.Scan(&urlStr); err != nil {
			return nil, d.HandleError(err)
		}
		id, err := url.Parse(urlStr)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (d *dbImpl) InsertFollower(ctx context.Context, followerId, followedId string) error {
	// There is no unfollow yet, so a repeated follow is a no-op rather than an error.
	_, err := d.db.ExecContext(ctx, `INSERT INTO followers (follower_id, followed_id)
		VALUES (?, ?) ON CONFLICT DO NOTHING`, followerId, followedId)
	return d.HandleError(err)
}
