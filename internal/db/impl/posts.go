package impl

import (
	"context"
	"database/sql"
	"net/url"
	"time"

	"github.com/sidereusnuntius/microblog/internal/domain"
)

const postColumns = `p.id, p.content, p.url, p.created_at, u.id, u.username, u.host, u.name, u.url`

const postJoin = `FROM posts p JOIN users u ON u.id = p.user_id`

func (d *dbImpl) InsertPost(ctx context.Context, post domain.PostFed) error {
	_, err := d.db.ExecContext(ctx, `INSERT INTO posts (id, user_id, content, url, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		post.ID, post.Author.ID, post.Content, post.Url.String(), post.Created.Unix())
	return d.HandleError(err)
}

func (d *dbImpl) GetPost(ctx context.Context, id string) (domain.PostFed, error) {
	row := d.db.QueryRowContext(ctx, "SELECT "+postColumns+" "+postJoin+" WHERE p.id = ?", id)
	p, err := scanPost(row)
	if err != nil {
		return domain.PostFed{}, d.HandleError(err)
	}
	return p, nil
}

func (d *dbImpl) GetFeed(ctx context.Context, limit int64) ([]domain.PostFed, error) {
	rows, err := d.db.QueryContext(ctx,
		"SELECT "+postColumns+" "+postJoin+" ORDER BY p.created_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

func (d *dbImpl) GetPostsByUser(ctx context.Context, userId string) ([]domain.PostFed, error) {
	rows, err := d.db.QueryContext(ctx,
		"SELECT "+postColumns+" "+postJoin+" WHERE p.user_id = ? ORDER BY p.created_at DESC", userId)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

func collectPosts(rows *sql.Rows) ([]domain.PostFed, error) {
	posts := []domain.PostFed{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func scanPost(row scannable) (p domain.PostFed, err error) {
	var host, name sql.NullString
	var postUrl, userUrl string
	var created int64

	err = row.Scan(&p.ID, &p.Content, &postUrl, &created,
		&p.Author.ID, &p.Author.Username, &host, &name, &userUrl)
	if err != nil {
		return
	}

	p.Created = time.Unix(created, 0).UTC()
	p.Author.Host = host.String
	p.Author.Name = name.String

	if p.Url, err = url.Parse(postUrl); err != nil {
		return
	}
	p.ApID = p.Url
	p.Author.URL, err = url.Parse(userUrl)
	return
}
