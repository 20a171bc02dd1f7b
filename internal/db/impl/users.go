package impl

import (
	"context"
	"crypto"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/sidereusnuntius/microblog/internal/db"
	"github.com/sidereusnuntius/microblog/internal/domain"
	"github.com/sidereusnuntius/microblog/internal/utils"
)

const userColumns = `u.id, u.username, u.host, u.name, u.url, u.inbox, u.shared_inbox, u.created,
	k.id, k.public_key, k.private_key, k.key_type`

const getUserQuery = `SELECT ` + userColumns + `
	FROM users u LEFT JOIN keys k ON k.user_id = u.id
	WHERE u.username = ? AND `

func (d *dbImpl) GetUser(ctx context.Context, username string, scope domain.Scope) (domain.UserFed, error) {
	var row *sql.Row
	if scope.IsLocal() {
		row = d.db.QueryRowContext(ctx, getUserQuery+"u.host IS NULL", username)
	} else {
		row = d.db.QueryRowContext(ctx, getUserQuery+"u.host = ?", username, scope.Host())
	}

	u, err := scanUser(row)
	if err != nil {
		return domain.UserFed{}, d.HandleError(err)
	}

	if !scope.IsLocal() {
		// The private half never leaves the store for remote-scoped lookups.
		u.Key.PrivateKeyPem = ""
	}
	return u, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanUser(row scannable) (u domain.UserFed, err error) {
	var host, name, sharedInbox, keyId, pubPem, privPem, keyType sql.NullString
	var urlStr, inbox string
	var created int64

	err = row.Scan(&u.ID, &u.Username, &host, &name, &urlStr, &inbox, &sharedInbox, &created,
		&keyId, &pubPem, &privPem, &keyType)
	if err != nil {
		return
	}

	u.Host = host.String
	u.Name = name.String
	u.Created = time.Unix(created, 0).UTC()

	if u.URL, err = url.Parse(urlStr); err != nil {
		return
	}
	u.ApId = u.URL
	if u.Inbox, err = url.Parse(inbox); err != nil {
		return
	}
	if sharedInbox.Valid {
		if u.SharedInbox, err = url.Parse(sharedInbox.String); err != nil {
			return
		}
	}

	u.Key = domain.KeyPair{
		ID:            keyId.String,
		Owner:         u.ID,
		PublicKeyPem:  pubPem.String,
		PrivateKeyPem: privPem.String,
		KeyType:       keyType.String,
	}
	return
}

func (d *dbImpl) LocalUserExists(ctx context.Context) (exists bool, err error) {
	row := d.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT TRUE FROM users WHERE password IS NOT NULL)")
	err = d.HandleError(row.Scan(&exists))
	return
}

func (d *dbImpl) InsertLocalUser(ctx context.Context, user domain.UserInternal) error {
	// Setup requests race; the lock plus the in-transaction check make sure only
	// the first one ever creates a user.
	unlock := d.locks.Lock("local-setup")
	defer unlock()

	err := d.WithTx(func(tx *sql.Tx) error {
		var exists bool
		row := tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT TRUE FROM users WHERE password IS NOT NULL)")
		if err := row.Scan(&exists); err != nil {
			return err
		}
		if exists {
			return db.ErrConflict
		}

		_, err := tx.ExecContext(ctx, `INSERT INTO users (id, username, host, name, password, url, inbox, shared_inbox)
			VALUES (?, ?, NULL, ?, ?, ?, ?, NULL)`,
			user.ID, user.Username, nullable(user.Name), user.Password,
			user.URL.String(), user.Inbox.String())
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `INSERT INTO keys (id, user_id, public_key, private_key, key_type)
			VALUES (?, ?, ?, ?, ?)`,
			user.Key.ID, user.ID, user.Key.PublicKeyPem, user.Key.PrivateKeyPem, user.Key.KeyType)
		return err
	})
	// A username colliding with an existing local row, such as the instance
	// actor's, surfaces as a constraint violation and maps to ErrConflict too.
	return d.HandleError(err)
}

func (d *dbImpl) GetAuthData(ctx context.Context, username string) (domain.Account, error) {
	row := d.db.QueryRowContext(ctx,
		"SELECT id, username, password FROM users WHERE username = ? AND host IS NULL AND password IS NOT NULL",
		username)

	var a domain.Account
	if err := row.Scan(&a.UserID, &a.Username, &a.Password); err != nil {
		return domain.Account{}, d.HandleError(err)
	}
	return a, nil
}

func (d *dbImpl) InsertRemoteUser(ctx context.Context, user domain.UserFed) (string, error) {
	if user.Host == "" {
		return "", fmt.Errorf("%w: remote user without host", db.ErrInternal)
	}

	unlock := d.locks.Lock(user.Username + "@" + user.Host)
	defer unlock()

	var id string
	row := d.db.QueryRowContext(ctx, "SELECT id FROM users WHERE username = ? AND host = ?",
		user.Username, user.Host)
	err := row.Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return "", d.HandleError(err)
	}

	id = uuid.NewString()
	err = d.WithTx(func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO users (id, username, host, name, password, url, inbox, shared_inbox)
			VALUES (?, ?, ?, ?, NULL, ?, ?, ?)`,
			id, user.Username, user.Host, nullable(user.Name),
			user.ApId.String(), user.Inbox.String(), nullableURL(user.SharedInbox))
		if err != nil {
			return err
		}

		if user.Key.PublicKeyPem == "" {
			return nil
		}
		_, err = tx.ExecContext(ctx, `INSERT INTO keys (id, user_id, public_key, private_key, key_type)
			VALUES (?, ?, ?, NULL, ?)`,
			user.Key.ID, id, user.Key.PublicKeyPem, user.Key.KeyType)
		return err
	})
	return id, err
}

func (d *dbImpl) GetUserApId(ctx context.Context, username string) (*url.URL, error) {
	row := d.db.QueryRowContext(ctx, "SELECT url FROM users WHERE username = ? AND host IS NULL", username)
	var urlStr string
	if err := row.Scan(&urlStr); err != nil {
		return nil, d.HandleError(err)
	}
	return url.Parse(urlStr)
}

func (d *dbImpl) GetUserPrivateKeyByURI(ctx context.Context, actor *url.URL) (crypto.PrivateKey, error) {
	row := d.db.QueryRowContext(ctx, `SELECT k.private_key FROM keys k
		JOIN users u ON u.id = k.user_id
		WHERE u.url = ? AND k.private_key IS NOT NULL`, actor.String())

	var pemStr string
	if err := row.Scan(&pemStr); err != nil {
		return nil, d.HandleError(err)
	}
	return utils.ParsePrivateKeyPem(pemStr)
}

func nullable(s string) sql.NullString {
	return sql.NullString{Valid: s != "", String: s}
}

func nullableURL(u *url.URL) sql.NullString {
	if u == nil {
		return sql.NullString{}
	}
	return sql.NullString{Valid: true, String: u.String()}
}
