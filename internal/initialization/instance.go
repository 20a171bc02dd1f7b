package initialization

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/microblog/internal/config"
	"github.com/sidereusnuntius/microblog/internal/utils"
)

// EnsureInstance inserts the instance-level actor, whose key signs requests made on
// behalf of the server itself, such as dereferencing remote actors. It runs on every
// start and only writes on the first.
func EnsureInstance(DB *sql.DB, cfg *config.Configuration) error {
	row := DB.QueryRow("SELECT EXISTS(SELECT TRUE FROM users WHERE url = ?)", cfg.Url.String())
	var exists bool
	err := row.Scan(&exists)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}
	log.Info().Msg("inserting server data into the database")

	keyId, pub, priv, err := utils.GenerateKeyPair(cfg.Url, cfg.RsaKeySize)
	if err != nil {
		return err
	}

	id := uuid.NewString()
	inbox := cfg.Url.JoinPath("inbox").String()

	_, err = DB.Exec(`INSERT INTO users(id, username, host, name, password, url, inbox, shared_inbox)
			VALUES (?, ?, NULL, ?, NULL, ?, ?, NULL)`,
		id, cfg.Name, cfg.Name, cfg.Url.String(), inbox)
	if err != nil {
		log.Error().Err(err).Msg("insert failed")
		return err
	}

	_, err = DB.Exec(`INSERT INTO keys(id, user_id, public_key, private_key, key_type)
			VALUES (?, ?, ?, ?, ?)`,
		keyId, id, pub, priv, utils.KeyTypeRsa)
	if err != nil {
		log.Error().Err(err).Msg("insert failed")
	}
	return err
}
