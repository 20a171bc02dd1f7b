package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sidereusnuntius/microblog/internal/db"
	"github.com/sidereusnuntius/microblog/internal/domain"
	"github.com/sidereusnuntius/microblog/internal/service"
	"github.com/sidereusnuntius/microblog/internal/utils"
	"github.com/sidereusnuntius/microblog/internal/validate"
	"golang.org/x/crypto/bcrypt"
)

func (s *AppService) Setup(ctx context.Context, username, password string) error {
	username = strings.ToLower(strings.TrimSpace(username))

	err := validate.SetupForm(username, password)
	if err != nil {
		return fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	// The instance is single tenant: one local user, created once.
	exists, err := s.DB.LocalUserExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return service.ErrConflict
	}

	u, err := s.populateUser(username, password)
	if err != nil {
		return err
	}

	// The store repeats the gate under its own lock, so a race between two setup
	// requests still leaves exactly one user behind.
	if err = s.DB.InsertLocalUser(ctx, u); err != nil {
		if errors.Is(err, db.ErrConflict) {
			return service.ErrConflict
		}
		return err
	}
	return nil
}

// SetupRequired reports whether the instance still waits for its first user.
func (s *AppService) SetupRequired(ctx context.Context) (bool, error) {
	exists, err := s.DB.LocalUserExists(ctx)
	return !exists, err
}

// AuthenticateUser confirms the user's identity and, if their credentials are
// correct, returns data to be put in the login session. Unknown users fail closed,
// with authenticated false.
func (s *AppService) AuthenticateUser(ctx context.Context, username, password string) (a domain.Account, authenticated bool, err error) {
	username = strings.ToLower(strings.TrimSpace(username))

	err = errors.Join(validate.Username(username), validate.Password(password))
	if err != nil {
		err = fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
		return
	}

	a, err = s.DB.GetAuthData(ctx, username)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			err = nil
		}
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password))
	authenticated = err == nil
	err = nil
	return
}

func (s *AppService) populateUser(username, password string) (user domain.UserInternal, err error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return
	}

	apId := s.Config.Url.JoinPath("@" + username)

	keyId, pub, priv, err := utils.GenerateKeyPair(apId, s.Config.RsaKeySize)
	if err != nil {
		return
	}

	id := uuid.NewString()
	user = domain.UserInternal{
		UserFed: domain.UserFed{
			UserCore: domain.UserCore{
				ID:       id,
				Username: username,
				Name:     username,
				URL:      apId,
			},
			ApId:  apId,
			Inbox: apId.JoinPath("inbox"),
			Key: domain.KeyPair{
				ID:            keyId,
				Owner:         id,
				PublicKeyPem:  pub,
				PrivateKeyPem: priv,
				KeyType:       utils.KeyTypeRsa,
			},
		},
		Password: string(hash),
	}

	return
}
