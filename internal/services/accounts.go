package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/gophfx/internal/common"
	"github.com/dmitrijs2005/gophfx/internal/cryptox"
	"github.com/dmitrijs2005/gophfx/internal/dbx"
	"github.com/dmitrijs2005/gophfx/internal/models"
	"github.com/dmitrijs2005/gophfx/internal/repositories/users"
)

// AccountService registers and authenticates local accounts.
//
// Contract:
//   - CreateAccount: nil, common.ErrMissingField, common.ErrUsernameTaken or
//     common.ErrStore. An existing account is never modified.
//   - Authenticate: a handle, common.ErrMissingField,
//     common.ErrInvalidCredentials or common.ErrStore. Unknown usernames and
//     wrong passwords are indistinguishable to the caller.
type AccountService interface {
	CreateAccount(ctx context.Context, username string, password []byte) error
	Authenticate(ctx context.Context, username string, password []byte) (*models.AccountHandle, error)
}

type accountService struct {
	db *sql.DB
}

func NewAccountService(db *sql.DB) AccountService {
	return &accountService{db: db}
}

func (s *accountService) getUsersRepo(tx dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(tx)
}

func (s *accountService) CreateAccount(ctx context.Context, username string, password []byte) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("%w: username", common.ErrMissingField)
	}
	if len(password) == 0 {
		return fmt.Errorf("%w: password", common.ErrMissingField)
	}

	credential := cryptox.HashPassword(password)

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.getUsersRepo(tx)

		exists, err := repo.Exists(ctx, username)
		if err != nil {
			return err
		}
		if exists {
			return common.ErrUsernameTaken
		}

		_, err = repo.Create(ctx, &models.Account{Username: username, Password: credential})
		return err
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrUsernameTaken):
		return common.ErrUsernameTaken
	default:
		return fmt.Errorf("%w: create account: %w", common.ErrStore, err)
	}
}

func (s *accountService) Authenticate(ctx context.Context, username string, password []byte) (*models.AccountHandle, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username", common.ErrMissingField)
	}
	if len(password) == 0 {
		return nil, fmt.Errorf("%w: password", common.ErrMissingField)
	}

	account, err := s.getUsersRepo(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Same work as a real check so timing does not reveal the miss.
			_, _ = cryptox.VerifyPassword(dummyCredential(), password)
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: authenticate: %w", common.ErrStore, err)
	}

	ok, err := cryptox.VerifyPassword(account.Password, password)
	if err != nil {
		return nil, fmt.Errorf("%w: stored credential for %q: %w", common.ErrStore, username, err)
	}
	if !ok {
		return nil, common.ErrInvalidCredentials
	}

	return models.NewAccountHandle(account.Username), nil
}

var dummyCredential = sync.OnceValue(func() string {
	return cryptox.HashPassword([]byte("gophfx-dummy-password"))
})
