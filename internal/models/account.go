package models

import "github.com/google/uuid"

// Account is a stored user. Password holds the encoded credential,
// never the raw password.
type Account struct {
	ID       int64
	Username string
	Password string
}

// AccountHandle identifies an authenticated session.
type AccountHandle struct {
	Username  string
	SessionID uuid.UUID
}

func NewAccountHandle(username string) *AccountHandle {
	return &AccountHandle{Username: username, SessionID: uuid.New()}
}
