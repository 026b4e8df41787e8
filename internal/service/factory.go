package service

import (
	"bugtrail.app/server/core/config"
	"bugtrail.app/server/internal/store"
)

type Services struct {
	stores   *store.Stores
	txRunner TxRunner
	tokens   *TokenIssuer
}

func NewServices(stores *store.Stores, txRunner TxRunner, authCfg config.AuthConfig) *Services {
	return &Services{
		stores:   stores,
		txRunner: txRunner,
		tokens:   NewTokenIssuer(authCfg.JWTSecret, authCfg.TokenTTL),
	}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(
		s.stores.Users(),
		s.stores.Workspaces(),
		s.stores.Members(),
		s.txRunner,
		s.tokens,
	)
}

func (s *Services) Workspaces() WorkspaceService {
	return NewWorkspaceService(s.stores.Workspaces(), s.stores.Members(), s.txRunner)
}

func (s *Services) Bugs() BugService {
	return NewBugService(s.stores.Bugs(), s.stores.Workspaces(), s.stores.Members(), s.stores.Users())
}

func (s *Services) Tokens() *TokenIssuer {
	return s.tokens
}
