package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"bugtrail.app/server/common/id"
	"bugtrail.app/server/internal/model"
	"bugtrail.app/server/internal/store"
)

var (
	ErrMissingFields      = errors.New("username, email and password are required")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrUserExists         = errors.New("username or email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type RegisterInput struct {
	Username      string
	Email         string
	Password      string
	WorkspaceName string
}

type LoginInput struct {
	Email         string
	Password      string
	WorkspaceCode string
}

// AuthResult is the outcome of a successful register or login: a signed
// session token plus the user and their current memberships.
type AuthResult struct {
	Token            string
	User             *model.User
	Memberships      []model.Membership
	Workspace        *model.Workspace
	WorkspaceCreated bool
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)

	// ValidateToken resolves a session token to its user. The token carries
	// only the user ID, so the user record is re-read on every call.
	ValidateToken(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	userStore      store.UserStore
	workspaceStore store.WorkspaceStore
	memberStore    store.MemberStore
	txRunner       TxRunner
	tokens         *TokenIssuer
}

func NewAuthService(userStore store.UserStore, workspaceStore store.WorkspaceStore, memberStore store.MemberStore, txRunner TxRunner, tokens *TokenIssuer) AuthService {
	return &authService{
		userStore:      userStore,
		workspaceStore: workspaceStore,
		memberStore:    memberStore,
		txRunner:       txRunner,
		tokens:         tokens,
	}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, ErrMissingFields
	}

	if _, err := s.userStore.GetByEmail(ctx, input.Email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("checking email: %w", err)
	}
	if _, err := s.userStore.GetByUsername(ctx, input.Username); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("checking username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		ID:           id.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
	}

	var ws *model.Workspace
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Users().Create(ctx, user); err != nil {
			return fmt.Errorf("creating user: %w", err)
		}
		if input.WorkspaceName != "" {
			ws, err = createWorkspaceTx(ctx, stores, CreateWorkspaceInput{Name: input.WorkspaceName}, user.ID)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	memberships, err := s.workspaceStore.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("listing memberships: %w", err)
	}

	slog.InfoContext(ctx, "user registered",
		"user_id", user.ID,
		"username", user.Username,
		"workspace_created", ws != nil,
	)

	return &AuthResult{
		Token:            token,
		User:             user,
		Memberships:      memberships,
		Workspace:        ws,
		WorkspaceCreated: ws != nil,
	}, nil
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Email == "" || input.Password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.userStore.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	var ws *model.Workspace
	if input.WorkspaceCode != "" {
		code := strings.ToUpper(strings.TrimSpace(input.WorkspaceCode))
		ws, err = s.workspaceStore.GetByCode(ctx, code)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrWorkspaceNotFound
			}
			return nil, fmt.Errorf("getting workspace by code: %w", err)
		}

		members, err := s.memberStore.List(ctx, ws.ID)
		if err != nil {
			return nil, fmt.Errorf("listing members: %w", err)
		}
		if !IsMember(members, user.ID) {
			return nil, ErrNotMember
		}
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	memberships, err := s.workspaceStore.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("listing memberships: %w", err)
	}

	slog.InfoContext(ctx, "user logged in", "user_id", user.ID)

	return &AuthResult{
		Token:       token,
		User:        user,
		Memberships: memberships,
		Workspace:   ws,
	}, nil
}

func (s *authService) ValidateToken(ctx context.Context, token string) (*model.User, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}
