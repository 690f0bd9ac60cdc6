// Package auth implements registration, credential login and the JWT
// session lifecycle (refresh rotation, logout via denylist).
package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fieldservice-backend/internal/domain/user"
	"fieldservice-backend/pkg/token"
)

// Denylist records revoked token IDs. A nil Denylist disables revocation;
// logout then only relies on client-side token disposal.
type Denylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type Usecase struct {
	users    user.Repository
	denylist Denylist
	secret   string
}

func NewUsecase(users user.Repository, denylist Denylist, secret string) *Usecase {
	return &Usecase{users: users, denylist: denylist, secret: secret}
}

type RegisterInput struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	RoleID   *uint64 `json:"role_id"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"` // access token lifetime in seconds
}

func newPair(userID uint64, email, secret string) (TokenPair, error) {
	access, refresh, err := token.GeneratePair(userID, email, secret)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(token.AccessTTL.Seconds()),
	}, nil
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*user.User, error) {
	taken, err := u.users.EmailExists(ctx, in.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, user.ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usr := &user.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
		RoleID:   in.RoleID,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, user.ErrEmailTaken
		}
		return nil, err
	}
	return usr, nil
}

func (u *Usecase) Login(ctx context.Context, in LoginInput) (*user.User, TokenPair, error) {
	usr, err := u.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, TokenPair{}, user.ErrInvalidCredentials
		}
		return nil, TokenPair{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(in.Password)); err != nil {
		return nil, TokenPair{}, user.ErrInvalidCredentials
	}
	pair, err := newPair(usr.ID, usr.Email, u.secret)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return usr, pair, nil
}

// Refresh rotates a refresh token: the old one is revoked and a fresh pair
// is issued, so a leaked refresh token can be used at most once.
func (u *Usecase) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := token.Parse(refreshToken, u.secret)
	if err != nil {
		return TokenPair{}, token.ErrInvalidToken
	}
	if claims.Kind != token.KindRefresh {
		return TokenPair{}, token.ErrInvalidToken
	}
	if u.denylist != nil {
		revoked, err := u.denylist.IsRevoked(ctx, claims.ID)
		if err != nil {
			return TokenPair{}, err
		}
		if revoked {
			return TokenPair{}, token.ErrInvalidToken
		}
	}
	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenPair{}, token.ErrInvalidToken
		}
		return TokenPair{}, err
	}
	if u.denylist != nil {
		if err := u.denylist.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
			return TokenPair{}, err
		}
	}
	return newPair(usr.ID, usr.Email, u.secret)
}

// Logout revokes the presented access token for its remaining lifetime.
func (u *Usecase) Logout(ctx context.Context, claims *token.Claims) error {
	if u.denylist == nil || claims == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	return u.denylist.Revoke(ctx, claims.ID, ttl)
}

func (u *Usecase) Profile(ctx context.Context, userID uint64) (*user.User, error) {
	usr, err := u.users.GetByIDWithAccess(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return usr, nil
}
