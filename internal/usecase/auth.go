package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/mtkshopping/marketplace/internal/domain/errors"
	"github.com/mtkshopping/marketplace/internal/domain/model"
	"github.com/mtkshopping/marketplace/internal/domain/repository"
	pkgAuth "github.com/mtkshopping/marketplace/internal/pkg/auth"
	"github.com/mtkshopping/marketplace/internal/pkg/ident"
)

// AuthUseCase handles account lifecycle and session token management.
type AuthUseCase struct {
	users     repository.UserRepository
	hasher    pkgAuth.PasswordHasher
	tokens    pkgAuth.Strategy
	ids       ident.Generator
	referrals *ReferralUseCase
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, ids ident.Generator, referrals *ReferralUseCase) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy, ids: ids, referrals: referrals}
}

// Register creates a new account. An empty role defaults to customer.
// refCode optionally names the referrer; an unknown code is tolerated and
// the account is created without a referral link.
func (u *AuthUseCase) Register(ctx context.Context, email, password string, role model.Role, refCode string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	if role == "" {
		role = model.RoleCustomer
	}
	if !role.Valid() {
		return nil, domainErrors.ErrInvalidRole
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	code, err := u.ids.NewReferralCode()
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           u.ids.NewID(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		ReferralCode: code,
	}

	if err := u.referrals.Link(ctx, user, refCode); err != nil {
		return nil, err
	}

	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}

	return user, nil
}

// Authenticate validates credentials and returns a session token. Unknown
// email and wrong password are deliberately indistinguishable.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(pkgAuth.Identity{UserID: usr.ID, Role: usr.Role})
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts the identity from a session token.
func (u *AuthUseCase) ParseToken(token string) (pkgAuth.Identity, error) {
	if token == "" {
		return pkgAuth.Identity{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches a user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id string) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
