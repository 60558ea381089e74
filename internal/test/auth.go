package test

import (
	"errors"
	"strconv"
	"sync"

	pkgAuth "github.com/mtkshopping/marketplace/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses session tokens via function overrides.
type StrategyStub struct {
	IssueFn func(pkgAuth.Identity) (string, error)
	ParseFn func(string) (pkgAuth.Identity, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(identity pkgAuth.Identity) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(identity)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (pkgAuth.Identity, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return pkgAuth.Identity{UserID: "u-1"}, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenParserStub implements the middleware token parsing contract.
type TokenParserStub struct {
	Identity pkgAuth.Identity
	Err      error
	ParseFn  func(string) (pkgAuth.Identity, error)
}

// ParseToken either delegates to the override or returns the predefined result.
func (s TokenParserStub) ParseToken(token string) (pkgAuth.Identity, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return pkgAuth.Identity{}, s.Err
	}
	return s.Identity, nil
}

// IdentStub produces sequential identifiers and referral codes. Counter
// access is serialized so the stub can back concurrent scenarios.
type IdentStub struct {
	NewIDFn   func() string
	CodeFn    func() (string, error)
	IDPrefix  string
	mu        sync.Mutex
	nextID    int
	nextCode  int
	CodeError error
}

// NewID returns sequential ids like "id-1", "id-2", ...
func (s *IdentStub) NewID() string {
	if s.NewIDFn != nil {
		return s.NewIDFn()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	prefix := s.IDPrefix
	if prefix == "" {
		prefix = "id"
	}
	return prefix + "-" + strconv.Itoa(s.nextID)
}

// NewReferralCode returns sequential codes like "code-1", "code-2", ...
func (s *IdentStub) NewReferralCode() (string, error) {
	if s.CodeFn != nil {
		return s.CodeFn()
	}
	if s.CodeError != nil {
		return "", s.CodeError
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextCode++
	return "code-" + strconv.Itoa(s.nextCode), nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
