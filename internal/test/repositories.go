package test

import (
	"context"
	"sync"

	domainErrors "github.com/mtkshopping/marketplace/internal/domain/errors"
	"github.com/mtkshopping/marketplace/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests. All methods are
// safe for concurrent use so that lost-update scenarios can be exercised.
type UserRepositoryStub struct {
	mu      sync.Mutex
	ByID    map[string]*model.User
	ByEmail map[string]*model.User
	ByCode  map[string]*model.User
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByID:    make(map[string]*model.User),
		ByEmail: make(map[string]*model.User),
		ByCode:  make(map[string]*model.User),
	}
}

// Create registers user unless the email is taken or the stub has an
// explicit error configured.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.ByEmail[user.Email]; ok {
		return domainErrors.ErrAlreadyExists
	}
	if _, ok := s.ByCode[user.ReferralCode]; ok {
		return domainErrors.ErrAlreadyExists
	}
	stored := *user
	s.ByID[stored.ID] = &stored
	s.ByEmail[stored.Email] = &stored
	s.ByCode[stored.ReferralCode] = &stored
	return nil
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByReferralCode fetches the owner of a referral code.
func (s *UserRepositoryStub) GetByReferralCode(ctx context.Context, code string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByCode[code]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListReferrals returns users whose ReferredBy equals referrerID.
func (s *UserRepositoryStub) ListReferrals(ctx context.Context, referrerID string) ([]model.ReferredUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var referred []model.ReferredUser
	for _, user := range s.ByID {
		if user.ReferredBy != nil && *user.ReferredBy == referrerID {
			referred = append(referred, model.ReferredUser{ID: user.ID, Email: user.Email})
		}
	}
	return referred, nil
}

// Credit atomically adds amount to the stored user's balance. Returns
// false when the user does not exist.
func (s *UserRepositoryStub) Credit(id string, amount float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.ByID[id]
	if !ok {
		return false
	}
	user.Balance += amount
	return true
}

// Count reports how many users are stored.
func (s *UserRepositoryStub) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ByID)
}

// ProductRepositoryStub stores products in-memory for tests.
type ProductRepositoryStub struct {
	CreateFn  func(context.Context, *model.Product) error
	GetByIDFn func(context.Context, string) (*model.Product, error)
	ListFn    func(context.Context) ([]model.Product, error)

	Products []model.Product
	Err      error
}

// Create appends the product unless an override or error is configured.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	if s.Err != nil {
		return s.Err
	}
	s.Products = append(s.Products, *product)
	return nil
}

// GetByID returns a stored product or not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for _, p := range s.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns stored products.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Products, nil
}

// PurchaseCreateCall records one PurchaseRepository.Create invocation.
type PurchaseCreateCall struct {
	Purchase   model.Purchase
	Commission *model.Commission
}

// PurchaseRepositoryStub tracks created purchases for tests.
type PurchaseRepositoryStub struct {
	mu          sync.Mutex
	CreateFn    func(context.Context, *model.Purchase, *model.Commission) error
	ListFn      func(context.Context, string) ([]model.Purchase, error)
	Created     []PurchaseCreateCall
	Items       []model.Purchase
	Err         error
	ApplyCredit *UserRepositoryStub
}

// Create records the invocation. When ApplyCredit is set the commission is
// applied to that repository, mimicking the transactional credit.
func (s *PurchaseRepositoryStub) Create(ctx context.Context, purchase *model.Purchase, commission *model.Commission) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, purchase, commission)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	s.Created = append(s.Created, PurchaseCreateCall{Purchase: *purchase, Commission: commission})
	s.mu.Unlock()
	if commission != nil && s.ApplyCredit != nil {
		s.ApplyCredit.Credit(commission.ReferrerID, commission.Amount)
	}
	return nil
}

// ListByBuyer returns configured purchases.
func (s *PurchaseRepositoryStub) ListByBuyer(ctx context.Context, buyerID string) ([]model.Purchase, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, buyerID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Items, nil
}

// CreatedCount reports recorded purchase creations.
func (s *PurchaseRepositoryStub) CreatedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Created)
}
