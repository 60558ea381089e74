package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mtkshopping/marketplace/internal/domain/errors"
	"github.com/mtkshopping/marketplace/internal/domain/model"
	pkgAuth "github.com/mtkshopping/marketplace/internal/pkg/auth"
	"github.com/mtkshopping/marketplace/internal/server/http/dto"
	"github.com/mtkshopping/marketplace/internal/server/http/middleware"
	testhelpers "github.com/mtkshopping/marketplace/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, path, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asCustomer(userID string) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.IdentityContextKey, pkgAuth.Identity{UserID: userID, Role: model.RoleCustomer})
	}
}

func asSeller(userID string) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.IdentityContextKey, pkgAuth.Identity{UserID: userID, Role: model.RoleSeller})
	}
}

func TestCurrentIdentity(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentIdentity(c); got.UserID != "" {
		t.Fatalf("expected empty identity when not set, got %+v", got)
	}

	c.Set(middleware.IdentityContextKey, pkgAuth.Identity{UserID: "u-42", Role: model.RoleSeller})
	if got := CurrentIdentity(c); got.UserID != "u-42" || got.Role != model.RoleSeller {
		t.Fatalf("expected stored identity, got %+v", got)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	body, _ := json.Marshal(dto.RegisterRequest{Email: "user@example.com", Password: "pass"})
	resp := performRequest(t, http.MethodPost, "/register", NewAuthHandler(testhelpers.AuthFacadeStub{}).Register, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var out dto.RegisterResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.RefCode == "" {
		t.Fatal("expected referral code in response")
	}
}

func TestAuthHandlerRegisterPassesPayload(t *testing.T) {
	email := testhelpers.RandomEmail()
	password := testhelpers.RandomASCIIString(16, 32)
	body, _ := json.Marshal(dto.RegisterRequest{Email: email, Password: password, Role: "seller", Ref: "abc123"})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(ctx context.Context, gotEmail, gotPassword string, role model.Role, refCode string) (*model.User, error) {
		if gotEmail != email || gotPassword != password {
			t.Fatalf("unexpected credentials passed to facade: %q %q", gotEmail, gotPassword)
		}
		if role != model.RoleSeller || refCode != "abc123" {
			t.Fatalf("unexpected role/ref passed to facade: %q %q", role, refCode)
		}
		return &model.User{ID: "u-1", Email: gotEmail, Role: role, ReferralCode: "xyz789"}, nil
	}})
	resp := performRequest(t, http.MethodPost, "/register", handler.Register, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var out dto.RegisterResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.RefCode != "xyz789" {
		t.Fatalf("expected refCode xyz789, got %q", out.RefCode)
	}
}

func TestAuthHandlerRegisterErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"duplicate", domainErrors.ErrAlreadyExists, http.StatusConflict},
		{"invalid credentials", domainErrors.ErrInvalidCredentials, http.StatusBadRequest},
		{"invalid role", domainErrors.ErrInvalidRole, http.StatusBadRequest},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, model.Role, string) (*model.User, error) {
				return nil, tt.err
			}})
			body, _ := json.Marshal(dto.RegisterRequest{Email: "user@example.com", Password: "pass"})
			resp := performRequest(t, http.MethodPost, "/register", handler.Register, nil, body, nil)
			if resp.Code != tt.code {
				t.Fatalf("expected status %d, got %d", tt.code, resp.Code)
			}
		})
	}
}

func TestAuthHandlerRegisterBadJSON(t *testing.T) {
	resp := performRequest(t, http.MethodPost, "/register", NewAuthHandler(testhelpers.AuthFacadeStub{}).Register, nil, []byte("{"), nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.LoginRequest{Email: "user@example.com", Password: "pass"})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
		return "session-token", nil
	}})
	resp := performRequest(t, http.MethodPost, "/login", handler.Login, nil, body, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var out dto.TokenResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Token != "session-token" {
		t.Fatalf("expected token in body, got %q", out.Token)
	}
	if resp.Header().Get("Authorization") != "Bearer session-token" {
		t.Fatalf("expected auth header, got %q", resp.Header().Get("Authorization"))
	}
}

func TestAuthHandlerLoginErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid credentials", domainErrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
				return "", tt.err
			}})
			body, _ := json.Marshal(dto.LoginRequest{Email: "user@example.com", Password: "bad"})
			resp := performRequest(t, http.MethodPost, "/login", handler.Login, nil, body, nil)
			if resp.Code != tt.code {
				t.Fatalf("expected status %d, got %d", tt.code, resp.Code)
			}
		})
	}
}

func TestProductHandlerCreate(t *testing.T) {
	body, _ := json.Marshal(dto.CreateProductRequest{Name: "Widget", Price: 100})
	resp := performRequest(t, http.MethodPost, "/products", NewProductHandler(testhelpers.CatalogFacadeStub{}).Create, asSeller("u-1"), body, nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var out dto.ProductResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Name != "Widget" || out.SellerID != "u-1" {
		t.Fatalf("unexpected product %+v", out)
	}
}

func TestProductHandlerCreateErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"forbidden", domainErrors.ErrForbidden, http.StatusForbidden},
		{"invalid price", domainErrors.ErrInvalidPrice, http.StatusBadRequest},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewProductHandler(testhelpers.CatalogFacadeStub{CreateFn: func(context.Context, pkgAuth.Identity, string, float64) (*model.Product, error) {
				return nil, tt.err
			}})
			body, _ := json.Marshal(dto.CreateProductRequest{Name: "Widget", Price: 100})
			resp := performRequest(t, http.MethodPost, "/products", handler.Create, asCustomer("u-2"), body, nil)
			if resp.Code != tt.code {
				t.Fatalf("expected status %d, got %d", tt.code, resp.Code)
			}
		})
	}
}

func TestProductHandlerList(t *testing.T) {
	handler := NewProductHandler(testhelpers.CatalogFacadeStub{ProductsFn: func(context.Context) ([]model.Product, error) {
		return []model.Product{{ID: "p-1", Name: "Widget", Price: 100}, {ID: "p-2", Name: "Gadget", Price: 50}}, nil
	}})
	resp := performRequest(t, http.MethodGet, "/products", handler.List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var out []dto.ProductResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 products, got %d", len(out))
	}
}

func TestProductHandlerListError(t *testing.T) {
	handler := NewProductHandler(testhelpers.CatalogFacadeStub{ProductsFn: func(context.Context) ([]model.Product, error) {
		return nil, errors.New("boom")
	}})
	resp := performRequest(t, http.MethodGet, "/products", handler.List, nil, nil, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
}

func TestPurchaseHandlerBuy(t *testing.T) {
	body, _ := json.Marshal(dto.BuyRequest{ProductID: "p-1"})
	resp := performRequest(t, http.MethodPost, "/buy", NewPurchaseHandler(testhelpers.PurchaseFacadeStub{}).Buy, asCustomer("u-1"), body, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var out dto.BuyResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Purchase.ProductID != "p-1" {
		t.Fatalf("unexpected purchase %+v", out.Purchase)
	}
}

func TestPurchaseHandlerBuyErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"forbidden", domainErrors.ErrForbidden, http.StatusForbidden},
		{"not found", domainErrors.ErrNotFound, http.StatusNotFound},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewPurchaseHandler(testhelpers.PurchaseFacadeStub{BuyFn: func(context.Context, pkgAuth.Identity, string) (*model.Purchase, error) {
				return nil, tt.err
			}})
			body, _ := json.Marshal(dto.BuyRequest{ProductID: "p-1"})
			resp := performRequest(t, http.MethodPost, "/buy", handler.Buy, asCustomer("u-1"), body, nil)
			if resp.Code != tt.code {
				t.Fatalf("expected status %d, got %d", tt.code, resp.Code)
			}
		})
	}
}

func TestPurchaseHandlerBuyMissingProductID(t *testing.T) {
	body, _ := json.Marshal(dto.BuyRequest{})
	resp := performRequest(t, http.MethodPost, "/buy", NewPurchaseHandler(testhelpers.PurchaseFacadeStub{}).Buy, asCustomer("u-1"), body, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestPurchaseHandlerHistory(t *testing.T) {
	handler := NewPurchaseHandler(testhelpers.PurchaseFacadeStub{PurchasesFn: func(ctx context.Context, buyerID string) ([]model.Purchase, error) {
		if buyerID != "u-1" {
			t.Fatalf("unexpected buyer id %q", buyerID)
		}
		return []model.Purchase{{ID: "pur-1", ProductID: "p-1", BuyerID: buyerID}}, nil
	}})
	resp := performRequest(t, http.MethodGet, "/me/purchases", handler.History, asCustomer("u-1"), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var out []dto.PurchaseResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out) != 1 || out[0].ProductID != "p-1" {
		t.Fatalf("unexpected history %+v", out)
	}
}

func TestReferralHandlerReferrals(t *testing.T) {
	handler := NewReferralHandler(testhelpers.ReferralFacadeStub{ReferralsFn: func(ctx context.Context, userID string) (*model.ReferralSummary, error) {
		return &model.ReferralSummary{Total: 2, Balance: 20, Referred: []model.ReferredUser{
			{ID: "u-2", Email: "a@example.com"},
			{ID: "u-3", Email: "b@example.com"},
		}}, nil
	}})
	resp := performRequest(t, http.MethodGet, "/me/referrals", handler.Referrals, asCustomer("u-1"), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var out dto.ReferralsResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Total != 2 || out.Balance != 20 || len(out.Referred) != 2 {
		t.Fatalf("unexpected summary %+v", out)
	}
}

func TestReferralHandlerReferralsErrors(t *testing.T) {
	handler := NewReferralHandler(testhelpers.ReferralFacadeStub{ReferralsFn: func(context.Context, string) (*model.ReferralSummary, error) {
		return nil, domainErrors.ErrNotFound
	}})
	resp := performRequest(t, http.MethodGet, "/me/referrals", handler.Referrals, asCustomer("u-1"), nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}

	handler = NewReferralHandler(testhelpers.ReferralFacadeStub{ReferralsFn: func(context.Context, string) (*model.ReferralSummary, error) {
		return nil, errors.New("boom")
	}})
	resp = performRequest(t, http.MethodGet, "/me/referrals", handler.Referrals, asCustomer("u-1"), nil, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
}

func TestReferralHandlerBalance(t *testing.T) {
	handler := NewReferralHandler(testhelpers.ReferralFacadeStub{BalanceFn: func(ctx context.Context, userID string) (float64, error) {
		return 42.5, nil
	}})
	resp := performRequest(t, http.MethodGet, "/me/balance", handler.Balance, asCustomer("u-1"), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var out dto.BalanceResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Balance != 42.5 {
		t.Fatalf("expected balance 42.5, got %v", out.Balance)
	}
}

func TestReferralHandlerBalanceErrors(t *testing.T) {
	handler := NewReferralHandler(testhelpers.ReferralFacadeStub{BalanceFn: func(context.Context, string) (float64, error) {
		return 0, domainErrors.ErrNotFound
	}})
	resp := performRequest(t, http.MethodGet, "/me/balance", handler.Balance, asCustomer("u-1"), nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}
