package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/arthurssantosibm/api-client/internal/adapter/http/models"
	"github.com/arthurssantosibm/api-client/internal/domain"
	"github.com/arthurssantosibm/api-client/internal/usecase/services"
)

type fakeAccountRepo struct {
	accounts map[int64]domain.Account
	nextID   int64
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[int64]domain.Account{}, nextID: 1}
}

func (f *fakeAccountRepo) Create(_ context.Context, account domain.Account) (domain.Account, error) {
	for _, existing := range f.accounts {
		if existing.Email == account.Email {
			return domain.Account{}, domain.ErrEmailTaken
		}
	}

	account.ID = f.nextID
	account.Balance = decimal.Zero
	f.nextID++
	f.accounts[account.ID] = account

	return account, nil
}

func (f *fakeAccountRepo) GetByID(_ context.Context, id int64) (domain.Account, error) {
	account, ok := f.accounts[id]
	if !ok {
		return domain.Account{}, domain.ErrRecordNotFound
	}
	return account, nil
}

func (f *fakeAccountRepo) GetByEmail(_ context.Context, email string) (domain.Account, error) {
	for _, account := range f.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return domain.Account{}, domain.ErrRecordNotFound
}

func (f *fakeAccountRepo) Update(_ context.Context, id int64, patch domain.AccountPatch) error {
	account, ok := f.accounts[id]
	if !ok {
		return domain.ErrRecordNotFound
	}

	if patch.Name != nil {
		account.Name = *patch.Name
	}
	if patch.Email != nil {
		account.Email = *patch.Email
	}
	if patch.Phone != nil {
		account.Phone = *patch.Phone
	}
	if patch.Secret != nil {
		account.Secret = *patch.Secret
	}

	f.accounts[id] = account
	return nil
}

// Suspend mirrors the store: flipping a missing id is a no-op, not an error.
func (f *fakeAccountRepo) Suspend(_ context.Context, id int64) error {
	if account, ok := f.accounts[id]; ok {
		account.Status = domain.AccountStatusSuspended
		f.accounts[id] = account
	}
	return nil
}

func (f *fakeAccountRepo) ReactivateByEmail(_ context.Context, email string) error {
	matched := false
	for id, account := range f.accounts {
		if strings.EqualFold(account.Email, email) {
			account.Status = domain.AccountStatusActive
			f.accounts[id] = account
			matched = true
		}
	}
	if !matched {
		return domain.ErrRecordNotFound
	}
	return nil
}

type staticIssuer struct {
	signed string
	err    error
}

func (s staticIssuer) Issue(int64) (string, error) {
	return s.signed, s.err
}

func createRequest() models.CreateUserRequest {
	return models.CreateUserRequest{
		Nome:     "Diego",
		Email:    "diego@x.com",
		Telefone: "11999990000",
		Senha:    "s3nh4",
	}
}

func TestAccountServiceCreateAndLogin(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := services.NewAccountService(repo, nil, staticIssuer{signed: "signed-token"})

	created, err := svc.Create(context.Background(), createRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 || created.Status != domain.AccountStatusActive {
		t.Fatalf("unexpected account: %+v", created)
	}
	if !created.Balance.Equal(decimal.Zero) {
		t.Fatalf("expected zero opening balance, got %s", created.Balance)
	}

	resp, err := svc.Login(context.Background(), models.LoginRequest{Email: "diego@x.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ID != created.ID || resp.Senha != "s3nh4" || resp.AccessToken != "signed-token" {
		t.Fatalf("unexpected login response: %+v", resp)
	}
}

func TestAccountServiceCreateDuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := services.NewAccountService(repo, nil, nil)

	if _, err := svc.Create(context.Background(), createRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Create(context.Background(), createRequest()); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAccountServiceLoginUnknownEmail(t *testing.T) {
	svc := services.NewAccountService(newFakeAccountRepo(), nil, nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@x.com"})
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestAccountServiceLoginSuspendedAccount(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := services.NewAccountService(repo, nil, nil)

	created, err := svc.Create(context.Background(), createRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Suspend(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "diego@x.com"})
	if !errors.Is(err, domain.ErrAccountInactive) {
		t.Fatalf("expected ErrAccountInactive, got %v", err)
	}
}

func TestAccountServiceLoginSucceedsWhenIssuerFails(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := services.NewAccountService(repo, nil, staticIssuer{err: errors.New("hsm offline")})

	if _, err := svc.Create(context.Background(), createRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := svc.Login(context.Background(), models.LoginRequest{Email: "diego@x.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AccessToken != "" {
		t.Fatalf("expected empty access token, got %q", resp.AccessToken)
	}
}

func TestAccountServiceUpdateNoFields(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := services.NewAccountService(repo, nil, nil)

	created, err := svc.Create(context.Background(), createRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = svc.Update(context.Background(), created.ID, models.UpdateUserRequest{})
	if !errors.Is(err, domain.ErrNoFieldsProvided) {
		t.Fatalf("expected ErrNoFieldsProvided, got %v", err)
	}
}

func TestAccountServiceUpdateUnknownID(t *testing.T) {
	svc := services.NewAccountService(newFakeAccountRepo(), nil, nil)

	nome := "Outro"
	err := svc.Update(context.Background(), 42, models.UpdateUserRequest{Nome: &nome})
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestAccountServiceUpdateAppliesPatch(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := services.NewAccountService(repo, nil, nil)

	created, err := svc.Create(context.Background(), createRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	telefone := "11888887777"
	senha := "nova-senha"
	if err := svc.Update(context.Background(), created.ID, models.UpdateUserRequest{Telefone: &telefone, Senha: &senha}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.Profile(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Phone != telefone || updated.Secret != senha {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.Name != "Diego" {
		t.Fatalf("untouched field changed: %+v", updated)
	}
}

func TestAccountServiceSuspendUnknownIDSucceeds(t *testing.T) {
	svc := services.NewAccountService(newFakeAccountRepo(), nil, nil)

	if err := svc.Suspend(context.Background(), 9999); err != nil {
		t.Fatalf("expected success for unknown id, got %v", err)
	}
}

func TestAccountServiceReactivateIsCaseInsensitiveAndIdempotent(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := services.NewAccountService(repo, nil, nil)

	created, err := svc.Create(context.Background(), createRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Suspend(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Reactivate(context.Background(), "  DIEGO@X.COM "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	account, err := svc.Profile(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.Status != domain.AccountStatusActive {
		t.Fatalf("expected active account, got %+v", account)
	}

	// Reactivating an already active account matches a row and succeeds.
	if err := svc.Reactivate(context.Background(), "diego@x.com"); err != nil {
		t.Fatalf("expected idempotent reactivate, got %v", err)
	}
}

func TestAccountServiceReactivateUnknownEmail(t *testing.T) {
	svc := services.NewAccountService(newFakeAccountRepo(), nil, nil)

	err := svc.Reactivate(context.Background(), "ghost@x.com")
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestAccountServiceCreateStoresSecretThroughCodec(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := services.NewAccountService(repo, services.BcryptCodec{}, nil)

	created, err := svc.Create(context.Background(), createRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Secret == "s3nh4" {
		t.Fatal("expected encoded secret, got the raw value")
	}
	if !(services.BcryptCodec{}).Verify(created.Secret, "s3nh4") {
		t.Fatal("stored secret does not verify against the original value")
	}
}
