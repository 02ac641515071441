package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuqiannemo/WanderMind/internal/models/db_models"
	"github.com/yuqiannemo/WanderMind/internal/models/request_models"
	"github.com/yuqiannemo/WanderMind/pkg/utils"
)

// fakeAccountRepo keeps accounts in a map keyed by email.
type fakeAccountRepo struct {
	accounts map[string]*db_models.Account
	err      error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*db_models.Account)}
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if f.err != nil {
		return f.err
	}
	f.accounts[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, account := range f.accounts {
		if account.ID.String() == id {
			return account, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.accounts[email], nil
}

func seedAccount(t *testing.T, repo *fakeAccountRepo, email, password string) {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	repo.accounts[email] = &db_models.Account{
		BaseModel:    db_models.BaseModel{ID: uuid.New()},
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
	}
}

func TestLogin(t *testing.T) {
	repo := newFakeAccountRepo()
	seedAccount(t, repo, "ana@example.com", "s3cret")
	svc := NewAccountService(repo)

	token, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ana@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeAccountRepo()
	seedAccount(t, repo, "ana@example.com", "s3cret")
	svc := NewAccountService(repo)

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo())

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret",
	})
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestLoginRepoFailure(t *testing.T) {
	repo := newFakeAccountRepo()
	repo.err = errors.New("connection refused")
	svc := NewAccountService(repo)

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ana@example.com",
		Password: "s3cret",
	})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestLoginTokenSigningFailureIsInternal(t *testing.T) {
	repo := newFakeAccountRepo()
	seedAccount(t, repo, "ana@example.com", "s3cret")
	svc := &AccountService{
		accountRepo: repo,
		createToken: func(uuid.UUID) (string, error) {
			return "", errors.New("key must be configured")
		},
	}

	// A correct password with a broken signer is a server error, not a
	// credentials error.
	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ana@example.com",
		Password: "s3cret",
	})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestCreateAccount(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ana",
		Email:       "ana@example.com",
		Password:    "s3cret",
		Interests:   []string{"Museum"},
	})
	require.NoError(t, err)

	stored := repo.accounts["ana@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(stored.PasswordHash, "s3cret"))
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	seedAccount(t, repo, "ana@example.com", "s3cret")
	svc := NewAccountService(repo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ana",
		Email:       "ana@example.com",
		Password:    "other",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}
