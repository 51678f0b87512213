package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dbm "globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/logger"
	mem "globetrotter/pkg/memcache"
	"globetrotter/pkg/utils"
)

type memAccountRepo struct {
	byEmail map[string]*dbm.Account
}

var _ repositories.AccountRepository = (*memAccountRepo)(nil)

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{byEmail: map[string]*dbm.Account{}}
}

func (m *memAccountRepo) Insert(_ context.Context, a *dbm.Account) error {
	m.byEmail[a.Email] = a
	return nil
}

func (m *memAccountRepo) FindById(_ context.Context, id string) (*dbm.Account, error) {
	for _, a := range m.byEmail {
		if a.ID.String() == id {
			return a, nil
		}
	}
	return nil, nil
}

func (m *memAccountRepo) FindByEmail(_ context.Context, email string) (*dbm.Account, error) {
	return m.byEmail[email], nil
}

func (m *memAccountRepo) Update(_ context.Context, a *dbm.Account) error {
	m.byEmail[a.Email] = a
	return nil
}

func (m *memAccountRepo) UpdatePasswordByEmail(_ context.Context, email, hash string) error {
	a, ok := m.byEmail[email]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.PasswordHash = hash
	return nil
}

type fakeMail struct {
	sent  []string
	token string
	err   error
}

var _ IMailService = (*fakeMail)(nil)

func (f *fakeMail) SendPasswordReset(_ context.Context, to, _ string, token string) error {
	f.sent = append(f.sent, to)
	f.token = token
	return f.err
}

func TestAccountService_SignUpAndLogin(t *testing.T) {
	utils.ConfigureJWT("account-test", 0)
	ctx := context.Background()
	svc := NewAccountService(newMemAccountRepo(), &fakeMail{}, mem.NewResetTokens(), logger.NewNop())

	created, err := svc.SignUp(ctx, request_models.SignUpRequest{
		FirstName: " Ada ", LastName: "Lovelace", Email: " Ada@Example.com ", Password: "analytical",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", created.Email)
	assert.Equal(t, "Ada", created.FirstName)

	_, err = svc.SignUp(ctx, request_models.SignUpRequest{Email: "ada@example.com", Password: "other1"})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)

	login, err := svc.Login(ctx, request_models.LoginRequest{Email: "ADA@example.com", Password: "analytical"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)

	_, err = svc.Login(ctx, request_models.LoginRequest{Email: "ada@example.com", Password: "wrong!"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(ctx, request_models.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestAccountService_ResetFlow(t *testing.T) {
	ctx := context.Background()
	repo := newMemAccountRepo()
	mail := &fakeMail{}
	svc := NewAccountService(repo, mail, mem.NewResetTokens(), logger.NewNop())

	_, err := svc.SignUp(ctx, request_models.SignUpRequest{FirstName: "Ada", Email: "ada@example.com", Password: "analytical"})
	require.NoError(t, err)

	// unknown emails succeed silently
	require.NoError(t, svc.ForgotPassword(ctx, "ghost@example.com"))
	assert.Empty(t, mail.sent)

	require.NoError(t, svc.ForgotPassword(ctx, "Ada@Example.com"))
	require.Equal(t, []string{"ada@example.com"}, mail.sent)
	require.NotEmpty(t, mail.token)

	require.NoError(t, svc.ResetPassword(ctx, request_models.ResetPasswordRequest{Token: mail.token, NewPassword: "babbage"}))
	assert.NoError(t, utils.ComparePasswords(repo.byEmail["ada@example.com"].PasswordHash, "babbage"))

	// tokens are single use
	err = svc.ResetPassword(ctx, request_models.ResetPasswordRequest{Token: mail.token, NewPassword: "again1"})
	assert.ErrorIs(t, err, utils.ErrInvalidResetToken)
}

func TestAccountService_ForgotPasswordSendFailureDropsToken(t *testing.T) {
	ctx := context.Background()
	mail := &fakeMail{err: errors.New("smtp down")}
	svc := NewAccountService(newMemAccountRepo(), mail, mem.NewResetTokens(), logger.NewNop())

	_, err := svc.SignUp(ctx, request_models.SignUpRequest{FirstName: "Ada", Email: "ada@example.com", Password: "analytical"})
	require.NoError(t, err)

	require.Error(t, svc.ForgotPassword(ctx, "ada@example.com"))
	err = svc.ResetPassword(ctx, request_models.ResetPasswordRequest{Token: mail.token, NewPassword: "babbage"})
	assert.ErrorIs(t, err, utils.ErrInvalidResetToken)
}
