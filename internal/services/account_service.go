package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	dbm "globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	resp "globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/logger"
	mem "globetrotter/pkg/memcache"
	"globetrotter/pkg/utils"
)

const resetTokenTTL = time.Hour

type AccountServiceInterface interface {
	SignUp(ctx context.Context, req request_models.SignUpRequest) (*resp.AccountResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*resp.LoginResponse, error)
	GetProfile(ctx context.Context, accountId string) (*resp.AccountResponse, error)
	UpdateProfile(ctx context.Context, accountId string, req request_models.UpdateProfileRequest) (*resp.AccountResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req request_models.ResetPasswordRequest) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	mailService IMailService
	resetTokens mem.ResetTokenStore
	log         *logger.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	mailService IMailService,
	resetTokens mem.ResetTokenStore,
	log *logger.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		mailService: mailService,
		resetTokens: resetTokens,
		log:         log.With("service", "AccountService"),
	}
}

func (a *AccountService) SignUp(ctx context.Context, req request_models.SignUpRequest) (*resp.AccountResponse, error) {
	email := normalizeEmail(req.Email)

	existing, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &dbm.Account{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        email,
		PasswordHash: hashedPassword,
		City:         req.City,
		Country:      req.Country,
		Role:         dbm.RoleUser,
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		a.log.Error("Failed to create account", "error", err)
		return nil, utils.ErrDatabaseError
	}

	out := toAccountResponse(*account)
	return &out, nil
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (*resp.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		a.log.Error("Failed to issue token", "account_id", account.ID, "error", err)
		return nil, err
	}
	return &resp.LoginResponse{Token: token, Account: toAccountResponse(*account)}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, accountId string) (*resp.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	out := toAccountResponse(*account)
	return &out, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, accountId string, req request_models.UpdateProfileRequest) (*resp.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if req.FirstName != nil {
		account.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		account.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.City != nil {
		account.City = *req.City
	}
	if req.Country != nil {
		account.Country = *req.Country
	}
	if req.AvatarURL != nil {
		account.AvatarURL = *req.AvatarURL
	}

	if err := a.accountRepo.Update(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := toAccountResponse(*account)
	return &out, nil
}

// ForgotPassword never reveals whether the email exists.
func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		a.log.Info("Password reset requested for unknown email")
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return err
	}
	a.resetTokens.Set(token, account.Email, resetTokenTTL)

	if err := a.mailService.SendPasswordReset(ctx, account.Email, account.FirstName, token); err != nil {
		a.log.Error("Failed to send reset email", "account_id", account.ID, "error", err)
		a.resetTokens.Consume(token)
		return err
	}
	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, req request_models.ResetPasswordRequest) error {
	email := a.resetTokens.Consume(req.Token)
	if email == "" {
		return utils.ErrInvalidResetToken
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := a.accountRepo.UpdatePasswordByEmail(ctx, email, hashed); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrInvalidResetToken
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
