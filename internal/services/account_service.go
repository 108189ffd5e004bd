package services

import (
	"context"
	"log"

	"devmatter/internal/models/db_models"
	"devmatter/internal/models/request_models"
	"devmatter/internal/repositories"
	"devmatter/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	VerifyEmail(ctx context.Context, userID uint, code string) error
	ResendVerification(ctx context.Context, userID uint) error
}

type AccountService struct {
	accountRepo      repositories.AccountRepositoryInterface
	verificationRepo repositories.VerificationRepositoryInterface
	mailService      IMailService
	quotaService     QuotaServiceInterface
}

func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	verificationRepo repositories.VerificationRepositoryInterface,
	mailService IMailService,
	quotaService QuotaServiceInterface,
) AccountServiceInterface {
	return &AccountService{
		accountRepo:      accountRepo,
		verificationRepo: verificationRepo,
		mailService:      mailService,
		quotaService:     quotaService,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	user := &db_models.User{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		PricingPlan:  db_models.PlanFree,
	}
	if err := a.accountRepo.Insert(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}

	if _, err := a.quotaService.EnsureCurrentCycle(ctx, user.ID); err != nil {
		// Admission creates the cycle lazily on first submission anyway.
		log.Printf("Error creating initial subscription cycle for user %d: %v", user.ID, err)
	}

	if err := a.createAndSendVerification(ctx, user.ID, user.Email); err != nil {
		// The account exists; the user can request a resend.
		log.Printf("Error sending verification email to %s: %v", user.Email, err)
	}

	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	user, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

func (a *AccountService) VerifyEmail(ctx context.Context, userID uint, code string) error {
	request, err := a.verificationRepo.FindByUser(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if request == nil {
		return utils.ErrVerificationNotFound
	}

	if request.Code != code {
		return utils.ErrInvalidCode
	}
	if request.ExpiresAt < utils.NowUnixSeconds() {
		return utils.ErrExpiredCode
	}

	if err := a.accountRepo.MarkEmailVerified(ctx, userID); err != nil {
		return utils.ErrDatabaseError
	}
	if err := a.verificationRepo.Delete(ctx, request.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) ResendVerification(ctx context.Context, userID uint) error {
	request, err := a.verificationRepo.FindByUser(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if request == nil {
		return utils.ErrVerificationNotFound
	}

	if err := a.verificationRepo.Delete(ctx, request.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return a.createAndSendVerification(ctx, userID, request.Email)
}

func (a *AccountService) createAndSendVerification(ctx context.Context, userID uint, email string) error {
	code, err := utils.GenerateOtpCode(8)
	if err != nil {
		return err
	}

	if err := a.verificationRepo.Create(ctx, &db_models.EmailVerificationRequest{
		UserID:    userID,
		Email:     email,
		Code:      code,
		ExpiresAt: utils.NowUnixSeconds() + 60*10,
	}); err != nil {
		return utils.ErrDatabaseError
	}

	return a.mailService.SendVerificationEmail(email, code)
}
