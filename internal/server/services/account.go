// Package services contains server-side business logic. This file implements
// AccountService, the orchestration component for the user account
// lifecycle: signup, login, profile/password edits, and email verification.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/nubereats/accounts/internal/common"
	"github.com/nubereats/accounts/internal/dbx"
	"github.com/nubereats/accounts/internal/logging"
	"github.com/nubereats/accounts/internal/server/auth"
	"github.com/nubereats/accounts/internal/server/config"
	"github.com/nubereats/accounts/internal/server/hashing"
	"github.com/nubereats/accounts/internal/server/mail"
	"github.com/nubereats/accounts/internal/server/models"
	"github.com/nubereats/accounts/internal/server/repositories/repomanager"
)

// AccountService provides the account lifecycle operations:
//   - CreateAccount: signup plus verification mail
//   - Login: verify credentials and mint a session token
//   - FindByID: strict profile lookup
//   - EditProfile / EditPassword: mutually exclusive edit paths
//   - VerifyEmail: single-use code redemption
//
// Every operation catches internal failures at its own boundary: callers
// only ever see the sentinel errors from internal/common, never raw
// persistence errors.
type AccountService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	hasher                hashing.Hasher
	notifier              mail.Notifier
	logger                logging.Logger
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewAccountService constructs an AccountService using repositories,
// the credential hasher, the mail notifier, and server config.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, hasher hashing.Hasher, notifier mail.Notifier, logger logging.Logger, cfg *config.Config) *AccountService {
	if hasher == nil {
		hasher = hashing.BcryptHasher{}
	}
	if notifier == nil {
		notifier = mail.NoopNotifier{}
	}
	return &AccountService{
		db:                    db,
		repomanager:           m,
		hasher:                hasher,
		notifier:              notifier,
		logger:                logger.With("module", "account_service"),
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// CreateAccount registers a new, unverified user and issues a verification
// code for it in the same transaction. The verification mail is sent
// fire-and-forget after the transaction commits; a delivery failure never
// rolls anything back.
func (s *AccountService) CreateAccount(ctx context.Context, email, password string, role models.Role) error {
	repo := s.repomanager.Users(s.db)

	// Fast-path check for the friendly error; the unique index on email is
	// what actually closes the race between concurrent signups.
	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return common.ErrDuplicateEmail
	} else if !errors.Is(err, common.ErrorNotFound) {
		s.logger.Error(ctx, "signup lookup failed", "error", err)
		return common.ErrorInternal
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return common.ErrorInternal
	}

	code := models.NewVerificationCode()

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		user := &models.User{Email: email, Password: hash, Role: role, Verified: false}
		user, err := s.repomanager.Users(tx).Create(ctx, user)
		if err != nil {
			return err
		}
		_, err = s.repomanager.Verifications(tx).Create(ctx, &models.Verification{Code: code, UserID: user.ID})
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return common.ErrDuplicateEmail
		}
		s.logger.Error(ctx, "account creation failed", "error", err)
		return common.ErrorInternal
	}

	s.notify(ctx, email, code)
	return nil
}

// Login verifies the supplied credentials and returns a signed session
// token bound to the user's id.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrUserNotFound
		}
		s.logger.Error(ctx, "login lookup failed", "error", err)
		return "", common.ErrorInternal
	}

	if !s.hasher.Verify(password, user.Password) {
		return "", common.ErrInvalidPassword
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		s.logger.Error(ctx, "token signing failed", "error", err)
		return "", common.ErrorInternal
	}

	return token, nil
}

// FindByID fetches a user or fails with ErrUserNotFound. Absence is a hard
// failure, never an empty result.
func (s *AccountService) FindByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		s.logger.Error(ctx, "profile lookup failed", "error", err)
		return nil, common.ErrorInternal
	}
	return user, nil
}

// EditProfile changes the acting user's email and resets its verified flag.
// An existing pending verification is reused (its code is re-sent), a
// missing one is created. Password changes do not route through here.
func (s *AccountService) EditProfile(ctx context.Context, userID int64, email string) error {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrUserNotFound
		}
		s.logger.Error(ctx, "profile edit lookup failed", "error", err)
		return common.ErrorInternal
	}

	if user.Email == email {
		return common.ErrEmailUnchanged
	}

	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return common.ErrEmailInUse
	} else if !errors.Is(err, common.ErrorNotFound) {
		s.logger.Error(ctx, "profile edit lookup failed", "error", err)
		return common.ErrorInternal
	}

	var code string
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Users(tx).UpdateEmail(ctx, userID, email); err != nil {
			return err
		}

		verRepo := s.repomanager.Verifications(tx)
		verification, err := verRepo.GetByUserID(ctx, userID)
		switch {
		case err == nil:
			code = verification.Code
			return nil
		case errors.Is(err, common.ErrorNotFound):
			code = models.NewVerificationCode()
			_, err := verRepo.Create(ctx, &models.Verification{Code: code, UserID: userID})
			return err
		default:
			return err
		}
	})
	if err != nil {
		if errors.Is(err, common.ErrEmailInUse) {
			return common.ErrEmailInUse
		}
		s.logger.Error(ctx, "profile edit failed", "error", err)
		return common.ErrorInternal
	}

	s.notify(ctx, email, code)
	return nil
}

// EditPassword replaces the acting user's password. Submitting the current
// password again is rejected before any write happens.
func (s *AccountService) EditPassword(ctx context.Context, userID int64, password string) error {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrUserNotFound
		}
		s.logger.Error(ctx, "password edit lookup failed", "error", err)
		return common.ErrorInternal
	}

	if s.hasher.Verify(password, user.Password) {
		return common.ErrPasswordUnchanged
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return common.ErrorInternal
	}

	if err := repo.UpdatePassword(ctx, userID, hash); err != nil {
		s.logger.Error(ctx, "password update failed", "error", err)
		return common.ErrorInternal
	}

	return nil
}

// VerifyEmail redeems a verification code: it marks the owning user
// verified and deletes the record, which makes a second submission of the
// same code fail the not-found branch.
func (s *AccountService) VerifyEmail(ctx context.Context, code string) error {
	verification, err := s.repomanager.Verifications(s.db).GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrInvalidVerificationCode
		}
		s.logger.Error(ctx, "verification lookup failed", "error", err)
		return common.ErrorInternal
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Users(tx).SetVerified(ctx, verification.UserID, true); err != nil {
			return err
		}
		return s.repomanager.Verifications(tx).Delete(ctx, verification.ID)
	})
	if err != nil {
		s.logger.Error(ctx, "verification failed", "error", err)
		return common.ErrorInternal
	}

	return nil
}

// notify sends the verification mail without blocking the enclosing
// operation. The result is logged and otherwise ignored.
func (s *AccountService) notify(ctx context.Context, email, code string) {
	mailCtx := context.WithoutCancel(ctx)
	go func() {
		if ok := s.notifier.SendVerificationMail(mailCtx, email, code); !ok {
			s.logger.Warn(mailCtx, "verification mail not delivered", "email", email)
		}
	}()
}
