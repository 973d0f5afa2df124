package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/service"
	"maintenance-system/pkg/utils"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, data dto.RegisterDTO) (*dto.LoginResponseDTO, error)
	Login(ctx context.Context, data dto.LoginDTO) (*dto.LoginResponseDTO, error)
	Refresh(ctx context.Context, data dto.RefreshDTO) (*dto.TokenPairDTO, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*dto.AuthUserDTO, error)
}

type AuthService struct {
	userRepo    repositories.UserRepositoryInterface
	companyRepo repositories.CompanyRepositoryInterface
	cache       repositories.CacheRepositoryInterface
	jwtService  service.JWTService
	logger      *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	companyRepo repositories.CompanyRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		cache:       cache,
		jwtService:  jwtService,
		logger:      logger,
	}
}

func refreshTokenKey(userID uuid.UUID) string {
	return "refresh:" + userID.String()
}

// Register creates the user and, when the company name is new, the
// company with it. The first user of a company becomes its manager;
// everyone joining an existing company starts as an employee.
func (s *AuthService) Register(ctx context.Context, data dto.RegisterDTO) (*dto.LoginResponseDTO, error) {
	if _, err := s.userRepo.FindByEmail(ctx, data.Email); err == nil {
		return nil, apperrors.NewInvalidInputError("email %s is already registered", data.Email)
	} else if err != apperrors.ErrNotFound {
		return nil, err
	}

	role := entities.RoleEmployee
	company, err := s.companyRepo.FindByName(ctx, data.Company)
	if err == apperrors.ErrNotFound {
		company = &entities.Company{ID: uuid.New(), Name: data.Company}
		if err := s.companyRepo.Create(ctx, company); err != nil {
			return nil, err
		}
		role = entities.RoleManager
	} else if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:             uuid.New(),
		FullName:       data.FullName,
		Email:          data.Email,
		HashedPassword: string(hashed),
		Role:           role,
		CompanyID:      company.ID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, data dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	user, err := s.userRepo.FindByEmail(ctx, data.Email)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(data.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// Refresh rotates the token pair. The presented refresh token must match
// the one on record, so a stolen token stops working as soon as its
// owner refreshes.
func (s *AuthService) Refresh(ctx context.Context, data dto.RefreshDTO) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtService.ValidateToken(data.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	stored, err := s.cache.Get(ctx, refreshTokenKey(claims.UserID))
	if err != nil || stored != data.RefreshToken {
		return nil, apperrors.ErrInvalidToken
	}

	access, refresh, err := s.jwtService.GenerateTokens(claims.UserID, claims.CompanyID, claims.Role)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, refreshTokenKey(claims.UserID), refresh, s.jwtService.GetRefreshTokenTTL()); err != nil {
		return nil, err
	}

	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return err
	}
	return s.cache.Delete(ctx, refreshTokenKey(userID))
}

func (s *AuthService) CurrentUser(ctx context.Context) (*dto.AuthUserDTO, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := mapAuthUser(user)
	return &result, nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *entities.User) (*dto.LoginResponseDTO, error) {
	access, refresh, err := s.jwtService.GenerateTokens(user.ID, user.CompanyID, string(user.Role))
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, refreshTokenKey(user.ID), refresh, s.jwtService.GetRefreshTokenTTL()); err != nil {
		return nil, err
	}

	return &dto.LoginResponseDTO{
		User:   mapAuthUser(user),
		Tokens: dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh},
	}, nil
}

func mapAuthUser(user *entities.User) dto.AuthUserDTO {
	return dto.AuthUserDTO{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      string(user.Role),
		CompanyID: user.CompanyID,
	}
}
