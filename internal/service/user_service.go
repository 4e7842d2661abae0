package service

import (
	"GrowAGram/internal/api/dto"
	"GrowAGram/internal/model"
	"GrowAGram/internal/pkg/consts"
	"GrowAGram/internal/pkg/security"
	"GrowAGram/internal/pkg/util"
	"GrowAGram/internal/repository"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type UserService interface {
	Register(ctx context.Context, dto *dto.RegisterDTO) (*dto.UserDTO, error)
	Login(ctx context.Context, dto *dto.CredentialDTO) (*dto.LoginResultDTO, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
	cache    Cache
}

func NewUserService(userRepo repository.UserRepo, cache Cache) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		cache:    cache,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.UserDTO, error) {
	if err := util.ValidateDTO(regDTO); err != nil {
		return nil, err
	}
	username := strings.TrimSpace(regDTO.Username)
	found, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if found != nil {
		return nil, ErrUserUsernameExist
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		if errors.Is(err, security.ErrPasswordTooLong) || errors.Is(err, security.ErrEmptyPassword) {
			return nil, ErrPasswordInvalid
		}
		return nil, err
	}

	name := util.RandomGrowerName()
	if regDTO.Name != nil && strings.TrimSpace(*regDTO.Name) != "" {
		name = strings.TrimSpace(*regDTO.Name)
	}

	user := &model.User{
		Username: username,
		Password: passwordHash,
		Name:     name,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserUsernameExist
		}
		return nil, err
	}
	return toUserDTO(user), nil
}

func (s *UserServiceImpl) Login(ctx context.Context, credential *dto.CredentialDTO) (*dto.LoginResultDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, strings.TrimSpace(credential.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.IsBan {
		return nil, ErrUserBan
	}
	if err = security.CheckPasswordHash(credential.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResultDTO{Token: token, User: toUserDTO(user)}, nil
}

// Logout 签名加入黑名单，直到 Token 自然过期
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	claims, err := security.ValidateToken(token)
	if err != nil {
		return UnauthorizedError
	}
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return UnauthorizedError
	}
	ttl := security.RemainingTTL(claims)
	if ttl <= 0 {
		return nil
	}
	return s.cache.Set(ctx, consts.TokenBlacklistKey+signature, true, ttl)
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user), nil
}
