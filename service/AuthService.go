package service

import (
	"errors"
	"log"

	"github.com/google/uuid"

	"eibs-cms/dto"
	"eibs-cms/model"
	"eibs-cms/repository"
	"eibs-cms/util"
)

// ErrInvalidCredentials covers both unknown email and wrong password, so
// responses never reveal which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(u repository.UserRepository) *AuthService {
	return &AuthService{userRepo: u}
}

// Login validates credentials, records lastLogin and issues a bearer token.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !util.VerifyPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		// Login still succeeds; the timestamp is best effort.
		log.Printf("failed to update lastLogin for %s: %v", user.Email, err)
	}

	token, err := util.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{User: user, Token: token}, nil
}

func (s *AuthService) GetUserByID(id uuid.UUID) (*model.User, error) {
	return s.userRepo.GetByID(id)
}
