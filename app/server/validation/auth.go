package validation

import (
	"github.com/deepesh-sr/Textura-Backend/app/server/models"
	"strings"
)

type SignupInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,max=128"`
	Role     string `json:"role" validate:"omitempty,role"`
}

type SigninInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ValidatedSignup struct {
	Name     string
	Email    string // 小写
	Password string // 明文，由调用方负责 hash
	Role     models.Role
}

func ValidateSignup(in *SignupInput) (*ValidatedSignup, error) {
	if in == nil {
		in = &SignupInput{}
	}
	normalized := SignupInput{
		Name:     strings.TrimSpace(in.Name),
		Email:    NormalizeEmail(in.Email),
		Password: in.Password,
		Role:     strings.TrimSpace(in.Role),
	}
	if err := check(&normalized); err != nil {
		return nil, err
	}

	role := models.RoleUser
	if normalized.Role != "" {
		// 规则里已经校验过
		role, _ = models.ParseRole(normalized.Role)
	}

	return &ValidatedSignup{
		Name:     normalized.Name,
		Email:    normalized.Email,
		Password: normalized.Password,
		Role:     role,
	}, nil
}

func ValidateSignin(in *SigninInput) (*SigninInput, error) {
	if in == nil {
		in = &SigninInput{}
	}
	normalized := SigninInput{
		Email:    NormalizeEmail(in.Email),
		Password: in.Password,
	}
	if err := check(&normalized); err != nil {
		return nil, err
	}
	return &normalized, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
