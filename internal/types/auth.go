package types

import (
	"github.com/go-playground/validator/v10"
)

// LoginRequest represents the operator login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// ScoreRequest is the request body shared by the score and plan endpoints.
type ScoreRequest struct {
	ResumeText string `json:"resume_text" validate:"required,min=50"`
	JobText    string `json:"job_text" validate:"required,min=50"`
}

// OptimizeRequest is the request body for the optimize endpoint.
type OptimizeRequest struct {
	ResumeText    string  `json:"resume_text" validate:"required,min=50"`
	JobText       string  `json:"job_text" validate:"required,min=50"`
	TargetScore   float64 `json:"target_score,omitempty" validate:"omitempty,gt=0,lte=100"`
	MaxIterations int     `json:"max_iterations,omitempty" validate:"omitempty,gte=1,lte=10"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the OptimizeRequest using the validator.
func (r *OptimizeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
