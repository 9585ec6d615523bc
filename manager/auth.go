package manager

import (
	"context"
	"net/http"

	"coworking_market/constants"
	"coworking_market/helper"
	"coworking_market/model"

	"github.com/jinzhu/copier"
	"github.com/sirupsen/logrus"
)

type AuthManager struct {
	Deps
}

func NewAuthManager(deps Deps) *AuthManager {
	return &AuthManager{Deps: deps}
}

type Profile struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Status    string `json:"status"`
}

func (m *AuthManager) Register(ctx context.Context, input model.RegisterInput) (*Response, error) {
	existing, err := m.Store.Users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return fieldErrors([]model.FieldError{{Attribute: "email", Details: constants.EMAIL_ALREADY_EXIST}}), nil
	}

	var user model.User
	if err := copier.Copy(&user, &input); err != nil {
		return nil, err
	}
	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hash
	user.Status = constants.USER_STATUS_REGISTERED
	user.Active = true

	if err := m.Store.Users.Create(ctx, &user); err != nil {
		return nil, err
	}

	m.Log.WithFields(logrus.Fields{"userId": user.ID, "role": user.Role}).Info("user registered")
	return respond(http.StatusCreated, map[string]any{"id": user.ID}), nil
}

// Login returns the token pair alongside the response so the handler can
// also set it as a cookie.
func (m *AuthManager) Login(ctx context.Context, input model.LoginInput) (*Response, *model.TokenData, error) {
	user, err := m.Store.Users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil || !helper.CheckPasswordHash(input.Password, user.Password) {
		return message(http.StatusUnauthorized, constants.INVALID_CREDENTIALS), nil, nil
	}
	if !user.Active {
		return message(http.StatusUnauthorized, constants.ACCOUNT_NOT_ACTIVE), nil, nil
	}

	tokens, err := helper.GenerateTokens(model.TokenClaim{UserId: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		return nil, nil, err
	}
	return respond(http.StatusOK, tokens), tokens, nil
}

func (m *AuthManager) Me(user *model.User) *Response {
	return respond(http.StatusOK, Profile{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		Role:      user.Role,
		Status:    user.Status,
	})
}
