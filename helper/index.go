package helper

import (
	"errors"
	"net/mail"
	"time"

	"coworking_market/config"
	"coworking_market/model"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var JwtSecret = []byte(config.Config("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func Valid(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["email"] = tokenClaim.Email
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	return token.SignedString(JwtSecret)
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	return token.SignedString(JwtSecret)
}

func GenerateTokens(tokenClaim model.TokenClaim) (*model.TokenData, error) {
	access, err := GenerateAccessToken(tokenClaim)
	if err != nil {
		return nil, err
	}
	refresh, err := GenerateRefreshToken(tokenClaim)
	if err != nil {
		return nil, err
	}
	return &model.TokenData{AccessToken: access, RefreshToken: refresh}, nil
}

// ParseAccessToken verifies the HMAC signature and expiry and returns the claim.
func ParseAccessToken(tokenString string) (*model.TokenClaim, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return JwtSecret, nil
	})
	if err != nil || !token.Valid {
		if err == nil {
			err = errors.New("token is not valid")
		}
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}
	userId, ok := claims["userId"].(float64)
	if !ok || userId <= 0 {
		return nil, errors.New("token has no user")
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	return &model.TokenClaim{UserId: uint(userId), Email: email, Role: role}, nil
}
