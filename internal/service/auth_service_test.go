package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-tutor-be/internal/dto"
	"ai-tutor-be/internal/pkg/apperror"
	"ai-tutor-be/internal/repository/memory"
)

const testSecret = "test-secret"

func newAuthService(factory *memory.Factory) IAuthService {
	return NewAuthService(factory, testSecret, time.Hour, newTestLogger())
}

func TestRegisterAndLogin(t *testing.T) {
	factory := memory.NewFactory()
	svc := newAuthService(factory)

	registered, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Amira",
		Email:    "amira@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "english", registered.LanguagePref) // default

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "amira@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.Id, res.User.Id)
	require.NotEmpty(t, res.Token)

	// The token carries the user id and is signed with the configured secret.
	token, err := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, registered.Id.String(), claims["user_id"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	factory := memory.NewFactory()
	svc := newAuthService(factory)

	req := &dto.RegisterRequest{Name: "A", Email: "dup@example.com", Password: "password123"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestLoginInvalidCredentials(t *testing.T) {
	factory := memory.NewFactory()
	svc := newAuthService(factory)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "B", Email: "b@example.com", Password: "password123",
	})
	require.NoError(t, err)

	// Wrong password and unknown email produce the same error.
	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "b@example.com", Password: "wrong"})
	assert.Equal(t, apperror.KindAuth, apperror.KindOf(err))
	assert.Equal(t, "invalid credentials", apperror.MessageOf(err))

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.Equal(t, apperror.KindAuth, apperror.KindOf(err))
	assert.Equal(t, "invalid credentials", apperror.MessageOf(err))
}

func TestUpdateLanguage(t *testing.T) {
	factory := memory.NewFactory()
	svc := newAuthService(factory)

	registered, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "C", Email: "c@example.com", Password: "password123",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateLanguage(context.Background(), registered.Id, &dto.UpdateLanguageRequest{LanguagePref: "arabic"})
	require.NoError(t, err)
	assert.Equal(t, "arabic", updated.LanguagePref)

	profile, err := svc.GetProfile(context.Background(), registered.Id)
	require.NoError(t, err)
	assert.Equal(t, "arabic", profile.LanguagePref)
}
