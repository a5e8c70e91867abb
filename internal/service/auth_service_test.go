package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"greencart/internal/auth"
	apperrors "greencart/internal/errors"
	"greencart/internal/model"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name         string
		userName     string
		email        string
		password     string
		role         string
		setupMock    func(*MockUserRepository)
		expectedKind apperrors.Kind
		expectedRole string
	}{
		{
			name:     "successful registration defaults to consumer",
			userName: "Jean Martin",
			email:    "jean@example.com",
			password: "password123",
			role:     "",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "jean@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedRole: model.RoleConsumer,
		},
		{
			name:     "producer role is kept",
			userName: "Marie Dupont",
			email:    "marie@example.com",
			password: "password123",
			role:     model.RoleProducer,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "marie@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedRole: model.RoleProducer,
		},
		{
			name:     "admin cannot be self-assigned",
			userName: "Mallory",
			email:    "mallory@example.com",
			password: "password123",
			role:     model.RoleAdmin,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "mallory@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedRole: model.RoleConsumer,
		},
		{
			name:     "email is lowercased before lookup",
			userName: "Jean Martin",
			email:    "Jean@Example.COM",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "jean@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedRole: model.RoleConsumer,
		},
		{
			name:         "missing name",
			userName:     "",
			email:        "jean@example.com",
			password:     "password123",
			setupMock:    func(m *MockUserRepository) {},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:         "password too short",
			userName:     "Jean Martin",
			email:        "jean@example.com",
			password:     "abc",
			setupMock:    func(m *MockUserRepository) {},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:     "duplicate email",
			userName: "Jean Martin",
			email:    "jean@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "jean@example.com").
					Return(&model.User{Email: "jean@example.com"}, nil)
			},
			expectedKind: apperrors.KindConflict,
		},
		{
			name:     "duplicate email caught by store constraint",
			userName: "Jean Martin",
			email:    "jean@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "jean@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedKind: apperrors.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), nil)
			user, err := svc.Register(context.Background(), tt.userName, tt.email, tt.password, tt.role)

			if tt.expectedKind != apperrors.KindInternal {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedKind, apperrors.KindOf(err))
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRole, user.Role)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)

				// the serialized user must never include the hash
				payload, marshalErr := json.Marshal(user)
				assert.NoError(t, marshalErr)
				assert.NotContains(t, string(payload), user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcryptCost)
	userID := uuid.New()
	storedUser := &model.User{
		ID:           userID,
		Name:         "Marie Dupont",
		Email:        "marie@example.com",
		PasswordHash: string(hashed),
		Role:         model.RoleProducer,
	}

	tests := []struct {
		name         string
		email        string
		password     string
		setupMock    func(*MockUserRepository)
		expectedKind apperrors.Kind
		wantToken    bool
	}{
		{
			name:     "successful login",
			email:    "marie@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "marie@example.com").Return(storedUser, nil)
			},
			wantToken: true,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedKind: apperrors.KindAuth,
		},
		{
			name:     "wrong password",
			email:    "marie@example.com",
			password: "not-the-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "marie@example.com").Return(storedUser, nil)
			},
			expectedKind: apperrors.KindAuth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(mockRepo, jwtService, nil)

			token, user, err := svc.Login(context.Background(), tt.email, tt.password)

			if !tt.wantToken {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedKind, apperrors.KindOf(err))
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)

				claims, validateErr := jwtService.ValidateToken(token)
				assert.NoError(t, validateErr)
				assert.Equal(t, userID.String(), claims.UserID)
				assert.Equal(t, model.RoleProducer, claims.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_LoginErrorsAreUniform(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcryptCost)
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "known@example.com").
		Return(&model.User{ID: uuid.New(), Email: "known@example.com", PasswordHash: string(hashed)}, nil)
	mockRepo.On("FindByEmail", mock.Anything, "unknown@example.com").
		Return(nil, gorm.ErrRecordNotFound)

	svc := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), nil)

	_, _, errUnknown := svc.Login(context.Background(), "unknown@example.com", "whatever")
	_, _, errWrongPass := svc.Login(context.Background(), "known@example.com", "whatever")

	assert.Error(t, errUnknown)
	assert.Error(t, errWrongPass)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestAuthService_Profile(t *testing.T) {
	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).
			Return(&model.User{ID: userID, Name: "Jean Martin"}, nil)

		svc := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), nil)
		user, err := svc.Profile(context.Background(), userID)

		assert.NoError(t, err)
		assert.Equal(t, "Jean Martin", user.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), nil)
		_, err := svc.Profile(context.Background(), userID)

		assert.Error(t, err)
		assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	})
}
