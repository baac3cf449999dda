package mocks

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/notekeeper-server/internal/model"
)

// TokenIssuer is a testify mock for model.TokenIssuer.
type TokenIssuer struct {
	mock.Mock
}

func (m *TokenIssuer) Issue(userID uuid.UUID, userName string) (string, error) {
	args := m.Called(userID, userName)
	return args.String(0), args.Error(1)
}

// TokenParser is a testify mock for model.TokenParser.
type TokenParser struct {
	mock.Mock
}

func (m *TokenParser) Parse(token string) (model.TokenClaims, error) {
	args := m.Called(token)
	return args.Get(0).(model.TokenClaims), args.Error(1)
}
