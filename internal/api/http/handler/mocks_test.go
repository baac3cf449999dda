package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/notekeeper-server/internal/model"
)

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, email, name, password string) (model.User, error) {
	args := m.Called(ctx, email, name, password)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *authServiceMock) SignIn(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) GetUser(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *userServiceMock) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *userServiceMock) SearchByEmail(ctx context.Context, email string) ([]model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *userServiceMock) UpdateName(ctx context.Context, id uuid.UUID, name string) (model.User, error) {
	args := m.Called(ctx, id, name)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *userServiceMock) DeleteUser(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

type noteServiceMock struct {
	mock.Mock
}

func (m *noteServiceMock) CreateNote(ctx context.Context, params model.CreateNoteParams) (model.Note, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *noteServiceMock) GetNote(ctx context.Context, callerID uuid.UUID, noteID uuid.UUID) (model.Note, error) {
	args := m.Called(ctx, callerID, noteID)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *noteServiceMock) GetNotes(ctx context.Context, callerID uuid.UUID) ([]model.Note, error) {
	args := m.Called(ctx, callerID)
	return args.Get(0).([]model.Note), args.Error(1)
}

func (m *noteServiceMock) GetRecycledNotes(ctx context.Context, callerID uuid.UUID) ([]model.Note, error) {
	args := m.Called(ctx, callerID)
	return args.Get(0).([]model.Note), args.Error(1)
}

func (m *noteServiceMock) UpdateNote(ctx context.Context, callerID uuid.UUID, noteID uuid.UUID, params model.UpdateNoteParams) (model.Note, error) {
	args := m.Called(ctx, callerID, noteID, params)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *noteServiceMock) RecycleNote(ctx context.Context, callerID uuid.UUID, noteID uuid.UUID) (model.Note, error) {
	args := m.Called(ctx, callerID, noteID)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *noteServiceMock) RestoreNote(ctx context.Context, callerID uuid.UUID, noteID uuid.UUID) (model.Note, error) {
	args := m.Called(ctx, callerID, noteID)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *noteServiceMock) DeleteNote(ctx context.Context, callerID uuid.UUID, noteID uuid.UUID) error {
	args := m.Called(ctx, callerID, noteID)
	return args.Error(0)
}

func (m *noteServiceMock) ShareNote(ctx context.Context, callerID uuid.UUID, noteID uuid.UUID, granteeID uuid.UUID) (model.Note, error) {
	args := m.Called(ctx, callerID, noteID, granteeID)
	return args.Get(0).(model.Note), args.Error(1)
}
