package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/notekeeper-server/internal/model"
)

// NoteStore is a testify mock for model.NoteStore.
type NoteStore struct {
	mock.Mock
}

func (m *NoteStore) Create(ctx context.Context, note model.Note) (model.Note, error) {
	args := m.Called(ctx, note)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *NoteStore) GetByID(ctx context.Context, id uuid.UUID) (model.Note, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *NoteStore) ListVisibleTo(ctx context.Context, callerID uuid.UUID) ([]model.Note, error) {
	args := m.Called(ctx, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Note), args.Error(1)
}

func (m *NoteStore) ListRecycledVisibleTo(ctx context.Context, callerID uuid.UUID) ([]model.Note, error) {
	args := m.Called(ctx, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Note), args.Error(1)
}

func (m *NoteStore) Update(ctx context.Context, id uuid.UUID, params model.UpdateNoteParams) (model.Note, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *NoteStore) SetRecycled(ctx context.Context, id uuid.UUID, recycled bool) (model.Note, error) {
	args := m.Called(ctx, id, recycled)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *NoteStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *NoteStore) ShareWith(ctx context.Context, id uuid.UUID, granteeID uuid.UUID) (model.Note, error) {
	args := m.Called(ctx, id, granteeID)
	return args.Get(0).(model.Note), args.Error(1)
}
