package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/notekeeper-server/internal/logger"
	"github.com/dtroode/notekeeper-server/internal/model"
)

// Note implements note operations and the access-control rules gating them.
//
// Read access to a single note is granted by any one of: the note is
// public, the caller owns it, or the note is shared with the caller.
// Every mutation is owner-only. Existence is always resolved before
// authorization so a missing note reports not-found, never a denial.
type Note struct {
	noteStore model.NoteStore
	userStore model.UserStore
	logger    *logger.Logger
}

// NewNote creates a new Note service.
func NewNote(
	noteStore model.NoteStore,
	userStore model.UserStore,
	logger *logger.Logger,
) *Note {
	return &Note{
		noteStore: noteStore,
		userStore: userStore,
		logger:    logger,
	}
}

// CreateNote creates a note owned by the caller. The owner is always the
// caller; nothing in the request can assign authorship to someone else.
func (s *Note) CreateNote(ctx context.Context, params model.CreateNoteParams) (model.Note, error) {
	if strings.TrimSpace(params.Title) == "" {
		return model.Note{}, model.ErrTitleRequired
	}

	note := model.Note{
		ID:          uuid.New(),
		Title:       params.Title,
		Description: params.Description,
		OwnerID:     params.OwnerID,
	}

	note, err := s.noteStore.Create(ctx, note)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	s.logger.Info("Note service: note created", "note_id", note.ID, "owner_id", note.OwnerID)

	return note, nil
}

// GetNote returns a single note if the caller may read it.
// A public note is readable by any authenticated caller, bypassing
// ownership and sharing checks entirely.
func (s *Note) GetNote(ctx context.Context, callerID uuid.UUID, noteID uuid.UUID) (model.Note, error) {
	note, err := s.noteStore.GetByID(ctx, noteID)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to get note by id: %w", err)
	}

	if note.IsPublic {
		return note, nil
	}

	if note.OwnerID == callerID || note.SharedWithUser(callerID) {
		return note, nil
	}

	return model.Note{}, model.ErrPermissionDenied
}

// GetNotes lists notes visible to the caller. The store filter is the
// access boundary: no note outside it is ever materialized.
func (s *Note) GetNotes(ctx context.Context, callerID uuid.UUID) ([]model.Note, error) {
	notes, err := s.noteStore.ListVisibleTo(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return notes, nil
}

// GetRecycledNotes lists the caller's recycle bin plus shared notes.
func (s *Note) GetRecycledNotes(ctx context.Context, callerID uuid.UUID) ([]model.Note, error) {
	notes, err := s.noteStore.ListRecycledVisibleTo(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recycled notes: %w", err)
	}

	return notes, nil
}

// UpdateNote applies the allow-listed fields if the caller owns the note.
func (s *Note) UpdateNote(ctx context.Context, callerID uuid.UUID, noteID uuid.UUID, params model.UpdateNoteParams) (model.Note, error) {
	if strings.TrimSpace(params.Title) == "" {
		return model.Note{}, model.ErrTitleRequired
	}

	if err := s.requireOwner(ctx, callerID, noteID); err != nil {
		return model.Note{}, err
	}

	note, err := s.noteStore.Update(ctx, noteID, params)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to update note: %w", err)
	}

	return note, nil
}

// RecycleNote moves the note to the recycle bin. Idempotent.
func (s *Note) RecycleNote(ctx context.Context, callerID uuid.UUID, noteID uuid.UUID) (model.Note, error) {
	return s.setRecycled(ctx, callerID, noteID, true)
}

// RestoreNote takes the note back out of the recycle bin. Idempotent.
func (s *Note) RestoreNote(ctx context.Context, callerID uuid.UUID, noteID uuid.UUID) (model.Note, error) {
	return s.setRecycled(ctx, callerID, noteID, false)
}

func (s *Note) setRecycled(ctx context.Context, callerID uuid.UUID, noteID uuid.UUID, recycled bool) (model.Note, error) {
	if err := s.requireOwner(ctx, callerID, noteID); err != nil {
		return model.Note{}, err
	}

	note, err := s.noteStore.SetRecycled(ctx, noteID, recycled)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to set recycled flag: %w", err)
	}

	return note, nil
}

// DeleteNote removes the note permanently. Owner-only and irreversible;
// recycling is the reversible path.
func (s *Note) DeleteNote(ctx context.Context, callerID uuid.UUID, noteID uuid.UUID) error {
	if err := s.requireOwner(ctx, callerID, noteID); err != nil {
		return err
	}

	if err := s.noteStore.Delete(ctx, noteID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	s.logger.Info("Note service: note deleted", "note_id", noteID, "caller_id", callerID)

	return nil
}

// ShareNote grants the grantee read access. Sharing is a mutation, so it
// is owner-only. The grantee must exist.
func (s *Note) ShareNote(ctx context.Context, callerID uuid.UUID, noteID uuid.UUID, granteeID uuid.UUID) (model.Note, error) {
	if err := s.requireOwner(ctx, callerID, noteID); err != nil {
		return model.Note{}, err
	}

	if _, err := s.userStore.GetByID(ctx, granteeID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Note{}, fmt.Errorf("grantee: %w", model.ErrNotFound)
		}
		return model.Note{}, fmt.Errorf("failed to get grantee by id: %w", err)
	}

	note, err := s.noteStore.ShareWith(ctx, noteID, granteeID)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to share note: %w", err)
	}

	s.logger.Info("Note service: note shared", "note_id", noteID, "grantee_id", granteeID)

	return note, nil
}

// requireOwner resolves existence before authorization: a missing note
// is reported as not found, never as a permission failure.
func (s *Note) requireOwner(ctx context.Context, callerID uuid.UUID, noteID uuid.UUID) error {
	note, err := s.noteStore.GetByID(ctx, noteID)
	if err != nil {
		return fmt.Errorf("failed to get note by id: %w", err)
	}

	if note.OwnerID != callerID {
		return model.ErrPermissionDenied
	}

	return nil
}
