package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// NoteStore defines persistence operations for notes.
type NoteStore interface {
	Create(ctx context.Context, note Note) (Note, error)
	GetByID(ctx context.Context, id uuid.UUID) (Note, error)
	// ListVisibleTo returns notes owned by the caller and not recycled,
	// plus notes shared with the caller regardless of their recycled flag.
	ListVisibleTo(ctx context.Context, callerID uuid.UUID) ([]Note, error)
	// ListRecycledVisibleTo is the same shape with recycled=true on the owned branch.
	ListRecycledVisibleTo(ctx context.Context, callerID uuid.UUID) ([]Note, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateNoteParams) (Note, error)
	SetRecycled(ctx context.Context, id uuid.UUID, recycled bool) (Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ShareWith(ctx context.Context, id uuid.UUID, granteeID uuid.UUID) (Note, error)
}

// Note represents a stored note document.
type Note struct {
	ID          uuid.UUID
	Title       string
	Description string
	OwnerID     uuid.UUID
	IsPublic    bool
	SharedWith  []uuid.UUID
	Recycled    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SharedWithUser reports whether the note is shared with the given user.
func (n Note) SharedWithUser(userID uuid.UUID) bool {
	for _, id := range n.SharedWith {
		if id == userID {
			return true
		}
	}
	return false
}

// UpdateNoteParams is the allow-list of mutable note fields.
// Nil fields are left unchanged. Ownership, visibility and sharing
// never change through this path.
type UpdateNoteParams struct {
	Title       string
	Description *string
	Recycled    *bool
}

// CreateNoteParams contains parameters to create a note.
type CreateNoteParams struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
}
