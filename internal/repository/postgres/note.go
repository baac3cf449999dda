package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/notekeeper-server/internal/model"
)

var _ model.NoteStore = (*NoteRepository)(nil)

type NoteRepository struct {
	db *Connection
}

func NewNoteRepository(db *Connection) *NoteRepository {
	return &NoteRepository{
		db: db,
	}
}

// noteColumns selects a note row with its share list aggregated as text,
// so every read path returns the same shape.
const noteColumns = `
	n.id, n.title, n.description, n.owner_id, n.is_public, n.recycled,
	COALESCE(array_agg(s.user_id::text) FILTER (WHERE s.user_id IS NOT NULL), '{}'),
	n.created_at, n.updated_at`

const noteGroupBy = `
	GROUP BY n.id, n.title, n.description, n.owner_id, n.is_public, n.recycled, n.created_at, n.updated_at`

func scanNote(row pgx.Row) (model.Note, error) {
	var note model.Note
	var shared []string
	err := row.Scan(
		&note.ID, &note.Title, &note.Description, &note.OwnerID, &note.IsPublic, &note.Recycled,
		&shared, &note.CreatedAt, &note.UpdatedAt,
	)
	if err != nil {
		return model.Note{}, err
	}

	note.SharedWith = make([]uuid.UUID, 0, len(shared))
	for _, s := range shared {
		id, err := uuid.Parse(s)
		if err != nil {
			return model.Note{}, fmt.Errorf("failed to parse shared user id: %w", err)
		}
		note.SharedWith = append(note.SharedWith, id)
	}

	return note, nil
}

func (r *NoteRepository) Create(ctx context.Context, note model.Note) (model.Note, error) {
	query := `INSERT INTO notes (id, title, description, owner_id, is_public, recycled)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, title, description, owner_id, is_public, recycled, '{}'::text[], created_at, updated_at`

	savedNote, err := scanNote(r.db.QueryRow(ctx, query,
		note.ID, note.Title, note.Description, note.OwnerID, note.IsPublic, note.Recycled,
	))
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	return savedNote, nil
}

func (r *NoteRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Note, error) {
	query := `
		SELECT` + noteColumns + `
		FROM notes n
		LEFT JOIN note_shares s ON s.note_id = n.id
		WHERE n.id = $1` + noteGroupBy

	note, err := scanNote(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Note{}, model.ErrNotFound
		}
		return model.Note{}, fmt.Errorf("failed to get note by id: %w", err)
	}

	return note, nil
}

// ListVisibleTo returns notes owned by the caller and not recycled, plus
// notes shared with the caller. A shared note stays visible to grantees
// even after its owner recycles it.
func (r *NoteRepository) ListVisibleTo(ctx context.Context, callerID uuid.UUID) ([]model.Note, error) {
	query := `
		SELECT` + noteColumns + `
		FROM notes n
		LEFT JOIN note_shares s ON s.note_id = n.id
		WHERE (n.owner_id = $1 AND n.recycled = FALSE)
		   OR EXISTS (SELECT 1 FROM note_shares g WHERE g.note_id = n.id AND g.user_id = $1)` +
		noteGroupBy + `
		ORDER BY n.created_at DESC`

	return r.listNotes(ctx, query, callerID)
}

// ListRecycledVisibleTo is the recycle-bin variant of ListVisibleTo.
func (r *NoteRepository) ListRecycledVisibleTo(ctx context.Context, callerID uuid.UUID) ([]model.Note, error) {
	query := `
		SELECT` + noteColumns + `
		FROM notes n
		LEFT JOIN note_shares s ON s.note_id = n.id
		WHERE (n.owner_id = $1 AND n.recycled = TRUE)
		   OR EXISTS (SELECT 1 FROM note_shares g WHERE g.note_id = n.id AND g.user_id = $1)` +
		noteGroupBy + `
		ORDER BY n.created_at DESC`

	return r.listNotes(ctx, query, callerID)
}

func (r *NoteRepository) listNotes(ctx context.Context, query string, callerID uuid.UUID) ([]model.Note, error) {
	rows, err := r.db.Query(ctx, query, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return notes, nil
}

func (r *NoteRepository) Update(ctx context.Context, id uuid.UUID, params model.UpdateNoteParams) (model.Note, error) {
	query := `UPDATE notes
			  SET title = $2,
			      description = COALESCE($3, description),
			      recycled = COALESCE($4, recycled),
			      updated_at = NOW()
			  WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query, id, params.Title, params.Description, params.Recycled)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to update note: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.Note{}, model.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

// SetRecycled toggles the recycled flag. The operation is idempotent.
func (r *NoteRepository) SetRecycled(ctx context.Context, id uuid.UUID, recycled bool) (model.Note, error) {
	const query = `UPDATE notes SET recycled = $2, updated_at = NOW() WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query, id, recycled)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to set recycled flag: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.Note{}, model.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *NoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM notes WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// ShareWith grants the user read access. Repeated shares are a no-op:
// the share list behaves as a set.
func (r *NoteRepository) ShareWith(ctx context.Context, id uuid.UUID, granteeID uuid.UUID) (model.Note, error) {
	const query = `INSERT INTO note_shares (note_id, user_id) VALUES ($1, $2)
				   ON CONFLICT (note_id, user_id) DO NOTHING`

	if _, err := r.db.Exec(ctx, query, id, granteeID); err != nil {
		return model.Note{}, fmt.Errorf("failed to share note: %w", err)
	}

	return r.GetByID(ctx, id)
}
