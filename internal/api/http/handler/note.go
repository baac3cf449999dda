package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/notekeeper-server/internal/logger"
	"github.com/dtroode/notekeeper-server/internal/model"
)

// NoteService defines note operations gated by access-control rules.
type NoteService interface {
	CreateNote(ctx context.Context, params model.CreateNoteParams) (model.Note, error)
	GetNote(ctx context.Context, callerID uuid.UUID, noteID uuid.UUID) (model.Note, error)
	GetNotes(ctx context.Context, callerID uuid.UUID) ([]model.Note, error)
	GetRecycledNotes(ctx context.Context, callerID uuid.UUID) ([]model.Note, error)
	UpdateNote(ctx context.Context, callerID uuid.UUID, noteID uuid.UUID, params model.UpdateNoteParams) (model.Note, error)
	RecycleNote(ctx context.Context, callerID uuid.UUID, noteID uuid.UUID) (model.Note, error)
	RestoreNote(ctx context.Context, callerID uuid.UUID, noteID uuid.UUID) (model.Note, error)
	DeleteNote(ctx context.Context, callerID uuid.UUID, noteID uuid.UUID) error
	ShareNote(ctx context.Context, callerID uuid.UUID, noteID uuid.UUID, granteeID uuid.UUID) (model.Note, error)
}

// Note handles HTTP endpoints for notes.
type Note struct {
	noteService    NoteService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewNote creates a new Note handler.
func NewNote(noteService NoteService, contextManager model.ContextManager, logger *logger.Logger) *Note {
	return &Note{
		noteService:    noteService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type noteResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     string    `json:"ownerId"`
	IsPublic    bool      `json:"isPublic"`
	SharedWith  []string  `json:"sharedWith"`
	Recycled    bool      `json:"recycled"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toNoteResponse(note model.Note) noteResponse {
	shared := make([]string, 0, len(note.SharedWith))
	for _, id := range note.SharedWith {
		shared = append(shared, id.String())
	}

	return noteResponse{
		ID:          note.ID.String(),
		Title:       note.Title,
		Description: note.Description,
		OwnerID:     note.OwnerID.String(),
		IsPublic:    note.IsPublic,
		SharedWith:  shared,
		Recycled:    note.Recycled,
		CreatedAt:   note.CreatedAt,
		UpdatedAt:   note.UpdatedAt,
	}
}

func toNoteResponses(notes []model.Note) []noteResponse {
	resp := make([]noteResponse, 0, len(notes))
	for _, note := range notes {
		resp = append(resp, toNoteResponse(note))
	}
	return resp
}

// caller resolves the authenticated user id from the request context.
func (h *Note) caller(c *gin.Context) (uuid.UUID, bool) {
	callerID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse("Authorization token is missing."))
		return uuid.Nil, false
	}
	return callerID, true
}

// noteID parses the :id path parameter before any store access.
func (h *Note) noteID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		invalidID(c)
		return uuid.Nil, false
	}
	return id, true
}

type createNoteRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// Create creates a note owned by the caller. Any ownership hints in the
// request body are ignored.
func (h *Note) Create(c *gin.Context) {
	callerID, ok := h.caller(c)
	if !ok {
		return
	}

	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindingError(c, err)
		return
	}

	note, err := h.noteService.CreateNote(c.Request.Context(), model.CreateNoteParams{
		OwnerID:     callerID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toNoteResponse(note))
}

// GetAll lists notes visible to the caller.
func (h *Note) GetAll(c *gin.Context) {
	callerID, ok := h.caller(c)
	if !ok {
		return
	}

	notes, err := h.noteService.GetNotes(c.Request.Context(), callerID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toNoteResponses(notes))
}

// GetRecycled lists the caller's recycled notes.
func (h *Note) GetRecycled(c *gin.Context) {
	callerID, ok := h.caller(c)
	if !ok {
		return
	}

	notes, err := h.noteService.GetRecycledNotes(c.Request.Context(), callerID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toNoteResponses(notes))
}

// GetByID returns a single note if the caller may read it.
func (h *Note) GetByID(c *gin.Context) {
	callerID, ok := h.caller(c)
	if !ok {
		return
	}

	noteID, ok := h.noteID(c)
	if !ok {
		return
	}

	note, err := h.noteService.GetNote(c.Request.Context(), callerID, noteID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toNoteResponse(note))
}

type updateNoteRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Recycled    *bool   `json:"recycled"`
}

// Update applies allow-listed field changes to an owned note.
func (h *Note) Update(c *gin.Context) {
	callerID, ok := h.caller(c)
	if !ok {
		return
	}

	noteID, ok := h.noteID(c)
	if !ok {
		return
	}

	var req updateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindingError(c, err)
		return
	}

	note, err := h.noteService.UpdateNote(c.Request.Context(), callerID, noteID, model.UpdateNoteParams{
		Title:       req.Title,
		Description: req.Description,
		Recycled:    req.Recycled,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toNoteResponse(note))
}

// Recycle moves an owned note to the recycle bin.
func (h *Note) Recycle(c *gin.Context) {
	h.setRecycled(c, true)
}

// Restore takes an owned note back out of the recycle bin.
func (h *Note) Restore(c *gin.Context) {
	h.setRecycled(c, false)
}

func (h *Note) setRecycled(c *gin.Context, recycled bool) {
	callerID, ok := h.caller(c)
	if !ok {
		return
	}

	noteID, ok := h.noteID(c)
	if !ok {
		return
	}

	var note model.Note
	var err error
	if recycled {
		note, err = h.noteService.RecycleNote(c.Request.Context(), callerID, noteID)
	} else {
		note, err = h.noteService.RestoreNote(c.Request.Context(), callerID, noteID)
	}
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toNoteResponse(note))
}

// Delete removes an owned note permanently.
func (h *Note) Delete(c *gin.Context) {
	callerID, ok := h.caller(c)
	if !ok {
		return
	}

	noteID, ok := h.noteID(c)
	if !ok {
		return
	}

	if err := h.noteService.DeleteNote(c.Request.Context(), callerID, noteID); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": noteID.String()})
}

type shareNoteRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// Share grants another user read access to an owned note.
func (h *Note) Share(c *gin.Context) {
	callerID, ok := h.caller(c)
	if !ok {
		return
	}

	noteID, ok := h.noteID(c)
	if !ok {
		return
	}

	var req shareNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindingError(c, err)
		return
	}

	granteeID, err := uuid.Parse(req.UserID)
	if err != nil {
		invalidID(c)
		return
	}

	note, err := h.noteService.ShareNote(c.Request.Context(), callerID, noteID, granteeID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toNoteResponse(note))
}
