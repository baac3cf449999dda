package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/notekeeper-server/internal/api/http/httpctx"
	"github.com/dtroode/notekeeper-server/internal/model"
	"github.com/dtroode/notekeeper-server/internal/testutil"
)

// noteEngine wires the note handler behind a middleware that plants
// callerID into the request context, standing in for authentication.
func noteEngine(service *noteServiceMock, callerID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cm := httpctx.NewManager()
	h := NewNote(service, cm, testutil.MakeNoopLogger())

	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		if callerID != uuid.Nil {
			c.Request = c.Request.WithContext(cm.SetUserIDToContext(c.Request.Context(), callerID))
		}
		c.Next()
	})
	engine.GET("/notes", h.GetAll)
	engine.GET("/notes/recycled", h.GetRecycled)
	engine.GET("/notes/:id", h.GetByID)
	engine.POST("/notes", h.Create)
	engine.PUT("/notes/:id", h.Update)
	engine.POST("/notes/:id/share", h.Share)
	engine.POST("/notes/:id/recycle", h.Recycle)
	engine.POST("/notes/:id/restore", h.Restore)
	engine.DELETE("/notes/:id", h.Delete)
	return engine
}

func TestNote_Create_OwnerForcedToCaller(t *testing.T) {
	callerID := uuid.New()
	noteID := uuid.New()

	service := &noteServiceMock{}
	service.On("CreateNote", mock.Anything, model.CreateNoteParams{
		OwnerID:     callerID,
		Title:       "Groceries",
		Description: "milk",
	}).Return(model.Note{ID: noteID, OwnerID: callerID, Title: "Groceries", Description: "milk"}, nil)

	// ownerId in the body must be ignored.
	w := postJSON(t, noteEngine(service, callerID), "/notes", gin.H{
		"title":       "Groceries",
		"description": "milk",
		"ownerId":     uuid.New().String(),
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, callerID.String(), resp["ownerId"])
	service.AssertExpectations(t)
}

func TestNote_Create_MissingTitle(t *testing.T) {
	service := &noteServiceMock{}

	w := postJSON(t, noteEngine(service, uuid.New()), "/notes", gin.H{"description": "milk"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Title is required.")
	service.AssertNotCalled(t, "CreateNote")
}

func TestNote_Create_Unauthenticated(t *testing.T) {
	service := &noteServiceMock{}

	w := postJSON(t, noteEngine(service, uuid.Nil), "/notes", gin.H{"title": "Groceries"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	service.AssertNotCalled(t, "CreateNote")
}

func TestNote_GetByID(t *testing.T) {
	callerID := uuid.New()
	noteID := uuid.New()
	granteeID := uuid.New()

	service := &noteServiceMock{}
	service.On("GetNote", mock.Anything, callerID, noteID).Return(model.Note{
		ID:         noteID,
		OwnerID:    callerID,
		Title:      "Groceries",
		SharedWith: []uuid.UUID{granteeID},
	}, nil)

	w := httptest.NewRecorder()
	noteEngine(service, callerID).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notes/"+noteID.String(), nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, noteID.String(), resp["id"])
	assert.Equal(t, []any{granteeID.String()}, resp["sharedWith"])
}

func TestNote_GetByID_MalformedID(t *testing.T) {
	service := &noteServiceMock{}

	w := httptest.NewRecorder()
	noteEngine(service, uuid.New()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notes/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Identifier is not valid.")
	service.AssertNotCalled(t, "GetNote")
}

func TestNote_GetByID_PermissionDenied(t *testing.T) {
	callerID := uuid.New()
	noteID := uuid.New()

	service := &noteServiceMock{}
	service.On("GetNote", mock.Anything, callerID, noteID).Return(model.Note{}, model.ErrPermissionDenied)

	w := httptest.NewRecorder()
	noteEngine(service, callerID).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notes/"+noteID.String(), nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "You are not allowed to access this record.")
}

func TestNote_GetAll(t *testing.T) {
	callerID := uuid.New()

	service := &noteServiceMock{}
	service.On("GetNotes", mock.Anything, callerID).Return([]model.Note{
		{ID: uuid.New(), OwnerID: callerID, Title: "one"},
		{ID: uuid.New(), OwnerID: callerID, Title: "two"},
	}, nil)

	w := httptest.NewRecorder()
	noteEngine(service, callerID).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notes", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestNote_GetRecycled(t *testing.T) {
	callerID := uuid.New()

	service := &noteServiceMock{}
	service.On("GetRecycledNotes", mock.Anything, callerID).Return([]model.Note{
		{ID: uuid.New(), OwnerID: callerID, Title: "old", Recycled: true},
	}, nil)

	w := httptest.NewRecorder()
	noteEngine(service, callerID).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notes/recycled", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"recycled":true`)
}

func TestNote_Update(t *testing.T) {
	callerID := uuid.New()
	noteID := uuid.New()
	desc := "updated"

	service := &noteServiceMock{}
	service.On("UpdateNote", mock.Anything, callerID, noteID, model.UpdateNoteParams{
		Title:       "Groceries",
		Description: &desc,
	}).Return(model.Note{ID: noteID, OwnerID: callerID, Title: "Groceries", Description: desc}, nil)

	w := postJSONMethod(t, noteEngine(service, callerID), http.MethodPut, "/notes/"+noteID.String(), gin.H{
		"title":       "Groceries",
		"description": "updated",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "updated")
	service.AssertExpectations(t)
}

func TestNote_Update_NotFound(t *testing.T) {
	callerID := uuid.New()
	noteID := uuid.New()

	service := &noteServiceMock{}
	service.On("UpdateNote", mock.Anything, callerID, noteID, mock.Anything).
		Return(model.Note{}, model.ErrNotFound)

	w := postJSONMethod(t, noteEngine(service, callerID), http.MethodPut, "/notes/"+noteID.String(), gin.H{
		"title": "Groceries",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Record not found.")
}

func TestNote_RecycleAndRestore(t *testing.T) {
	callerID := uuid.New()
	noteID := uuid.New()

	service := &noteServiceMock{}
	service.On("RecycleNote", mock.Anything, callerID, noteID).
		Return(model.Note{ID: noteID, OwnerID: callerID, Recycled: true}, nil)
	service.On("RestoreNote", mock.Anything, callerID, noteID).
		Return(model.Note{ID: noteID, OwnerID: callerID, Recycled: false}, nil)

	engine := noteEngine(service, callerID)

	w := postJSON(t, engine, "/notes/"+noteID.String()+"/recycle", gin.H{})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"recycled":true`)

	w = postJSON(t, engine, "/notes/"+noteID.String()+"/restore", gin.H{})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"recycled":false`)
}

func TestNote_Delete(t *testing.T) {
	callerID := uuid.New()
	noteID := uuid.New()

	service := &noteServiceMock{}
	service.On("DeleteNote", mock.Anything, callerID, noteID).Return(nil)

	w := httptest.NewRecorder()
	noteEngine(service, callerID).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/notes/"+noteID.String(), nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"`+noteID.String()+`"}`, w.Body.String())
}

func TestNote_Share(t *testing.T) {
	callerID := uuid.New()
	noteID := uuid.New()
	granteeID := uuid.New()

	service := &noteServiceMock{}
	service.On("ShareNote", mock.Anything, callerID, noteID, granteeID).
		Return(model.Note{ID: noteID, OwnerID: callerID, SharedWith: []uuid.UUID{granteeID}}, nil)

	w := postJSON(t, noteEngine(service, callerID), "/notes/"+noteID.String()+"/share", gin.H{
		"userId": granteeID.String(),
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), granteeID.String())
}

func TestNote_Share_MalformedGranteeID(t *testing.T) {
	callerID := uuid.New()
	noteID := uuid.New()

	service := &noteServiceMock{}

	w := postJSON(t, noteEngine(service, callerID), "/notes/"+noteID.String()+"/share", gin.H{
		"userId": "not-a-uuid",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Identifier is not valid.")
	service.AssertNotCalled(t, "ShareNote")
}

func TestNote_Share_MissingGranteeID(t *testing.T) {
	callerID := uuid.New()
	noteID := uuid.New()

	service := &noteServiceMock{}

	w := postJSON(t, noteEngine(service, callerID), "/notes/"+noteID.String()+"/share", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "A grantee user ID is required.")
	service.AssertNotCalled(t, "ShareNote")
}

func TestNote_Share_GranteeNotFound(t *testing.T) {
	callerID := uuid.New()
	noteID := uuid.New()
	granteeID := uuid.New()

	service := &noteServiceMock{}
	service.On("ShareNote", mock.Anything, callerID, noteID, granteeID).
		Return(model.Note{}, model.ErrNotFound)

	w := postJSON(t, noteEngine(service, callerID), "/notes/"+noteID.String()+"/share", gin.H{
		"userId": granteeID.String(),
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Record not found.")
}
