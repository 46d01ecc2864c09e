package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondError(c, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestRespondError(t *testing.T) {
	t.Run("api errors keep their status and message", func(t *testing.T) {
		w, env := respond(t, NewConflictError("slot not available"))
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "slot not available", env.Message)
	})

	t.Run("missing documents map to 404", func(t *testing.T) {
		w, env := respond(t, mongo.ErrNoDocuments)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "resource not found", env.Message)
	})

	t.Run("duplicate keys map to 409", func(t *testing.T) {
		dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
		w, env := respond(t, dup)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "duplicate record", env.Message)
	})

	t.Run("unknown errors map to 500", func(t *testing.T) {
		w, env := respond(t, errors.New("connection reset"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal server error", env.Message)
	})

	t.Run("wrapped api errors are unwrapped", func(t *testing.T) {
		wrapped := &APIError{Status: http.StatusNotFound, Message: "product not found"}
		w, env := respond(t, wrapped)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "product not found", env.Message)
	})
}

func TestRespondSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondSuccess(c, http.StatusCreated, "created", gin.H{"id": "abc"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "created", env.Message)
	assert.NotNil(t, env.Data)
	assert.Empty(t, env.Error)
}
