package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gangasingh/uniconnect-backend/models"
)

func TestGetClassByStudent(t *testing.T) {
	r, _, _ := setupServer(t)
	resp := registerUser(t, r, "a@example.com", "CSE-00001")

	t.Run("returns the student's class", func(t *testing.T) {
		rec := perform(t, r, http.MethodGet, "/api/v1/class/getClass/"+resp.User.ID.String(), resp.Token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got struct {
			Class models.Class `json:"class"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, *resp.User.ClassID, got.Class.ID)
		require.Len(t, got.Class.Students, 1)
		assert.Equal(t, resp.User.ID, got.Class.Students[0].ID)
	})

	t.Run("unknown student is 404", func(t *testing.T) {
		rec := perform(t, r, http.MethodGet, "/api/v1/class/getClass/"+uuid.NewString(), resp.Token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad id is 400", func(t *testing.T) {
		rec := perform(t, r, http.MethodGet, "/api/v1/class/getClass/not-a-uuid", resp.Token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("requires auth", func(t *testing.T) {
		rec := perform(t, r, http.MethodGet, "/api/v1/class/getClass/"+resp.User.ID.String(), "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetStudents(t *testing.T) {
	r, _, _ := setupServer(t)
	userA := registerUser(t, r, "a@example.com", "CSE-00001")
	registerUser(t, r, "b@example.com", "CSE-00002")
	classID := userA.User.ClassID.String()

	t.Run("lists every member", func(t *testing.T) {
		rec := perform(t, r, http.MethodGet, "/api/v1/class/getStudents/"+classID, userA.Token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got struct {
			Students []models.User `json:"students"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got.Students, 2)
	})

	t.Run("unknown class is 404", func(t *testing.T) {
		rec := perform(t, r, http.MethodGet, "/api/v1/class/getStudents/"+uuid.NewString(), userA.Token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
