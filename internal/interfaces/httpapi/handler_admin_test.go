package httpapi

import (
	"net/http"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/login", `{"username":"admin","password":"wrong"}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/v1/auth/login", `{"username":"admin"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminCRUDFlow(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	token := loginForToken(t, router)

	rec := doJSON(t, router, http.MethodPost, "/v1/categories", `{"name":"Sub 20","leagueId":"liga_a"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var categoryEnvelope struct {
		Data struct {
			ID         string `json:"id"`
			IsEditable bool   `json:"isEditable"`
		} `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &categoryEnvelope))
	assert.True(t, categoryEnvelope.Data.IsEditable)
	categoryID := categoryEnvelope.Data.ID

	rec = doJSON(t, router, http.MethodPost, "/v1/zones", `{"name":"Zona Norte","categoryId":"`+categoryID+`"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var zoneEnvelope struct {
		Data struct {
			ID       string `json:"id"`
			LeagueID string `json:"leagueId"`
		} `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &zoneEnvelope))
	assert.Equal(t, "liga_a", zoneEnvelope.Data.LeagueID)

	rec = doJSON(t, router, http.MethodPost, "/v1/teams", `{"name":"Nuevo FC","zoneId":"`+zoneEnvelope.Data.ID+`"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// The new team has a zeroed standings row from the moment it exists.
	rec = doJSON(t, router, http.MethodGet, "/v1/zones/"+zoneEnvelope.Data.ID+"/standings", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var standingsEnvelope struct {
		Data []struct {
			Points int `json:"points"`
		} `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &standingsEnvelope))
	require.Len(t, standingsEnvelope.Data, 1)
	assert.Equal(t, 0, standingsEnvelope.Data[0].Points)

	rec = doJSON(t, router, http.MethodDelete, "/v1/categories/"+categoryID, "", token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/v1/categories/"+categoryID+"/zones", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateCategoryRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	token := loginForToken(t, router)

	rec := doJSON(t, router, http.MethodPost, "/v1/categories", `{"name":"Sub 20","leagueId":"liga_a","surprise":true}`, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteUnknownZoneReturnsNotFound(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	token := loginForToken(t, router)

	rec := doJSON(t, router, http.MethodDelete, "/v1/zones/zone_missing", "", token)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
