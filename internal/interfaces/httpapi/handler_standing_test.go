package httpapi

import (
	"net/http"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultAndStandingsFlow(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	token := loginForToken(t, router)

	// A result cannot be entered without a bearer token.
	rec := doJSON(t, router, http.MethodPut, "/v1/matches/match_a/result", `{"homeScore":2,"awayScore":1}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/v1/matches/match_a/result", `{"homeScore":2,"awayScore":1}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resultEnvelope struct {
		Data struct {
			Match struct {
				HomeScore *int `json:"homeScore"`
				AwayScore *int `json:"awayScore"`
				Played    bool `json:"played"`
			} `json:"match"`
			StandingsApplied bool `json:"standingsApplied"`
		} `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resultEnvelope))
	assert.True(t, resultEnvelope.Data.StandingsApplied)
	assert.True(t, resultEnvelope.Data.Match.Played)
	require.NotNil(t, resultEnvelope.Data.Match.HomeScore)
	assert.Equal(t, 2, *resultEnvelope.Data.Match.HomeScore)

	rec = doJSON(t, router, http.MethodGet, "/v1/zones/zone_a/standings", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var standingsEnvelope struct {
		Data []struct {
			TeamID         string `json:"teamId"`
			Points         int    `json:"points"`
			Played         int    `json:"played"`
			GoalDifference int    `json:"goalDifference"`
		} `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &standingsEnvelope))
	require.Len(t, standingsEnvelope.Data, 2)
	assert.Equal(t, "team_h", standingsEnvelope.Data[0].TeamID)
	assert.Equal(t, 3, standingsEnvelope.Data[0].Points)
	assert.Equal(t, 1, standingsEnvelope.Data[0].GoalDifference)
	assert.Equal(t, "team_v", standingsEnvelope.Data[1].TeamID)
}

func TestExportStandingsCSVEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	token := loginForToken(t, router)

	rec := doJSON(t, router, http.MethodPut, "/v1/matches/match_a/result", `{"homeScore":0,"awayScore":0}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/v1/zones/zone_a/standings/export", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `filename="standings_zone_a.csv"`)

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "POS,EQUIPO,PJ,PTS", lines[0])

	rec = doJSON(t, router, http.MethodGet, "/v1/zones/zone_a/standings/export?format=extended", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `filename="posiciones_liga_a_cat_a_zone_a.csv"`)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "POS,EQUIPO,PJ,G,E,P,GF,GC,DIF,PTS"))
}

func TestImportStandingsCSVEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	token := loginForToken(t, router)

	payload := "POS,EQUIPO,PJ,PTS\n1,Local FC,5,11\n2,Desconocido FC,5,7\n"

	rec := doJSON(t, router, http.MethodPost, "/v1/zones/zone_a/standings/import", payload, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/v1/zones/zone_a/standings/import", payload, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data struct {
			Applied int `json:"applied"`
			Skipped int `json:"skipped"`
		} `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 1, envelope.Data.Applied)
	assert.Equal(t, 1, envelope.Data.Skipped)

	rec = doJSON(t, router, http.MethodGet, "/v1/zones/zone_a/standings", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var standingsEnvelope struct {
		Data []struct {
			TeamID string `json:"teamId"`
			Points int    `json:"points"`
			Played int    `json:"played"`
		} `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &standingsEnvelope))
	require.Len(t, standingsEnvelope.Data, 2)
	assert.Equal(t, "team_h", standingsEnvelope.Data[0].TeamID)
	assert.Equal(t, 11, standingsEnvelope.Data[0].Points)
	assert.Equal(t, 5, standingsEnvelope.Data[0].Played)
}

func TestImportStandingsCSVUnknownZone(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	token := loginForToken(t, router)

	rec := doJSON(t, router, http.MethodPost, "/v1/zones/zone_missing/standings/import", "POS,EQUIPO,PJ,PTS\n1,Local FC,1,3\n", token)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
