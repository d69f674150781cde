package critiqapi

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MakePath(t *testing.T) {
	c := ClientWithToken("")
	c.SetServer("https://api.critiq.games/")

	assert.EqualValues(t, "https://api.critiq.games/games/12", c.MakePath("games/%d", 12))
	assert.EqualValues(t, "https://api.critiq.games/games", c.MakePath("/games/"))

	values := url.Values{}
	values.Add("page", "2")
	assert.EqualValues(t, "https://api.critiq.games/games?page=2", c.MakeValuesPath(values, "games"))
}

func Test_ClientSendsAuth(t *testing.T) {
	var gotAuth, gotAccept, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`{"id": 1, "title": "Celeste"}`))
	}))
	defer server.Close()

	c := ClientWithToken("s3kr3t")
	c.SetServer(server.URL)

	game, err := c.GetGame(1)
	require.NoError(t, err)
	assert.EqualValues(t, "Celeste", game.Title)

	assert.EqualValues(t, "Bearer s3kr3t", gotAuth)
	assert.EqualValues(t, "application/json", gotAccept)
	assert.EqualValues(t, "go-critiq", gotUA)
}

func Test_AnonymousClientSendsNoAuth(t *testing.T) {
	var sawAuthHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuthHeader = r.Header["Authorization"]
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := ClientWithToken("")
	c.SetServer(server.URL)

	_, err := c.ListGenres()
	require.NoError(t, err)
	assert.False(t, sawAuthHeader)
}

func Test_ListGamesQuery(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{
			"games": [{"id": 1, "title": "Hollow Knight"}],
			"currentPage": "2",
			"totalPages": 7
		}`))
	}))
	defer server.Close()

	c := ClientWithToken("")
	c.SetServer(server.URL)

	res, err := c.ListGames(ListGamesParams{
		Filters: map[string]string{"search": "hollow", "genre": ""},
		Page:    2,
		Limit:   10,
	})
	require.NoError(t, err)

	assert.EqualValues(t, "hollow", gotQuery.Get("search"))
	// empty filter values are skipped
	assert.False(t, gotQuery.Has("genre"))
	assert.EqualValues(t, "2", gotQuery.Get("page"))
	assert.EqualValues(t, "10", gotQuery.Get("limit"))

	require.Len(t, res.Games, 1)
	assert.EqualValues(t, "Hollow Knight", res.Games[0].Title)
	// the server sent currentPage as a string, the decoder doesn't mind
	assert.EqualValues(t, 2, res.CurrentPage)
	assert.EqualValues(t, 7, res.TotalPages)
}

func Test_ServerErrorMessageWins(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(403)
		w.Write([]byte(`{"message": "That's not yours to delete"}`))
	}))
	defer server.Close()

	c := ClientWithToken("s3kr3t")
	c.SetServer(server.URL)

	err := c.DeleteGame(7)
	require.Error(t, err)

	ae, ok := AsAPIError(err)
	require.True(t, ok)
	assert.EqualValues(t, "That's not yours to delete", ae.Message)
	assert.EqualValues(t, 403, ae.StatusCode)
}

func Test_FallbackErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
		w.Write([]byte(`<html>nginx exploded</html>`))
	}))
	defer server.Close()

	c := ClientWithToken("")
	c.SetServer(server.URL)

	_, err := c.ListGames(ListGamesParams{})
	require.Error(t, err)

	ae, ok := AsAPIError(err)
	require.True(t, ok)
	assert.EqualValues(t, "Failed to fetch games", ae.Message)
	assert.EqualValues(t, 500, ae.StatusCode)
}

func Test_LoginValidation(t *testing.T) {
	assert.Error(t, LoginParams{Email: "not-an-email", Password: "hunter22"}.Validate())
	assert.Error(t, LoginParams{Email: "amos@critiq.games"}.Validate())
	assert.NoError(t, LoginParams{Email: "amos@critiq.games", Password: "hunter22"}.Validate())

	// registration needs 8 password characters
	assert.Error(t, RegisterParams{Name: "amos", Email: "amos@critiq.games", Password: "short"}.Validate())
	assert.NoError(t, RegisterParams{Name: "amos", Email: "amos@critiq.games", Password: "longenough"}.Validate())
}
