package syncer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	petname "github.com/dustinkirkland/golang-petname"

	"github.com/critiqhq/critic/critiqapi"
	"github.com/critiqhq/critic/identity"
	"github.com/critiqhq/critic/shelf"
)

// fakePlatform is a minimal in-memory critiq server, just enough to
// exercise the orchestrators end to end.
type fakePlatform struct {
	t *testing.T

	mu       sync.Mutex
	games    map[int64]*critiqapi.Game
	order    []int64
	pageSize int64

	token string
	user  *critiqapi.User

	requests int
}

func newFakePlatform(t *testing.T) *fakePlatform {
	return &fakePlatform{
		t:        t,
		games:    make(map[int64]*critiqapi.Game),
		pageSize: 3,
		token:    "fake-token",
		user:     &critiqapi.User{ID: 1, Name: "amos", Email: "amos@critiq.games"},
	}
}

func (fp *fakePlatform) addGames(ids ...int64) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	for _, id := range ids {
		if _, ok := fp.games[id]; !ok {
			fp.order = append(fp.order, id)
		}
		fp.games[id] = &critiqapi.Game{
			ID:    id,
			Title: fmt.Sprintf("%s-%d", petname.Generate(2, "-"), id),
		}
	}
}

func (fp *fakePlatform) requestCount() int {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	return fp.requests
}

func (fp *fakePlatform) listPage(page int64) ([]*critiqapi.Game, int64) {
	fp.mu.Lock()
	defer fp.mu.Unlock()

	totalPages := (int64(len(fp.order)) + fp.pageSize - 1) / fp.pageSize
	start := (page - 1) * fp.pageSize
	end := start + fp.pageSize
	if start > int64(len(fp.order)) {
		return nil, totalPages
	}
	if end > int64(len(fp.order)) {
		end = int64(len(fp.order))
	}

	var games []*critiqapi.Game
	for _, id := range fp.order[start:end] {
		games = append(games, fp.games[id])
	}
	return games, totalPages
}

func (fp *fakePlatform) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/games", func(w http.ResponseWriter, r *http.Request) {
		fp.mu.Lock()
		fp.requests++
		fp.mu.Unlock()

		if r.Method == "POST" {
			if r.Header.Get("Authorization") != "Bearer "+fp.token {
				w.WriteHeader(401)
				json.NewEncoder(w).Encode(map[string]string{"message": "Authentication required"})
				return
			}

			var payload struct {
				Title string `json:"title"`
			}
			json.NewDecoder(r.Body).Decode(&payload)

			fp.mu.Lock()
			id := int64(len(fp.order) + 1)
			game := &critiqapi.Game{ID: id, Title: payload.Title, CreatedBy: fp.user.ID}
			fp.games[id] = game
			fp.order = append(fp.order, id)
			fp.mu.Unlock()

			json.NewEncoder(w).Encode(game)
			return
		}

		page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
		if page == 0 {
			page = 1
		}
		games, totalPages := fp.listPage(page)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"games":       games,
			"currentPage": page,
			"totalPages":  totalPages,
		})
	})

	mux.HandleFunc("/games/my-games", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+fp.token {
			w.WriteHeader(401)
			json.NewEncoder(w).Encode(map[string]string{"message": "Authentication required"})
			return
		}

		page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
		if page == 0 {
			page = 1
		}
		games, totalPages := fp.listPage(page)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"games":       games,
			"currentPage": page,
			"totalPages":  totalPages,
		})
	})

	mux.HandleFunc("/games/", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/games/"), 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		fp.mu.Lock()
		game, ok := fp.games[id]
		fp.mu.Unlock()
		if !ok {
			w.WriteHeader(404)
			json.NewEncoder(w).Encode(map[string]string{"message": "No such game"})
			return
		}

		switch r.Method {
		case "PUT":
			var payload struct {
				Title string `json:"title"`
			}
			json.NewDecoder(r.Body).Decode(&payload)

			fp.mu.Lock()
			updated := *game
			updated.Title = payload.Title
			fp.games[id] = &updated
			fp.mu.Unlock()
			json.NewEncoder(w).Encode(&updated)
		case "DELETE":
			fp.mu.Lock()
			delete(fp.games, id)
			for i, gid := range fp.order {
				if gid == id {
					fp.order = append(fp.order[:i], fp.order[i+1:]...)
					break
				}
			}
			fp.mu.Unlock()
			w.Write([]byte(`{}`))
		default:
			json.NewEncoder(w).Encode(game)
		}
	})

	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&params)

		if params.Password != "hunter22" {
			w.WriteHeader(401)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"user":  fp.user,
			"token": fp.token,
		})
	})

	mux.HandleFunc("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	mux.HandleFunc("/genres", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]*critiqapi.Genre{
			{ID: 1, Name: "RPG"},
			{ID: 2, Name: "Platformer"},
		})
	})

	return mux
}

type harness struct {
	platform *fakePlatform
	server   *httptest.Server
	syncer   *Syncer
	identity *identity.Store
}

func newHarness(t *testing.T) *harness {
	platform := newFakePlatform(t)
	server := httptest.NewServer(platform.handler())
	t.Cleanup(server.Close)

	newClient := func(token string) *critiqapi.Client {
		c := critiqapi.ClientWithToken(token)
		c.SetServer(server.URL)
		return c
	}

	idStore := identity.NewStore(filepath.Join(t.TempDir(), "session.json"))
	s := New(shelf.NewStore(), newClient, idStore)
	s.Logf = t.Logf

	return &harness{
		platform: platform,
		server:   server,
		syncer:   s,
		identity: idStore,
	}
}
