package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/agentcircle/agentcircle/core"
	"github.com/agentcircle/agentcircle/scheduler"
	"github.com/agentcircle/agentcircle/storage"
)

func newTestRouter(t *testing.T) (*gin.Engine, *storage.BadgerStore, *scheduler.Scheduler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.NewBadgerStore(storage.BadgerConfig{InMemory: true, DisableLogging: true})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	sched := scheduler.New(zap.NewNop())
	t.Cleanup(sched.Stop)

	h := &Handler{Store: store, Sched: sched}
	r := gin.New()
	r.GET("/api/agents", h.GetAgents)
	r.GET("/api/agents/:id", h.GetAgent)
	r.GET("/api/posts", h.GetPosts)
	r.POST("/api/simulation/start", h.StartSimulation)
	r.POST("/api/simulation/stop", h.StopSimulation)
	r.GET("/api/simulation/status", h.GetSimulationStatus)
	return r, store, sched
}

func doRequest(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestGetAgents(t *testing.T) {
	r, store, _ := newTestRouter(t)
	ctx := t.Context()
	require.NoError(t, store.CreateAgent(ctx, core.Agent{ID: "a", Name: "甲", IsAlive: true}))
	require.NoError(t, store.CreateAgent(ctx, core.Agent{ID: "b", Name: "乙", IsAlive: false}))

	w := doRequest(r, http.MethodGet, "/api/agents")
	require.Equal(t, http.StatusOK, w.Code)
	var agents []core.Agent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &agents))
	require.Len(t, agents, 2)

	w = doRequest(r, http.MethodGet, "/api/agents?alive=true")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &agents))
	require.Len(t, agents, 1)
	require.Equal(t, "甲", agents[0].Name)
}

func TestGetAgentNotFound(t *testing.T) {
	r, _, _ := newTestRouter(t)
	w := doRequest(r, http.MethodGet, "/api/agents/missing")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPostsOrdering(t *testing.T) {
	r, store, _ := newTestRouter(t)
	ctx := t.Context()
	base := time.Now().UTC()
	require.NoError(t, store.CreatePost(ctx, core.Post{
		ID: "old", AuthorID: "a", Title: "t", Content: "c", LikeCount: 9, CreatedAt: base,
	}))
	require.NoError(t, store.CreatePost(ctx, core.Post{
		ID: "new", AuthorID: "a", Title: "t", Content: "c", CreatedAt: base.Add(time.Minute),
	}))

	var posts []core.Post
	w := doRequest(r, http.MethodGet, "/api/posts")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Equal(t, "new", posts[0].ID)

	w = doRequest(r, http.MethodGet, "/api/posts?order=likes")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Equal(t, "old", posts[0].ID)
}

func TestSimulationLifecycle(t *testing.T) {
	r, _, sched := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/simulation/status")
	require.Equal(t, http.StatusOK, w.Code)
	var st scheduler.Status
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	require.False(t, st.Running)

	w = doRequest(r, http.MethodPost, "/api/simulation/start")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, sched.Running())

	// Starting again is harmless.
	w = doRequest(r, http.MethodPost, "/api/simulation/start")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodPost, "/api/simulation/stop")
	require.Equal(t, http.StatusOK, w.Code)
	require.False(t, sched.Running())
}
