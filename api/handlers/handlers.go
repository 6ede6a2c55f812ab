package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agentcircle/agentcircle/core"
	"github.com/agentcircle/agentcircle/scheduler"
	"github.com/agentcircle/agentcircle/storage"
)

// Handler carries the dependencies the read-only HTTP surface needs.
type Handler struct {
	Store storage.Store
	Sched *scheduler.Scheduler
}

// GetAgents - lists agents, optionally only living ones.
func (h *Handler) GetAgents(c *gin.Context) {
	filter := core.AgentFilter{
		Camp:      core.Camp(c.Query("camp")),
		AliveOnly: c.Query("alive") == "true",
		Limit:     queryInt(c, "limit", 100),
	}
	agents, err := h.Store.ListAgents(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, agents)
}

// GetAgent - fetches one agent by id.
func (h *Handler) GetAgent(c *gin.Context) {
	agent, err := h.Store.GetAgent(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Agent not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, agent)
}

// GetPosts - lists recent posts, optionally scoped to a circle or author.
func (h *Handler) GetPosts(c *gin.Context) {
	filter := core.PostFilter{
		CircleID: c.Query("circle_id"),
		AuthorID: c.Query("author_id"),
		Limit:    queryInt(c, "limit", 20),
		Order:    core.OrderNewest,
	}
	if c.Query("order") == "likes" {
		filter.Order = core.OrderMostLike
	}
	posts, err := h.Store.ListPosts(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetCircles - lists all circles.
func (h *Handler) GetCircles(c *gin.Context) {
	circles, err := h.Store.ListCircles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, circles)
}

// GetRooms - lists chat rooms.
func (h *Handler) GetRooms(c *gin.Context) {
	rooms, err := h.Store.ListChatRooms(c.Request.Context(), core.RoomFilter{
		Limit: queryInt(c, "limit", 20),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoomMessages - lists the latest messages of a room, oldest first.
func (h *Handler) GetRoomMessages(c *gin.Context) {
	msgs, err := h.Store.ListChatMessages(c.Request.Context(), c.Param("id"), queryInt(c, "limit", 50))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// GetRelationships - lists an agent's relationships.
func (h *Handler) GetRelationships(c *gin.Context) {
	rels, err := h.Store.ListRelationships(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rels)
}

// StartSimulation - starts the scheduler. Idempotent.
func (h *Handler) StartSimulation(c *gin.Context) {
	h.Sched.Start()
	c.JSON(http.StatusOK, gin.H{"status": "running"})
}

// StopSimulation - stops the scheduler and waits for in-flight ticks.
func (h *Handler) StopSimulation(c *gin.Context) {
	h.Sched.Stop()
	c.JSON(http.StatusOK, gin.H{"status": "stopped"})
}

// GetSimulationStatus - reports scheduler and per-job state.
func (h *Handler) GetSimulationStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.Sched.Status())
}

func queryInt(c *gin.Context, key string, def int) int {
	if v := c.Query(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
