package explorer

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zeu5/mcts-sim/types"
)

// Monitor exposes a live game over HTTP so the canonical trajectory can be
// inspected and driven remotely. Only one trajectory per monitor, requests
// are served on gin's default single handler chain
type Monitor struct {
	game   types.Game
	server *http.Server
}

func NewMonitor(game types.Game, addr string) *Monitor {
	m := &Monitor{
		game: game,
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.GET("/state", m.handleState)
	router.GET("/actions", m.handleActions)
	router.GET("/render", m.handleRender)
	router.POST("/step", m.handleStep)
	router.POST("/reset", m.handleReset)

	m.server = &http.Server{
		Addr:    addr,
		Handler: router,
	}
	return m
}

// Run serves until the context is cancelled
func (m *Monitor) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- m.server.ListenAndServe()
	}()
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		m.server.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		return err
	}
}

func (m *Monitor) handleState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"seed": m.game.Seed(),
	})
}

func (m *Monitor) handleActions(c *gin.Context) {
	simulation := c.Query("simulation") == "true"
	actions, err := m.game.LegalActions(simulation)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	hashes := make([]string, len(actions))
	for i, a := range actions {
		hashes[i] = a.Hash()
	}
	c.JSON(http.StatusOK, gin.H{
		"simulation": simulation,
		"actions":    hashes,
	})
}

func (m *Monitor) handleRender(c *gin.Context) {
	frame, err := m.game.Render("ansi")
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.String(http.StatusOK, string(frame))
}

type stepRequest struct {
	Action     int  `json:"action"`
	Simulation bool `json:"simulation"`
}

func (m *Monitor) handleStep(c *gin.Context) {
	var req stepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := m.game.Step(types.DiscreteAction(req.Action), req.Simulation)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"observation": result.Observation,
		"reward":      result.Reward,
		"done":        result.Done,
	})
}

func (m *Monitor) handleReset(c *gin.Context) {
	obs, err := m.game.Reset()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"observation": obs,
	})
}
