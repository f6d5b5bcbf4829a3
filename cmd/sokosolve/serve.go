// cmd/sokosolve/serve.go
// Copyright (C) 2024 Yahia Zakaria
// This file implements `sokosolve serve`: a small gin-based JSON API
// wrapping CreateContext/Parse/Solve for remote callers, in the shape
// of the teacher's own bearer-token-guarded moves service.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/yahiaetman/sokosolve"
	"github.com/yahiaetman/sokosolve/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the sokosolve HTTP API",
	RunE:  runServe,
}

var validate = validator.New()

// SolveRequest is the body of POST /solve and POST /parse.
type SolveRequest struct {
	Width     int    `json:"width" validate:"required,min=1,max=512"`
	Height    int    `json:"height" validate:"required,min=1,max=512"`
	Level     string `json:"level" validate:"required"`
	Algorithm string `json:"algorithm" validate:"omitempty,oneof=bfs ucs astar greedy"`
}

// ParseResponse is the body of a successful POST /parse response.
type ParseResponse struct {
	RequestID           string `json:"request_id"`
	Compilable          bool   `json:"compilable"`
	PotentiallySolvable bool   `json:"potentially_solvable"`
	GoalCount           int    `json:"goal_count"`
}

// SolveResponse is the body of a successful POST /solve response.
type SolveResponse struct {
	RequestID           string `json:"request_id"`
	Compilable          bool   `json:"compilable"`
	PotentiallySolvable bool   `json:"potentially_solvable"`
	Solved              bool   `json:"solved"`
	Actions             string `json:"actions,omitempty"`
	Iterations          uint64 `json:"iterations"`
	LimitExceeded       bool   `json:"limit_exceeded"`
	ElapsedMs           int64  `json:"elapsed_ms"`
}

// ErrorResponse is the body of any non-2xx response.
type ErrorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

func requireBearer(accessKey string) gin.HandlerFunc {
	authHeader := ""
	if accessKey != "" {
		authHeader = "Bearer " + accessKey
	}
	return func(c *gin.Context) {
		if authHeader == "" {
			c.Next()
			return
		}
		if c.GetHeader("Authorization") != authHeader {
			requestID := uuid.NewString()
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{RequestID: requestID, Error: "authorization header mismatch"})
			return
		}
		c.Next()
	}
}

func corsMiddleware(allowedOrigins string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowedOrigins)
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func handleSolve(c *gin.Context) {
	requestID := uuid.NewString()
	reqLogger := logger.WithRequestID(requestID)

	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{RequestID: requestID, Error: err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{RequestID: requestID, Error: err.Error()})
		return
	}
	algorithm := req.Algorithm
	if algorithm == "" {
		algorithm = cfg.Search.Algorithm
	}

	ctx, err := sokosolve.CreateContext(req.Width, req.Height, cfg.Arena.Capacity)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{RequestID: requestID, Error: err.Error()})
		return
	}

	cacheKey := fmt.Sprintf("%dx%d:%s", req.Width, req.Height, req.Level)
	problem, compilable, solvable := problemCache.Lookup(cacheKey, func() *sokosolve.Problem {
		p := ctx.AllocateProblem()
		p.Parse(req.Level)
		return p
	})
	reqLogger.LogParse(c.Request.Context(), requestID, compilable, solvable)

	resp := SolveResponse{RequestID: requestID, Compilable: compilable, PotentiallySolvable: solvable}
	if !compilable || !solvable {
		c.JSON(http.StatusOK, resp)
		return
	}

	started := time.Now()
	result := runAlgorithm(ctx, problem, algorithm, cfg.Search.MaxIterations)
	elapsed := time.Since(started)

	sokosolve.ObserveSolve(algorithm, compilable, solvable, result, elapsed.Seconds())
	reqLogger.LogSolve(c.Request.Context(), algorithm, requestID, result, elapsed.Milliseconds())

	if solveStore != nil {
		rec := &store.SolveRecord{
			RequestID:  requestID,
			Algorithm:  algorithm,
			Level:      req.Level,
			Width:      req.Width,
			Height:     req.Height,
			Solved:     result.Solved,
			Actions:    result.Actions,
			Moves:      len(result.Actions),
			Iterations: result.Iterations,
			ElapsedMs:  elapsed.Milliseconds(),
			CreatedAt:  time.Now(),
		}
		if _, err := solveStore.Put(c.Request.Context(), rec); err != nil {
			reqLogger.Warn("failed to persist solve record", "error", err)
		}
	}

	resp.Solved = result.Solved
	resp.Actions = result.Actions
	resp.Iterations = result.Iterations
	resp.LimitExceeded = result.LimitExceeded
	resp.ElapsedMs = elapsed.Milliseconds()
	c.JSON(http.StatusOK, resp)
}

// handleParse runs only the parse and static-deadlock-analysis stages,
// without invoking a search, so a caller can validate a level cheaply
// before committing to a /solve call.
func handleParse(c *gin.Context) {
	requestID := uuid.NewString()
	reqLogger := logger.WithRequestID(requestID)

	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{RequestID: requestID, Error: err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{RequestID: requestID, Error: err.Error()})
		return
	}

	ctx, err := sokosolve.CreateContext(req.Width, req.Height, cfg.Arena.Capacity)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{RequestID: requestID, Error: err.Error()})
		return
	}

	cacheKey := fmt.Sprintf("%dx%d:%s", req.Width, req.Height, req.Level)
	problem, compilable, solvable := problemCache.Lookup(cacheKey, func() *sokosolve.Problem {
		p := ctx.AllocateProblem()
		p.Parse(req.Level)
		return p
	})
	reqLogger.LogParse(c.Request.Context(), requestID, compilable, solvable)

	goalCount := 0
	if compilable {
		goalCount = int(problem.GoalCount())
	}
	c.JSON(http.StatusOK, ParseResponse{
		RequestID:           requestID,
		Compilable:          compilable,
		PotentiallySolvable: solvable,
		GoalCount:           goalCount,
	})
}

var (
	problemCache *sokosolve.ProblemCache
	solveStore   *store.DatastoreStore
)

func runServe(cmd *cobra.Command, args []string) error {
	problemCache = sokosolve.NewProblemCache(cfg.Search.ProblemCacheSize)

	if cfg.Server.DatastoreProject != "" {
		s, err := store.NewDatastoreStore(context.Background(), cfg.Server.DatastoreProject)
		if err != nil {
			logger.Warn("solve ledger disabled: failed to open datastore", "error", err)
		} else {
			solveStore = s
			defer solveStore.Close()
		}
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/")
	api.Use(requireBearer(cfg.Server.AccessKey))
	api.POST("/solve", handleSolve)
	api.POST("/parse", handleParse)

	addr := ":" + cfg.Server.Port
	logger.Info("sokosolve API listening", "addr", addr)
	return router.Run(addr)
}
