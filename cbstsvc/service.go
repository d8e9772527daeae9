/*
	Copyright (C) 2023 flxj(https://github.com/flxj)

	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at

		http://www.apache.org/licenses/LICENSE-2.0

	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

// Package cbstsvc exposes the root package's solvers over HTTP, the way
// flxj/graphlib/workflow exposes long-running workflows over gin - here
// each request is a single, short-lived solve instead of a registered
// long-running job.
package cbstsvc

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/flxj/cbst"
	"github.com/flxj/cbst/cbstio"
)

var errUnknownAlgorithm = errors.New("unknown algorithm")

// Service is a small gin-backed HTTP front end over SolveCBST/SolveCBSTU.
// It holds no long-lived state beyond host/port - every request loads
// its own instance and runs its own solver, so the single mutex here
// only guards the Run/Stop lifecycle, not any per-request data.
type Service struct {
	host string
	port int

	mu      sync.Mutex
	running bool
	svc     *gin.Engine
}

// NewService builds a Service bound to host:port; call Run to start it.
func NewService(host string, port int) *Service {
	return &Service{host: host, port: port}
}

// Run starts the HTTP server, blocking until it stops or fails.
func (s *Service) Run() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.svc = gin.Default()
	s.router()
	s.running = true
	s.mu.Unlock()

	return s.svc.Run(fmt.Sprintf("%s:%d", s.host, s.port))
}

func (s *Service) router() {
	s.svc.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	s.svc.POST("/solve", func(c *gin.Context) {
		var req solveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		resp, err := s.solve(req)
		if err != nil {
			status := 500
			if cbst.IsInvalidInput(err) || errors.Is(err, errUnknownAlgorithm) {
				status = 400
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, resp)
	})
}

type solveRequest struct {
	Path      string  `json:"path" binding:"required"`
	Algorithm string  `json:"algorithm" binding:"required"`
	Budget    float64 `json:"budget"`
	Upgrades  bool    `json:"upgrades"`
}

type solveResponse struct {
	Found      bool      `json:"found"`
	Bottleneck float64   `json:"bottleneck"`
	Cost       float64   `json:"cost"`
	Tree       []treeRow `json:"tree"`
}

type treeRow struct {
	U      int     `json:"u"`
	V      int     `json:"v"`
	Weight float64 `json:"weight"`
}

func (s *Service) solve(req solveRequest) (solveResponse, error) {
	algo, err := cbst.ParseAlgorithm(req.Algorithm)
	if err != nil {
		return solveResponse{}, fmt.Errorf("%w: %v", errUnknownAlgorithm, err)
	}

	g, err := cbstio.Load(req.Path)
	if err != nil {
		return solveResponse{}, err
	}

	var result cbst.CBSTResult
	if req.Upgrades {
		result, err = cbst.SolveCBSTU(g, req.Budget, algo)
	} else {
		result, err = cbst.SolveCBST(g, req.Budget, algo)
	}
	if err != nil {
		return solveResponse{}, err
	}

	rows := make([]treeRow, len(result.Tree))
	for i, e := range result.Tree {
		rows[i] = treeRow{U: e.U, V: e.V, Weight: e.Weight}
	}
	return solveResponse{
		Found:      result.Found,
		Bottleneck: result.OriginalBottleneck(),
		Cost:       result.Cost,
		Tree:       rows,
	}, nil
}

// Stop is a best-effort no-op placeholder: gin's Engine.Run blocks the
// calling goroutine directly and exposes no graceful shutdown hook
// through the subset of its API this package uses, matching the
// teacher's own Service.Stop which only tears down registered jobs, not
// the HTTP listener itself.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
}
