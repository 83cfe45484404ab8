package main

import (
	"sync"

	"rogue-engine/internal/engine"
	"rogue-engine/internal/id"
	"rogue-engine/internal/registry"
)

// Server holds the single active run. spec.md's Non-goals exclude
// multiplayer/networking, so unlike the teacher's per-npub session map
// (cmd/server/session), one process serves exactly one Context, guarded by
// a mutex since the turn loop is not safe for concurrent mutation.
type Server struct {
	mu       sync.Mutex
	ctx      *engine.Context
	reg      *registry.Registry
	gen      *id.Generator
	savePath string
}

func (s *Server) withGame(fn func(ctx *engine.Context)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.ctx)
}
