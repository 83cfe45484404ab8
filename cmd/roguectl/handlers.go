package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"rogue-engine/internal/engine"
	"rogue-engine/internal/entity"
	"rogue-engine/internal/geom"
	"rogue-engine/internal/id"
	"rogue-engine/internal/spell"
	"rogue-engine/internal/target"
)

// ActionRequest is the envelope for every ingress action, per spec.md §6.
// Only the fields the named action cares about need to be set.
type ActionRequest struct {
	Type     string     `json:"type"`
	Dir      *geom.Vec2 `json:"dir,omitempty"`
	ItemID   uint64     `json:"item_id,omitempty"`
	Slot     *int       `json:"slot,omitempty"`
	SpellID  string     `json:"spell_id,omitempty"`
	Target   string     `json:"target,omitempty"`
	TilePick *geom.Vec2 `json:"tile_pick,omitempty"`
}

// ActionResponse mirrors engine.ActionResult for the wire.
type ActionResponse struct {
	Success  bool   `json:"success"`
	EndsTurn bool   `json:"ends_turn"`
	Message  string `json:"message"`
}

func toResponse(r engine.ActionResult) ActionResponse {
	return ActionResponse{Success: r.Success, EndsTurn: r.EndsTurn, Message: r.Message}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func targetMode(s string) target.Mode {
	switch s {
	case "self":
		return target.ModeSelf
	case "tile":
		return target.ModeTilePick
	default:
		return target.ModeAutoNearestVisible
	}
}

// handleAction dispatches one ActionRequest onto the matching engine.Context
// method, per spec.md §6's full ingress list.
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	var req ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	var result engine.ActionResult
	var unknown bool

	s.withGame(func(ctx *engine.Context) {
		switch req.Type {
		case "move":
			if req.Dir == nil {
				result = engine.ActionResult{}
				return
			}
			result = ctx.Move(*req.Dir)
		case "wait":
			result = ctx.Wait()
		case "pick_up":
			result = ctx.PickUp()
		case "drop":
			result = ctx.Drop(id.ID(req.ItemID))
		case "equip":
			result = ctx.Equip(id.ID(req.ItemID))
		case "unequip":
			if req.Slot == nil {
				result = engine.ActionResult{}
				return
			}
			result = ctx.Unequip(entity.Slot(*req.Slot))
		case "use_item":
			tp := geom.Vec2{}
			if req.TilePick != nil {
				tp = *req.TilePick
			}
			result = ctx.UseItem(id.ID(req.ItemID), targetMode(req.Target), tp)
		case "cast_spell":
			result = ctx.CastSpell(spell.ID(req.SpellID))
		case "rest":
			result = ctx.Rest()
		case "descend":
			result = ctx.Descend()
		case "open_door":
			if req.Dir == nil {
				result = engine.ActionResult{}
				return
			}
			result = ctx.OpenDoor(*req.Dir)
		case "close_door":
			if req.Dir == nil {
				result = engine.ActionResult{}
				return
			}
			result = ctx.CloseDoor(*req.Dir)
		default:
			unknown = true
		}
	})

	if unknown {
		writeError(w, http.StatusBadRequest, "unknown action type: "+req.Type)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(result))
}

// handlePlayerState serves GET /api/game/player.
func (s *Server) handlePlayerState(w http.ResponseWriter, r *http.Request) {
	var snap engine.PlayerStateSnapshot
	s.withGame(func(ctx *engine.Context) {
		snap = ctx.PlayerState()
	})
	writeJSON(w, http.StatusOK, snap)
}

// handleCreaturesInFOV serves GET /api/game/creatures.
func (s *Server) handleCreaturesInFOV(w http.ResponseWriter, r *http.Request) {
	var creatures []engine.VisibleCreature
	s.withGame(func(ctx *engine.Context) {
		creatures = ctx.CreaturesInFOV()
	})
	writeJSON(w, http.StatusOK, creatures)
}

// handleTileInfo serves GET /api/game/tile?y=&x=.
func (s *Server) handleTileInfo(w http.ResponseWriter, r *http.Request) {
	y, err1 := strconv.Atoi(r.URL.Query().Get("y"))
	x, err2 := strconv.Atoi(r.URL.Query().Get("x"))
	if err1 != nil || err2 != nil {
		writeError(w, http.StatusBadRequest, "y and x query params are required integers")
		return
	}
	var info engine.TileInfo
	s.withGame(func(ctx *engine.Context) {
		info = ctx.TileInfo(geom.Vec2{Y: y, X: x})
	})
	writeJSON(w, http.StatusOK, info)
}

// handleDrainMessages serves GET /api/game/messages.
func (s *Server) handleDrainMessages(w http.ResponseWriter, r *http.Request) {
	var msgs []string
	s.withGame(func(ctx *engine.Context) {
		msgs = ctx.DrainMessages()
	})
	if msgs == nil {
		msgs = []string{}
	}
	writeJSON(w, http.StatusOK, msgs)
}

// handleSave serves POST /api/game/save.
func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var err error
	s.withGame(func(ctx *engine.Context) {
		err = ctx.SaveGame(s.savePath)
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"saved": true, "path": s.savePath})
}
