package main

import "github.com/gorilla/mux"

// RegisterRoutes wires spec.md §6's ingress/egress surface onto router,
// grouped the way the teacher's cmd/server/api/routes.go groups its routes.
func RegisterRoutes(router *mux.Router, srv *Server) {
	registerActionRoutes(router, srv)
	registerQueryRoutes(router, srv)
	registerSaveRoutes(router, srv)
}

// ============================================================================
// Action Routes - ingress (spec.md §6)
// ============================================================================

func registerActionRoutes(router *mux.Router, srv *Server) {
	// @Summary      Submit a player action
	// @Description  Processes one ingress action (move, wait, pick_up, drop,
	//               equip, use_item, cast_spell, rest, descend, open_door,
	//               close_door) and returns whether it ended the turn.
	// @Tags         Action
	// @Accept       json
	// @Produce      json
	// @Param        request  body      ActionRequest  true  "Action payload"
	// @Success      200      {object}  ActionResponse
	// @Failure      400      {string}  string  "Unknown action or bad payload"
	// @Router       /api/game/action [post]
	router.HandleFunc("/api/game/action", srv.handleAction).Methods("POST")
}

// ============================================================================
// Query Routes - egress (spec.md §6)
// ============================================================================

func registerQueryRoutes(router *mux.Router, srv *Server) {
	// @Summary      Get player state
	// @Description  Returns hp/ac/thac0/abilities/hunger/level/xp/gold/equipped.
	// @Tags         Query
	// @Produce      json
	// @Success      200  {object}  engine.PlayerStateSnapshot
	// @Router       /api/game/player [get]
	router.HandleFunc("/api/game/player", srv.handlePlayerState).Methods("GET")

	// @Summary      Get creatures in view
	// @Description  Returns every living creature currently in the player's FOV.
	// @Tags         Query
	// @Produce      json
	// @Success      200  {array}  engine.VisibleCreature
	// @Router       /api/game/creatures [get]
	router.HandleFunc("/api/game/creatures", srv.handleCreaturesInFOV).Methods("GET")

	// @Summary      Get one tile's info
	// @Description  Returns kind/explored/in_fov/cost for a single map cell.
	// @Tags         Query
	// @Produce      json
	// @Param        y  query     int  true  "row"
	// @Param        x  query     int  true  "column"
	// @Success      200  {object}  engine.TileInfo
	// @Router       /api/game/tile [get]
	router.HandleFunc("/api/game/tile", srv.handleTileInfo).Methods("GET")

	// @Summary      Drain pending messages
	// @Description  Returns every log message produced since the last call.
	// @Tags         Query
	// @Produce      json
	// @Success      200  {array}  string
	// @Router       /api/game/messages [get]
	router.HandleFunc("/api/game/messages", srv.handleDrainMessages).Methods("GET")
}

// ============================================================================
// Save Routes
// ============================================================================

func registerSaveRoutes(router *mux.Router, srv *Server) {
	// @Summary      Save the active run
	// @Description  Atomically writes the current state to the server's save path.
	// @Tags         Save
	// @Produce      json
	// @Success      200  {object}  map[string]interface{}
	// @Router       /api/game/save [post]
	router.HandleFunc("/api/game/save", srv.handleSave).Methods("POST")
}
