package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
	"github.com/swaggest/swgui/v5emb"

	"github.com/playperu/marcopolo/internal/highscore"
	"github.com/playperu/marcopolo/internal/marcopolo"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse maps each dependency to its status.
type HealthResponse map[string]struct {
	Status string `json:"status"`
}

type sessionPath struct {
	ID string `path:"id"`
}

type suggestionsQuery struct {
	ID string `path:"id"`
	Q  string `query:"q" description:"Typed prefix, at least two characters."`
}

type highscoresPath struct {
	Game marcopolo.Mode `path:"game" enum:"country_distance,flag,all_countries"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "MarcoPolo API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Gameplay, highscore and offline cache API for the MarcoPolo geography quiz.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/countries
	listCountries, _ := r.NewOperationContext(http.MethodGet, "/api/countries")
	listCountries.SetSummary("List countries")
	listCountries.SetDescription("Returns the full country catalog with flag image URLs.")
	listCountries.AddRespStructure([]CountryResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listCountries)

	// POST /api/sessions
	startSession, _ := r.NewOperationContext(http.MethodPost, "/api/sessions")
	startSession.SetSummary("Start session")
	startSession.SetDescription("Starts a game session for the mp_player cookie. Any previous session of the player is closed.")
	startSession.AddReqStructure(StartSessionRequest{})
	startSession.AddRespStructure(SessionResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	startSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(startSession)

	// GET /api/sessions/{id}
	getSession, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{id}")
	getSession.SetSummary("Get session")
	getSession.SetDescription("Returns the current view of the session.")
	getSession.AddReqStructure(sessionPath{})
	getSession.AddRespStructure(SessionResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getSession)

	// DELETE /api/sessions/{id}
	deleteSession, _ := r.NewOperationContext(http.MethodDelete, "/api/sessions/{id}")
	deleteSession.SetSummary("Abandon session")
	deleteSession.SetDescription("Closes the session and cancels any pending round transition.")
	deleteSession.AddReqStructure(sessionPath{})
	deleteSession.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	deleteSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(deleteSession)

	// POST /api/sessions/{id}/reset
	resetSession, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{id}/reset")
	resetSession.SetSummary("Reset session")
	resetSession.SetDescription("Starts over in the same mode. A pending round transition is dropped.")
	resetSession.AddReqStructure(sessionPath{})
	resetSession.AddRespStructure(SessionResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	resetSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(resetSession)

	// POST /api/sessions/{id}/guesses
	postGuess, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{id}/guesses")
	postGuess.SetSummary("Submit guess")
	postGuess.SetDescription("Resolves the typed country name and submits it to the session.")
	postGuess.AddReqStructure(struct {
		sessionPath
		GuessRequest
	}{})
	postGuess.AddRespStructure(GuessResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postGuess.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postGuess.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postGuess.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	postGuess.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	_ = r.AddOperation(postGuess)

	// GET /api/sessions/{id}/suggestions
	getSuggestions, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{id}/suggestions")
	getSuggestions.SetSummary("Suggest countries")
	getSuggestions.SetDescription("Countries whose name contains the typed text, minus those already guessed.")
	getSuggestions.AddReqStructure(suggestionsQuery{})
	getSuggestions.AddRespStructure([]CountryResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getSuggestions.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getSuggestions)

	// POST /api/sessions/{id}/hint
	postHint, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{id}/hint")
	postHint.SetSummary("Request hint")
	postHint.SetDescription("Reveals a hint when the mode allows one. Counts against the score.")
	postHint.AddReqStructure(sessionPath{})
	postHint.AddRespStructure(marcopolo.Hint{}, openapi.WithHTTPStatus(http.StatusOK))
	postHint.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postHint)

	// POST /api/sessions/{id}/give-up
	postGiveUp, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{id}/give-up")
	postGiveUp.SetSummary("Give up")
	postGiveUp.SetDescription("Ends an All-Countries session and reveals the missing countries.")
	postGiveUp.AddReqStructure(sessionPath{})
	postGiveUp.AddRespStructure(SessionResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postGiveUp.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postGiveUp.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postGiveUp)

	// GET /api/sessions/{id}/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{id}/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events: round_started, round_complete, finished and a one-second tick.")
	getEvents.AddReqStructure(sessionPath{})
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// POST /api/sessions/{id}/highscore
	postHighscore, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{id}/highscore")
	postHighscore.SetSummary("Submit highscore")
	postHighscore.SetDescription("Posts the finished session's score to the highscore API once. Safe to retry after a 502; answers 409 after a successful submit.")
	postHighscore.AddReqStructure(struct {
		sessionPath
		HighscoreRequest
	}{})
	postHighscore.AddRespStructure(HighscoreResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	postHighscore.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postHighscore.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	postHighscore.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadGateway))
	_ = r.AddOperation(postHighscore)

	// GET /api/highscores/{game}
	listHighscores, _ := r.NewOperationContext(http.MethodGet, "/api/highscores/{game}")
	listHighscores.SetSummary("List highscores")
	listHighscores.SetDescription("Returns the leaderboard of one game in the order the highscore API ranks it.")
	listHighscores.AddReqStructure(highscoresPath{})
	listHighscores.AddRespStructure([]highscore.Entry{}, openapi.WithHTTPStatus(http.StatusOK))
	listHighscores.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	listHighscores.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadGateway))
	_ = r.AddOperation(listHighscores)

	// POST /api/offline/messages
	postMessage, _ := r.NewOperationContext(http.MethodPost, "/api/offline/messages")
	postMessage.SetSummary("Offline cache control message")
	postMessage.SetDescription("Accepts {\"type\":\"SKIP_WAITING\"} to activate a waiting cache generation.")
	postMessage.AddReqStructure(struct {
		Type string `json:"type" enum:"SKIP_WAITING"`
	}{})
	postMessage.AddRespStructure(OfflineStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postMessage.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postMessage)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

func handleSwaggerUI() http.HandlerFunc {
	return v5emb.New("MarcoPolo API", "/openapi.json", "/docs").ServeHTTP
}
