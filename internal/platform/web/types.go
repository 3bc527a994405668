package web

// HealthResponse is returned by /health.
type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
	Games  int    `json:"games"`
}

// GameJSON describes one registered game.
type GameJSON struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Best  int    `json:"best"`
}

// GamesResponse is returned by /api/v1/games.
type GamesResponse struct {
	Games []GameJSON `json:"games"`
}

// ScoreJSON is one leaderboard row.
type ScoreJSON struct {
	Rank      int    `json:"rank"`
	Score     int    `json:"score"`
	RunID     string `json:"run_id"`
	CreatedAt string `json:"created_at"`
}

// ScoresResponse is returned by /api/v1/games/{id}/scores.
type ScoresResponse struct {
	Game   string      `json:"game"`
	Scores []ScoreJSON `json:"scores"`
}

// StatsResponse is returned by /api/v1/games/{id}/stats.
type StatsResponse struct {
	Game       string  `json:"game"`
	Runs       int     `json:"runs"`
	Best       int     `json:"best"`
	Average    float64 `json:"average"`
	Total      int64   `json:"total"`
	LastPlayed string  `json:"last_played,omitempty"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}
