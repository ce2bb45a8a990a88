package health

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"cryptohomeboy/pkg/logging"
)

// Server provides health endpoints while the advisor runs as an agent
type Server struct {
	port         int
	agentInfo    *AgentInfo
	statusGetter StatusGetter
	server       *http.Server
	log          zerolog.Logger
}

// AgentInfo contains basic agent information
type AgentInfo struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Capabilities []string `json:"capabilities"`
	Description  string   `json:"description"`
}

// StatusGetter reports what the advisor currently serves
type StatusGetter interface {
	KnownCoins() []string
	GetUptime() time.Duration
}

// HealthStatus is the /status payload
type HealthStatus struct {
	Status    string    `json:"status"`
	Coins     []string  `json:"coins"`
	Uptime    string    `json:"uptime"`
	Timestamp time.Time `json:"timestamp"`
	Agent     AgentInfo `json:"agent"`
}

// NewServer creates a new health server
func NewServer(port int, agentInfo *AgentInfo, statusGetter StatusGetter, logger zerolog.Logger) *Server {
	return &Server{
		port:         port,
		agentInfo:    agentInfo,
		statusGetter: statusGetter,
		log:          logging.Component(logger, "health"),
	}
}

// Handler returns the routes without starting a listener
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.rootHandler)
	mux.HandleFunc("/health", s.healthHandler)
	mux.HandleFunc("/status", s.statusHandler)
	mux.HandleFunc("/info", s.infoHandler)
	return mux
}

// Start starts the health server and blocks until it stops
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.log.Info().Int("port", s.port).Msg("starting health server")
	return s.server.ListenAndServe()
}

// Stop stops the health server
func (s *Server) Stop() error {
	if s.server != nil {
		return s.server.Close()
	}
	return nil
}

func (s *Server) rootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, "%s v%s\n", s.agentInfo.Name, s.agentInfo.Version)
	fmt.Fprintf(w, "Coins: %s\n", strings.Join(s.statusGetter.KnownCoins(), ", "))
	fmt.Fprintf(w, "Capabilities: %s\n", strings.Join(s.agentInfo.Capabilities, ", "))
	fmt.Fprintf(w, "Uptime: %v\n", s.statusGetter.GetUptime())
	fmt.Fprintf(w, "\nEndpoints:\n")
	fmt.Fprintf(w, "  /health - Health check\n")
	fmt.Fprintf(w, "  /status - Detailed status (JSON)\n")
	fmt.Fprintf(w, "  /info   - Agent information (JSON)\n")
}

// healthHandler is healthy as long as there is something to answer from
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	status, code := "healthy", http.StatusOK
	if len(s.statusGetter.KnownCoins()) == 0 {
		status, code = "empty_knowledge_base", http.StatusServiceUnavailable
	}
	w.WriteHeader(code)

	health := map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().UTC(),
		"agent":     s.agentInfo.Name,
	}
	if err := json.NewEncoder(w).Encode(health); err != nil {
		s.log.Warn().Err(err).Msg("encode health")
	}
}

func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	coins := s.statusGetter.KnownCoins()
	status := "operational"
	if len(coins) == 0 {
		status = "empty"
	}
	healthStatus := HealthStatus{
		Status:    status,
		Coins:     coins,
		Uptime:    s.statusGetter.GetUptime().String(),
		Timestamp: time.Now().UTC(),
		Agent:     *s.agentInfo,
	}
	if err := json.NewEncoder(w).Encode(healthStatus); err != nil {
		s.log.Warn().Err(err).Msg("encode status")
	}
}

func (s *Server) infoHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(s.agentInfo); err != nil {
		s.log.Warn().Err(err).Msg("encode info")
	}
}
