package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nyaruka/voicex/runtime"
)

// Handler is the signature of all our web handlers
type Handler func(ctx context.Context, rt *runtime.Runtime, r *http.Request, w http.ResponseWriter) error

type route struct {
	method  string
	pattern string
	handler Handler
}

var routes []*route

// RegisterRoute registers the passed in handler for the given method and pattern
func RegisterRoute(method, pattern string, handler Handler) {
	routes = append(routes, &route{method, pattern, handler})
}

// Server is our HTTP server for webhook callbacks and the API we expose
type Server struct {
	rt         *runtime.Runtime
	httpServer *http.Server
	wg         *sync.WaitGroup
}

// NewServer creates a new web server, routing all the registered handlers
func NewServer(rt *runtime.Runtime) *Server {
	router := chi.NewRouter()
	router.Use(panicRecovery, requestLogger)

	s := &Server{
		rt: rt,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", rt.Config.Address, rt.Config.Port),
			Handler:      router,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		wg: &sync.WaitGroup{},
	}

	router.NotFound(s.wrap(handle404))
	router.MethodNotAllowed(s.wrap(handle405))
	router.Get("/", s.wrap(handleIndex))

	for _, r := range routes {
		router.Method(r.method, r.pattern, http.HandlerFunc(s.wrap(r.handler)))
	}

	return s
}

// wrap adapts one of our handlers to a stock http.HandlerFunc, taking care of
// error responses
func (s *Server) wrap(handler Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := handler(r.Context(), s.rt, r, w); err != nil {
			slog.Error("error handling request", "error", err, "method", r.Method, "url", r.URL.String())
			WriteMarshalled(w, http.StatusInternalServerError, NewErrorResponse(err))
		}
	}
}

// Start starts our web server, listening in a new goroutine
func (s *Server) Start() {
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		err := s.httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			slog.Error("error listening", "error", err, "comp", "server")
		}
	}()

	slog.Info("server started", "comp", "server", "address", s.httpServer.Addr)
}

// Stop stops our web server, giving in-flight requests a chance to complete
func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		slog.Error("error shutting down server", "error", err, "comp", "server")
	}
	s.wg.Wait()

	slog.Info("server stopped", "comp", "server")
}

func handleIndex(ctx context.Context, rt *runtime.Runtime, r *http.Request, w http.ResponseWriter) error {
	return WriteMarshalled(w, http.StatusOK, map[string]string{"component": "voicex", "version": rt.Config.Version})
}

func handle404(ctx context.Context, rt *runtime.Runtime, r *http.Request, w http.ResponseWriter) error {
	return WriteMarshalled(w, http.StatusNotFound, NewErrorResponse(fmt.Errorf("not found: %s", r.URL.String())))
}

func handle405(ctx context.Context, rt *runtime.Runtime, r *http.Request, w http.ResponseWriter) error {
	return WriteMarshalled(w, http.StatusMethodNotAllowed, NewErrorResponse(fmt.Errorf("illegal method: %s", r.Method)))
}
