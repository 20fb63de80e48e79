package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/servicehall/hallkeeper/internal/hall/service"
	"github.com/servicehall/hallkeeper/internal/hall/types"
)

type Dependencies struct {
	Logger      *slog.Logger
	Addr        string
	Records     *service.RecordService
	Gate        *service.AdminGate
	ProjectName string
	StaticDir   string
}

type Server struct {
	httpServer  *http.Server
	logger      *slog.Logger
	mux         *http.ServeMux
	records     *service.RecordService
	gate        *service.AdminGate
	projectName string
}

func NewServer(d Dependencies) *Server {
	mux := http.NewServeMux()

	s := &Server{
		logger:      d.Logger,
		mux:         mux,
		records:     d.Records,
		gate:        d.Gate,
		projectName: d.ProjectName,
	}

	mux.HandleFunc("GET /{$}", s.handleMainPage)
	if d.StaticDir != "" {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(d.StaticDir))))
	}
	mux.HandleFunc("GET /admin/list", s.handleList)
	mux.HandleFunc("POST /admin/add", s.handleAdd)
	mux.HandleFunc("POST /admin/update", s.handleUpdate)
	mux.HandleFunc("POST /admin/remove/{id}", s.handleRemove)

	handler := loggingMiddleware(d.Logger, mux)

	s.httpServer = &http.Server{
		Addr:              d.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// authorize runs the admin gate against the Authorization header. On
// rejection it writes the shaped 403 and reports false.
func (s *Server) authorize(w http.ResponseWriter, r *http.Request) (*service.AdminKey, bool) {
	actor, denied := s.gate.Check(r.Header.Get("Authorization"))
	if denied != nil {
		writeResult(w, *denied)
		return nil, false
	}
	return actor, true
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authorize(w, r); !ok {
		return
	}

	entries, err := s.records.List(r.Context())
	if err != nil {
		s.logger.Error("list records failed", "err", err)
		writeResult(w, service.OperationFailed())
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authorize(w, r)
	if !ok {
		return
	}

	var sub types.RecordSubmission
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sub); err != nil {
		writeResult(w, service.MalformedRequest())
		return
	}

	writeResult(w, s.records.Create(r.Context(), sub, actor))
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authorize(w, r)
	if !ok {
		return
	}

	var sub types.RecordSubmission
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sub); err != nil {
		writeResult(w, service.MalformedRequest())
		return
	}

	writeResult(w, s.records.Update(r.Context(), sub, actor))
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.authorize(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		writeResult(w, service.MalformedRequest())
		return
	}

	writeResult(w, s.records.Remove(r.Context(), id, actor))
}
