package httpapi

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/servicehall/hallkeeper/internal/hall/service"
	"github.com/servicehall/hallkeeper/internal/hall/types"
)

//go:embed templates/report_list.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/report_list.html"))

type reportPage struct {
	ProjectName string
	Reports     []types.HallEntry
}

func (s *Server) handleMainPage(w http.ResponseWriter, r *http.Request) {
	entries, err := s.records.List(r.Context())
	if err != nil {
		s.logger.Error("render main page failed", "err", err)
		http.Error(w, service.OperationFailed().Message, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, reportPage{
		ProjectName: s.projectName,
		Reports:     entries,
	}); err != nil {
		s.logger.Error("render main page failed", "err", err)
	}
}
