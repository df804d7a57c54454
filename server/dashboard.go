package server

import (
	_ "embed"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
)

//go:embed dashboard.html.tmpl
var dashboardHTML string

var dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardHTML))

func (s *server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	v, err := s.buildView(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	payload, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, map[string]interface{}{
		"View":    v,
		"Payload": template.JS(payload),
	}); err != nil {
		log.Printf("error rendering dashboard: %v", err)
	}
}
