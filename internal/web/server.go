// Package web serves the calculator as a single HTML form over HTTP.
package web

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/piwi3910/FurniProfit/internal/engine"
	"github.com/piwi3910/FurniProfit/internal/export"
	"github.com/piwi3910/FurniProfit/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server renders the calculator page and the document downloads.
type Server struct {
	prefs  model.AppConfig
	tmpl   *template.Template
	logger zerolog.Logger
}

// NewServer parses the embedded templates. prefs supplies the branding and
// the values the form starts with.
func NewServer(prefs model.AppConfig, logger zerolog.Logger) (*Server, error) {
	prefs.Normalize()
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Server{prefs: prefs, tmpl: tmpl, logger: logger}, nil
}

// Routes returns the HTTP handler with all routes mounted.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.logger))

	r.Get("/", s.handleIndex)
	r.Post("/calculate", s.handleCalculate)
	r.Post("/export/pdf", s.handleExportPDF)
	r.Post("/export/xlsx", s.handleExportXLSX)
	r.Get("/healthz", s.handleHealth)
	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	in := s.prefs.DefaultInput
	s.renderPage(w, r, http.StatusOK, valuesFromInput(in), &in, nil)
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	in, values, err := parseInputForm(r)
	if err != nil {
		s.renderPage(w, r, http.StatusUnprocessableEntity, values, nil, err)
		return
	}
	s.renderPage(w, r, http.StatusOK, values, &in, nil)
}

func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	s.handleExport(w, r, export.RenderReport, export.ReportFilename, export.ReportMIMEType)
}

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	s.handleExport(w, r, export.RenderWorkbook, export.WorkbookFilename, export.WorkbookMIMEType)
}

type renderFunc func(model.Result, export.ReportOptions) ([]byte, error)

// handleExport recomputes the result from the submitted form and sends the
// rendered document as an attachment. Invalid input shows the form again.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request, render renderFunc, filename, mimeType string) {
	log := zerolog.Ctx(r.Context())

	in, values, err := parseInputForm(r)
	if err != nil {
		s.renderPage(w, r, http.StatusUnprocessableEntity, values, nil, err)
		return
	}
	result, err := engine.Calculate(in)
	if err != nil {
		s.renderPage(w, r, http.StatusUnprocessableEntity, values, nil, err)
		return
	}

	data, err := render(result, export.OptionsFromConfig(s.prefs))
	if err != nil {
		log.Error().Err(err).Str("file", filename).Msg("export failed")
		http.Error(w, "could not generate the document", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Warn().Err(err).Msg("failed to write export response")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// renderPage executes the page template. When in is nil or invalid only the
// form and the error are shown.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, values formValues, in *model.Input, inputErr error) {
	log := zerolog.Ctx(r.Context())

	page := newPageView(s.prefs, values)
	if inputErr != nil {
		page.setError(inputErr)
	}
	if in != nil {
		comparisons, err := engine.CompareScenarios(*in, engine.BuildDefaultScenarios(*in))
		if err != nil {
			page.setError(err)
			status = http.StatusUnprocessableEntity
		} else {
			page.setResults(comparisons)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.ExecuteTemplate(w, "index.html", page); err != nil {
		log.Error().Err(err).Msg("failed to render page")
	}
}

// inputErrorMessage turns a validation failure into the text shown next to
// the form.
func inputErrorMessage(err error) string {
	var invalid *model.InvalidInputError
	if errors.As(err, &invalid) {
		return invalid.Error()
	}
	return "the values could not be calculated"
}
