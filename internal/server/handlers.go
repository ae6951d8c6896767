package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/jonathan/portfolio-cv/internal/catalog"
	"github.com/jonathan/portfolio-cv/internal/export"
	"github.com/jonathan/portfolio-cv/internal/rendering"
	"github.com/jonathan/portfolio-cv/internal/selection"
	"github.com/jonathan/portfolio-cv/internal/types"
	"github.com/jonathan/portfolio-cv/internal/validation"
)

// OptionsResponse lists the accepted values of every query parameter.
type OptionsResponse struct {
	DocumentTypes []types.DocumentType     `json:"document_types"`
	DomainFocuses []types.DomainFocus      `json:"domain_focuses"`
	Audiences     []types.Audience         `json:"audiences"`
	Categories    []catalog.CategoryOption `json:"categories"`
	SortModes     []catalog.SortMode       `json:"sort_modes"`
	Defaults      types.Options            `json:"defaults"`
}

// CardsResponse is the response for /cards
type CardsResponse struct {
	State catalog.State     `json:"state"`
	Count int               `json:"count"`
	Cards []catalog.Summary `json:"cards"`
}

// SelectionResponse is the response for /document/selection
type SelectionResponse struct {
	Title     string           `json:"title"`
	Selection *types.Selection `json:"selection"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleOptions lists document options and catalog filters
func (s *Server) handleOptions(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, OptionsResponse{
		DocumentTypes: []types.DocumentType{types.DocumentResume, types.DocumentCV},
		DomainFocuses: []types.DomainFocus{types.FocusDataScience, types.FocusNanotech},
		Audiences:     []types.Audience{types.AudienceAcademic, types.AudienceIndustry, types.AudienceAll},
		Categories:    catalog.Categories(),
		SortModes:     catalog.SortModes(),
		Defaults:      types.DefaultOptions(),
	})
}

// handleDocument renders the printable HTML document for the query options
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	opts, err := parseDocumentOptions(r.URL.Query())
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	html, err := rendering.BuildDocumentWithTemplate(s.repo, opts, s.templatePath)
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		log.Printf("[SERVER] Error writing document: %v", err)
	}
}

// handleDocumentPDF exports the document for the query options as a PDF
func (s *Server) handleDocumentPDF(w http.ResponseWriter, r *http.Request) {
	opts, err := parseDocumentOptions(r.URL.Query())
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	// The export outlives neither the request nor its own timeout.
	ctx, cancel := context.WithTimeout(r.Context(), s.exportTimeout)
	defer cancel()

	result, err := s.exporter.Export(ctx, export.Options{
		Document:     opts,
		TemplatePath: s.templatePath,
		Timeout:      s.exportTimeout,
	})
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", export.FileName(opts, "pdf")))
	w.Header().Set("X-Export-Run", result.RunID)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.PDF); err != nil {
		log.Printf("[SERVER] Error writing PDF: %v", err)
	}
}

// handleSelection returns the selected document content as JSON
func (s *Server) handleSelection(w http.ResponseWriter, r *http.Request) {
	opts, err := parseDocumentOptions(r.URL.Query())
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	sel, err := selection.Select(s.repo, opts)
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, SelectionResponse{
		Title:     rendering.ConfigTitle(sel.Options),
		Selection: sel,
	})
}

// handleViolations renders the document and returns its check results
func (s *Server) handleViolations(w http.ResponseWriter, r *http.Request) {
	opts, err := parseDocumentOptions(r.URL.Query())
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	html, err := rendering.BuildDocumentWithTemplate(s.repo, opts, s.templatePath)
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	violations, err := validation.ValidateDocument(html, nil)
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, violations)
}

// handleCards lists the catalog cards for a category, query and sort
func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	state, err := parseCatalogState(r.URL.Query())
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	cards := catalog.Summarize(catalog.Visible(s.repo, state), state.Query)
	s.jsonResponse(w, http.StatusOK, CardsResponse{
		State: state,
		Count: len(cards),
		Cards: cards,
	})
}

// handleCard returns one card by title
func (s *Server) handleCard(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")
	card, ok := catalog.Find(s.repo, title)
	if !ok {
		s.errorFrom(w, &ErrNotFound{Resource: "card", Key: title})
		return
	}
	s.jsonResponse(w, http.StatusOK, card)
}

// parseDocumentOptions reads type, focus, audience and locale from the query.
func parseDocumentOptions(q url.Values) (types.Options, error) {
	opts := types.Options{
		DocumentType: types.DocumentType(q.Get("type")),
		DomainFocus:  types.DomainFocus(q.Get("focus")),
		Audience:     types.Audience(q.Get("audience")),
		Locale:       q.Get("locale"),
	}.WithDefaults()

	if err := opts.Validate(); err != nil {
		return types.Options{}, &ErrValidation{Field: "options", Message: err.Error()}
	}
	return opts, nil
}

// parseCatalogState reads category, q and sort from the query.
func parseCatalogState(q url.Values) (catalog.State, error) {
	state := catalog.InitialState()

	category, err := catalog.ParseCategory(q.Get("category"))
	if err != nil {
		return state, &ErrValidation{Field: "category", Message: err.Error()}
	}
	state = catalog.Reduce(state, catalog.SetCategory{Category: category})

	mode, err := catalog.ParseSortMode(q.Get("sort"))
	if err != nil {
		return state, &ErrValidation{Field: "sort", Message: err.Error()}
	}
	state = catalog.Reduce(state, catalog.SetSort{Sort: mode})
	state = catalog.Reduce(state, catalog.SetQuery{Query: q.Get("q")})

	return state, nil
}
