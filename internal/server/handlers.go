package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jonathan/resume-tailor/internal/extract"
	"github.com/jonathan/resume-tailor/internal/scrape"
	"github.com/jonathan/resume-tailor/internal/session"
	"github.com/jonathan/resume-tailor/internal/types"
)

// maxUploadSize bounds resume uploads at 10 MB.
const maxUploadSize = 10 << 20

// sessionFromHeader resolves the optional X-Session-ID header. Handlers
// stay usable without a session; when one is named it must exist.
func (s *Server) sessionFromHeader(r *http.Request) (*session.Session, error) {
	id := r.Header.Get("X-Session-ID")
	if id == "" {
		return nil, nil
	}
	return s.sessions.Get(id)
}

// handleParseResume accepts a multipart resume upload and returns the
// extracted plain text.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromHeader(r)
	if err != nil {
		s.failWith(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	content, err := extract.Resume(data, header.Filename, mimeType)
	if err != nil {
		s.failWith(w, err)
		return
	}

	if sess != nil {
		sess.SetResume(content, header.Filename)
	}

	s.jsonResponse(w, http.StatusOK, types.ParseResumeResponse{
		Content:  content,
		Filename: header.Filename,
		FileType: string(extract.DetectFileType(header.Filename, mimeType)),
	})
}

// handleScrapeJob fetches a job posting URL and returns the extracted posting.
func (s *Server) handleScrapeJob(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromHeader(r)
	if err != nil {
		s.failWith(w, err)
		return
	}

	var req types.ScrapeJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "a valid url is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.ScrapeTimeout())
	defer cancel()

	job, err := s.scrapeJob(ctx, req.URL, &scrape.Options{
		Timeout:    s.cfg.ScrapeTimeout(),
		UseBrowser: s.cfg.UseBrowser,
	})
	if err != nil {
		s.failWith(w, err)
		return
	}

	if sess != nil {
		sess.SetJob(job)
	}

	s.jsonResponse(w, http.StatusOK, job)
}

// handleAnalyzeGaps runs gap analysis on the supplied resume and job text.
func (s *Server) handleAnalyzeGaps(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromHeader(r)
	if err != nil {
		s.failWith(w, err)
		return
	}

	var req types.AnalyzeGapsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resumeContent and jobDescription are required")
		return
	}

	if sess != nil {
		if err := sess.Acquire("analyze-gaps"); err != nil {
			s.failWith(w, err)
			return
		}
		defer sess.Release()
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.ModelTimeout())
	defer cancel()

	result, err := s.analyzer.Analyze(ctx, req.ResumeContent, req.JobDescription, req.JobTitle, req.Company)
	if err != nil {
		s.failWith(w, err)
		return
	}

	if sess != nil {
		sess.SetAnalysis(result)
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleTailorResume rewrites resume bullets against the job posting,
// weaving in any collected gap answers.
func (s *Server) handleTailorResume(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromHeader(r)
	if err != nil {
		s.failWith(w, err)
		return
	}

	var req types.TailorResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resumeContent and jobDescription are required")
		return
	}

	if sess != nil {
		if err := sess.Acquire("tailor-resume"); err != nil {
			s.failWith(w, err)
			return
		}
		defer sess.Release()
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.ModelTimeout())
	defer cancel()

	data, err := s.engine.Tailor(ctx, req.ResumeContent, req.JobDescription, req.JobTitle, req.Company, req.GapAnswers)
	if err != nil {
		s.failWith(w, err)
		return
	}

	if sess != nil {
		sess.SetAnswers(req.GapAnswers)
		sess.SetTailored(data)
	}

	s.jsonResponse(w, http.StatusOK, data)
}

// handleGeneratePDF renders tailored sections to a downloadable PDF.
// An empty sections array is valid and yields a header-only document;
// a missing or non-array field is rejected.
func (s *Server) handleGeneratePDF(w http.ResponseWriter, r *http.Request) {
	var req types.GeneratePDFRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	sections, err := req.SectionList()
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RenderTimeout())
	defer cancel()

	pdf, err := s.renderPDF(ctx, sections, s.cfg.RenderTimeout())
	if err != nil {
		s.failWith(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="tailored-resume.pdf"`)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdf)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		return
	}
}

// sessionSummary is the client-visible view of a session's state.
type sessionSummary struct {
	ID             string                   `json:"id"`
	HasResume      bool                     `json:"hasResume"`
	ResumeFilename string                   `json:"resumeFilename,omitempty"`
	Job            *types.JobPosting        `json:"job,omitempty"`
	Analysis       *types.GapAnalysisResult `json:"analysis,omitempty"`
	AnswerCount    int                      `json:"answerCount"`
	Tailored       *types.TailoredData      `json:"tailored,omitempty"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	sess := s.sessions.Create()
	s.jsonResponse(w, http.StatusCreated, map[string]string{"sessionId": sess.ID})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.failWith(w, err)
		return
	}

	text, filename := sess.Resume()
	s.jsonResponse(w, http.StatusOK, sessionSummary{
		ID:             sess.ID,
		HasResume:      text != "",
		ResumeFilename: filename,
		Job:            sess.Job(),
		Analysis:       sess.Analysis(),
		AnswerCount:    len(sess.Answers()),
		Tailored:       sess.Tailored(),
	})
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	s.sessions.End(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// handleEditBullet rewrites one tailored bullet in place.
func (s *Server) handleEditBullet(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.failWith(w, err)
		return
	}

	var req struct {
		SectionIndex int    `json:"sectionIndex"`
		BulletIndex  int    `json:"bulletIndex"`
		Text         string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if !sess.EditBullet(req.SectionIndex, req.BulletIndex, req.Text) {
		s.errorResponse(w, http.StatusBadRequest, "no tailored bullet at that position")
		return
	}

	s.jsonResponse(w, http.StatusOK, sess.Tailored())
}
