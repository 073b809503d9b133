// Package session holds the per-user working state of a tailoring run:
// the extracted resume text, the loaded job posting, the gap analysis
// and its answers, and the tailored result. Nothing here is persisted;
// a session lives in process memory and is discarded when ended.
package session

import (
	"sync"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Session is the state for one user's run. Loading new upstream input
// clears everything derived from the old input: a new resume or job
// posting drops the gap analysis, the collected answers, and the
// tailored result, so answers gathered for one posting are never
// silently reused against another.
type Session struct {
	ID string

	mu             sync.Mutex
	resumeText     string
	resumeFilename string
	job            *types.JobPosting
	analysis       *types.GapAnalysisResult
	answers        []types.GapAnswer
	tailored       *types.TailoredData
	inFlight       string
}

// SetResume stores freshly extracted resume text and resets all
// downstream state.
func (s *Session) SetResume(text, filename string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resumeText = text
	s.resumeFilename = filename
	s.resetDownstream()
}

// SetJob stores a job posting and resets all downstream state.
func (s *Session) SetJob(job *types.JobPosting) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.job = job
	s.resetDownstream()
}

// caller must hold s.mu.
func (s *Session) resetDownstream() {
	s.analysis = nil
	s.answers = nil
	s.tailored = nil
}

// SetAnalysis stores a gap analysis result. A new analysis supersedes
// any answers and tailoring produced from the previous one.
func (s *Session) SetAnalysis(result *types.GapAnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analysis = result
	s.answers = nil
	s.tailored = nil
}

// SetAnswers stores the collected gap answers.
func (s *Session) SetAnswers(answers []types.GapAnswer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers = answers
}

// SetTailored replaces the tailored result wholesale.
func (s *Session) SetTailored(data *types.TailoredData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tailored = data
}

// Resume returns the stored resume text and its source filename.
func (s *Session) Resume() (text, filename string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resumeText, s.resumeFilename
}

// Job returns the loaded job posting, if any.
func (s *Session) Job() *types.JobPosting {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.job
}

// Analysis returns the current gap analysis result, if any.
func (s *Session) Analysis() *types.GapAnalysisResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analysis
}

// Answers returns a copy of the collected gap answers.
func (s *Session) Answers() []types.GapAnswer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.answers == nil {
		return nil
	}
	out := make([]types.GapAnswer, len(s.answers))
	copy(out, s.answers)
	return out
}

// Tailored returns the current tailored result, if any.
func (s *Session) Tailored() *types.TailoredData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tailored
}

// EditBullet rewrites one tailored bullet in place. It reports false
// when there is no tailored result or the indexes are out of range.
func (s *Session) EditBullet(sectionIdx, bulletIdx int, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tailored == nil {
		return false
	}
	return s.tailored.EditBullet(sectionIdx, bulletIdx, text)
}

// Acquire marks an operation as in flight. A second operation started
// while one is outstanding gets a BusyError; the interactive layer uses
// this to keep a slow model call from being doubled up.
func (s *Session) Acquire(operation string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight != "" {
		return &BusyError{Operation: s.inFlight}
	}
	s.inFlight = operation
	return nil
}

// Release clears the in-flight marker set by Acquire.
func (s *Session) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = ""
}
