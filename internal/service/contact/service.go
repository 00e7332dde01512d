package contact

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mgdigi/portfolio/backend/internal/analysis/contactform"
	"github.com/mgdigi/portfolio/backend/internal/i18n"
	"github.com/mgdigi/portfolio/backend/internal/model/contact"
)

var ErrSubmissionNotFound = errors.New("submission not found")

// Config 控制模拟提交的延迟。
type Config struct {
	SubmitDelay     time.Duration
	DefaultLanguage i18n.Language
}

// Service validates contact forms and simulates their delivery. Nothing leaves the process.
type Service struct {
	cfg Config

	mu          sync.RWMutex
	submissions map[string]contact.Submission
}

// NewService creates the in-memory contact service.
func NewService(cfg Config) *Service {
	if cfg.SubmitDelay < 0 {
		cfg.SubmitDelay = 0
	}
	if lang, ok := i18n.Parse(string(cfg.DefaultLanguage)); ok {
		cfg.DefaultLanguage = lang
	} else {
		cfg.DefaultLanguage = i18n.French
	}
	return &Service{
		cfg:         cfg,
		submissions: make(map[string]contact.Submission),
	}
}

// Submit validates the form. Invalid forms return their field errors and
// create nothing; valid ones start a submission that completes after SubmitDelay.
func (s *Service) Submit(_ context.Context, form contactform.Form, lang i18n.Language) (contact.Submission, contactform.Errors, error) {
	if _, ok := i18n.Parse(string(lang)); !ok {
		lang = s.cfg.DefaultLanguage
	}
	tr := i18n.For(lang)
	if errs := contactform.Validate(form, tr); !errs.Valid() {
		return contact.Submission{}, errs, nil
	}

	submission := contact.Submission{
		ID:        uuid.NewString(),
		Status:    contact.StatusSending,
		Language:  lang,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.submissions[submission.ID] = submission
	s.mu.Unlock()

	log.Printf("[contact] submission id=%s accepted, completes in %s", submission.ID, s.cfg.SubmitDelay)

	time.AfterFunc(s.cfg.SubmitDelay, func() {
		s.complete(submission.ID, tr)
	})

	return submission, contactform.Errors{}, nil
}

func (s *Service) complete(id string, tr i18n.Translator) {
	now := time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	submission, ok := s.submissions[id]
	if !ok {
		return
	}
	submission.Status = contact.StatusSent
	submission.CompletedAt = &now
	submission.Notification = &contact.Notification{
		Title:       tr.T("form.messageSent"),
		Description: tr.T("form.messageDesc"),
	}
	s.submissions[id] = submission

	log.Printf("[contact] submission id=%s sent", id)
}

// Get returns the current state of a submission.
func (s *Service) Get(_ context.Context, id string) (contact.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	submission, ok := s.submissions[id]
	if !ok {
		return contact.Submission{}, ErrSubmissionNotFound
	}
	return submission, nil
}
