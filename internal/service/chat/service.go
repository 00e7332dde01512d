package chat

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mgdigi/portfolio/backend/internal/analysis/responder"
	"github.com/mgdigi/portfolio/backend/internal/i18n"
	"github.com/mgdigi/portfolio/backend/internal/model/chat"
)

var (
	ErrEmptyMessage    = errors.New("message text is required")
	ErrSessionNotFound = errors.New("session not found")
)

const greetingKey = "ai.greeting"

// Config 控制模拟回复延迟与事件缓冲。
type Config struct {
	MinReplyDelay   time.Duration
	MaxReplyDelay   time.Duration
	EventBuffer     int
	// DefaultLanguage applies to sessions opened without a supported language.
	DefaultLanguage i18n.Language
}

// Service encapsulates assistant sessions, their append-only transcripts and
// the delayed canned replies.
type Service struct {
	cfg Config

	mu          sync.RWMutex
	sessions    map[string]chat.Session
	messages    map[string][]chat.Message
	pending     map[string]int
	subscribers map[string]map[chan chat.Event]struct{}
}

// NewService bootstraps the in-memory chat service.
func NewService(cfg Config) *Service {
	if cfg.MaxReplyDelay < cfg.MinReplyDelay {
		cfg.MaxReplyDelay = cfg.MinReplyDelay
	}
	if cfg.EventBuffer < 1 {
		cfg.EventBuffer = 16
	}
	if lang, ok := i18n.Parse(string(cfg.DefaultLanguage)); ok {
		cfg.DefaultLanguage = lang
	} else {
		cfg.DefaultLanguage = i18n.French
	}

	return &Service{
		cfg:         cfg,
		sessions:    make(map[string]chat.Session),
		messages:    make(map[string][]chat.Message),
		pending:     make(map[string]int),
		subscribers: make(map[string]map[chan chat.Event]struct{}),
	}
}

// CreateSession opens a session whose transcript starts with the assistant greeting.
func (s *Service) CreateSession(_ context.Context, lang i18n.Language) (chat.Session, []chat.Message, error) {
	if _, ok := i18n.Parse(string(lang)); !ok {
		lang = s.cfg.DefaultLanguage
	}

	session := chat.Session{
		ID:        uuid.NewString(),
		Language:  lang,
		CreatedAt: time.Now().UTC(),
	}
	greeting := newMessage(session.ID, i18n.For(lang).T(greetingKey), false)

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.messages[session.ID] = append(make([]chat.Message, 0, 16), greeting)
	s.mu.Unlock()

	log.Printf("[chat] session created id=%s language=%s", session.ID, lang)
	return session, []chat.Message{greeting}, nil
}

// GetSession retrieves a session by identifier.
func (s *Service) GetSession(_ context.Context, sessionID string) (chat.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return chat.Session{}, ErrSessionNotFound
	}
	return session, nil
}

// LoadTranscript returns a copy of the session history in arrival order.
func (s *Service) LoadTranscript(_ context.Context, sessionID string) ([]chat.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages, ok := s.messages[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	copied := make([]chat.Message, len(messages))
	copy(copied, messages)
	return copied, nil
}

// Pending reports how many replies of the session are still waiting for their delay.
func (s *Service) Pending(_ context.Context, sessionID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return 0, ErrSessionNotFound
	}
	return s.pending[sessionID], nil
}

// Typing is true while at least one reply of the session is pending.
func (s *Service) Typing(ctx context.Context, sessionID string) (bool, error) {
	pending, err := s.Pending(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return pending > 0, nil
}

// Respond runs the keyword selector without touching any session.
func (s *Service) Respond(text string) (responder.Category, string) {
	category := responder.Select(text)
	return category, responder.Reply(category)
}

// SendMessage appends the visitor message and schedules exactly one assistant
// reply after a random delay. Scheduled replies are never cancelled.
func (s *Service) SendMessage(_ context.Context, sessionID, text string) (chat.Message, error) {
	if strings.TrimSpace(text) == "" {
		return chat.Message{}, ErrEmptyMessage
	}

	category, reply := s.Respond(text)

	s.mu.Lock()
	if _, ok := s.sessions[sessionID]; !ok {
		s.mu.Unlock()
		return chat.Message{}, ErrSessionNotFound
	}

	userMsg := newMessage(sessionID, text, true)
	s.messages[sessionID] = append(s.messages[sessionID], userMsg)
	s.pending[sessionID]++
	s.publishLocked(sessionID, chat.Event{Type: chat.EventMessage, Message: &userMsg})
	s.publishLocked(sessionID, chat.Event{Type: chat.EventTyping})
	s.mu.Unlock()

	delay := s.replyDelay()
	log.Printf("[chat] session=%s category=%s reply in %s", sessionID, category, delay)

	time.AfterFunc(delay, func() {
		s.deliverReply(sessionID, reply)
	})

	return userMsg, nil
}

func (s *Service) deliverReply(sessionID, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return
	}

	reply := newMessage(sessionID, text, false)
	s.messages[sessionID] = append(s.messages[sessionID], reply)
	if s.pending[sessionID] > 0 {
		s.pending[sessionID]--
	}
	s.publishLocked(sessionID, chat.Event{Type: chat.EventMessage, Message: &reply})
	s.publishLocked(sessionID, chat.Event{Type: chat.EventTyping})
}

// Subscribe streams session events until ctx is done, then closes the channel.
func (s *Service) Subscribe(ctx context.Context, sessionID string) (<-chan chat.Event, error) {
	ch := make(chan chat.Event, s.cfg.EventBuffer)

	s.mu.Lock()
	if _, ok := s.sessions[sessionID]; !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	subs, ok := s.subscribers[sessionID]
	if !ok {
		subs = make(map[chan chat.Event]struct{})
		s.subscribers[sessionID] = subs
	}
	subs[ch] = struct{}{}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subscribers[sessionID], ch)
		if len(s.subscribers[sessionID]) == 0 {
			delete(s.subscribers, sessionID)
		}
		close(ch)
		s.mu.Unlock()
	}()

	return ch, nil
}

// publishLocked fans an event out without blocking; the caller holds s.mu.
func (s *Service) publishLocked(sessionID string, event chat.Event) {
	event.SessionID = sessionID
	event.Pending = s.pending[sessionID]
	event.Typing = event.Pending > 0

	for ch := range s.subscribers[sessionID] {
		select {
		case ch <- event:
		default:
			log.Printf("[chat] subscriber buffer full, dropping %s event for session=%s", event.Type, sessionID)
		}
	}
}

func (s *Service) replyDelay() time.Duration {
	span := s.cfg.MaxReplyDelay - s.cfg.MinReplyDelay
	if span <= 0 {
		return s.cfg.MinReplyDelay
	}
	return s.cfg.MinReplyDelay + time.Duration(rand.Int63n(int64(span)))
}

func newMessage(sessionID, text string, isUser bool) chat.Message {
	return chat.Message{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Text:      text,
		IsUser:    isUser,
		Timestamp: time.Now().UTC(),
	}
}
