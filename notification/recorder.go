package notification

import (
	"context"
	"sync"
)

type LivePush struct {
	UserID  uint
	Payload any
}

// Recorder is an in-memory Notifier. Setting EmailErr makes every
// SendEmail call fail after recording the email.
type Recorder struct {
	mu       sync.Mutex
	Emails   []Email
	Pushes   []LivePush
	EmailErr error
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) SendEmail(_ context.Context, email Email) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Emails = append(r.Emails, email)
	return r.EmailErr
}

func (r *Recorder) PushLive(_ context.Context, userID uint, payload any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Pushes = append(r.Pushes, LivePush{UserID: userID, Payload: payload})
	return nil
}

func (r *Recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.Emails))
	for _, e := range r.Emails {
		out = append(out, e.Event)
	}
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Emails = nil
	r.Pushes = nil
}
