package domain

import (
	"context"
	"encoding/json"
	"time"
)

type Span struct {
	Name    string    `json:"name"`
	startTs time.Time
	Elapsed *int64    `json:"elapsedMs"`
}

type profileContextKey struct{}

// ContextProfileKey is where a run's Profile lives on the context.
var ContextProfileKey = profileContextKey{}

// Profile is simply a list of spans
type Profile struct {
	Spans   []*Span `json:"spans"`
	startTs time.Time
	TotalMs *int64 `json:"totalMs"`
}

func NewProfile() (newProfile *Profile, endNewProfile func()) {
	newProfile = &Profile{
		Spans:   []*Span{},
		startTs: time.Now(),
	}
	return newProfile, newProfile.End
}

func NewCtxWithProfile(ctx context.Context, p *Profile) context.Context {
	return context.WithValue(ctx, ContextProfileKey, p)
}

// GetProfile returns the profile on the context, or a detached one if the
// caller did not set up profiling.
func GetProfile(ctx context.Context) *Profile {
	if p, ok := ctx.Value(ContextProfileKey).(*Profile); ok && p != nil {
		return p
	}
	p, _ := NewProfile()
	return p
}

func (p *Profile) End() {
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	if p.TotalMs == nil {
		t := time.Since(p.startTs).Milliseconds()
		p.TotalMs = &t
	}
}

func (s *Span) End() {
	if s.Elapsed == nil {
		t := time.Since(s.startTs).Milliseconds()
		s.Elapsed = &t
	}
}

// StartNewSpan ends the last span and begins a new one
// not thread safe
func (p *Profile) StartNewSpan(name string) (newSpan *Span, endSpan func()) {
	newSpan = &Span{
		Name:    name,
		startTs: time.Now(),
	}
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	p.Spans = append(p.Spans, newSpan)
	return newSpan, newSpan.End
}

func (p *Profile) ToJsonBytes() ([]byte, error) {
	bytes, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return bytes, nil
}
