// Package datamode decides whether requests are served from the upstream API
// or from the local dataset, and explains the decision.
package datamode

import (
	"strings"
	"sync"
)

type Mode string

const (
	ModeLocal    Mode = "local"
	ModeUpstream Mode = "api-football"
)

// Resolver holds the process-wide upstream health signal. The configured mode
// never changes; the effective mode drops to local while a network failure is
// recorded and recovers on the next successful upstream call.
type Resolver struct {
	useLive bool
	hasKey  bool

	mu        sync.RWMutex
	lastError string
}

func NewResolver(useLive bool, apiKey string) *Resolver {
	return &Resolver{
		useLive: useLive,
		hasKey:  strings.TrimSpace(apiKey) != "",
	}
}

// Mode is the configured source: upstream only with live mode on and a key set.
func (r *Resolver) Mode() Mode {
	if r.useLive && r.hasKey {
		return ModeUpstream
	}
	return ModeLocal
}

// EffectiveMode is the source actually reported to clients.
func (r *Resolver) EffectiveMode() Mode {
	if r.Mode() != ModeUpstream {
		return ModeLocal
	}
	if r.LastError() != "" {
		return ModeLocal
	}
	return ModeUpstream
}

func (r *Resolver) Reason() string {
	if !r.useLive {
		return "API_FOOTBALL_USE_LIVE=false"
	}
	if !r.hasKey {
		return "API_FOOTBALL_KEY ausente"
	}
	if msg := r.LastError(); msg != "" {
		return "fallback local por erro de rede: " + msg
	}
	return "API-Football habilitada"
}

// RecordFailure stores a network-class failure message.
func (r *Resolver) RecordFailure(message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		message = "erro desconhecido"
	}
	r.mu.Lock()
	r.lastError = message
	r.mu.Unlock()
}

// Clear forgets any recorded failure.
func (r *Resolver) Clear() {
	r.mu.Lock()
	r.lastError = ""
	r.mu.Unlock()
}

func (r *Resolver) LastError() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastError
}

func (r *Resolver) LiveEnabled() bool { return r.useLive }

func (r *Resolver) HasKey() bool { return r.hasKey }
