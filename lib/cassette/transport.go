// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cassette

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"slices"
	"sync"

	"github.com/bureau-foundation/slackweb/webapi"
)

// Recorder is a webapi.Transport that forwards every exchange to an
// inner Transport and keeps a copy. Failed round trips are returned
// to the caller and not recorded.
type Recorder struct {
	inner webapi.Transport

	mu           sync.Mutex
	interactions []Interaction
}

// NewRecorder wraps inner.
func NewRecorder(inner webapi.Transport) *Recorder {
	return &Recorder{inner: inner}
}

func (r *Recorder) RoundTrip(ctx context.Context, request *webapi.TransportRequest) (*webapi.TransportResponse, error) {
	response, err := r.inner.RoundTrip(ctx, request)
	if err != nil {
		return nil, err
	}
	interaction := newInteraction(request, response)
	r.mu.Lock()
	r.interactions = append(r.interactions, interaction)
	r.mu.Unlock()
	return response, nil
}

// Interactions returns the exchanges recorded so far, in completion
// order.
func (r *Recorder) Interactions() []Interaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.interactions)
}

// Save writes the recorded exchanges to path.
func (r *Recorder) Save(path string, compression Compression) error {
	return WriteFile(path, r.Interactions(), compression)
}

// Replayer is a webapi.Transport that answers from recorded
// exchanges without touching the network. Each recording is used
// once; identical requests replay their recordings in order.
type Replayer struct {
	mu      sync.Mutex
	pending map[string][]Interaction
	count   int
}

// NewReplayer serves interactions.
func NewReplayer(interactions []Interaction) *Replayer {
	pending := make(map[string][]Interaction)
	for _, interaction := range interactions {
		pending[interaction.Fingerprint] = append(pending[interaction.Fingerprint], interaction)
	}
	return &Replayer{pending: pending, count: len(interactions)}
}

// Load reads the cassette at path into a Replayer.
func Load(path string) (*Replayer, error) {
	interactions, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewReplayer(interactions), nil
}

func (r *Replayer) RoundTrip(ctx context.Context, request *webapi.TransportRequest) (*webapi.TransportResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fingerprint := Fingerprint(request)

	r.mu.Lock()
	queue := r.pending[fingerprint]
	if len(queue) == 0 {
		r.mu.Unlock()
		return nil, fmt.Errorf("cassette: %s %s: %w", request.Method, request.URL, ErrNoInteraction)
	}
	interaction := queue[0]
	if len(queue) == 1 {
		delete(r.pending, fingerprint)
	} else {
		r.pending[fingerprint] = queue[1:]
	}
	r.count--
	r.mu.Unlock()

	return &webapi.TransportResponse{
		StatusCode: interaction.Response.StatusCode,
		Header:     http.Header(interaction.Response.Header).Clone(),
		Body:       bytes.Clone(interaction.Response.Body),
	}, nil
}

// Remaining returns how many recordings have not been replayed.
func (r *Replayer) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}
