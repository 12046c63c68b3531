// Package responder composes the response pipeline: normalize the message,
// match it against the knowledge base, fall back to extractive inference
// with the session's context, and finally to the fixed deflection reply.
package responder

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"helpbot/internal/inference"
	"helpbot/internal/kb"
	"helpbot/internal/matcher"
	"helpbot/internal/models"
	"helpbot/internal/nlp"
	"helpbot/internal/session"
)

// DefaultReply is the deflection returned when neither the knowledge base
// nor inference produced an answer. A response is always produced; this is
// the floor.
const DefaultReply = "Sorry, I couldn't find an answer to that. Please contact our support team for more help."

// InteractionLog is the external collaborator that persists completed
// exchanges. Append failures never alter the already-computed response.
type InteractionLog interface {
	AppendInteraction(ctx context.Context, interaction models.Interaction) error
}

// Responder runs the matching and fallback pipeline. It is stateless per
// request; the session store is the only shared mutable state it touches.
type Responder struct {
	normalizer *nlp.Normalizer
	base       *kb.Base
	sessions   session.Store
	inference  inference.Adapter
	log        InteractionLog
	now        func() time.Time
}

// New wires the pipeline components together.
func New(normalizer *nlp.Normalizer, base *kb.Base, sessions session.Store, adapter inference.Adapter, log InteractionLog) *Responder {
	return &Responder{
		normalizer: normalizer,
		base:       base,
		sessions:   sessions,
		inference:  adapter,
		log:        log,
		now:        time.Now,
	}
}

// Respond produces the reply for one chat message and records the exchange.
// The returned source is one of models.SourceKB, models.SourceInference or
// models.SourceDefault.
func (r *Responder) Respond(ctx context.Context, sessionID, message string) (string, string) {
	response, source := r.respond(ctx, sessionID, message)
	r.record(ctx, sessionID, message, response, source)
	return response, source
}

func (r *Responder) respond(ctx context.Context, sessionID, message string) (string, string) {
	tokens := r.normalizer.Normalize(message)

	if entry, ok := matcher.FindBestMatch(tokens, r.base.Entries()); ok {
		// Only knowledge base hits feed future inference context.
		r.sessions.Update(sessionID, entry.Question, entry.Answer)
		return entry.Answer, models.SourceKB
	}

	// Read the context before the call so no session lock is held while
	// the inference request is in flight.
	passage := r.sessions.Read(sessionID)
	if answer, ok := r.inference.Ask(ctx, message, passage); ok {
		return answer, models.SourceInference
	}

	return DefaultReply, models.SourceDefault
}

// record hands the completed exchange to the interaction log. Failures are
// logged for operators and swallowed: persistence never blocks or changes
// the user-visible response.
func (r *Responder) record(ctx context.Context, sessionID, input, response, source string) {
	interaction := models.Interaction{
		ID:          uuid.New(),
		SessionID:   sessionID,
		UserInput:   input,
		BotResponse: response,
		Source:      source,
		CreatedAt:   r.now(),
	}
	if err := r.log.AppendInteraction(ctx, interaction); err != nil {
		slog.Error("failed to append interaction", "session_id", sessionID, "error", err)
	}
}
