package ai

import (
	"math/rand"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/frostworks/snowbot/src/types"
)

var personaLines = []string{
	"Hiya! ❄️ I'm Snow, your kawaii winter companion! What can I help you with today? ✨",
	"Ooh, you mentioned me! 👀 I was just here watching everything... how can I assist? 💙",
	"Kyaa~ Someone called for me! ❄️ I'm always here and ready to help my friends! 🌨️",
	"Hewo! Snow here! ✨ Always watching and ready to make your day more magical! ❄️",
	"Uwu~ You got my attention! I love chatting with everyone~ How are you doing? 💙",
}

// Sender is the slice of the Discord session the responder needs.
type Sender interface {
	ChannelTyping(channelID string, options ...discordgo.RequestOption) error
	ChannelMessageSendReply(channelID string, content string, reference *discordgo.MessageReference, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Responder schedules deferred persona replies to bot mentions. Each pending
// reply is a tracked timer so shutdown can drop them instead of leaving
// goroutines dangling. Ordering against later messages is not guaranteed.
type Responder struct {
	mu      sync.Mutex
	pending map[*time.Timer]struct{}
	stopped bool
}

func NewResponder() *Responder {
	return &Responder{pending: make(map[*time.Timer]struct{})}
}

// DelayFor maps a persona response speed onto a reply delay. Unknown speeds
// get the human-like default.
func DelayFor(speed string) time.Duration {
	switch speed {
	case types.SpeedFast:
		return 1 * time.Second
	case types.SpeedSlow:
		return 3 * time.Second
	default:
		return 2 * time.Second
	}
}

// Line picks one canned persona reply.
func Line() string {
	return personaLines[rand.Intn(len(personaLines))]
}

// Schedule queues a persona reply to m after the configured delay and returns
// immediately. A stopped responder drops the request.
func (r *Responder) Schedule(s Sender, m *discordgo.MessageCreate, settings *types.AISettings) {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()

	_ = s.ChannelTyping(m.ChannelID)

	line := Line()
	var timer *time.Timer
	timer = time.AfterFunc(DelayFor(settings.ResponseSpeed), func() {
		_, _ = s.ChannelMessageSendReply(m.ChannelID, line, m.Reference())
		r.mu.Lock()
		delete(r.pending, timer)
		r.mu.Unlock()
	})

	r.mu.Lock()
	if r.stopped {
		timer.Stop()
	} else {
		r.pending[timer] = struct{}{}
	}
	r.mu.Unlock()
}

// Stop cancels every pending reply and refuses new ones.
func (r *Responder) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopped = true
	for timer := range r.pending {
		timer.Stop()
		delete(r.pending, timer)
	}
}

// PendingCount reports the number of replies still waiting to fire.
func (r *Responder) PendingCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}
