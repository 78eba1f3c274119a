package session

import (
	"errors"
	"time"

	"StylistAI/app/dal/product"
)

var ErrNotFound = errors.New("session not found")

const (
	AuthorUser   = "user"
	AuthorSystem = "system"
)

// Preferences accumulate over one conversation.
type Preferences struct {
	Size       string   `json:"size,omitempty"`
	Style      string   `json:"style,omitempty"`
	Budget     *float64 `json:"budget,omitempty"`
	Colors     []string `json:"colors,omitempty"`
	Occasions  []string `json:"occasions,omitempty"`
	LastSearch string   `json:"lastSearch,omitempty"`
}

// Merge returns p with every non-empty field of update laid over it.
func (p Preferences) Merge(update Preferences) Preferences {
	out := p
	if update.Size != "" {
		out.Size = update.Size
	}
	if update.Style != "" {
		out.Style = update.Style
	}
	if update.Budget != nil {
		b := *update.Budget
		out.Budget = &b
	}
	if len(update.Colors) > 0 {
		out.Colors = append([]string(nil), update.Colors...)
	}
	if len(update.Occasions) > 0 {
		out.Occasions = append([]string(nil), update.Occasions...)
	}
	if update.LastSearch != "" {
		out.LastSearch = update.LastSearch
	}
	return out
}

type Message struct {
	Id          string              `json:"id"`
	Text        string              `json:"text"`
	Author      string              `json:"author"`
	Timestamp   time.Time           `json:"timestamp"`
	Products    []*product.Products `json:"products,omitempty"`
	Suggestions []string            `json:"suggestions,omitempty"`
	FollowUps   []string            `json:"followUps,omitempty"`
}

func (m *Message) IsUser() bool {
	return m != nil && m.Author == AuthorUser
}

// Session is owned by exactly one conversation.
type Session struct {
	Id          string      `json:"id"`
	Preferences Preferences `json:"preferences"`
	Messages    []*Message  `json:"messages"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func New(id string, now time.Time) *Session {
	return &Session{
		Id:        id,
		Messages:  make([]*Message, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Append adds messages to the log and bumps UpdatedAt.
func (s *Session) Append(msgs ...*Message) {
	for _, m := range msgs {
		if m == nil {
			continue
		}
		s.Messages = append(s.Messages, m)
		if m.Timestamp.After(s.UpdatedAt) {
			s.UpdatedAt = m.Timestamp
		}
	}
}
