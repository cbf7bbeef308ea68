package host

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"partysheet/internal/travel"
)

// MemoryChat is a chat log kept in memory.
type MemoryChat struct {
	mu       sync.RWMutex
	messages []travel.ChatMessage
}

func NewMemoryChat() *MemoryChat {
	return &MemoryChat{}
}

func (c *MemoryChat) Post(_ context.Context, msg travel.ChatMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
	return nil
}

// List returns the messages in the order they were posted.
func (c *MemoryChat) List(_ context.Context) ([]travel.ChatMessage, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]travel.ChatMessage(nil), c.messages...), nil
}
