package feed

import (
	"encoding/json"
	"time"

	"github.com/lox/wordle/internal/board"
)

// MessageType identifies a feed message
type MessageType string

const (
	// MessageTypeBoard carries a full board snapshot
	MessageTypeBoard MessageType = "board"
)

// Message is the envelope sent to viewers
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	Sequence  uint64          `json:"sequence"`
}

// NewBoardMessage wraps a board snapshot
func NewBoardMessage(b board.Board, seq uint64) (*Message, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      MessageTypeBoard,
		Data:      data,
		Timestamp: time.Now(),
		Sequence:  seq,
	}, nil
}
