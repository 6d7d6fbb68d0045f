package client

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ChatMessage is one relay event as delivered to a connection.
type ChatMessage struct {
	Type       string    `json:"type"`
	ID         uint      `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}

// ChatSession is one websocket connection to the relay, joined to the
// session owner's room. Incoming carries every receive_message event;
// there is no reconnect and no buffering beyond the channel.
type ChatSession struct {
	conn *websocket.Conn

	closeOnce sync.Once
	done      chan struct{}

	Incoming chan ChatMessage
}

// OpenChatSession dials the relay and joins the user's own room so that
// messages addressed to the user, and echoes of their own sends, arrive
// on Incoming.
func OpenChatSession(wsURL, userID string) (*ChatSession, error) {
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return nil, err
	}

	if err := conn.WriteJSON(map[string]string{
		"type":    "join",
		"user_id": userID,
	}); err != nil {
		conn.Close()
		return nil, err
	}

	s := &ChatSession{
		conn:     conn,
		done:     make(chan struct{}),
		Incoming: make(chan ChatMessage, 32),
	}
	go s.readLoop()
	return s, nil
}

// Send submits one message to the relay. Delivery back to this session
// happens through the relay's echo, not locally.
func (s *ChatSession) Send(senderID, receiverID, content string) error {
	return s.conn.WriteJSON(map[string]string{
		"type":        "send_message",
		"sender_id":   senderID,
		"receiver_id": receiverID,
		"content":     content,
	})
}

// Close tears down the connection and releases the read loop even when
// nobody is draining Incoming; Incoming is closed once the loop returns.
func (s *ChatSession) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	return s.conn.Close()
}

// readLoop decodes every JSON object in every frame. The relay batches
// queued messages into a single frame, so one frame can carry several
// events back to back.
func (s *ChatSession) readLoop() {
	defer close(s.Incoming)
	for {
		_, r, err := s.conn.NextReader()
		if err != nil {
			return
		}

		dec := json.NewDecoder(r)
		for {
			var msg ChatMessage
			if err := dec.Decode(&msg); err != nil {
				break
			}
			if msg.Type != "receive_message" {
				continue
			}
			// A closed session must not leave this goroutine parked on a
			// full Incoming forever.
			select {
			case s.Incoming <- msg:
			case <-s.done:
				return
			}
		}
	}
}
