package ws

import (
	"encoding/json"
	"log"
	"time"

	"github.com/ajmallk/HR-Nexus-AI-Marketplace/models"

	"github.com/gofiber/contrib/websocket"
	"gorm.io/gorm"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 4096 // 4KB
)

// Client is a middleman between the websocket connection and the hub.
type Client struct {
	Hub *Hub

	// The websocket connection.
	Conn *websocket.Conn

	// Buffered channel of outbound messages.
	Send chan []byte

	// Database connection for message persistence
	DB *gorm.DB

	// Room this connection is subscribed to, guarded by Hub.mutex.
	// Empty until the first join event.
	room string
}

// WSMessage defines the structure of messages sent over WebSocket
type WSMessage struct {
	Type       string `json:"type"` // 'join', 'send_message'
	UserID     string `json:"user_id,omitempty"`
	SenderID   string `json:"sender_id,omitempty"`
	ReceiverID string `json:"receiver_id,omitempty"`
	Content    string `json:"content,omitempty"`
}

// ReadPump pumps messages from the websocket connection to the hub.
func (c *Client) ReadPump() {
	defer func() {
		c.Hub.Unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error { c.Conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error: %v", err)
			}
			break
		}

		// Process the message
		c.HandleMessage(message)
	}
}

// WritePump pumps messages from the hub to the websocket connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued chat messages to the current websocket message.
			n := len(c.Send)
			for i := 0; i < n; i++ {
				w.Write(<-c.Send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// HandleMessage dispatches one decoded frame. Malformed frames and unknown
// event types are logged and dropped; the peer gets no error channel.
func (c *Client) HandleMessage(message []byte) {
	var wsMsg WSMessage
	if err := json.Unmarshal(message, &wsMsg); err != nil {
		log.Printf("Error unmarshalling message: %v", err)
		return
	}

	switch wsMsg.Type {
	case "join":
		// No identity check here: any connection may join any user's
		// room, matching the trust-the-client login model.
		c.Hub.Join(c, wsMsg.UserID)
	case "send_message":
		c.processSendMessage(&wsMsg)
	default:
		log.Printf("Unknown message type: %q", wsMsg.Type)
	}
}

func (c *Client) processSendMessage(wsMsg *WSMessage) {
	// 1. Persist the message before any delivery
	newMsg := models.Message{
		SenderID:   wsMsg.SenderID,
		ReceiverID: wsMsg.ReceiverID,
		Content:    wsMsg.Content,
	}

	if err := c.DB.Create(&newMsg).Error; err != nil {
		log.Printf("Error saving message: %v", err)
		return
	}

	responseJSON, _ := json.Marshal(map[string]interface{}{
		"type":        "receive_message",
		"id":          newMsg.ID,
		"sender_id":   newMsg.SenderID,
		"receiver_id": newMsg.ReceiverID,
		"content":     newMsg.Content,
		"timestamp":   newMsg.Timestamp,
	})

	// 2. Deliver to every connection in the receiver's room
	c.Hub.SendToRoom(wsMsg.ReceiverID, responseJSON)

	// 3. Echo back to the sending connection so its UI updates without a
	// refetch. A sender that has also joined its own room receives the
	// message twice (room fanout plus this echo).
	c.Send <- responseJSON
}
