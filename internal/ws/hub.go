package ws

import (
	"log"
	"sync"
)

// Hub maintains the set of active clients and the room each client is
// subscribed to. Rooms are keyed by user id: joining "buyer_1" means this
// connection wants every message addressed to buyer_1.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Register requests from the clients.
	Register chan *Client

	// Unregister requests from clients.
	Unregister chan *Client

	// Map to quickly find the connections in a room (critical for private messaging)
	rooms map[string][]*Client

	// Mutex to protect the clients and rooms maps
	mutex sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		rooms:      make(map[string][]*Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			log.Printf("Client connected. Total connections: %d", total)
		case client := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				h.removeFromRoom(client)
				close(client.Send)
			}
			h.mutex.Unlock()
		}
	}
}

// Join subscribes a client to the room named by a user id. A connection
// occupies one room at a time, so a second join moves it. The empty name
// marks "not in any room" and is never joinable; such joins are dropped.
func (h *Hub) Join(client *Client, room string) {
	if room == "" {
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	if client.room == room {
		return
	}
	h.removeFromRoom(client)

	client.room = room
	h.rooms[room] = append(h.rooms[room], client)

	log.Printf("Connection joined room %s. Connections in room: %d", room, len(h.rooms[room]))
}

// SendToRoom sends a message to every connection currently in the room.
// Unknown rooms are a no-op; there is no delivery acknowledgment. A
// connection whose buffer is full is dropped and unsubscribed, so its
// closed channel is never sent to again.
func (h *Hub) SendToRoom(room string, message []byte) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	// Dropping a client edits the room slice in place, so iterate a copy.
	clients := append([]*Client(nil), h.rooms[room]...)
	for _, client := range clients {
		select {
		case client.Send <- message:
		default:
			close(client.Send)
			delete(h.clients, client)
			h.removeFromRoom(client)
		}
	}
}

// RoomSize reports how many connections are currently in a room
// (in-memory check, nothing is persisted about presence).
func (h *Hub) RoomSize(room string) int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.rooms[room])
}

// removeFromRoom must be called with the mutex held.
func (h *Hub) removeFromRoom(client *Client) {
	if client.room == "" {
		return
	}

	conns := h.rooms[client.room]
	for i, conn := range conns {
		if conn == client {
			h.rooms[client.room] = append(conns[:i], conns[i+1:]...)
			break
		}
	}

	if len(h.rooms[client.room]) == 0 {
		delete(h.rooms, client.room)
	}
	client.room = ""
}
