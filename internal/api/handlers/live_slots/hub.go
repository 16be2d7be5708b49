package live_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 16

	msgInvalidDate = "Select a valid date (YYYY-MM-DD)."
)

type client struct {
	conn      *websocket.Conn
	date      string
	send      chan []byte
	closeOnce sync.Once
}

func (c *client) close() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}

// Hub рассылает занятость слотов подписчикам по WebSocket
// Клиент подписывается на одну дату и получает снимок сразу после подключения,
// затем новый снимок после каждого изменения расписания на эту дату
type Hub struct {
	schedule AvailabilityReader
	logger   Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[string]map[*client]struct{}
	closed  bool
}

// NewHub создает хаб. Пустой allowedOrigins или "*" - принимаются любые источники
func NewHub(schedule AvailabilityReader, allowedOrigins []string, logger Logger) *Hub {
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o == "*" {
			origins = nil
			break
		}
		origins[o] = struct{}{}
	}

	return &Hub{
		schedule: schedule,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if len(origins) == 0 {
					return true
				}
				_, ok := origins[r.Header.Get("Origin")]
				return ok
			},
		},
		clients: make(map[string]map[*client]struct{}),
	}
}

// Name имя подписчика шины событий
func (h *Hub) Name() string {
	return "live_slots"
}

// Handle рассылает новую занятость подписчикам даты события
func (h *Hub) Handle(_ context.Context, event domain.BookingEvent) {
	h.broadcast(event.Date)
}

// ServeHTTP GET /api/v1/live?date=YYYY-MM-DD
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		h.logger.Warn("GET /live - Invalid date: %q", date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade сам отвечает клиенту ошибкой
		h.logger.Warn("GET /live - WebSocket upgrade failed: %v", err)
		return
	}

	c := &client{
		conn: conn,
		date: date,
		send: make(chan []byte, sendBufferSize),
	}
	if !h.register(c) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}
	h.logger.Debug("GET /live - Client subscribed to %s", date)

	go h.writePump(c)
	h.readPump(c)
}

// Close отключает всех клиентов. Новые подключения отклоняются
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for date, set := range h.clients {
		for c := range set {
			c.close()
		}
		delete(h.clients, date)
	}
}

// Subscribers возвращает количество подписчиков даты
func (h *Hub) Subscribers(date string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[date])
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}

	// Первый снимок попадает в очередь клиента до любой рассылки
	if payload, err := h.payload(c.date); err == nil {
		c.send <- payload
	}

	set, ok := h.clients[c.date]
	if !ok {
		set = make(map[*client]struct{})
		h.clients[c.date] = set
	}
	set[c] = struct{}{}
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if set, ok := h.clients[c.date]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.date)
		}
	}
	c.close()
}

func (h *Hub) broadcast(date string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.clients[date]
	if len(set) == 0 {
		return
	}

	payload, err := h.payload(date)
	if err != nil {
		h.logger.Warn("LiveSlots: failed to encode availability for %s: %v", date, err)
		return
	}

	for c := range set {
		select {
		case c.send <- payload:
		default:
			// Медленный клиент отключается, чтобы не задерживать остальных
			h.logger.Warn("LiveSlots: client of %s is too slow, disconnecting", date)
			delete(set, c)
			c.close()
		}
	}
	if len(set) == 0 {
		delete(h.clients, date)
	}
}

func (h *Hub) payload(date string) ([]byte, error) {
	return json.Marshal(newAvailabilityMessage(date, h.schedule.Availability(date)))
}

// readPump держит соединение до отключения клиента. Входящие сообщения игнорируются
func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		h.logger.Debug("GET /live - Client unsubscribed from %s", c.date)
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
