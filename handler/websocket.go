package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"ticket_hub/config"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient = redis.NewClient(&redis.Options{Addr: redisAddr()})

	clients = make(map[string]map[*websocket.Conn]bool)
	mu      sync.Mutex
)

func redisAddr() string {
	if addr := config.Config("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

// EventInventorySocket stream inventory snapshot của một event qua websocket.
// Mỗi booking thành công publish snapshot mới lên Redis, client nhận realtime.
func EventInventorySocket(c *websocket.Conn) {
	eventCode := c.Params("code")

	// Khi WS disconnect → xoá client
	defer func() {
		mu.Lock()
		if clients[eventCode] != nil {
			delete(clients[eventCode], c)
		}
		mu.Unlock()
		c.Close()
	}()

	mu.Lock()
	if clients[eventCode] == nil {
		clients[eventCode] = make(map[*websocket.Conn]bool)
	}
	clients[eventCode][c] = true
	mu.Unlock()

	// Gửi snapshot lần đầu
	if snapshot, err := FetchEventInventory(eventCode); err == nil {
		c.WriteJSON(snapshot)
	}

	// Sub kênh Redis của event
	pubsub := redisClient.Subscribe(
		context.Background(),
		fmt.Sprintf("event:%s", eventCode),
	)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		mu.Lock()
		for conn := range clients[eventCode] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(clients[eventCode], conn)
			}
		}
		mu.Unlock()
	}
}

// BroadcastEventInventory publish snapshot mới nhất lên Redis sau khi booking commit
func BroadcastEventInventory(eventCode string) {
	snapshot, err := FetchEventInventory(eventCode)
	if err != nil {
		log.Printf("Error loading inventory for broadcast: %v", err)
		return
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		log.Printf("Error marshaling inventory snapshot: %v", err)
		return
	}

	if err := redisClient.Publish(
		context.Background(),
		fmt.Sprintf("event:%s", eventCode),
		payload,
	).Err(); err != nil {
		log.Printf("Error publishing inventory snapshot: %v", err)
	}
}
