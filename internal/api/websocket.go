// internal/api/websocket.go
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/shortreel/promptforge/internal/services"
)

// WebSocket 升级器配置
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// 向导是本地单用户工具，来源检查放宽
		return true
	},
}

const (
	wsWriteTimeout = 10 * time.Second
	wsPongTimeout  = 60 * time.Second
)

// 当前活跃的生成连接数（状态端点用）
var activeGenerateConns int64

// generateRequest 客户端通过 /ws/generate 发来的生成指令
type generateRequest struct {
	Action  string          `json:"action"` // story / characters / completion
	Request json.RawMessage `json:"request"`
}

// completionPayload action == completion 时的载荷
type completionPayload struct {
	Prompt       string  `json:"prompt"`
	SystemPrompt string  `json:"systemPrompt"`
	Model        string  `json:"model"`
	Temperature  float64 `json:"temperature"`
	MaxTokens    int     `json:"maxTokens"`
}

// wsConn 包装连接并保证并发写安全（写全部经过 send 通道）
type wsConn struct {
	conn   *websocket.Conn
	send   chan []byte
	closed int32
}

func newWSConn(conn *websocket.Conn) *wsConn {
	return &wsConn{
		conn: conn,
		send: make(chan []byte, 64),
	}
}

// Close 安全关闭连接
func (w *wsConn) Close() {
	if atomic.CompareAndSwapInt32(&w.closed, 0, 1) {
		w.conn.Close()
	}
}

func (w *wsConn) IsClosed() bool {
	return atomic.LoadInt32(&w.closed) == 1
}

// SendJSON 序列化并排队发送，队列满时丢弃而不是阻塞生成流程
func (w *wsConn) SendJSON(message map[string]interface{}) {
	if w.IsClosed() {
		return
	}

	msgBytes, err := json.Marshal(message)
	if err != nil {
		return
	}

	select {
	case w.send <- msgBytes:
	default:
		log.Printf("⚠️ WebSocket 消息队列已满，消息被丢弃")
	}
}

// SendError 发送错误消息到客户端
func (w *wsConn) SendError(code, errorMsg string) {
	w.SendJSON(map[string]interface{}{
		"type":      "error",
		"code":      code,
		"error":     errorMsg,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// writePump 把 send 通道中的消息写入连接
func (w *wsConn) writePump() {
	ticker := time.NewTicker(wsPongTimeout * 9 / 10)
	defer func() {
		ticker.Stop()
		w.Close()
	}()

	for {
		select {
		case msg, ok := <-w.send:
			w.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if !ok {
				w.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := w.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			w.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := w.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// GenerateWebSocket 处理 /ws/generate 连接：
// 每条连接接收一个生成指令，流式推送进度与结果后关闭。
func (h *Handler) GenerateWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ WebSocket 升级失败: %v", err)
		return
	}

	client := newWSConn(conn)
	atomic.AddInt64(&activeGenerateConns, 1)
	defer func() {
		atomic.AddInt64(&activeGenerateConns, -1)
		close(client.send)
	}()

	go client.writePump()

	conn.SetReadDeadline(time.Now().Add(wsPongTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(wsPongTimeout))
		return nil
	})

	var req generateRequest
	if err := conn.ReadJSON(&req); err != nil {
		client.SendError(ErrorBadRequest, "无法解析生成指令")
		client.Close()
		return
	}

	ctx := c.Request.Context()

	switch req.Action {
	case "characters":
		var genReq services.CharacterGenerationRequest
		if err := json.Unmarshal(req.Request, &genReq); err != nil {
			client.SendError(ErrorBadRequest, "角色生成参数无效")
			break
		}
		client.SendJSON(map[string]interface{}{"type": "status", "message": "generating characters"})
		characters, err := h.CharacterService.GenerateCharacters(ctx, genReq)
		if err != nil {
			client.SendError(ErrorCharacterGenerationFailed, err.Error())
			break
		}
		client.SendJSON(map[string]interface{}{"type": "result", "data": characters})

	case "story":
		var genReq services.StoryGenerationRequest
		if err := json.Unmarshal(req.Request, &genReq); err != nil {
			client.SendError(ErrorBadRequest, "故事生成参数无效")
			break
		}
		client.SendJSON(map[string]interface{}{"type": "status", "message": "generating story"})
		result, err := h.StoryService.GenerateStory(ctx, genReq)
		if err != nil {
			client.SendError(ErrorStoryGenerationFailed, err.Error())
			break
		}
		client.SendJSON(map[string]interface{}{"type": "result", "data": result})

	case "completion":
		var payload completionPayload
		if err := json.Unmarshal(req.Request, &payload); err != nil || payload.Prompt == "" {
			client.SendError(ErrorBadRequest, "补全参数无效")
			break
		}
		h.streamCompletion(c, client, payload)

	default:
		client.SendError(ErrorBadRequest, "未知的生成指令: "+req.Action)
	}

	// 等待发送队列排空后关闭
	time.Sleep(100 * time.Millisecond)
	client.Close()
}

// streamCompletion 把提供者的流式分片逐条推给客户端
func (h *Handler) streamCompletion(c *gin.Context, client *wsConn, payload completionPayload) {
	request := services.ChatCompletionRequest{
		Model:       payload.Model,
		Temperature: payload.Temperature,
		MaxTokens:   payload.MaxTokens,
		Messages: []services.ChatCompletionMessage{
			{Role: "system", Content: payload.SystemPrompt},
			{Role: "user", Content: payload.Prompt},
		},
	}

	stream, err := h.LLMService.CreateStreamingChatCompletion(c.Request.Context(), request)
	if err != nil {
		client.SendError(ErrorLLMServiceUnavailable, err.Error())
		return
	}

	for chunk := range stream {
		if chunk.Done {
			client.SendJSON(map[string]interface{}{
				"type":         "done",
				"finishReason": chunk.FinishReason,
				"model":        chunk.ModelName,
			})
			return
		}
		if chunk.Text != "" {
			client.SendJSON(map[string]interface{}{
				"type": "chunk",
				"text": chunk.Text,
			})
		}
	}
}

// GenerateSocketStatus 返回当前活跃的生成连接数
func GenerateSocketStatus() map[string]interface{} {
	return map[string]interface{}{
		"active_connections": atomic.LoadInt64(&activeGenerateConns),
	}
}
