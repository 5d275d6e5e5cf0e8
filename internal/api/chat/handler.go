package chat

import (
	"net/http"

	"invoice-app/internal/infra/genai"

	"github.com/gin-gonic/gin"
)

const maxMessages = 50

// Handler is a thin passthrough to the generative-model API.
type Handler struct {
	client *genai.Client
}

func NewHandler(client *genai.Client) *Handler {
	return &Handler{client: client}
}

type chatRequest struct {
	Messages []genai.Message `json:"messages"`
}

// POST /chat
func (h *Handler) Chat(c *gin.Context) {
	var body chatRequest
	if err := c.ShouldBindJSON(&body); err != nil || len(body.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid messages"})
		return
	}
	if len(body.Messages) > maxMessages {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Conversation too long"})
		return
	}
	for _, m := range body.Messages {
		if m.Content == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Empty message content"})
			return
		}
	}

	reply, err := h.client.Generate(c.Request.Context(), body.Messages)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Model request failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
