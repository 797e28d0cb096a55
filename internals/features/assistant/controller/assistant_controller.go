package controller

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hargaku_backend/internals/features/assistant/service"
	helper "hargaku_backend/internals/helpers"
)

type AssistantController struct {
	DB *gorm.DB
}

func NewAssistantController(db *gorm.DB) *AssistantController {
	return &AssistantController{DB: db}
}

type chatPayload struct {
	Messages []service.ChatMessage `json:"messages" validate:"required,min=1,max=40,dive"`
}

// 🟢 POST /api/assistant/chat (relay SSE dari gateway AI)
//
// Satu stream per request, tanpa retry. Output parsial yang sudah
// terkirim dibiarkan saat stream gagal di tengah.
func (ctrl *AssistantController) Chat(c *fiber.Ctx) error {
	var req chatPayload
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	systemPrompt, err := service.BuildSystemPrompt(ctrl.DB)
	if err != nil {
		return helper.JsonDBError(c, err, "Gagal memuat konteks asisten")
	}
	messages := append([]service.ChatMessage{
		{Role: "system", Content: systemPrompt},
	}, req.Messages...)

	ctx, cancel := context.WithCancel(context.Background())
	resp, err := service.OpenStream(ctx, messages)
	if err != nil {
		cancel()
		if errors.Is(err, service.ErrGatewayDisabled) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, err.Error())
		}
		log.Printf("[ERROR] Gateway AI tidak terjangkau: %v", err)
		status, msg := service.GatewayErrorMessage(0)
		return helper.JsonError(c, status, msg)
	}
	if resp.StatusCode != fiber.StatusOK {
		resp.Body.Close()
		cancel()
		status, msg := service.GatewayErrorMessage(resp.StatusCode)
		return helper.JsonError(c, status, msg)
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set("X-Accel-Buffering", "no")

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer cancel()
		defer resp.Body.Close()

		parser := service.StreamParser{}
		buf := make([]byte, 4096)
		for {
			n, readErr := resp.Body.Read(buf)
			if n > 0 {
				deltas, done := parser.Ingest(buf[:n])
				for _, delta := range deltas {
					payload, marshalErr := sonic.MarshalString(fiber.Map{"content": delta})
					if marshalErr != nil {
						continue
					}
					if _, writeErr := w.WriteString("data: " + payload + "\n\n"); writeErr != nil {
						return
					}
					// Flush gagal berarti klien menutup koneksi;
					// cancel() ikut menghentikan request upstream
					if flushErr := w.Flush(); flushErr != nil {
						return
					}
				}
				if done {
					_, _ = w.WriteString("data: [DONE]\n\n")
					_ = w.Flush()
					return
				}
			}
			if readErr != nil {
				if readErr != io.EOF {
					log.Printf("[ERROR] Stream AI terputus: %v", readErr)
				}
				_, _ = w.WriteString("data: [DONE]\n\n")
				_ = w.Flush()
				return
			}
		}
	})
	return nil
}
