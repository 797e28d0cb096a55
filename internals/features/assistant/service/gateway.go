package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hargaku_backend/internals/configs"
	customerModel "hargaku_backend/internals/features/customers/model"
	productModel "hargaku_backend/internals/features/pricing/products/model"
	helper "hargaku_backend/internals/helpers"
)

var ErrGatewayDisabled = errors.New("fitur AI Assistant nonaktif, AI_GATEWAY_URL belum diset")

type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant"`
	Content string `json:"content" validate:"required,max=4000"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

var gatewayClient = &http.Client{Timeout: 120 * time.Second}

// BuildSystemPrompt memuat ringkasan katalog (maksimal 20 produk dan 10
// pelanggan) sebagai konteks asisten.
func BuildSystemPrompt(db *gorm.DB) (string, error) {
	var products []productModel.ProductModel
	if err := db.Order("name ASC").Limit(20).Find(&products).Error; err != nil {
		return "", err
	}
	var customers []customerModel.CustomerModel
	if err := db.Order("name ASC").Limit(10).Find(&customers).Error; err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Kamu adalah asisten toko bangunan yang membantu menghitung harga jual. ")
	b.WriteString("Jawab singkat dalam bahasa Indonesia.\n\nDaftar produk:\n")
	for _, p := range products {
		fmt.Fprintf(&b, "- %s (%s): %s per %s\n", p.Name, p.Category, helper.FormatRupiah(p.BasePrice), p.Unit)
	}
	b.WriteString("\nPelanggan terdaftar:\n")
	for _, c := range customers {
		fmt.Fprintf(&b, "- %s\n", c.Name)
	}
	return b.String(), nil
}

// OpenStream membuka request streaming ke gateway. Pembatalan ctx
// (klien menutup koneksi) ikut membatalkan request upstream.
func OpenStream(ctx context.Context, messages []ChatMessage) (*http.Response, error) {
	if configs.AIGatewayURL == "" {
		return nil, ErrGatewayDisabled
	}

	body, err := sonic.Marshal(chatRequest{
		Model:    configs.GetEnv("AI_MODEL", "openai/gpt-4o-mini"),
		Messages: messages,
		Stream:   true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, configs.AIGatewayURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	if configs.AIGatewayKey != "" {
		req.Header.Set("Authorization", "Bearer "+configs.AIGatewayKey)
	}
	return gatewayClient.Do(req)
}

// GatewayErrorMessage memetakan status upstream ke pesan per kondisi.
func GatewayErrorMessage(status int) (int, string) {
	switch status {
	case fiber.StatusTooManyRequests:
		return fiber.StatusTooManyRequests, "Rate limit AI terlampaui, coba lagi sebentar lagi"
	case fiber.StatusPaymentRequired:
		return fiber.StatusPaymentRequired, "Kredit AI habis, hubungi administrator"
	default:
		return fiber.StatusBadGateway, "Gagal terhubung ke layanan AI"
	}
}
