package service

import (
	"strings"

	"github.com/bytedance/sonic"
)

// chatChunk adalah payload satu event SSE dari gateway (format
// chat-completion dengan stream aktif).
type chatChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// StreamParser menyusun ulang event SSE dari chunk transport yang bisa
// terpotong di mana saja. Baris yang belum lengkap disimpan dan
// dilanjutkan di chunk berikutnya, tidak pernah dibuang.
type StreamParser struct {
	pending string
}

// Ingest memproses satu chunk dan mengembalikan potongan teks jawaban
// yang sudah utuh. done = true saat sentinel [DONE] diterima.
func (p *StreamParser) Ingest(chunk []byte) (deltas []string, done bool) {
	data := p.pending + string(chunk)
	lines := strings.Split(data, "\n")
	// Elemen terakhir belum diakhiri newline, simpan untuk chunk berikut
	p.pending = lines[len(lines)-1]
	lines = lines[:len(lines)-1]

	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if line == "" || strings.HasPrefix(line, ":") {
			continue
		}
		payload, ok := strings.CutPrefix(line, "data: ")
		if !ok {
			continue
		}
		if payload == "[DONE]" {
			return deltas, true
		}

		var ev chatChunk
		if err := sonic.UnmarshalString(payload, &ev); err != nil {
			// Event terpotong: kembalikan ke buffer dan tunggu
			// kelanjutannya di chunk berikutnya
			tail := strings.Join(lines[i:], "\n") + "\n"
			p.pending = tail + p.pending
			return deltas, false
		}
		for _, choice := range ev.Choices {
			if choice.Delta.Content != "" {
				deltas = append(deltas, choice.Delta.Content)
			}
		}
	}
	return deltas, false
}
