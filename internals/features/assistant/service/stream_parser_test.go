package service

import (
	"strings"
	"testing"
)

func TestStreamParserCompleteEvents(t *testing.T) {
	p := StreamParser{}
	chunk := "data: {\"choices\":[{\"delta\":{\"content\":\"Harga \"}}]}\n" +
		"data: {\"choices\":[{\"delta\":{\"content\":\"semen\"}}]}\n"

	deltas, done := p.Ingest([]byte(chunk))
	if done {
		t.Fatalf("belum boleh done")
	}
	if strings.Join(deltas, "") != "Harga semen" {
		t.Fatalf("deltas: %v", deltas)
	}
}

func TestStreamParserSplitAcrossChunks(t *testing.T) {
	p := StreamParser{}
	full := "data: {\"choices\":[{\"delta\":{\"content\":\"terpotong\"}}]}\n"

	deltas, done := p.Ingest([]byte(full[:20]))
	if len(deltas) != 0 || done {
		t.Fatalf("potongan pertama belum menghasilkan apa-apa: %v %v", deltas, done)
	}
	deltas, done = p.Ingest([]byte(full[20:]))
	if done {
		t.Fatalf("belum boleh done")
	}
	if len(deltas) != 1 || deltas[0] != "terpotong" {
		t.Fatalf("deltas: %v", deltas)
	}
}

func TestStreamParserSkipsCommentsAndBlankLines(t *testing.T) {
	p := StreamParser{}
	chunk := ": keep-alive\r\n\r\ndata: {\"choices\":[{\"delta\":{\"content\":\"ok\"}}]}\r\n"

	deltas, done := p.Ingest([]byte(chunk))
	if done {
		t.Fatalf("belum boleh done")
	}
	if len(deltas) != 1 || deltas[0] != "ok" {
		t.Fatalf("deltas: %v", deltas)
	}
}

func TestStreamParserDoneSentinel(t *testing.T) {
	p := StreamParser{}
	chunk := "data: {\"choices\":[{\"delta\":{\"content\":\"akhir\"}}]}\n" +
		"data: [DONE]\n"

	deltas, done := p.Ingest([]byte(chunk))
	if !done {
		t.Fatalf("harus done setelah sentinel")
	}
	if len(deltas) != 1 || deltas[0] != "akhir" {
		t.Fatalf("deltas: %v", deltas)
	}
}

func TestStreamParserEmptyDeltaSkipped(t *testing.T) {
	p := StreamParser{}
	chunk := "data: {\"choices\":[{\"delta\":{}}]}\n"

	deltas, done := p.Ingest([]byte(chunk))
	if len(deltas) != 0 || done {
		t.Fatalf("delta kosong tidak boleh menghasilkan teks: %v", deltas)
	}
}
