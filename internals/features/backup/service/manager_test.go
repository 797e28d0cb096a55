package service

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	productModel "hargaku_backend/internals/features/pricing/products/model"
)

func newTestManager(t *testing.T, dbName string) *Manager {
	t.Helper()
	m := &Manager{
		db:             openTestDB(t, dbName),
		file:           filepath.Join(t.TempDir(), "auto-backup.json"),
		debounce:       50 * time.Millisecond,
		statusInterval: time.Hour,
		notify:         make(chan struct{}, 1),
		stop:           make(chan struct{}),
		done:           make(chan struct{}),
		state:          StatusUnknown,
	}
	go m.run()
	t.Cleanup(m.Stop)
	return m
}

func snapshotMTime(t *testing.T, m *Manager) time.Time {
	t.Helper()
	info, err := os.Stat(m.file)
	if err != nil {
		t.Fatalf("stat snapshot: %v", err)
	}
	return info.ModTime()
}

func TestManagerDebounceCoalesces(t *testing.T) {
	m := newTestManager(t, "mgr_debounce")

	if err := m.db.Create(&productModel.ProductModel{ProductID: uuid.New(), Name: "Paku 5cm", BasePrice: 18000, Unit: "kg"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Rentetan notifikasi dalam periode tenang melebur jadi satu snapshot
	for i := 0; i < 5; i++ {
		m.Notify()
		time.Sleep(10 * time.Millisecond)
	}

	if _, err := os.Stat(m.file); !os.IsNotExist(err) {
		t.Fatalf("snapshot tidak boleh ditulis sebelum periode tenang lewat")
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, err := os.Stat(m.file); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("snapshot tidak pernah ditulis")
		}
		time.Sleep(10 * time.Millisecond)
	}

	first := snapshotMTime(t, m)
	time.Sleep(120 * time.Millisecond)
	// Tanpa notifikasi baru tidak ada snapshot susulan
	if got := snapshotMTime(t, m); !got.Equal(first) {
		t.Fatalf("snapshot ditulis ulang tanpa notifikasi")
	}
}

func TestManagerStopCancelsPendingTimer(t *testing.T) {
	m := newTestManager(t, "mgr_stop")

	m.Notify()
	m.Stop()

	time.Sleep(100 * time.Millisecond)
	if _, err := os.Stat(m.file); !os.IsNotExist(err) {
		t.Fatalf("snapshot tidak boleh jalan setelah Stop")
	}
}

func TestManagerWriteAndReadSnapshot(t *testing.T) {
	m := newTestManager(t, "mgr_write")

	if err := m.db.Create(&productModel.ProductModel{ProductID: uuid.New(), Name: "Cat Tembok 5kg", BasePrice: 98000, Unit: "kaleng"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := m.WriteSnapshot(); err != nil {
		t.Fatalf("WriteSnapshot error: %v", err)
	}

	raw, err := m.ReadSnapshot()
	if err != nil {
		t.Fatalf("ReadSnapshot error: %v", err)
	}
	doc, err := ValidateDocument(raw)
	if err != nil {
		t.Fatalf("snapshot tidak lolos validasi: %v", err)
	}
	if len(doc.Products) != 1 {
		t.Fatalf("products di snapshot = %d", len(doc.Products))
	}

	st := m.Status()
	if st.LastSnapshot == nil {
		t.Fatalf("last snapshot kosong")
	}
}

func TestManagerConcurrentWriteSnapshot(t *testing.T) {
	m := newTestManager(t, "mgr_concurrent")

	if err := m.db.Create(&productModel.ProductModel{ProductID: uuid.New(), Name: "Pipa PVC 3 inci", BasePrice: 64000, Unit: "batang"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Loop debounce dan handler backup manual bisa menulis bersamaan;
	// hasil akhirnya harus tetap satu dokumen utuh
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := m.WriteSnapshot(); err != nil {
				t.Errorf("WriteSnapshot error: %v", err)
			}
		}()
	}
	wg.Wait()

	raw, err := m.ReadSnapshot()
	if err != nil {
		t.Fatalf("ReadSnapshot error: %v", err)
	}
	doc, err := ValidateDocument(raw)
	if err != nil {
		t.Fatalf("snapshot korup setelah penulisan bersamaan: %v", err)
	}
	if len(doc.Products) != 1 {
		t.Fatalf("products di snapshot = %d", len(doc.Products))
	}
}
