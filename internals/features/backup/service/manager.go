package service

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"hargaku_backend/internals/configs"
)

// Status koneksi backup. Murni observasi, tidak pernah memblokir operasi
// baca/tulis.
const (
	StatusUnknown      = "unknown"
	StatusChecking     = "checking"
	StatusConnected    = "connected"
	StatusDisconnected = "disconnected"
)

// watchedTables adalah tabel yang perubahan barisnya memicu snapshot.
var watchedTables = map[string]bool{
	"products":               true,
	"product_regions":        true,
	"customers":              true,
	"customer_pricing_tiers": true,
	"price_history":          true,
}

type StatusInfo struct {
	State        string           `json:"state"`
	LastSnapshot *time.Time       `json:"last_snapshot,omitempty"`
	RowCounts    map[string]int64 `json:"row_counts"`
}

// Manager menjaga file snapshot lokal tetap segar: sekali saat start,
// lalu setiap periode tenang (debounce) setelah ada perubahan data.
type Manager struct {
	db             *gorm.DB
	file           string
	debounce       time.Duration
	statusInterval time.Duration

	notify   chan struct{}
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once

	mu           sync.Mutex
	state        string
	lastSnapshot time.Time

	// writeMu menserialkan WriteSnapshot: loop debounce dan handler
	// backup manual memakai file .tmp yang sama
	writeMu sync.Mutex
}

// StartAutoBackup memasang callback perubahan di GORM, menulis snapshot
// awal, lalu menjalankan loop debounce dan poller status.
func StartAutoBackup(db *gorm.DB) *Manager {
	debounceMs, err := strconv.Atoi(configs.GetEnv("BACKUP_DEBOUNCE_MS", "2000"))
	if err != nil || debounceMs <= 0 {
		debounceMs = 2000
	}
	statusSec, err := strconv.Atoi(configs.GetEnv("BACKUP_STATUS_INTERVAL", "30"))
	if err != nil || statusSec <= 0 {
		statusSec = 30
	}

	m := &Manager{
		db:             db,
		file:           configs.BackupFile,
		debounce:       time.Duration(debounceMs) * time.Millisecond,
		statusInterval: time.Duration(statusSec) * time.Second,
		notify:         make(chan struct{}, 1),
		stop:           make(chan struct{}),
		done:           make(chan struct{}),
		state:          StatusUnknown,
	}
	if m.file == "" {
		m.file = "auto-backup.json"
	}

	m.registerCallbacks()

	if err := m.WriteSnapshot(); err != nil {
		log.Printf("[ERROR] Snapshot awal gagal: %v", err)
	}

	go m.run()
	go m.pollStatus()
	return m
}

// Notify menandai ada perubahan data. Non-blocking; pemicu yang menumpuk
// melebur jadi satu snapshot tertunda.
func (m *Manager) Notify() {
	select {
	case m.notify <- struct{}{}:
	default:
	}
}

// Stop membatalkan timer tertunda; tidak ada snapshot yang jalan setelah
// Stop kembali.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
	<-m.done
}

func (m *Manager) registerCallbacks() {
	hook := func(tx *gorm.DB) {
		if tx.Error == nil && tx.Statement != nil && watchedTables[tx.Statement.Table] {
			m.Notify()
		}
	}
	_ = m.db.Callback().Create().After("gorm:create").Register("backup:notify_create", hook)
	_ = m.db.Callback().Update().After("gorm:update").Register("backup:notify_update", hook)
	_ = m.db.Callback().Delete().After("gorm:delete").Register("backup:notify_delete", hook)
}

func (m *Manager) run() {
	defer close(m.done)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-m.notify:
			// Setiap notifikasi me-reset periode tenang
			if timer == nil {
				timer = time.NewTimer(m.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(m.debounce)
			}
		case <-fire:
			timer = nil
			fire = nil
			if err := m.WriteSnapshot(); err != nil {
				log.Printf("[ERROR] Auto-backup gagal: %v", err)
			}
		case <-m.stop:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// WriteSnapshot menulis dokumen backup ke file lokal (tulis ke file
// sementara lalu rename supaya tidak ada snapshot setengah jadi).
// Hanya satu penulisan yang jalan pada satu waktu.
func (m *Manager) WriteSnapshot() error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	doc, err := BuildDocument(m.db)
	if err != nil {
		return err
	}
	raw, err := sonic.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	tmp := m.file + ".tmp"
	if dir := filepath.Dir(m.file); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, m.file); err != nil {
		return err
	}

	m.mu.Lock()
	m.lastSnapshot = time.Now()
	m.mu.Unlock()
	log.Printf("[INFO] Snapshot backup ditulis ke %s (%d bytes)", m.file, len(raw))
	return nil
}

// ReadSnapshot membaca file snapshot lokal untuk restore-to-cloud.
func (m *Manager) ReadSnapshot() ([]byte, error) {
	return os.ReadFile(m.file)
}

func (m *Manager) pollStatus() {
	ticker := time.NewTicker(m.statusInterval)
	defer ticker.Stop()

	check := func() {
		m.setState(StatusChecking)
		sqlDB, err := m.db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			m.setState(StatusDisconnected)
			return
		}
		m.setState(StatusConnected)
	}

	check()
	for {
		select {
		case <-ticker.C:
			check()
		case <-m.stop:
			return
		}
	}
}

func (m *Manager) setState(s string) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

// Status mengembalikan keadaan koneksi, waktu snapshot terakhir, dan
// jumlah baris per koleksi.
func (m *Manager) Status() StatusInfo {
	m.mu.Lock()
	info := StatusInfo{State: m.state, RowCounts: map[string]int64{}}
	if !m.lastSnapshot.IsZero() {
		t := m.lastSnapshot
		info.LastSnapshot = &t
	}
	m.mu.Unlock()

	for table := range watchedTables {
		var cnt int64
		if err := m.db.Table(table).Count(&cnt).Error; err == nil {
			info.RowCounts[table] = cnt
		}
	}
	return info
}
