// file: internals/helpers/pg_error.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kode SQLSTATE yang dipetakan ke respons user-facing.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// JsonDBError memetakan error persistence ke envelope standar.
// Constraint violation → 409/400, record hilang → 404, sisanya 500.
// Tidak ada retry otomatis; state lokal dibiarkan apa adanya.
func JsonDBError(c *fiber.Ctx, err error, fallbackMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return JsonError(c, fiber.StatusConflict, "Data dengan ID/nilai yang sama sudah ada")
		case pgForeignKeyViolation:
			return JsonError(c, fiber.StatusBadRequest, "Referensi data tidak valid (relasi tidak ditemukan)")
		case pgCheckViolation:
			return JsonError(c, fiber.StatusBadRequest, "Nilai melanggar batasan data")
		}
	}

	return JsonError(c, fiber.StatusInternalServerError, fallbackMsg)
}
