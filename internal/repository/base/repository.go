package base

import "github.com/jackc/pgx/v5"

// IsNotFound проверяет является ли ошибка "строка не найдена".
// Репозитории возвращают pgx.ErrNoRows для обновлений без затронутых строк,
// сервисы через эту проверку переводят её в свою ошибку NotFound.
func IsNotFound(err error) bool {
	return err == pgx.ErrNoRows
}
