// Package sl добавляет мелкие помощники для структурированного
// логирования через slog.
package sl

import "log/slog"

// Err заворачивает ошибку в атрибут лога с ключом "error",
// чтобы во всех записях журнала ошибки выглядели одинаково:
//
//	log.Error("failed to create subscription", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.String("error", err.Error())
}
