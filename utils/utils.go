package utils

import (
	"log/slog"
)

func Loge(e error) {
	if e != nil {
		slog.Error("", "error", e)
	}
}
