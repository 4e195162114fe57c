package main

import (
	"log/slog"
)

func check(e error) {
	if e != nil {
		slog.Error("Unexpected Error", "error", e)
		panic(e)
	}
}

func loge(e error) {
	if e != nil {
		slog.Error("Error Occurred", "error", e)
	}
}
