// cmd/service/main.go
package main

import (
	"context"
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		slog.Error("Application error", "error", err)
		os.Exit(1)
	}
}
