package main

import (
	"availability-api/core/logger"
	"availability-api/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
