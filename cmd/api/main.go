package main

import (
	"os"

	"github.com/suhaktamgu/academy/internal/pkg/logger"
	"github.com/suhaktamgu/academy/internal/server"
)

// @title           수학탐구 학원 관리 API
// @version         1.0
// @description     학원 운영(학생, 수업, 출결, 성적, 수납)과 학생·학부모 모바일 조회를 위한 REST API.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}
