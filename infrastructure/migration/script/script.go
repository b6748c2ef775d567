package main

import (
	"context"
	"time"

	"github.com/casaalves/backoffice-api/infrastructure/database/postgres"
	"github.com/casaalves/backoffice-api/internal/config"
	"github.com/casaalves/backoffice-api/pkg/log"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS dashboard_snapshots (
		id BIGSERIAL PRIMARY KEY,
		period VARCHAR(7) NOT NULL UNIQUE,
		month SMALLINT NOT NULL,
		year SMALLINT NOT NULL,
		payload JSONB NOT NULL,
		fetched_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS export_records (
		id VARCHAR(16) PRIMARY KEY,
		resource VARCHAR(32) NOT NULL,
		filename VARCHAR(128) NOT NULL,
		user_id INTEGER NOT NULL,
		size_bytes INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_export_records_created_at ON export_records (created_at DESC)`,
}

func main() {
	log.Configure("debug")
	log.L.Info("Iniciando script de migração...")
	startTime := time.Now()

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatalf("Erro ao carregar configuração: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.L.Fatalf("Erro ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()

	for i, stmt := range statements {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			log.L.Fatalf("ERRO ao executar statement %d/%d: %v", i+1, len(statements), err)
		}
		log.L.Debugf("Statement %d/%d executado", i+1, len(statements))
	}

	log.L.Infof("Migração concluída em %v", time.Since(startTime))
}
