package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roi-benchmark-api/infrastructure/database/postgres"
	"github.com/vfg2006/roi-benchmark-api/infrastructure/repository"
	"github.com/vfg2006/roi-benchmark-api/internal/api"
	"github.com/vfg2006/roi-benchmark-api/internal/config"
	"github.com/vfg2006/roi-benchmark-api/internal/scheduler"
	"github.com/vfg2006/roi-benchmark-api/internal/usecases/benchmarking"
	"github.com/vfg2006/roi-benchmark-api/pkg/metrics"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	metrics.Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	businessRepo := repository.NewBusinessRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	adMethodRepo := repository.NewAdMethodRepository(pgConn)

	benchmarker := benchmarking.NewService(cfg, businessRepo, campaignRepo, adMethodRepo)

	weeklyReportService := scheduler.NewWeeklyReportService(benchmarker, scheduler.LogReportSink{}, cfg)

	if err := weeklyReportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório semanal")
	} else {
		logrus.Info("Agendador do relatório semanal iniciado com sucesso")
	}

	server, err := api.New(cfg, benchmarker, weeklyReportService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	changeWorkingDir(dir)
}

// changeWorkingDir muda para dir; em caso de erro registra o aviso e segue no diretório atual
func changeWorkingDir(dir string) bool {
	if err := os.Chdir(dir); err != nil {
		logrus.WithError(err).WithField("dir", dir).Warn("Não foi possível mudar para o diretório do binário, usando o diretório atual")
		return false
	}
	return true
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
