package main

import (
	"context"

	"github.com/digisolai/digisol.ai-sub002/infrastructure/database/postgres"
	"github.com/digisolai/digisol.ai-sub002/infrastructure/integrator/backend/backendclient"
	"github.com/digisolai/digisol.ai-sub002/infrastructure/proxy"
	"github.com/digisolai/digisol.ai-sub002/infrastructure/repository"
	"github.com/digisolai/digisol.ai-sub002/infrastructure/storage"
	"github.com/digisolai/digisol.ai-sub002/internal/api"
	"github.com/digisolai/digisol.ai-sub002/internal/api/handler"
	"github.com/digisolai/digisol.ai-sub002/internal/config"
	"github.com/digisolai/digisol.ai-sub002/internal/scheduler"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/authenticating"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/campaigning"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/chatting"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/contacting"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/theming"
	"github.com/digisolai/digisol.ai-sub002/pkg/log"
	"github.com/sirupsen/logrus"
)

func main() {
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	contactRepo := repository.NewContactRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	campaignService := campaigning.NewService(campaignRepo)
	contactService := contacting.NewService(contactRepo)

	// Armazenamento local compartilhado entre o tema e o token da API remota
	localStorage, err := storage.NewFileStorage(cfg.Theme.StoragePath)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o armazenamento local")
	}
	defer localStorage.Close()

	themeDocument := theming.NewStyleDocument(cfg.Theme.DocumentName)
	themeStore := theming.NewStore(localStorage, themeDocument)
	themeStore.Load()

	if cfg.Theme.WatchEnabled {
		if err := localStorage.Watch(ctx, themeStore.HandleStorageChange); err != nil {
			logrus.WithError(err).Error("Erro ao observar o armazenamento local")
		}
	}

	backendClient := backendclient.NewClient(cfg, backendclient.NewTokenStore(localStorage))
	chatService := chatting.NewService(backendClient)

	backendProxy, err := proxy.NewProxy(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o proxy da API remota")
	}

	lifecycleSyncService := scheduler.NewCampaignLifecycleSyncService(campaignService, cfg)
	if err := lifecycleSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do ciclo de vida das campanhas")
	} else {
		logrus.Info("Agendador do ciclo de vida das campanhas iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Campaigns:     campaignService,
		Contacts:      contactService,
		Chat:          chatService,
		ThemeStore:    themeStore,
		ThemeDocument: themeDocument,
		CronJobs: handler.CronJobServices{
			CampaignLifecycleSyncService: lifecycleSyncService,
		},
		Proxy: backendProxy,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
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
