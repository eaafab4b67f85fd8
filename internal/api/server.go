package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/digisolai/digisol.ai-sub002/internal/api/handler"
	"github.com/digisolai/digisol.ai-sub002/internal/api/handler/router"
	"github.com/digisolai/digisol.ai-sub002/internal/config"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/authenticating"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/campaigning"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/chatting"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/contacting"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/theming"
	"github.com/digisolai/digisol.ai-sub002/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

// Services agrupa as dependências expostas pela API HTTP
type Services struct {
	Authenticator authenticating.Authenticator
	Campaigns     campaigning.CampaignService
	Contacts      contacting.ContactService
	Chat          chatting.ChatService
	ThemeStore    theming.ThemeStore
	ThemeDocument handler.StylesheetRenderer
	CronJobs      handler.CronJobServices
	// Proxy é montado fora da autenticação; a API remota valida o próprio token
	Proxy http.Handler
}

type Server struct {
	httpServer *http.Server
}

func New(config *config.Config, services Services) (*Server, error) {
	rootHandler, err := NewHandler(config, services)
	if err != nil {
		return nil, err
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           rootHandler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o mux raiz: o proxy sob o prefixo configurado e a API v1 no restante
func NewHandler(config *config.Config, services Services) (http.Handler, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Campaigns(services.Campaigns)...),
		router.WithRoutes(handler.Contacts(services.Contacts)...),
		router.WithRoutes(handler.Theme(services.ThemeStore, services.ThemeDocument)...),
		router.WithRoutes(handler.Chat(services.Chat)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	logrus.WithField("routes", len(rt.Routes())).Debug("api: routes registered")

	apiChain := alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	)

	mux := http.NewServeMux()
	mux.Handle("/", apiChain.Then(rt))

	if services.Proxy != nil {
		mountPath := config.Proxy.MountPath
		if mountPath == "" || mountPath == "/" {
			return nil, fmt.Errorf("api: proxy mount path must not be the root")
		}

		proxyChain := alice.New(
			middleware.LogPanicMiddleware(),
			middleware.LoggingMiddleware(),
		)
		proxyHandler := proxyChain.Then(services.Proxy)
		mux.Handle(mountPath, proxyHandler)
		mux.Handle(mountPath+"/", proxyHandler)

		logrus.WithField("mount_path", mountPath).Info("api: backend proxy mounted")
	}

	return mux, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
