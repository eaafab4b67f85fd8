package log

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger encapsula logrus para carregar o correlation id das requisições
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
}

type contextKey string

// CorrelationIDKey é a chave para armazenar o ID de correlação no contexto
const CorrelationIDKey contextKey = "correlation_id"

// CorrelationIDHeader é o header aceito na entrada e devolvido na resposta
const CorrelationIDHeader = "X-Correlation-ID"

type logger struct {
	entry *logrus.Entry
}

// L é a instância global usada pelos middlewares
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// Configure aplica o formato padrão e o nível lido de LOG_LEVEL
func Configure(level string) logrus.Level {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("log: invalid level %q, using info", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
	return logLevel
}

func (l *logger) WithField(key string, value any) Logger {
	return &logger{entry: l.entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	return &logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

// WithContext adiciona o correlation id do contexto, se houver
func (l *logger) WithContext(ctx context.Context) Logger {
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		return l.WithField(string(CorrelationIDKey), correlationID)
	}
	return l
}

func (l *logger) Debug(args ...any) { l.entry.Debug(args...) }

func (l *logger) Info(args ...any) { l.entry.Info(args...) }

func (l *logger) Warn(args ...any) { l.entry.Warn(args...) }

func (l *logger) Warnf(format string, args ...any) { l.entry.Warnf(format, args...) }

func (l *logger) Error(args ...any) { l.entry.Error(args...) }

// WithCorrelationID grava id no contexto; id vazio gera um novo uuid
func WithCorrelationID(ctx context.Context, id string) (context.Context, string) {
	if id == "" {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, CorrelationIDKey, id), id
}

// GetCorrelationID obtém o ID de correlação do contexto
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// ForContext cria um logger com o ID de correlação do contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
