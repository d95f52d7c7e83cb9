package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	mid "github.com/onconav/oncograph/backend/internal/server/middleware"
	"github.com/onconav/oncograph/backend/internal/util"
	"github.com/onconav/oncograph/backend/pkg/ai"
	oai "github.com/onconav/oncograph/backend/pkg/ai/ollama"
	gai "github.com/onconav/oncograph/backend/pkg/ai/openai"
	"github.com/onconav/oncograph/backend/pkg/chat"
	"github.com/onconav/oncograph/backend/pkg/kg"
	"github.com/onconav/oncograph/backend/pkg/logger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

// newAiClient builds the configured model adapter once at startup. The
// default is the OpenAI-compatible adapter; AI_ADAPTER=ollama switches to a
// local Ollama server.
func newAiClient() ai.GraphAIClient {
	switch util.GetEnv("AI_ADAPTER") {
	case "ollama":
		client, err := oai.NewGraphOllamaClient(oai.NewGraphOllamaClientParams{
			ChatModel: util.GetEnv("AI_CHAT_MODEL"),

			BaseURL: util.GetEnv("AI_CHAT_URL"),
			ApiKey:  util.GetEnv("AI_CHAT_KEY"),

			MaxConcurrentRequests: int64(util.GetEnvNumeric("AI_PARALLEL_REQ", 15)),
		})
		if err != nil {
			logger.Fatal("Failed to create Ollama client", "err", err)
		}
		return client
	default:
		return gai.NewGraphOpenAIClient(gai.NewGraphOpenAIClientParams{
			ChatModel: util.GetEnv("AI_CHAT_MODEL"),

			ChatURL: util.GetEnv("AI_CHAT_URL"),
			ChatKey: util.GetEnv("AI_CHAT_KEY"),
		})
	}
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	graph := kg.Load(util.GetEnvString("KG_DATA_PATH", "data/oncology_graph.json"))
	lexicon := kg.LoadLexicon(util.GetEnvString("KG_LEXICON_PATH", "data/lexicon.json"))
	store := kg.NewStore(graph, lexicon)
	logger.Info("Knowledge graph loaded",
		"nodes", len(graph.Nodes),
		"edges", len(graph.Edges),
	)

	app := &mid.App{
		Store:    store,
		AiClient: newAiClient(),
		Sessions: chat.NewSessionStore(),
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())

	RegisterRoutes(e)

	go func() {
		port := util.GetEnvString("PORT", "8080")
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}
