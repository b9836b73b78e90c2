package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-viewer/internal/extract"
	"resume-viewer/internal/llm"
	"resume-viewer/internal/llm/gemini"
	"resume-viewer/internal/llm/openai"
	"resume-viewer/internal/resumes"
	"resume-viewer/internal/services/health"
	"resume-viewer/internal/shared/config"
	"resume-viewer/internal/shared/server"
	"resume-viewer/internal/shared/storage/db"
	"resume-viewer/internal/shared/storage/kv"
	"resume-viewer/internal/shared/storage/object"
	localstore "resume-viewer/internal/shared/storage/object/local"
	memstore "resume-viewer/internal/shared/storage/object/memory"
	s3store "resume-viewer/internal/shared/storage/object/s3"
	"resume-viewer/internal/shared/telemetry"
)

// App holds the process-wide dependencies. Build creates exactly one.
type App struct {
	Config     config.Config
	Router     *gin.Engine
	DB         *sql.DB
	Metadata   kv.Store
	Blobs      object.BlobStore
	Index      *resumes.Index
	Repository *resumes.Repository
	Service    *resumes.Service
	Handler    *resumes.Handler
	Health     *health.Service
}

// Build wires stores, repository, extractor and router from cfg.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	if strings.TrimSpace(cfg.MetadataStoreType) == "" {
		cfg.MetadataStoreType = "file"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	metadata, err := buildMetadata(cfg, sqlDB)
	if err != nil {
		return nil, err
	}

	blobs, err := buildBlobs(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := blobs.Open(ctx); err != nil {
		if !isDevLike(cfg.Env) {
			return nil, err
		}
		// Open is retried on first Put/Get.
		telemetry.Warn("bootstrap.blobs.open_failed", map[string]any{"error": err, "store": cfg.ObjectStoreType})
	}

	llmClient, err := buildLLM(ctx, cfg)
	if err != nil {
		return nil, err
	}

	index := resumes.NewIndex(metadata)
	repo := resumes.NewRepository(index, blobs)
	svc := resumes.NewService(repo, &extract.LLMExtractor{LLM: llmClient})
	healthSvc := health.NewService(map[string]health.Check{
		"metadata": func(ctx context.Context) error {
			_, _, err := metadata.Get(ctx, resumes.IndexKey)
			return err
		},
		"blobs": blobs.Open,
	})

	app := &App{
		Config:     cfg,
		DB:         sqlDB,
		Metadata:   metadata,
		Blobs:      blobs,
		Index:      index,
		Repository: repo,
		Service:    svc,
		Handler:    resumes.NewHandler(svc),
		Health:     healthSvc,
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:        cfg,
		ResumeHandler: app.Handler,
		Health:        healthSvc,
	})
	return app, nil
}

// Close releases the database pool, if any.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.MetadataStoreType != "postgres" {
		return nil, nil
	}
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when METADATA_STORE=postgres")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}

func buildMetadata(cfg config.Config, sqlDB *sql.DB) (kv.Store, error) {
	switch cfg.MetadataStoreType {
	case "postgres":
		return &kv.PGStore{DB: sqlDB, Quota: cfg.MetadataQuotaBytes}, nil
	case "memory":
		return kv.NewMemoryStore(cfg.MetadataQuotaBytes), nil
	case "file":
		dir := cfg.MetadataDir
		if strings.TrimSpace(dir) == "" {
			dir = filepath.Join(cfg.LocalStoreDir, "meta")
		}
		return kv.NewFileStore(dir, cfg.MetadataQuotaBytes), nil
	default:
		return nil, fmt.Errorf("unknown METADATA_STORE %q", cfg.MetadataStoreType)
	}
}

func buildBlobs(ctx context.Context, cfg config.Config) (object.BlobStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, s3store.Options{
			Region:          cfg.AWSRegion,
			Bucket:          cfg.S3Bucket,
			Prefix:          cfg.S3Prefix,
			KMSKeyID:        cfg.SSEKMSKeyID,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			UsePathStyle:    cfg.S3UsePathStyle,
		})
	case "memory":
		return memstore.New(), nil
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		if strings.TrimSpace(cfg.OpenAIAPIKey) == "" && isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.llm.disabled", map[string]any{"provider": "openai", "reason": "OPENAI_API_KEY empty"})
			return llm.PlaceholderClient{}, nil
		}
		return openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
	case "gemini":
		if strings.TrimSpace(cfg.GeminiAPIKey) == "" && isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.llm.disabled", map[string]any{"provider": "gemini", "reason": "GEMINI_API_KEY empty"})
			return llm.PlaceholderClient{}, nil
		}
		return gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel)
	default:
		return llm.PlaceholderClient{}, nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
