package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"authorsite-backend/internal/config"
	infraCache "authorsite-backend/internal/infrastructure/cache"
	"authorsite-backend/internal/infrastructure/database"
	"authorsite-backend/internal/infrastructure/storage"
	"authorsite-backend/pkg/cache"
	"authorsite-backend/pkg/jwt"

	"authorsite-backend/internal/domains/auth"
	authHandler "authorsite-backend/internal/domains/auth/handler"
	authService "authorsite-backend/internal/domains/auth/service"

	"authorsite-backend/internal/domains/work"
	workHandler "authorsite-backend/internal/domains/work/handler"
	workRepo "authorsite-backend/internal/domains/work/repository"
	workService "authorsite-backend/internal/domains/work/service"

	"authorsite-backend/internal/domains/book"
	bookHandler "authorsite-backend/internal/domains/book/handler"
	bookRepo "authorsite-backend/internal/domains/book/repository"
	bookService "authorsite-backend/internal/domains/book/service"

	"authorsite-backend/internal/domains/award"
	awardHandler "authorsite-backend/internal/domains/award/handler"
	awardRepo "authorsite-backend/internal/domains/award/repository"
	awardService "authorsite-backend/internal/domains/award/service"

	"authorsite-backend/internal/domains/home"
	homeHandler "authorsite-backend/internal/domains/home/handler"
	homeService "authorsite-backend/internal/domains/home/service"

	"authorsite-backend/internal/domains/upload"
	uploadHandler "authorsite-backend/internal/domains/upload/handler"
	uploadService "authorsite-backend/internal/domains/upload/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Blobs      storage.BlobStore
	JWTManager *jwt.Manager

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	WorkRepo  work.Repository
	BookRepo  book.Repository
	AwardRepo award.Repository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	AuthService   auth.Service
	WorkService   work.Service
	BookService   book.Service
	AwardService  award.Service
	HomeService   home.Service
	UploadService upload.Service

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	AuthHandler   *authHandler.AuthHandler
	WorkHandler   *workHandler.WorkHandler
	BookHandler   *bookHandler.BookHandler
	AwardHandler  *awardHandler.AwardHandler
	HomeHandler   *homeHandler.HomeHandler
	UploadHandler *uploadHandler.UploadHandler
}

// NewContainer builds the whole dependency graph.
//
// Initialization order matters:
// 1. Config (depends on nothing)
// 2. Infrastructure (DB, Cache, Blobs) - depends on Config
// 3. Repositories - depend on Infrastructure
// 4. Services - depend on Repositories
// 5. Handlers - depend on Services
func NewContainer() (*Container, error) {
	log.Info().Msg("🔧 Initializing DI container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("✅ Config loaded")

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Info().Msg("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Info().Msg("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Info().Msg("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Redis is non-critical: the site degrades to uncached reads.
	if err := redisCache.Connect(context.Background()); err != nil {
		log.Warn().Err(err).Msg("⚠️  Redis connection failed (non-critical)")
	} else {
		log.Info().Msg("✅ Redis connected")
	}
	c.Cache = redisCache

	// ========================================
	// STEP 4: INITIALIZE BLOB STORAGE
	// ========================================
	log.Info().Msg("🪣 Connecting to MinIO...")

	blobs, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to blob storage: %w", err)
	}
	c.Blobs = blobs
	log.Info().Str("bucket", cfg.MinIO.Bucket).Msg("✅ Blob storage ready")

	c.JWTManager = jwt.NewManager(cfg.Session.Secret, cfg.Session.Expiry)

	// ========================================
	// STEP 5: REPOSITORIES / SERVICES / HANDLERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("🎉 DI container initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.WorkRepo = workRepo.NewPostgresRepository(pool)
	c.BookRepo = bookRepo.NewPostgresRepository(pool)
	c.AwardRepo = awardRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.AuthService = authService.NewAuthService(c.Config.Admin, c.JWTManager)
	c.WorkService = workService.NewWorkService(c.WorkRepo, c.Cache, c.Blobs)
	c.BookService = bookService.NewBookService(c.BookRepo, c.Cache, c.Blobs)
	c.AwardService = awardService.NewAwardService(c.AwardRepo, c.Cache, c.Blobs)
	c.HomeService = homeService.NewHomeService(c.WorkRepo, c.BookRepo, c.AwardRepo, c.Cache)

	processor := storage.NewImageProcessor(c.Config.Upload.MaxSize)
	c.UploadService = uploadService.NewUploadService(c.Blobs, processor, c.Config.Upload.Prefix)
}

func (c *Container) initHandlers() {
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService, c.Config.Session)
	c.WorkHandler = workHandler.NewWorkHandler(c.WorkService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.AwardHandler = awardHandler.NewAwardHandler(c.AwardService)
	c.HomeHandler = homeHandler.NewHomeHandler(c.HomeService)
	c.UploadHandler = uploadHandler.NewUploadHandler(c.UploadService, c.Config.Upload.MaxSize)
}

// Cleanup releases infrastructure connections on shutdown.
func (c *Container) Cleanup() {
	log.Info().Msg("🧹 Cleaning up container resources...")

	if c.DB != nil {
		c.DB.Close()
		log.Info().Msg("✅ Database connection closed")
	}

	// Cache is held as an interface; only the Redis implementation holds a
	// real connection.
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("⚠️  Error closing Redis connection")
		} else {
			log.Info().Msg("✅ Redis connection closed")
		}
	}
}
