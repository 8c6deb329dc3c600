package container

import (
	"context"
	"fmt"
	"time"

	"blog-api/internal/config"
	"blog-api/internal/infrastructure/database"
	"blog-api/pkg/logger"

	blogHandler "blog-api/internal/domains/blog/handler"
	blogRepo "blog-api/internal/domains/blog/repository"
	blogService "blog-api/internal/domains/blog/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Lifecycle: Singleton (1 instance duy nhất trong app lifetime)
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config *config.Config
	DB     *database.MongoDB

	// ========================================
	// REPOSITORY / SERVICE / HANDLER
	// ========================================
	BlogRepo    blogRepo.BlogRepository
	BlogService blogService.ServiceInterface
	BlogHandler *blogHandler.BlogHandler
}

// NewContainer tạo và initialize toàn bộ dependency graph
//
// Thứ tự initialization:
// 1. Config
// 2. Database - phụ thuộc Config
// 3. Repository -> Service -> Handler
func NewContainer(ctx context.Context) (*Container, error) {
	logger.Debug("🔧 Initializing DI Container...")

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Info("✅ Config loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
		"database":    cfg.Database.Database,
		"collection":  cfg.Database.Collection,
	})

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	db := database.NewMongoDB(cfg.Database)

	connectCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	if err := db.Connect(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Debug("✅ Database connected")

	// ========================================
	// STEP 3: DOMAIN WIRING
	// ========================================
	c := New(cfg, db, blogRepo.NewMongoBlogRepository(db.Collection()))

	logger.Debug("✅ DI Container initialized")
	return c, nil
}

// New wires the blog domain on top of an already opened store.
func New(cfg *config.Config, db *database.MongoDB, repo blogRepo.BlogRepository) *Container {
	svc := blogService.NewBlogService(repo)

	return &Container{
		Config:      cfg,
		DB:          db,
		BlogRepo:    repo,
		BlogService: svc,
		BlogHandler: blogHandler.NewBlogHandler(svc),
	}
}

// Cleanup releases the database client.
func (c *Container) Cleanup() {
	if c.DB == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := c.DB.Close(ctx); err != nil {
		logger.Error("❌ Failed to close database", err)
		return
	}
	logger.Debug("✅ Database connection closed")
}

// HealthCheck reports whether the store answers.
func (c *Container) HealthCheck(ctx context.Context) error {
	return c.DB.HealthCheck(ctx)
}
