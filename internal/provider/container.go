package provider

import (
	"github.com/toybox-next/internal/cache"
	"github.com/toybox-next/internal/config"
	"github.com/toybox-next/internal/logger"
	"github.com/toybox-next/internal/models"
	"github.com/toybox-next/internal/queue"
	"github.com/toybox-next/internal/repository"
	"github.com/toybox-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	OperatorRepo repository.OperatorRepository
	CustomerRepo repository.CustomerRepository
	ProductRepo  repository.ProductRepository
	CartRepo     repository.CartRepository
	OrderRepo    repository.OrderRepository
	ReviewRepo   repository.ReviewRepository
	WishlistRepo repository.WishlistRepository
	ReportRepo   repository.ReportRepository

	// Services
	AuthService         *service.AuthService
	CustomerAuthService *service.CustomerAuthService
	ProductService      *service.ProductService
	CartService         *service.CartService
	OrderService        *service.OrderService
	ReviewService       *service.ReviewService
	WishlistService     *service.WishlistService
	ReportService       *service.ReportService
	UploadService       *service.UploadService
	EmailService        *service.EmailService
	CaptchaService      *service.CaptchaService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.OperatorRepo = repository.NewOperatorRepository(db)
	c.CustomerRepo = repository.NewCustomerRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
	c.WishlistRepo = repository.NewWishlistRepository(db)
	c.ReportRepo = repository.NewReportRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.OperatorRepo)
	c.CustomerAuthService = service.NewCustomerAuthService(c.Config, c.CustomerRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.ReviewRepo)
	c.CartService = service.NewCartService(c.Config, c.CartRepo, c.ProductRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CartRepo, c.ProductRepo, c.QueueClient)
	c.ReviewService = service.NewReviewService(c.ReviewRepo, c.ProductRepo)
	c.WishlistService = service.NewWishlistService(c.WishlistRepo, c.ProductRepo)
	c.ReportService = service.NewReportService(c.ReportRepo, c.ProductRepo)
	c.UploadService = service.NewUploadService(c.Config)
	c.EmailService = service.NewEmailService(&c.Config.Email, c.Config.Store.Currency)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
}
