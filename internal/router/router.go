package router

import (
	"fmt"
	"strings"

	"github.com/toybox-next/internal/cache"
	"github.com/toybox-next/internal/config"
	adminhandlers "github.com/toybox-next/internal/http/handlers/admin"
	publichandlers "github.com/toybox-next/internal/http/handlers/public"
	"github.com/toybox-next/internal/logger"
	"github.com/toybox-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "tb"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.login_too_many",
	}
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.login_too_many",
	}

	customerSecret := cfg.CustomerJWT.SecretKey
	if customerSecret == "" {
		customerSecret = cfg.JWT.SecretKey
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（上传的图片）
	r.Static("/uploads", "./uploads")

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/config", publicHandler.GetStoreConfig)
			public.GET("/home", publicHandler.Home)
			public.GET("/products", publicHandler.ListProducts)
			public.GET("/products/:id", OptionalCustomerJWTMiddleware(customerSecret, c.CustomerRepo), publicHandler.GetProduct)
			public.GET("/products/:id/reviews", publicHandler.ListReviews)
			public.GET("/categories", publicHandler.ListCategories)
			public.GET("/captcha/image", publicHandler.GenerateCaptcha)
		}

		// 购物车与下单（游客与登录客户共用，靠 cart_key 识别）
		cart := apiV1.Group("")
		cart.Use(CartKeyMiddleware(), OptionalCustomerJWTMiddleware(customerSecret, c.CustomerRepo))
		{
			cart.GET("/cart", publicHandler.GetCart)
			cart.POST("/cart/items", publicHandler.AddCartItem)
			cart.DELETE("/cart/items", publicHandler.RemoveCartItem)
			cart.POST("/cart/clear", publicHandler.ClearCart)
			cart.GET("/cart/whatsapp-link", publicHandler.WhatsAppCheckout)
			cart.POST("/checkout", publicHandler.Checkout)
			cart.GET("/orders/:id", publicHandler.GetOrder)
		}

		// 客户认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.Login)
		}

		// 客户接口（需鉴权）
		me := apiV1.Group("")
		me.Use(CustomerJWTAuthMiddleware(customerSecret, c.CustomerRepo))
		{
			me.GET("/me", publicHandler.Profile)
			me.PUT("/me/profile", publicHandler.UpdateProfile)
			me.GET("/me/orders", publicHandler.ListMyOrders)
			me.GET("/me/orders/:id", publicHandler.GetMyOrder)
			me.GET("/me/wishlist", publicHandler.ListWishlist)
			me.POST("/me/wishlist", publicHandler.AddWishlistEntry)
			me.DELETE("/me/wishlist/:id", publicHandler.RemoveWishlistEntry)
			me.POST("/products/:id/reviews", publicHandler.AddReview)
		}

		// 管理员接口
		admin := apiV1.Group("/admin")
		{
			// 登录接口（无需鉴权）
			admin.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIP), adminHandler.Login)

			// 需要鉴权的接口
			authorized := admin.Use(OperatorJWTAuthMiddleware(cfg.JWT.SecretKey, c.OperatorRepo))
			{
				authorized.GET("/me", adminHandler.Me)
				authorized.PUT("/password", adminHandler.ChangePassword)

				// 仪表盘与报表
				authorized.GET("/dashboard", adminHandler.Dashboard)
				authorized.GET("/reports/sales", adminHandler.SalesReport)

				// 商品管理
				authorized.GET("/products", adminHandler.ListProducts)
				authorized.POST("/products", adminHandler.CreateProduct)
				authorized.PUT("/products/:id", adminHandler.UpdateProduct)
				authorized.PATCH("/products/:id/featured", adminHandler.ToggleProductFeatured)
				authorized.DELETE("/products/:id", adminHandler.DeleteProduct)

				// 订单管理
				authorized.GET("/orders", adminHandler.ListOrders)
				authorized.GET("/orders/:id", adminHandler.GetOrder)
				authorized.POST("/orders/:id/status", adminHandler.UpdateOrderStatus)
				authorized.DELETE("/reviews/:id", adminHandler.DeleteReview)

				// 客户管理
				authorized.GET("/customers", adminHandler.ListCustomers)
				authorized.GET("/customers/:id", adminHandler.GetCustomer)
				authorized.PUT("/customers/:id/active", adminHandler.SetCustomerActive)

				// 文件上传
				authorized.POST("/upload", adminHandler.Upload)
				authorized.POST("/email/test", adminHandler.SendTestEmail)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
