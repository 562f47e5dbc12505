package main

import (
	"github.com/toybox-next/internal/config"
	"github.com/toybox-next/internal/logger"
	"github.com/toybox-next/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 初始化默认运营账号
	if err := models.InitDefaultOperator("", ""); err != nil {
		stdLog.Printf("Failed to init default operator: %v", err)
	}

	var count int64
	if err := models.DB.Model(&models.Product{}).Count(&count).Error; err != nil {
		stdLog.Fatalf("Failed to count products: %v", err)
	}
	if count > 0 {
		stdLog.Printf("Products already exist, skip seeding")
		return
	}

	// 示例商品
	products := []models.Product{
		{
			Name:        "دمية باربي",
			Description: "دمية باربي جميلة للأطفال",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(150)),
			Cost:        models.NewMoneyFromDecimal(decimal.NewFromInt(80)),
			Stock:       10,
			Category:    "دمى",
			Image:       "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400",
			IsFeatured:  true,
			SalesCount:  45,
		},
		{
			Name:        "سيارة ريموت كنترول",
			Description: "سيارة سباق بريموت كنترول",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(300)),
			Cost:        models.NewMoneyFromDecimal(decimal.NewFromInt(180)),
			Stock:       10,
			Category:    "سيارات",
			Image:       "https://images.unsplash.com/photo-1558544956-f2a45c81f5a6?w=400",
			IsFeatured:  true,
			SalesCount:  38,
		},
		{
			Name:        "مكعبات تركيب",
			Description: "مكعبات ليجو ملونة",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(200)),
			Cost:        models.NewMoneyFromDecimal(decimal.NewFromInt(120)),
			Stock:       10,
			Category:    "تعليمية",
			Image:       "https://images.unsplash.com/photo-1587654780291-39c9404d746b?w=400",
			SalesCount:  52,
		},
		{
			Name:        "طائرة ورقية",
			Description: "طائرة ورقية ملونة",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(50)),
			Cost:        models.NewMoneyFromDecimal(decimal.NewFromInt(25)),
			Stock:       10,
			Category:    "خارجية",
			Image:       "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=400",
			SalesCount:  67,
		},
		{
			Name:        "دفتر تلوين",
			Description: "دفتر تلوين مع أقلام",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(80)),
			Cost:        models.NewMoneyFromDecimal(decimal.NewFromInt(40)),
			Stock:       10,
			Category:    "فنية",
			Image:       "https://images.unsplash.com/photo-1513542789411-b6a5d4f31634?w=400",
			SalesCount:  29,
		},
		{
			Name:        "كرة قدم",
			Description: "كرة قدم احترافية للأطفال",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(120)),
			Cost:        models.NewMoneyFromDecimal(decimal.NewFromInt(70)),
			Stock:       10,
			Category:    "رياضية",
			Image:       "https://images.unsplash.com/photo-1614632537197-38a17061c2bd?w=400",
			IsFeatured:  true,
			SalesCount:  41,
		},
	}

	for _, product := range products {
		item := product
		if err := models.DB.Create(&item).Error; err != nil {
			stdLog.Printf("Failed to create product %s: %v", item.Name, err)
			continue
		}
		stdLog.Printf("Created product: %s", item.Name)
	}

	stdLog.Printf("Database seeded!")
}
