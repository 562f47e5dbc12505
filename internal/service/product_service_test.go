package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/toybox-next/internal/models"
	"github.com/toybox-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductServiceTest(t *testing.T) (*ProductService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:product_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Review{}, &models.Customer{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewProductService(repository.NewProductRepository(db), repository.NewReviewRepository(db)), db
}

func TestProductCreateValidation(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	if _, err := svc.Create(ProductInput{Name: "  "}); err != ErrProductNameRequired {
		t.Fatalf("expected ErrProductNameRequired, got %v", err)
	}

	negative := models.NewMoneyFromDecimal(decimal.NewFromInt(-1))
	if _, err := svc.Create(ProductInput{Name: "دمية", Price: negative}); err != ErrInvalidPrice {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}

	product, err := svc.Create(ProductInput{
		Name:     "دمية باربي",
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(150)),
		Cost:     models.NewMoneyFromDecimal(decimal.NewFromInt(80)),
		Stock:    10,
		Category: "دمى",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if product.ID == 0 {
		t.Fatalf("expected persisted product")
	}
}

func TestProductUpdateKeepsImageWhenBlank(t *testing.T) {
	svc, _ := setupProductServiceTest(t)
	product, err := svc.Create(ProductInput{
		Name:  "دمية باربي",
		Price: models.NewMoneyFromDecimal(decimal.NewFromInt(150)),
		Image: "/uploads/product/a.jpg",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(product.ID, ProductInput{
		Name:  "دمية باربي محدثة",
		Price: models.NewMoneyFromDecimal(decimal.NewFromInt(180)),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Image != "/uploads/product/a.jpg" {
		t.Fatalf("expected image kept, got %q", updated.Image)
	}
	if !updated.Price.Equal(decimal.NewFromInt(180)) {
		t.Fatalf("expected price 180, got %s", updated.Price.String())
	}
}

func TestProductToggleFeatured(t *testing.T) {
	svc, _ := setupProductServiceTest(t)
	product, err := svc.Create(ProductInput{
		Name:  "كرة قدم",
		Price: models.NewMoneyFromDecimal(decimal.NewFromInt(120)),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	toggled, err := svc.ToggleFeatured(product.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !toggled.IsFeatured {
		t.Fatalf("expected featured after toggle")
	}
	toggled, err = svc.ToggleFeatured(product.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if toggled.IsFeatured {
		t.Fatalf("expected not featured after second toggle")
	}

	if _, err := svc.ToggleFeatured(9999); err != ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductDetailAverageRating(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	product, err := svc.Create(ProductInput{
		Name:  "دمية باربي",
		Price: models.NewMoneyFromDecimal(decimal.NewFromInt(150)),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	reviews := []models.Review{
		{CustomerID: 1, ProductID: product.ID, Rating: 5},
		{CustomerID: 2, ProductID: product.ID, Rating: 4},
		{CustomerID: 3, ProductID: product.ID, Rating: 3},
	}
	for i := range reviews {
		if err := db.Create(&reviews[i]).Error; err != nil {
			t.Fatalf("create review failed: %v", err)
		}
	}

	detail, err := svc.GetDetail(product.ID)
	if err != nil {
		t.Fatalf("get detail failed: %v", err)
	}
	if detail.ReviewCount != 3 {
		t.Fatalf("expected 3 reviews, got %d", detail.ReviewCount)
	}
	if detail.AverageRating != 4.0 {
		t.Fatalf("expected average 4.0, got %f", detail.AverageRating)
	}

	if _, err := svc.GetDetail(9999); err != ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductHomeContents(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	seed := []models.Product{
		{Name: "a", Category: "دمى", Price: models.NewMoneyFromDecimal(decimal.NewFromInt(10)), IsFeatured: true, SalesCount: 5},
		{Name: "b", Category: "دمى", Price: models.NewMoneyFromDecimal(decimal.NewFromInt(10)), SalesCount: 50},
		{Name: "c", Category: "رياضية", Price: models.NewMoneyFromDecimal(decimal.NewFromInt(10)), IsFeatured: true},
		{Name: "d", Category: "", Price: models.NewMoneyFromDecimal(decimal.NewFromInt(10))},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}

	home, err := svc.Home(4, 6)
	if err != nil {
		t.Fatalf("home failed: %v", err)
	}
	if len(home.Featured) != 2 {
		t.Fatalf("expected 2 featured, got %d", len(home.Featured))
	}
	if len(home.BestSellers) == 0 || home.BestSellers[0].Name != "b" {
		t.Fatalf("unexpected best sellers: %+v", home.BestSellers)
	}
	if len(home.Categories) != 2 {
		t.Fatalf("expected 2 non-empty categories, got %v", home.Categories)
	}
}
