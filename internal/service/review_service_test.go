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

func setupReviewServiceTest(t *testing.T) (*ReviewService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:review_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Customer{}, &models.Review{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewReviewService(repository.NewReviewRepository(db), repository.NewProductRepository(db)), db
}

func createReviewTestProduct(t *testing.T, db *gorm.DB) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:  "دمية باربي",
		Price: models.NewMoneyFromDecimal(decimal.NewFromInt(150)),
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestReviewRatingBounds(t *testing.T) {
	svc, db := setupReviewServiceTest(t)
	product := createReviewTestProduct(t, db)

	for _, rating := range []int{0, -1, 6} {
		if _, err := svc.Add(AddReviewInput{CustomerID: 1, ProductID: product.ID, Rating: rating}); err != ErrInvalidRating {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}

	review, err := svc.Add(AddReviewInput{CustomerID: 1, ProductID: product.ID, Rating: 5, Comment: "  ممتازة  "})
	if err != nil {
		t.Fatalf("add review failed: %v", err)
	}
	if review.Comment != "ممتازة" {
		t.Fatalf("expected trimmed comment, got %q", review.Comment)
	}
}

func TestReviewDuplicateRejected(t *testing.T) {
	svc, db := setupReviewServiceTest(t)
	product := createReviewTestProduct(t, db)

	if _, err := svc.Add(AddReviewInput{CustomerID: 1, ProductID: product.ID, Rating: 4}); err != nil {
		t.Fatalf("first review failed: %v", err)
	}
	if _, err := svc.Add(AddReviewInput{CustomerID: 1, ProductID: product.ID, Rating: 5}); err != ErrReviewExists {
		t.Fatalf("expected ErrReviewExists, got %v", err)
	}
	// 其他顾客仍可评价
	if _, err := svc.Add(AddReviewInput{CustomerID: 2, ProductID: product.ID, Rating: 5}); err != nil {
		t.Fatalf("second customer review failed: %v", err)
	}
}

func TestReviewUnknownProduct(t *testing.T) {
	svc, _ := setupReviewServiceTest(t)
	if _, err := svc.Add(AddReviewInput{CustomerID: 1, ProductID: 999, Rating: 4}); err != ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestReviewRemove(t *testing.T) {
	svc, db := setupReviewServiceTest(t)
	product := createReviewTestProduct(t, db)

	review, err := svc.Add(AddReviewInput{CustomerID: 1, ProductID: product.ID, Rating: 4})
	if err != nil {
		t.Fatalf("add review failed: %v", err)
	}

	if err := svc.Remove(review.ID); err != nil {
		t.Fatalf("remove review failed: %v", err)
	}

	reviews, err := svc.ListByProduct(product.ID)
	if err != nil {
		t.Fatalf("list reviews failed: %v", err)
	}
	if len(reviews) != 0 {
		t.Fatalf("expected no reviews after removal, got %d", len(reviews))
	}

	if err := svc.Remove(review.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for removed review, got %v", err)
	}
}
