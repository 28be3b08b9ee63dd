package services

import (
	"testing"

	"subtrack/internal/models"
	"subtrack/internal/testutil"
)

func TestCreateCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		limit := testutil.Money("150")
		cat, err := svc.CreateCategory("Streaming", "#FF0000", &limit)
		testutil.AssertNoError(t, err)

		if cat.ID == "" {
			t.Fatal("expected category ID to be set")
		}
		if cat.Name != "Streaming" {
			t.Errorf("expected name Streaming, got %s", cat.Name)
		}
		if cat.BudgetLimit == nil || !cat.BudgetLimit.Equal(limit) {
			t.Errorf("expected budget limit 150, got %v", cat.BudgetLimit)
		}
	})

	t.Run("default_color", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		cat, err := svc.CreateCategory("Music", "", nil)
		testutil.AssertNoError(t, err)
		if cat.Color != models.DefaultCategoryColor {
			t.Errorf("expected default color, got %s", cat.Color)
		}
	})

	t.Run("missing_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.CreateCategory("", "#FF0000", nil)
		testutil.AssertAppError(t, err, "VALIDATION_FAILED")
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.CreateCategory("Cloud", "", nil)
		testutil.AssertNoError(t, err)

		_, err = svc.CreateCategory("Cloud", "", nil)
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})
}

func TestListCategories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCategoryService(db)

	for _, name := range []string{"Software", "Education", "Music"} {
		_, err := svc.CreateCategory(name, "", nil)
		testutil.AssertNoError(t, err)
	}

	categories, err := svc.ListCategories()
	testutil.AssertNoError(t, err)
	if len(categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(categories))
	}
	if categories[0].Name != "Education" || categories[2].Name != "Software" {
		t.Errorf("expected categories ordered by name, got %s..%s", categories[0].Name, categories[2].Name)
	}
}

func TestGetCategoryByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		cat := testutil.CreateTestCategory(t, db)

		got, err := svc.GetCategoryByID(cat.ID)
		testutil.AssertNoError(t, err)
		if got.Name != cat.Name {
			t.Errorf("expected name %s, got %s", cat.Name, got.Name)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.GetCategoryByID("missing")
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestUpdateCategory(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		cat := testutil.CreateTestCategory(t, db)

		updated, err := svc.UpdateCategory(cat.ID, "Renamed", "", nil)
		testutil.AssertNoError(t, err)
		if updated.Name != "Renamed" {
			t.Errorf("expected name Renamed, got %s", updated.Name)
		}
		if updated.Color != cat.Color {
			t.Errorf("expected color to stay %s, got %s", cat.Color, updated.Color)
		}
	})

	t.Run("name_taken", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		first := testutil.CreateTestCategory(t, db)
		second := testutil.CreateTestCategory(t, db)

		_, err := svc.UpdateCategory(second.ID, first.Name, "", nil)
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.UpdateCategory("missing", "Name", "", nil)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("detaches_subscriptions_and_drops_budgets", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		cat := testutil.CreateTestCategory(t, db)
		sub := testutil.CreateTestSubscription(t, db, testutil.Date(2024, 1, 15), testutil.WithCategory(cat.ID))
		testutil.CreateTestBudget(t, db, cat.ID, 2024, 1, "100")

		testutil.AssertNoError(t, svc.DeleteCategory(cat.ID))

		var reloaded models.Subscription
		if err := db.First(&reloaded, "id = ?", sub.ID).Error; err != nil {
			t.Fatalf("subscription should survive category delete: %v", err)
		}
		if reloaded.CategoryID != nil {
			t.Errorf("expected category to be cleared, got %v", *reloaded.CategoryID)
		}

		var budgets int64
		db.Model(&models.Budget{}).Where("category_id = ?", cat.ID).Count(&budgets)
		if budgets != 0 {
			t.Errorf("expected budgets to be removed, got %d", budgets)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		err := svc.DeleteCategory("missing")
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}
