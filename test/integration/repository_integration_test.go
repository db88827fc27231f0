package integration

import (
	"context"
	"testing"

	"mystore/internal/model"
	"mystore/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewProductRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("GetPublished excludes drafts", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		products, err := repo.GetPublished(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 3)
		for _, p := range products {
			assert.Equal(t, model.StatusPublished, p.Status)
		}
	})

	t.Run("GetBySeller includes drafts", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		products, err := repo.GetBySeller(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Len(t, products, 3)
	})

	t.Run("Create starts as draft", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		id, err := repo.Create(ctx, model.ProductInput{
			Title: "Standing Desk", Price: 299.00, Category: "furniture",
			SellerID: "alice@example.com", SellerName: "Alice",
		})
		require.NoError(t, err)
		require.Positive(t, id)

		p, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, model.StatusDraft, p.Status)
		assert.Equal(t, "Standing Desk", p.Title)
	})

	t.Run("GetByID missing returns nil", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		p, err := repo.GetByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("SetStatus publish then unpublish", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		id, err := repo.Create(ctx, model.ProductInput{
			Title: "Lamp", Price: 10, Category: "home", SellerID: "alice@example.com",
		})
		require.NoError(t, err)

		found, err := repo.SetStatus(ctx, id, model.StatusPublished)
		require.NoError(t, err)
		assert.True(t, found)

		published, err := repo.GetPublished(ctx)
		require.NoError(t, err)
		assert.Len(t, published, 1)

		found, err = repo.SetStatus(ctx, id, model.StatusDraft)
		require.NoError(t, err)
		assert.True(t, found)

		published, err = repo.GetPublished(ctx)
		require.NoError(t, err)
		assert.Empty(t, published)
	})

	t.Run("Update missing returns false", func(t *testing.T) {
		found, err := repo.Update(ctx, 999999, model.ProductInput{Title: "X", Price: 1, Category: "misc"})
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Search matches title case-insensitively and only published", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		products, err := repo.Search(ctx, "keyboard", 3)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Wireless Keyboard", products[0].Title)

		// "Winter Jacket" is a draft and must not surface
		products, err = repo.Search(ctx, "jacket", 3)
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestActivityRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	repo := repository.NewActivityRepository(testDB.Pool, zerolog.Nop())
	ctx := context.Background()

	t.Run("Append and list newest first with limit", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		for i := 0; i < 5; i++ {
			require.NoError(t, repo.Append(ctx, "alice@example.com", int64(i+1), model.ActionCreated, "Product"))
		}
		require.NoError(t, repo.Append(ctx, "bob@example.com", 99, model.ActionDeleted, "Other"))

		records, err := repo.ListBySeller(ctx, "alice@example.com", 3)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, int64(5), records[0].ProductID)
	})
}

func TestOrderRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	repo := repository.NewOrderRepository(testDB.Pool, zerolog.Nop())
	ctx := context.Background()

	orderReq := model.OrderRequest{
		Email:      "jane@example.com",
		FullName:   "Jane Doe",
		TotalPrice: 69.98,
		Items: []model.OrderItem{
			{Title: "Wireless Keyboard", Price: 49.99, Quantity: 1},
			{Title: "USB Mouse", Price: 19.99, Quantity: 1},
		},
		Address: model.AddressInfo{
			FullName: "Jane Doe", Address: "12 High St",
			City: "Springfield", State: "IL", Pincode: "62704",
		},
	}

	t.Run("order with items committed and read back", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)

		id, err := repo.CreateOrder(ctx, tx, orderReq)
		require.NoError(t, err)
		require.NoError(t, repo.CreateOrderItems(ctx, tx, id, orderReq.Items))
		require.NoError(t, tx.Commit(ctx))

		orders, err := repo.GetByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "Jane Doe", orders[0].FullName)
		assert.Equal(t, "Springfield", orders[0].City)
		assert.Len(t, orders[0].Items, 2)
	})

	t.Run("rollback leaves no order behind", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)

		_, err = repo.CreateOrder(ctx, tx, orderReq)
		require.NoError(t, err)
		require.NoError(t, tx.Rollback(ctx))

		orders, err := repo.GetByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}

func TestSellerRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	repo := repository.NewSellerRepository(testDB.Pool, zerolog.Nop())
	ctx := context.Background()

	t.Run("new seller starts pending and can be approved", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		require.NoError(t, repo.Create(ctx, model.Seller{
			FullName: "Sam", Email: "sam@example.com",
			StoreName: "Gadgets", Password: "hash",
		}))

		seller, err := repo.GetByEmail(ctx, "sam@example.com")
		require.NoError(t, err)
		require.NotNil(t, seller)
		assert.Equal(t, model.SellerPending, seller.Status)

		found, err := repo.UpdateStatus(ctx, "sam@example.com", model.SellerApproved)
		require.NoError(t, err)
		assert.True(t, found)

		seller, err = repo.GetByEmail(ctx, "sam@example.com")
		require.NoError(t, err)
		assert.Equal(t, model.SellerApproved, seller.Status)
	})

	t.Run("unknown seller", func(t *testing.T) {
		seller, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, seller)

		found, err := repo.UpdateStatus(ctx, "nobody@example.com", model.SellerApproved)
		require.NoError(t, err)
		assert.False(t, found)
	})
}
