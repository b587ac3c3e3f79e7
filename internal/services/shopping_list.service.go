package services

import (
	"context"

	"foodgram/internal/logging"
	"foodgram/internal/metrics"
	"foodgram/internal/repository"
	"foodgram/internal/utils"
)

const ShoppingListFilename = "shopping_cart.pdf"

type ShoppingListService interface {
	// Export renders the user's aggregated shopping list as a PDF.
	Export(ctx context.Context, userID uint) ([]byte, error)
}

type shoppingListService struct {
	cart repository.ShoppingCartRepository
	opts utils.PDFOptions
}

func NewShoppingListService(cart repository.ShoppingCartRepository, opts utils.PDFOptions) ShoppingListService {
	return &shoppingListService{cart: cart, opts: opts}
}

func (s *shoppingListService) Export(ctx context.Context, userID uint) ([]byte, error) {
	items, err := s.cart.Aggregate(ctx, userID)
	if err != nil {
		metrics.RecordShoppingListExport(0, err)
		return nil, err
	}
	data, err := utils.GenerateShoppingListPDF(items, s.opts)
	metrics.RecordShoppingListExport(len(items), err)
	if err != nil {
		return nil, err
	}
	logging.Ctx(ctx).Info().Uint("user_id", userID).Int("items", len(items)).Msg("Shopping list exported")
	return data, nil
}
