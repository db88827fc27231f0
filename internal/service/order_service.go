package service

import (
	"context"
	"fmt"

	"mystore/internal/model"
	"mystore/internal/notify"
	"mystore/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	mailer    notify.Mailer
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, mailer notify.Mailer, logger zerolog.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		mailer:    mailer,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Save persists an order with its item snapshots inside one transaction.
// Every part of the payload must be present: buyer identity, items, total
// and the delivery address.
func (s *orderService) Save(ctx context.Context, req model.OrderRequest) (int64, error) {
	if req.Email == "" || req.FullName == "" || len(req.Items) == 0 ||
		req.TotalPrice <= 0 || req.Address == (model.AddressInfo{}) {
		return 0, model.NewDomainError(model.ErrCodeMissingField, "Missing order information")
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to save order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	var id int64
	if id, err = s.orderRepo.CreateOrder(ctx, tx, req); err != nil {
		return 0, fmt.Errorf("failed to save order: %w", err)
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, id, req.Items); err != nil {
		return 0, fmt.Errorf("failed to save order items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Int64("order_id", id).Msg("failed to commit transaction")
		return 0, fmt.Errorf("failed to save order: %w", err)
	}

	s.logger.Info().
		Int64("order_id", id).
		Str("email", req.Email).
		Int("item_count", len(req.Items)).
		Float64("total", req.TotalPrice).
		Msg("order saved")

	return id, nil
}

// SendConfirmation emails the order confirmation to the buyer.
func (s *orderService) SendConfirmation(ctx context.Context, req model.OrderRequest) error {
	if req.Email == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Missing order information")
	}

	subject, body := notify.OrderConfirmationBody(req)
	if err := s.mailer.Send(ctx, req.Email, subject, body); err != nil {
		return fmt.Errorf("failed to send order confirmation: %w", err)
	}

	s.logger.Info().Str("email", req.Email).Msg("order confirmation sent")
	return nil
}

// GetByEmail retrieves all orders placed by an email, newest first.
func (s *orderService) GetByEmail(ctx context.Context, email string) ([]model.Order, error) {
	orders, err := s.orderRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}
