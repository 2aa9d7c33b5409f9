// internal/application/request_service.go
package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/domain"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/dto"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/mapper"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/ports"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/telemetry"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/pkg/auth"
)

const (
	stageSeller   = "Erro na validação do vendedor para criação do pedido"
	stageUser     = "Erro na validação do usuário para criação do pedido"
	stageItems    = "Erro na validação dos produtos para criação do pedido"
	stageShipping = "Erro na validação do frete para criação do pedido"
	stageMap      = "Erro no mapeamento para criação do pedido"
	stageTotal    = "Erro na validação do valor total do pedido"
	stagePersist  = "Erro ao salvar o pedido"
	stageStock    = "Erro ao atualizar o estoque dos produtos do pedido"
	stageResponse = "Erro no mapeamento da resposta do pedido"
)

type RequestService struct {
	validation *ValidationService
	requests   ports.RequestRepositoryPort
	products   ports.ProductRepositoryPort
	publisher  ports.EventPublisherPort
	logger     *zap.Logger
	now        func() time.Time
}

// NewRequestService wires the order workflow. publisher may be nil.
func NewRequestService(validation *ValidationService, requests ports.RequestRepositoryPort, products ports.ProductRepositoryPort, publisher ports.EventPublisherPort, logger *zap.Logger) *RequestService {
	return &RequestService{
		validation: validation,
		requests:   requests,
		products:   products,
		publisher:  publisher,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Create validates and records a new order, then takes the ordered
// quantities out of stock. Stock is decremented after the order is saved;
// if that fails the order stays recorded and a store error is returned.
func (s *RequestService) Create(ctx context.Context, in dto.CreateRequestRequest) (*dto.RequestResponse, error) {
	seller, err := s.validation.ValidateSeller(ctx, in.SellerName)
	if err != nil {
		return nil, s.reject(stageSeller, err)
	}
	user, err := s.validation.ValidateUser(ctx, in.UserName)
	if err != nil {
		return nil, s.reject(stageUser, err)
	}
	items, err := s.validation.ValidateLineItems(ctx, in.Items, seller.Name)
	if err != nil {
		return nil, s.reject(stageItems, err)
	}
	if err := s.validation.ValidateShipping(in.ShippingPrice); err != nil {
		return nil, s.reject(stageShipping, err)
	}

	req, err := mapper.ToRequest(seller, user, items, in.ShippingPrice, s.now())
	if err != nil {
		return nil, s.reject(stageMap, err)
	}
	if err := s.validation.ValidateTotal(req); err != nil {
		return nil, s.reject(stageTotal, err)
	}

	saved, err := s.requests.CreateRequest(ctx, req)
	if err != nil {
		return nil, s.reject(stagePersist, storeErr("salvar pedido", err))
	}
	if saved == nil {
		saved = req
	}

	for _, item := range saved.Items {
		if err := s.products.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			s.logger.Error("stock decrement failed after order was saved",
				zap.String("request_id", saved.ID),
				zap.String("product_id", item.ProductID),
				zap.Error(err))
			return nil, s.reject(stageStock, storeErr("decrementar estoque", err))
		}
	}

	telemetry.RecordRequestCreated()
	s.publish(ctx, domain.EventRequestCreated, saved)
	s.logger.Info("request created",
		zap.String("request_id", saved.ID),
		zap.String("seller", saved.SellerName),
		zap.String("user", saved.UserName),
		zap.Float64("total_value", *saved.TotalValue))

	resp, err := mapper.ToRequestResponse(saved)
	if err != nil {
		return nil, domain.Wrap(stageResponse, err)
	}
	return &resp, nil
}

func (s *RequestService) FindByID(ctx context.Context, id string) (*dto.RequestResponse, error) {
	r, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	resp, err := mapper.ToRequestResponse(r)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *RequestService) FindBySeller(ctx context.Context, sellerName string) ([]dto.RequestResponse, error) {
	if err := s.validation.ValidateFindBySeller(sellerName); err != nil {
		return nil, err
	}
	requests, err := s.requests.FindRequestsBySeller(ctx, sellerName)
	if err != nil {
		return nil, storeErr("buscar pedidos do vendedor", err)
	}
	return mapper.ToRequestResponses(requests)
}

func (s *RequestService) FindByUser(ctx context.Context, userName string) ([]dto.RequestResponse, error) {
	if err := s.validation.ValidateFindByUser(userName); err != nil {
		return nil, err
	}
	requests, err := s.requests.FindRequestsByUser(ctx, userName)
	if err != nil {
		return nil, storeErr("buscar pedidos do usuário", err)
	}
	return mapper.ToRequestResponses(requests)
}

// Rate lets the buyer score a CREATED order.
func (s *RequestService) Rate(ctx context.Context, id string, rating int, actor *auth.Claims) (*dto.RequestResponse, error) {
	r, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor == nil || actor.Role != auth.RoleUser || actor.Name != r.UserName {
		return nil, domain.Forbidden("Apenas o comprador do pedido pode avaliá-lo")
	}
	if err := r.Rate(rating, s.now()); err != nil {
		return nil, err
	}
	if err := s.requests.UpdateRequest(ctx, r); err != nil {
		return nil, storeErr("atualizar pedido", err)
	}

	telemetry.RecordRequestRated()
	s.publish(ctx, domain.EventRequestRated, r)

	resp, err := mapper.ToRequestResponse(r)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Cancel lets the buyer or the seller of a CREATED order cancel it.
// Stock is not given back.
func (s *RequestService) Cancel(ctx context.Context, id string, actor *auth.Claims) (*dto.RequestResponse, error) {
	r, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canCancel(r, actor) {
		return nil, domain.Forbidden("Apenas o comprador ou o vendedor do pedido pode cancelá-lo")
	}
	if err := r.Cancel(s.now()); err != nil {
		return nil, err
	}
	if err := s.requests.UpdateRequest(ctx, r); err != nil {
		return nil, storeErr("atualizar pedido", err)
	}

	telemetry.RecordRequestCanceled(actor.Role)
	s.publish(ctx, domain.EventRequestCanceled, r)

	resp, err := mapper.ToRequestResponse(r)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func canCancel(r *domain.Request, actor *auth.Claims) bool {
	if actor == nil {
		return false
	}
	switch actor.Role {
	case auth.RoleUser:
		return actor.Name == r.UserName
	case auth.RoleSeller:
		return actor.Name == r.SellerName
	default:
		return false
	}
}

func (s *RequestService) load(ctx context.Context, id string) (*domain.Request, error) {
	if err := s.validation.ValidateFindByID(id); err != nil {
		return nil, err
	}
	r, err := s.requests.FindRequestByID(ctx, id)
	if err != nil {
		return nil, storeErr("buscar pedido", err)
	}
	if r == nil {
		return nil, domain.NotFound(fmt.Sprintf("Pedido com o id: %s não encontrado", id))
	}
	return r, nil
}

func (s *RequestService) reject(stage string, err error) error {
	wrapped := domain.Wrap(stage, err)
	telemetry.RecordRequestRejected(wrapped.Kind.String())
	if wrapped.Kind == domain.KindMapping || wrapped.Kind == domain.KindStore {
		s.logger.Error("request creation failed", zap.String("stage", stage), zap.Error(err))
	} else {
		s.logger.Info("request rejected", zap.String("stage", stage), zap.String("reason", err.Error()))
	}
	return wrapped
}

func (s *RequestService) publish(ctx context.Context, eventType string, r *domain.Request) {
	if s.publisher == nil {
		return
	}
	ev := domain.NewRequestEvent(eventType, r, s.now())
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.logger.Warn("failed to publish request event",
			zap.String("event", eventType),
			zap.String("request_id", r.ID),
			zap.Error(err))
	}
}
