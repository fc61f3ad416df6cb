package customers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SkyTrips-AdminService/internal/domain"
	customerRepo "github.com/m04kA/SkyTrips-AdminService/internal/infra/storage/customer"
	"github.com/m04kA/SkyTrips-AdminService/internal/service/customers/models"
)

// Service сервис для просмотра и удаления клиентов
type Service struct {
	customerRepo    CustomerRepository
	defaultPageSize int
	maxPageSize     int
	logger          Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(customerRepo CustomerRepository, defaultPageSize, maxPageSize int, logger Logger) *Service {
	if defaultPageSize <= 0 {
		defaultPageSize = domain.DefaultPageSize
	}
	if maxPageSize <= 0 {
		maxPageSize = domain.MaxPageSize
	}

	return &Service{
		customerRepo:    customerRepo,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		logger:          logger,
	}
}

// List возвращает страницу клиентов
func (s *Service) List(ctx context.Context, req *models.ListCustomersRequest) (*models.CustomerListResponse, error) {
	s.logger.Info("List: page=%d, pageSize=%d, search=%q", req.Page, req.PageSize, req.Search)

	filter, err := req.ToDomainFilter(s.defaultPageSize, s.maxPageSize)
	if err != nil {
		s.logger.Warn("List: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	customers, total, err := s.customerRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCustomerList(customers, filter, total), nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CustomerResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetByID: customer id=%d not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetByID: repository error for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCustomer(customer), nil
}

// Delete удаляет клиента
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting customer id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if err := s.customerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("Delete: customer id=%d not found", id)
			return ErrCustomerNotFound
		}
		s.logger.Error("Delete: repository error for customer id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}
