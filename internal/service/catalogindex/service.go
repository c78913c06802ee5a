package catalogindex

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/integrations/catalog"
)

// Service индекс каталога: отвечает на вопросы "кто выполняет услугу S"
// и "какова цена/длительность S". Read-only представление над CatalogService,
// побочных эффектов не имеет
type Service struct {
	catalogClient CatalogClient
	logger        Logger
}

// NewService создает новый экземпляр индекса каталога
func NewService(catalogClient CatalogClient, logger Logger) *Service {
	return &Service{
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// GetService получает услугу по ID
func (s *Service) GetService(ctx context.Context, serviceID int64) (*catalog.Service, error) {
	service, err := s.catalogClient.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			s.logger.Warn("GetService: service id=%d not found", serviceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetService: failed to get service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: GetService - catalog error: %v", ErrInternal, err)
	}

	return service, nil
}

// StylistsForService возвращает стилистов, квалифицированных для услуги
// и не имеющих статус inactive. Пустой результат валиден и отличим от
// неизвестной услуги (та возвращает ErrServiceNotFound)
func (s *Service) StylistsForService(ctx context.Context, serviceID int64) ([]*catalog.Stylist, error) {
	// Сначала проверяем существование услуги, чтобы отличить
	// "никто не выполняет" от "услуги нет"
	if _, err := s.GetService(ctx, serviceID); err != nil {
		return nil, err
	}

	stylists, err := s.catalogClient.ListStylists(ctx)
	if err != nil {
		s.logger.Error("StylistsForService: failed to list stylists: %v", err)
		return nil, fmt.Errorf("%w: StylistsForService - catalog error: %v", ErrInternal, err)
	}

	eligible := make([]*catalog.Stylist, 0)
	for _, stylist := range stylists {
		if stylist.IsInactive() {
			continue
		}
		if !stylist.IsQualifiedFor(serviceID) {
			continue
		}
		eligible = append(eligible, stylist)
	}

	s.logger.Info("StylistsForService: service=%d, %d of %d stylists eligible",
		serviceID, len(eligible), len(stylists))

	return eligible, nil
}

// EligibleStylist проверяет, что стилист может выполнить услугу, и возвращает его
// Покрывает и случай inactive стилиста
func (s *Service) EligibleStylist(ctx context.Context, serviceID, stylistID int64) (*catalog.Stylist, error) {
	stylist, err := s.catalogClient.GetStylist(ctx, stylistID)
	if err != nil {
		if errors.Is(err, catalog.ErrStylistNotFound) {
			s.logger.Warn("EligibleStylist: stylist id=%d not found", stylistID)
			return nil, ErrStylistNotFound
		}
		s.logger.Error("EligibleStylist: failed to get stylist id=%d: %v", stylistID, err)
		return nil, fmt.Errorf("%w: EligibleStylist - catalog error: %v", ErrInternal, err)
	}

	if stylist.IsInactive() || !stylist.IsQualifiedFor(serviceID) {
		s.logger.Warn("EligibleStylist: stylist id=%d not qualified for service id=%d (status=%s)",
			stylistID, serviceID, stylist.Status)
		return nil, ErrStylistNotQualified
	}

	return stylist, nil
}
