package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"repair-tracking/internal/dto"
	"repair-tracking/internal/entities"
	"repair-tracking/internal/repositories"
	apperrors "repair-tracking/pkg/errors"
)

type ClientServiceInterface interface {
	CreateClient(ctx context.Context, payload dto.CreateClientDTO) (*dto.ClientDTO, error)
	GetClients(ctx context.Context) ([]dto.ClientDTO, error)
	FindClient(ctx context.Context, id string) (*dto.ClientDTO, error)
	UpdateClient(ctx context.Context, id string, payload dto.UpdateClientDTO) (*dto.ClientDTO, error)
	AddWorkCenter(ctx context.Context, clientID string, payload dto.CreateWorkCenterDTO) (*dto.WorkCenterDTO, error)
	ListWorkCenters(ctx context.Context, clientID string) ([]dto.WorkCenterDTO, error)
}

type ClientService struct {
	clientRepository repositories.ClientRepositoryInterface
	logger           *zap.Logger
}

func NewClientService(clientRepository repositories.ClientRepositoryInterface, logger *zap.Logger) *ClientService {
	return &ClientService{clientRepository: clientRepository, logger: logger}
}

func (s *ClientService) CreateClient(ctx context.Context, payload dto.CreateClientDTO) (*dto.ClientDTO, error) {
	client := entities.Client{
		ID:    uuid.NewString(),
		Name:  payload.Name,
		TaxID: payload.TaxID,
		Phone: payload.Phone,
	}
	if payload.Email.Valid {
		email := payload.Email.String
		client.Email = &email
	}
	for _, wc := range payload.WorkCenters {
		client.WorkCenters = append(client.WorkCenters, entities.WorkCenter{
			ID:      uuid.NewString(),
			Name:    wc.Name,
			Address: wc.Address,
		})
	}

	if err := s.clientRepository.CreateClient(ctx, &client); err != nil {
		s.logger.Error("failed to create client", zap.Error(err), zap.String("name", payload.Name))
		return nil, err
	}

	result := dto.ClientToDTO(client)
	return &result, nil
}

func (s *ClientService) GetClients(ctx context.Context) ([]dto.ClientDTO, error) {
	clients, err := s.clientRepository.GetClients(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.ClientDTO, 0, len(clients))
	for _, c := range clients {
		result = append(result, dto.ClientToDTO(c))
	}
	return result, nil
}

func (s *ClientService) FindClient(ctx context.Context, id string) (*dto.ClientDTO, error) {
	client, err := s.clientRepository.FindClient(ctx, id)
	if err != nil {
		return nil, err
	}
	result := dto.ClientToDTO(*client)
	return &result, nil
}

// UpdateClient patches the basic client fields. Work centers are deliberately
// untouched here, even by an empty payload; they are managed through the
// sub-resource endpoints.
func (s *ClientService) UpdateClient(ctx context.Context, id string, payload dto.UpdateClientDTO) (*dto.ClientDTO, error) {
	if err := s.clientRepository.UpdateClient(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.FindClient(ctx, id)
}

func (s *ClientService) AddWorkCenter(ctx context.Context, clientID string, payload dto.CreateWorkCenterDTO) (*dto.WorkCenterDTO, error) {
	// The client must exist; a foreign key alone would surface a less
	// helpful error.
	if _, err := s.clientRepository.FindClient(ctx, clientID); err != nil {
		return nil, err
	}

	workCenter := entities.WorkCenter{
		ID:       uuid.NewString(),
		ClientID: clientID,
		Name:     payload.Name,
		Address:  payload.Address,
	}
	if err := s.clientRepository.AddWorkCenter(ctx, &workCenter); err != nil {
		return nil, err
	}

	result := dto.WorkCenterToDTO(workCenter)
	return &result, nil
}

func (s *ClientService) ListWorkCenters(ctx context.Context, clientID string) ([]dto.WorkCenterDTO, error) {
	if _, err := s.clientRepository.FindClient(ctx, clientID); err != nil {
		return nil, apperrors.ErrNotFound
	}

	centers, err := s.clientRepository.ListWorkCenters(ctx, clientID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.WorkCenterDTO, 0, len(centers))
	for _, wc := range centers {
		result = append(result, dto.WorkCenterToDTO(wc))
	}
	return result, nil
}
