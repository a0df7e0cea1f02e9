package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/printops/backoffice-system/internal/core/domain"
	"github.com/printops/backoffice-system/internal/core/ports"
)

// AddressServiceImpl maintains customer address books. Addresses carry no
// behaviour beyond storage; the service only guards referential integrity
// and the type enum.
type AddressServiceImpl struct {
	repo   ports.AddressRepository
	users  ports.AuthRepository
	logger zerolog.Logger
}

func NewAddressService(repo ports.AddressRepository, users ports.AuthRepository, logger zerolog.Logger) *AddressServiceImpl {
	return &AddressServiceImpl{repo: repo, users: users, logger: logger}
}

func (s *AddressServiceImpl) ListForUser(ctx context.Context, userID string) ([]domain.CustomerAddress, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *AddressServiceImpl) Create(ctx context.Context, userID string, input ports.AddressInput) (*domain.CustomerAddress, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	addrType := domain.AddressType(input.Type)
	if addrType == "" {
		addrType = domain.AddressTypeHome
	} else if !domain.ValidAddressType(addrType) {
		return nil, domain.NewValidationError("type", "type must be Home, Office, or Other")
	}

	label := input.Label
	if label == "" {
		label = string(domain.AddressTypeHome)
	}

	address := &domain.CustomerAddress{
		UserID:        userID,
		Label:         label,
		RecipientName: input.RecipientName,
		Phone:         input.Phone,
		Line1:         input.Line1,
		Line2:         input.Line2,
		Landmark:      input.Landmark,
		City:          input.City,
		State:         input.State,
		Pincode:       input.Pincode,
		Instructions:  input.Instructions,
		Type:          addrType,
		IsDefault:     input.IsDefault,
	}
	if err := s.repo.Create(ctx, address); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to create address")
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Str("address_id", address.ID).Msg("address created")
	return address, nil
}

func (s *AddressServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
