package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	bleveRepositories "licensing-backend/bleve/repositories"
	"licensing-backend/clients/repositories"
	"licensing-backend/config"
	"licensing-backend/db/models"
	"licensing-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	peselPattern = regexp.MustCompile(`^\d{11}$`)
	krsPattern   = regexp.MustCompile(`^\d{10}$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9 ]{3,20}$`)
)

type AddClientInput struct {
	Address     string  `json:"address"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	IsCompany   bool    `json:"isCompany"`
	CompanyName *string `json:"companyName"`
	KRS         *string `json:"krs"`
	Name        *string `json:"name"`
	Surname     *string `json:"surname"`
	PESEL       *string `json:"pesel"`
}

// UpdateClientInput always replaces the contact fields. Variant fields are
// only touched when present and when they belong to the client's kind.
type UpdateClientInput struct {
	Address     string  `json:"address"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	CompanyName *string `json:"companyName"`
	Name        *string `json:"name"`
	Surname     *string `json:"surname"`
}

type ClientService struct {
	store repositories.Store
	index bleveRepositories.BleveRepositoryInterface
	now   func() time.Time
}

// NewClientService builds the service. index may be nil, search is then
// simply not kept in sync.
func NewClientService(store repositories.Store, index bleveRepositories.BleveRepositoryInterface) *ClientService {
	return &ClientService{store: store, index: index, now: time.Now}
}

func validateContact(address, email, phone string) error {
	switch {
	case strings.TrimSpace(address) == "":
		return utils.NewBadRequestError("address is required")
	case !strings.Contains(email, "@"):
		return utils.NewBadRequestError("a valid email is required")
	case !phonePattern.MatchString(strings.TrimSpace(phone)):
		return utils.NewBadRequestError("a valid phone number is required")
	}
	return nil
}

func required(field string, v *string) (string, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "", utils.NewBadRequestError("%s is required", field)
	}
	return strings.TrimSpace(*v), nil
}

func buildClient(in AddClientInput) (*models.Client, error) {
	if err := validateContact(in.Address, in.Email, in.Phone); err != nil {
		return nil, err
	}

	client := &models.Client{
		ID:      uuid.New(),
		Address: strings.TrimSpace(in.Address),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
	}

	if in.IsCompany {
		name, err := required("companyName", in.CompanyName)
		if err != nil {
			return nil, err
		}
		krs, err := required("krs", in.KRS)
		if err != nil {
			return nil, err
		}
		if !krsPattern.MatchString(krs) {
			return nil, utils.NewBadRequestError("krs must be 10 digits")
		}
		client.Kind = models.ClientKindCompany
		client.Company = &models.Company{ClientID: client.ID, Name: name, KRS: krs}
		return client, nil
	}

	name, err := required("name", in.Name)
	if err != nil {
		return nil, err
	}
	surname, err := required("surname", in.Surname)
	if err != nil {
		return nil, err
	}
	pesel, err := required("pesel", in.PESEL)
	if err != nil {
		return nil, err
	}
	if !peselPattern.MatchString(pesel) || pesel == models.TombstonePESEL {
		return nil, utils.NewBadRequestError("pesel must be 11 digits")
	}
	client.Kind = models.ClientKindIndividual
	client.Individual = &models.Individual{
		ClientID: client.ID,
		Name:     name,
		Surname:  surname,
		PESEL:    pesel,
		Status:   models.IndividualActive,
	}
	return client, nil
}

func (s *ClientService) AddClient(ctx context.Context, in AddClientInput) (*models.Client, error) {
	client, err := buildClient(in)
	if err != nil {
		return nil, err
	}

	err = s.store.Transaction(ctx, func(st repositories.Store) error {
		if client.Company != nil {
			taken, err := st.Clients().KRSTaken(ctx, client.Company.KRS, client.ID)
			if err != nil {
				return err
			}
			if taken {
				return utils.NewConflictError("a company with KRS %s already exists", client.Company.KRS)
			}
		} else {
			taken, err := st.Clients().PESELTaken(ctx, client.Individual.PESEL, client.ID)
			if err != nil {
				return err
			}
			if taken {
				return utils.NewConflictError("an individual with this PESEL already exists")
			}
		}
		return st.Clients().Create(ctx, client)
	})
	if err != nil {
		return nil, wrapStoreError("create client", err)
	}

	config.Logger.Info("Client created", zap.String("client_id", client.ID.String()), zap.String("kind", string(client.Kind)))
	s.syncIndex(client)
	return client, nil
}

// DeleteClient tombstones an individual. Companies can never be deleted.
// Deleting an already tombstoned individual succeeds without changes.
func (s *ClientService) DeleteClient(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	var client *models.Client
	err := s.store.Transaction(ctx, func(st repositories.Store) error {
		var err error
		client, err = st.Clients().GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		switch client.Kind {
		case models.ClientKindCompany:
			return utils.NewBadRequestError("companies cannot be deleted")
		case models.ClientKindIndividual:
			if client.IsTombstoned() {
				return nil
			}
			client.Tombstone(s.now())
			return st.Clients().Save(ctx, client)
		}
		return utils.NewInternalError("client has no variant", nil)
	})
	if err != nil {
		return nil, wrapStoreError("delete client", err)
	}

	config.Logger.Info("Client tombstoned", zap.String("client_id", id.String()))
	if s.index != nil {
		if err := s.index.DeleteClient(id); err != nil {
			config.Logger.Warn("Search index not updated after delete", zap.String("client_id", id.String()), zap.Error(err))
		}
	}
	return client, nil
}

func (s *ClientService) UpdateClient(ctx context.Context, id uuid.UUID, in UpdateClientInput) (*models.Client, error) {
	if err := validateContact(in.Address, in.Email, in.Phone); err != nil {
		return nil, err
	}

	var client *models.Client
	err := s.store.Transaction(ctx, func(st repositories.Store) error {
		var err error
		client, err = st.Clients().GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if client.IsTombstoned() {
			return utils.NewConflictError("client has been deleted")
		}

		client.Address = strings.TrimSpace(in.Address)
		client.Email = strings.TrimSpace(in.Email)
		client.Phone = strings.TrimSpace(in.Phone)

		switch client.Kind {
		case models.ClientKindCompany:
			if in.CompanyName != nil {
				name := strings.TrimSpace(*in.CompanyName)
				if name == "" {
					return utils.NewBadRequestError("companyName cannot be empty")
				}
				client.Company.Name = name
			}
		case models.ClientKindIndividual:
			if in.Name != nil {
				if strings.TrimSpace(*in.Name) == "" {
					return utils.NewBadRequestError("name cannot be empty")
				}
				client.Individual.Name = strings.TrimSpace(*in.Name)
			}
			if in.Surname != nil {
				if strings.TrimSpace(*in.Surname) == "" {
					return utils.NewBadRequestError("surname cannot be empty")
				}
				client.Individual.Surname = strings.TrimSpace(*in.Surname)
			}
		}
		return st.Clients().Save(ctx, client)
	})
	if err != nil {
		return nil, wrapStoreError("update client", err)
	}

	s.syncIndex(client)
	return client, nil
}

func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	client, err := s.store.Clients().GetByID(ctx, id)
	if err != nil {
		return nil, wrapStoreError("get client", err)
	}
	return client, nil
}

func (s *ClientService) ListClients(ctx context.Context, kind models.ClientKind, offset, limit int) ([]models.Client, int64, error) {
	switch kind {
	case "", models.ClientKindCompany, models.ClientKindIndividual:
	default:
		return nil, 0, utils.NewBadRequestError("unknown client kind %q", kind)
	}
	clients, total, err := s.store.Clients().List(ctx, kind, offset, limit)
	if err != nil {
		return nil, 0, wrapStoreError("list clients", err)
	}
	return clients, total, nil
}

// ReindexClients rebuilds the search index from the database.
func (s *ClientService) ReindexClients(ctx context.Context) (int, error) {
	if s.index == nil {
		return 0, utils.NewBadRequestError("search is not enabled")
	}
	clients, err := s.store.Clients().All(ctx)
	if err != nil {
		return 0, wrapStoreError("load clients", err)
	}
	if err := s.index.ResetClients(); err != nil {
		return 0, utils.NewInternalError("reset search index", err)
	}
	if err := s.index.IndexExistingClients(clients); err != nil {
		return 0, utils.NewInternalError("rebuild search index", err)
	}
	return len(clients), nil
}

func (s *ClientService) syncIndex(client *models.Client) {
	if s.index == nil {
		return
	}
	if err := s.index.IndexSingleClient(*client); err != nil {
		config.Logger.Warn("Search index not updated", zap.String("client_id", client.ID.String()), zap.Error(err))
	}
}

func wrapStoreError(op string, err error) error {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NewNotFoundError("client not found")
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.NewConflictError("a client with this KRS or PESEL already exists")
	}
	return utils.NewInternalError(op, err)
}
