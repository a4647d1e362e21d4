package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ticketRepository implements the repository.TicketRepository interface.
type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository is the constructor for ticketRepository.
func NewTicketRepository(db *gorm.DB) repository.TicketRepository {
	return &ticketRepository{db: db}
}

// Create persists a new support ticket.
func (repo *ticketRepository) Create(ctx context.Context, ticket *entity.SupportTicket) error {
	ticketM := fromTicketDomain(ticket)

	if err := repo.db.WithContext(ctx).Create(ticketM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid reporter reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create support ticket")
	}

	ticket.ID = ticketM.ID
	ticket.CreatedAt = ticketM.CreatedAt
	ticket.UpdatedAt = ticketM.UpdatedAt

	return nil
}

// Update replaces the mutable columns of an existing ticket row. An absent id
// is a silent no-op.
func (repo *ticketRepository) Update(ctx context.Context, ticket *entity.SupportTicket) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SupportTicketModel{}).
		Where("id = ?", ticket.ID).
		Updates(map[string]any{
			"subject":     ticket.Subject,
			"description": ticket.Description,
			"status":      ticket.Status.String(),
			"priority":    ticket.Priority.String(),
			"assigned_to": strPtrOrNil(ticket.AssignedTo),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update support ticket")
	}

	return nil
}

// ListAll returns every support ticket row.
func (repo *ticketRepository) ListAll(ctx context.Context) ([]entity.SupportTicket, error) {
	var ticketModels []*model.SupportTicketModel

	if err := repo.db.WithContext(ctx).Order("created_at").Find(&ticketModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list support tickets")
	}

	tickets := make([]entity.SupportTicket, 0, len(ticketModels))
	for _, ticketM := range ticketModels {
		tickets = append(tickets, *toTicketDomain(ticketM))
	}

	return tickets, nil
}

// --- Mapper Functions ---

// toTicketDomain converts a GORM SupportTicketModel to a domain SupportTicket entity.
func toTicketDomain(data *model.SupportTicketModel) *entity.SupportTicket {
	if data == nil {
		return nil
	}

	return &entity.SupportTicket{
		ID:          data.ID,
		UserID:      data.UserID,
		UserName:    data.UserName,
		Subject:     data.Subject,
		Description: data.Description,
		Status:      entity.TicketStatus(data.Status),
		Priority:    entity.Priority(data.Priority),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		AssignedTo:  derefStr(data.AssignedTo),
	}
}

// fromTicketDomain converts a domain SupportTicket entity to a GORM SupportTicketModel.
func fromTicketDomain(data *entity.SupportTicket) *model.SupportTicketModel {
	if data == nil {
		return nil
	}

	return &model.SupportTicketModel{
		ID:          data.ID,
		UserID:      data.UserID,
		UserName:    data.UserName,
		Subject:     data.Subject,
		Description: data.Description,
		Status:      data.Status.String(),
		Priority:    data.Priority.String(),
		AssignedTo:  strPtrOrNil(data.AssignedTo),
	}
}
