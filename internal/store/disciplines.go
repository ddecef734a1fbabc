package store

import (
	"context"

	"github.com/agenda-ufu/agenda/internal/models"
	"gorm.io/gorm"
)

// Disciplines adds the delete-time unlinking that the plain repository does
// not know about: events, tasks, reminders and meetings keep existing but
// lose their discipline reference.
type Disciplines struct {
	*Repository[models.Discipline]
	db *gorm.DB
}

func NewDisciplines(conn *gorm.DB) *Disciplines {
	return &Disciplines{
		Repository: NewRepository[models.Discipline](conn),
		db:         conn,
	}
}

func (d *Disciplines) Delete(ctx context.Context, id uint, ownerID string) error {
	if _, err := d.Get(ctx, id, ownerID); err != nil {
		return err
	}

	// Unlink before deleting so the behavior does not depend on the
	// database honoring SET NULL. Scoped by owner like everything else.
	dependents := []interface{}{
		&models.Event{},
		&models.Task{},
		&models.Reminder{},
		&models.Meeting{},
	}

	for _, dependent := range dependents {
		err := d.db.WithContext(ctx).
			Model(dependent).
			Where("discipline_id = ? AND user_id = ?", id, ownerID).
			Update("discipline_id", nil).Error

		if err != nil {
			return err
		}
	}

	return d.Repository.Delete(ctx, id, ownerID)
}
