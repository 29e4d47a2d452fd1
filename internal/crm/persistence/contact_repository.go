package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"crm-server/internal/crm/domain"
	"crm-server/internal/crm/persistence/internal"
	"crm-server/internal/crm/usecases"
	"crm-server/internal/infra/sql"
	"crm-server/internal/infra/utils"
	shareddomain "crm-server/internal/shared_kernel/domain"
)

func NewContactRepository(orm sql.ORM) (*SimpleContactRepository, error) {
	err := orm.AutoMigrate(
		&internal.Contact{},
		&internal.Company{},
		&internal.CompanyContact{},
		&internal.CustomField{},
		&internal.ContactCustomFieldValue{},
	)
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleContactRepository{
		orm: orm,
	}, nil
}

var _ usecases.ContactRepository = (*SimpleContactRepository)(nil)

type SimpleContactRepository struct {
	orm sql.ORM
}

func (r *SimpleContactRepository) Create(ctx context.Context, contact domain.Contact, values []domain.CustomFieldValue) error {
	entity := internal.FromContact(contact)

	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		if err := tx.Create(&entity).Error(); err != nil {
			return err
		}
		return writeContactRelations(tx, entity.ID, contact.CompanyIDs, values)
	})
	if errors.Is(err, sql.ErrDuplicatedKey) {
		return usecases.ErrContactEmailConflict
	}
	if err != nil {
		return fmt.Errorf("creating contact in database: %w", err)
	}

	return nil
}

// Update replaces the company links and the custom values of the contact.
func (r *SimpleContactRepository) Update(ctx context.Context, contact domain.Contact, values []domain.CustomFieldValue) error {
	entity := internal.FromContact(contact)

	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		if err := tx.Save(&entity).Error(); err != nil {
			return err
		}
		if err := tx.Delete(&internal.CompanyContact{}, "contact_id = ?", entity.ID).Error(); err != nil {
			return fmt.Errorf("clearing company links: %w", err)
		}
		if err := tx.Delete(&internal.ContactCustomFieldValue{}, "contact_id = ?", entity.ID).Error(); err != nil {
			return fmt.Errorf("clearing custom values: %w", err)
		}
		return writeContactRelations(tx, entity.ID, contact.CompanyIDs, values)
	})
	if errors.Is(err, sql.ErrDuplicatedKey) {
		return usecases.ErrContactEmailConflict
	}
	if err != nil {
		return fmt.Errorf("updating contact in database: %w", err)
	}

	return nil
}

func writeContactRelations(tx sql.ORM, contactID string, companyIDs []shareddomain.ID, values []domain.CustomFieldValue) error {
	if links := internal.ContactLinks(contactID, companyIDs); len(links) > 0 {
		if err := tx.Create(&links).Error(); err != nil {
			return fmt.Errorf("linking companies: %w", err)
		}
	}

	if rows := internal.FromContactValues(values); len(rows) > 0 {
		if err := tx.Create(&rows).Error(); err != nil {
			return fmt.Errorf("writing custom values: %w", err)
		}
	}

	return nil
}

func (r *SimpleContactRepository) UpdateStatus(ctx context.Context, contact domain.Contact) error {
	entity := internal.FromContact(contact)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating contact status: %w", err)
	}

	return nil
}

func (r *SimpleContactRepository) GetByID(
	ctx context.Context,
	id shareddomain.ID,
	filter shareddomain.DeletedFilter,
) (domain.Contact, error) {
	orm := r.orm.WithContext(ctx)

	var entity internal.Contact
	err := withDeletedFilter(orm, "", filter).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Contact{}, usecases.ErrContactNotFound
	}
	if err != nil {
		return domain.Contact{}, fmt.Errorf("database query: %w", err)
	}

	contacts, err := hydrateContacts(orm, []internal.Contact{entity}, true)
	if err != nil {
		return domain.Contact{}, err
	}

	return contacts[0], nil
}

const _contactTermFilter = "(LOWER(first_name) LIKE ?" + _likeEscape +
	" OR LOWER(last_name) LIKE ?" + _likeEscape +
	" OR LOWER(email) LIKE ?" + _likeEscape + ")"

func (r *SimpleContactRepository) FindAll(ctx context.Context, query domain.ContactQuery) ([]domain.Contact, int64, error) {
	orm := r.orm.WithContext(ctx)

	base := func() sql.ORM {
		q := withDeletedFilter(orm.Model(&internal.Contact{}), "", query.Deleted)
		if !query.IncludeInactive {
			q = q.Where("is_inactive = ?", false)
		}
		if query.CompanyID != nil {
			q = q.Where("id IN (SELECT contact_id FROM company_contacts WHERE company_id = ?)", query.CompanyID.String())
		}
		if term := strings.TrimSpace(query.Search); term != "" {
			pattern := containsPattern(term)
			q = q.Where(_contactTermFilter, pattern, pattern, pattern)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error(); err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var column string
	switch query.SortBy {
	case domain.ContactSortByLastName:
		column = "last_name"
	case domain.ContactSortByEmail:
		column = "email"
	case domain.ContactSortByCreatedAt:
		column = "created_at"
	default:
		column = "first_name"
	}

	var entities []internal.Contact
	err := base().
		Order(column + " " + orderDirection(query.Ascending)).
		Order("id ASC").
		Offset(query.Offset()).
		Limit(query.Pagination.Normalize().Limit).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	contacts, err := hydrateContacts(orm, entities, true)
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

// FindAllForStatistics loads every contact, soft deleted included, without
// custom values.
func (r *SimpleContactRepository) FindAllForStatistics(ctx context.Context) ([]domain.Contact, error) {
	orm := r.orm.WithContext(ctx)

	var entities []internal.Contact
	if err := orm.Order("created_at ASC").Find(&entities).Error(); err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return hydrateContacts(orm, entities, false)
}

func (r *SimpleContactRepository) FindByCompany(ctx context.Context, companyID shareddomain.ID) ([]domain.Contact, error) {
	orm := r.orm.WithContext(ctx)

	var entities []internal.Contact
	err := orm.
		Where("status = ?", shareddomain.RecordStatusActive).
		Where("id IN (SELECT contact_id FROM company_contacts WHERE company_id = ?)", companyID.String()).
		Order("last_name ASC").
		Order("first_name ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return hydrateContacts(orm, entities, true)
}

// Search matches the term against names and email, and every filter as a
// case insensitive substring of the stored value of that field.
func (r *SimpleContactRepository) Search(
	ctx context.Context,
	term string,
	filters map[shareddomain.ID]string,
	pagination domain.Pagination,
) ([]domain.Contact, int64, error) {
	orm := r.orm.WithContext(ctx)

	base := func() sql.ORM {
		q := orm.Model(&internal.Contact{}).Where("status = ?", shareddomain.RecordStatusActive)
		if term != "" {
			pattern := containsPattern(term)
			q = q.Where(_contactTermFilter, pattern, pattern, pattern)
		}
		for id, value := range filters {
			q = q.Where(
				"EXISTS (SELECT 1 FROM contact_custom_field_values v"+
					" WHERE v.contact_id = contacts.id AND v.custom_field_id = ?"+
					" AND LOWER(v.value) LIKE ?"+_likeEscape+")",
				id.String(), containsPattern(value),
			)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error(); err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.Contact
	err := base().
		Order("last_name ASC").
		Order("first_name ASC").
		Order("id ASC").
		Offset(pagination.Offset()).
		Limit(pagination.Normalize().Limit).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	contacts, err := hydrateContacts(orm, entities, true)
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

func (r *SimpleContactRepository) IsEmailTaken(ctx context.Context, email string, excludeID *shareddomain.ID) (bool, error) {
	query := r.orm.WithContext(ctx).
		Model(&internal.Contact{}).
		Where("email_key = ?", utils.NormalizeKey(email))
	if excludeID != nil {
		query = query.Where("id <> ?", excludeID.String())
	}

	var count int64
	if err := query.Count(&count).Error(); err != nil {
		return false, fmt.Errorf("count query: %w", err)
	}

	return count > 0, nil
}

func (r *SimpleContactRepository) ExistingIDs(ctx context.Context, ids []shareddomain.ID) ([]shareddomain.ID, error) {
	if len(ids) == 0 {
		return []shareddomain.ID{}, nil
	}

	var found []string
	err := r.orm.WithContext(ctx).
		Model(&internal.Contact{}).
		Where("id IN ? AND status = ?", idStrings(ids), shareddomain.RecordStatusActive).
		Pluck("id", &found).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return toIDs(found), nil
}

func (r *SimpleContactRepository) Exists(ctx context.Context, id shareddomain.ID) (bool, error) {
	var count int64
	err := r.orm.WithContext(ctx).
		Model(&internal.Contact{}).
		Where("id = ? AND status = ?", id.String(), shareddomain.RecordStatusActive).
		Count(&count).
		Error()
	if err != nil {
		return false, fmt.Errorf("count query: %w", err)
	}

	return count > 0, nil
}
