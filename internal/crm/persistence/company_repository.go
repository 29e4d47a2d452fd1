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

func NewCompanyRepository(orm sql.ORM) (*SimpleCompanyRepository, error) {
	err := orm.AutoMigrate(
		&internal.Company{},
		&internal.Contact{},
		&internal.CompanyContact{},
		&internal.CustomField{},
		&internal.CompanyCustomFieldValue{},
	)
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleCompanyRepository{
		orm: orm,
	}, nil
}

var _ usecases.CompanyRepository = (*SimpleCompanyRepository)(nil)

type SimpleCompanyRepository struct {
	orm sql.ORM
}

// Create writes the company, its contact links and its custom values as one
// unit of work.
func (r *SimpleCompanyRepository) Create(ctx context.Context, company domain.Company, values []domain.CustomFieldValue) error {
	entity := internal.FromCompany(company)

	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		if err := tx.Create(&entity).Error(); err != nil {
			return err
		}
		return writeCompanyRelations(tx, entity.ID, company.ContactIDs, values)
	})
	if errors.Is(err, sql.ErrDuplicatedKey) {
		return usecases.ErrCompanyNameConflict
	}
	if err != nil {
		return fmt.Errorf("creating company in database: %w", err)
	}

	return nil
}

// Update replaces the contact links and the custom values of the company.
// Values not present in the new set are removed.
func (r *SimpleCompanyRepository) Update(ctx context.Context, company domain.Company, values []domain.CustomFieldValue) error {
	entity := internal.FromCompany(company)

	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		if err := tx.Save(&entity).Error(); err != nil {
			return err
		}
		if err := tx.Delete(&internal.CompanyContact{}, "company_id = ?", entity.ID).Error(); err != nil {
			return fmt.Errorf("clearing contact links: %w", err)
		}
		if err := tx.Delete(&internal.CompanyCustomFieldValue{}, "company_id = ?", entity.ID).Error(); err != nil {
			return fmt.Errorf("clearing custom values: %w", err)
		}
		return writeCompanyRelations(tx, entity.ID, company.ContactIDs, values)
	})
	if errors.Is(err, sql.ErrDuplicatedKey) {
		return usecases.ErrCompanyNameConflict
	}
	if err != nil {
		return fmt.Errorf("updating company in database: %w", err)
	}

	return nil
}

func writeCompanyRelations(tx sql.ORM, companyID string, contactIDs []shareddomain.ID, values []domain.CustomFieldValue) error {
	if links := internal.CompanyLinks(companyID, contactIDs); len(links) > 0 {
		if err := tx.Create(&links).Error(); err != nil {
			return fmt.Errorf("linking contacts: %w", err)
		}
	}

	if rows := internal.FromCompanyValues(values); len(rows) > 0 {
		if err := tx.Create(&rows).Error(); err != nil {
			return fmt.Errorf("writing custom values: %w", err)
		}
	}

	return nil
}

func (r *SimpleCompanyRepository) UpdateStatus(ctx context.Context, company domain.Company) error {
	entity := internal.FromCompany(company)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating company status: %w", err)
	}

	return nil
}

func (r *SimpleCompanyRepository) GetByID(
	ctx context.Context,
	id shareddomain.ID,
	filter shareddomain.DeletedFilter,
) (domain.Company, error) {
	orm := r.orm.WithContext(ctx)

	var entity internal.Company
	err := withDeletedFilter(orm, "", filter).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Company{}, usecases.ErrCompanyNotFound
	}
	if err != nil {
		return domain.Company{}, fmt.Errorf("database query: %w", err)
	}

	companies, err := hydrateCompanies(orm, []internal.Company{entity})
	if err != nil {
		return domain.Company{}, err
	}

	return companies[0], nil
}

func (r *SimpleCompanyRepository) FindAll(ctx context.Context, query domain.CompanyQuery) ([]domain.Company, int64, error) {
	orm := r.orm.WithContext(ctx)

	base := func() sql.ORM {
		q := withDeletedFilter(orm.Model(&internal.Company{}), "", query.Deleted)
		if term := strings.TrimSpace(query.Search); term != "" {
			pattern := containsPattern(term)
			q = q.Where(
				"(LOWER(name) LIKE ?"+_likeEscape+" OR LOWER(COALESCE(description, '')) LIKE ?"+_likeEscape+")",
				pattern, pattern,
			)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error(); err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	column := "name"
	if query.SortBy == domain.CompanySortByCreatedAt {
		column = "created_at"
	}

	var entities []internal.Company
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

	companies, err := hydrateCompanies(orm, entities)
	if err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

// FindByCustomFieldValue matches the stored value exactly.
func (r *SimpleCompanyRepository) FindByCustomFieldValue(
	ctx context.Context,
	fieldID shareddomain.ID,
	value string,
) ([]domain.Company, error) {
	orm := r.orm.WithContext(ctx)

	var ids []string
	err := orm.Model(&internal.CompanyCustomFieldValue{}).
		Where("custom_field_id = ? AND value = ?", fieldID.String(), value).
		Pluck("company_id", &ids).
		Error()
	if err != nil {
		return nil, fmt.Errorf("value query: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Company{}, nil
	}

	var entities []internal.Company
	err = orm.Where("id IN ? AND status = ?", ids, shareddomain.RecordStatusActive).
		Order("name ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return hydrateCompanies(orm, entities)
}

func (r *SimpleCompanyRepository) FindRecentlyModified(ctx context.Context, count int) ([]domain.Company, error) {
	orm := r.orm.WithContext(ctx)

	var entities []internal.Company
	err := orm.Where("status = ?", shareddomain.RecordStatusActive).
		Order(_lastWriteOrder).
		Limit(count).
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return hydrateCompanies(orm, entities)
}

// IsNameTaken looks at every row, soft deleted included, because the name
// index covers them all.
func (r *SimpleCompanyRepository) IsNameTaken(ctx context.Context, name string, excludeID *shareddomain.ID) (bool, error) {
	query := r.orm.WithContext(ctx).
		Model(&internal.Company{}).
		Where("name_key = ?", utils.NormalizeKey(name))
	if excludeID != nil {
		query = query.Where("id <> ?", excludeID.String())
	}

	var count int64
	if err := query.Count(&count).Error(); err != nil {
		return false, fmt.Errorf("count query: %w", err)
	}

	return count > 0, nil
}

func (r *SimpleCompanyRepository) HasRelatedData(ctx context.Context, id shareddomain.ID) (bool, error) {
	orm := r.orm.WithContext(ctx)

	for _, model := range []any{&internal.CompanyContact{}, &internal.CompanyCustomFieldValue{}} {
		var count int64
		err := orm.Model(model).Where("company_id = ?", id.String()).Count(&count).Error()
		if err != nil {
			return false, fmt.Errorf("count query: %w", err)
		}
		if count > 0 {
			return true, nil
		}
	}

	return false, nil
}

func (r *SimpleCompanyRepository) ExistingIDs(ctx context.Context, ids []shareddomain.ID) ([]shareddomain.ID, error) {
	if len(ids) == 0 {
		return []shareddomain.ID{}, nil
	}

	var found []string
	err := r.orm.WithContext(ctx).
		Model(&internal.Company{}).
		Where("id IN ? AND status = ?", idStrings(ids), shareddomain.RecordStatusActive).
		Pluck("id", &found).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return toIDs(found), nil
}

// Delete removes the company with its links and values.
func (r *SimpleCompanyRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		if err := tx.Delete(&internal.CompanyCustomFieldValue{}, "company_id = ?", id.String()).Error(); err != nil {
			return fmt.Errorf("deleting custom values: %w", err)
		}
		if err := tx.Delete(&internal.CompanyContact{}, "company_id = ?", id.String()).Error(); err != nil {
			return fmt.Errorf("deleting contact links: %w", err)
		}

		result := tx.Delete(&internal.Company{}, "id = ?", id.String())
		if err := result.Error(); err != nil {
			return fmt.Errorf("deleting company: %w", err)
		}
		if result.RowsAffected() == 0 {
			return usecases.ErrCompanyNotFound
		}

		return nil
	})
}
