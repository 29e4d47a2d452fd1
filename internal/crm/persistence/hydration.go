package persistence

import (
	"fmt"
	"sort"

	"crm-server/internal/crm/domain"
	"crm-server/internal/crm/persistence/internal"
	"crm-server/internal/infra/sql"
	"crm-server/internal/infra/utils"
	shareddomain "crm-server/internal/shared_kernel/domain"
)

func loadDefinitions(orm sql.ORM, ids []string) (map[string]internal.CustomField, error) {
	result := make(map[string]internal.CustomField, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var definitions []internal.CustomField
	if err := orm.Where("id IN ?", utils.Unique(ids)).Find(&definitions).Error(); err != nil {
		return nil, fmt.Errorf("loading custom field definitions: %w", err)
	}

	for _, d := range definitions {
		result[d.ID] = d
	}
	return result, nil
}

func sortValues(values []domain.CustomFieldValue) {
	sort.SliceStable(values, func(i, j int) bool {
		return values[i].CustomFieldName < values[j].CustomFieldName
	})
}

// hydrateCompanies attaches active contact summaries and custom field values
// using one query per relation for the whole batch.
func hydrateCompanies(orm sql.ORM, rows []internal.Company) ([]domain.Company, error) {
	result := make([]domain.Company, len(rows))
	if len(rows) == 0 {
		return result, nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	var links []internal.CompanyContact
	if err := orm.Where("company_id IN ?", ids).Find(&links).Error(); err != nil {
		return nil, fmt.Errorf("loading company contacts: %w", err)
	}

	contactIDs := make([]string, 0, len(links))
	for _, link := range links {
		contactIDs = append(contactIDs, link.ContactID)
	}

	contacts := make(map[string]internal.Contact)
	if len(contactIDs) > 0 {
		var rows []internal.Contact
		err := orm.Where("id IN ? AND status = ?", utils.Unique(contactIDs), shareddomain.RecordStatusActive).
			Order("last_name ASC").Order("first_name ASC").
			Find(&rows).Error()
		if err != nil {
			return nil, fmt.Errorf("loading contacts: %w", err)
		}
		for _, c := range rows {
			contacts[c.ID] = c
		}
	}

	var values []internal.CompanyCustomFieldValue
	if err := orm.Where("company_id IN ?", ids).Find(&values).Error(); err != nil {
		return nil, fmt.Errorf("loading company values: %w", err)
	}

	definitions, err := loadDefinitions(orm, utils.Map(values, func(v internal.CompanyCustomFieldValue) string { return v.CustomFieldID }))
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(rows))
	for i, row := range rows {
		result[i] = row.ToDomain()
		index[row.ID] = i
	}

	for _, link := range links {
		contact, ok := contacts[link.ContactID]
		if !ok {
			continue
		}
		company := &result[index[link.CompanyID]]
		company.ContactIDs = append(company.ContactIDs, shareddomain.ID(contact.ID))
		company.Contacts = append(company.Contacts, contact.ToSummary())
	}

	for _, v := range values {
		company := &result[index[v.CompanyID]]
		company.CustomFieldValues = append(company.CustomFieldValues, v.ToDomain(definitions[v.CustomFieldID]))
	}

	for i := range result {
		sortValues(result[i].CustomFieldValues)
	}

	return result, nil
}

// hydrateContacts attaches active company summaries and, when asked,
// custom field values.
func hydrateContacts(orm sql.ORM, rows []internal.Contact, withValues bool) ([]domain.Contact, error) {
	result := make([]domain.Contact, len(rows))
	if len(rows) == 0 {
		return result, nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	var links []internal.CompanyContact
	if err := orm.Where("contact_id IN ?", ids).Find(&links).Error(); err != nil {
		return nil, fmt.Errorf("loading contact companies: %w", err)
	}

	companyIDs := make([]string, 0, len(links))
	for _, link := range links {
		companyIDs = append(companyIDs, link.CompanyID)
	}

	companies := make(map[string]internal.Company)
	if len(companyIDs) > 0 {
		var rows []internal.Company
		err := orm.Where("id IN ? AND status = ?", utils.Unique(companyIDs), shareddomain.RecordStatusActive).
			Order("name ASC").
			Find(&rows).Error()
		if err != nil {
			return nil, fmt.Errorf("loading companies: %w", err)
		}
		for _, c := range rows {
			companies[c.ID] = c
		}
	}

	index := make(map[string]int, len(rows))
	for i, row := range rows {
		result[i] = row.ToDomain()
		index[row.ID] = i
	}

	for _, link := range links {
		company, ok := companies[link.CompanyID]
		if !ok {
			continue
		}
		contact := &result[index[link.ContactID]]
		contact.CompanyIDs = append(contact.CompanyIDs, shareddomain.ID(company.ID))
		contact.Companies = append(contact.Companies, company.ToSummary())
	}

	if !withValues {
		return result, nil
	}

	var values []internal.ContactCustomFieldValue
	if err := orm.Where("contact_id IN ?", ids).Find(&values).Error(); err != nil {
		return nil, fmt.Errorf("loading contact values: %w", err)
	}

	definitions, err := loadDefinitions(orm, utils.Map(values, func(v internal.ContactCustomFieldValue) string { return v.CustomFieldID }))
	if err != nil {
		return nil, err
	}

	for _, v := range values {
		contact := &result[index[v.ContactID]]
		contact.CustomFieldValues = append(contact.CustomFieldValues, v.ToDomain(definitions[v.CustomFieldID]))
	}

	for i := range result {
		sortValues(result[i].CustomFieldValues)
	}

	return result, nil
}
