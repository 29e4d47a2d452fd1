package steps

import (
	"net/http"
	"strings"
)

func (fc *FeatureContext) customFieldBody(valueType, name, entityType string) map[string]any {
	return map[string]any{
		"name":        fc.unique(name),
		"entity_type": entityType,
		"value_type":  valueType,
	}
}

func (fc *FeatureContext) createCustomField(name string, body map[string]any) error {
	response, err := fc.apiDriver.CreateCustomField(body)
	data := fc.expectStatus(response, err, http.StatusCreated)

	id, ok := data["id"].(string)
	fc.require.True(ok, "id should be a string")
	fc.customFieldID = id
	fc.fieldIDs[name] = id
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) aCustomFieldExists(valueType, name, entityType string) error {
	return fc.createCustomField(name, fc.customFieldBody(valueType, name, entityType))
}

func (fc *FeatureContext) aCustomFieldWithAllowedValuesExists(valueType, name, entityType, allowed string) error {
	body := fc.customFieldBody(valueType, name, entityType)
	body["allowed_values"] = strings.Split(allowed, ",")
	return fc.createCustomField(name, body)
}

func (fc *FeatureContext) iCreateACustomField(valueType, name, entityType string) error {
	response, err := fc.apiDriver.CreateCustomField(fc.customFieldBody(valueType, name, entityType))
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iCreateACustomFieldWithoutAllowedValues(valueType, name, entityType string) error {
	return fc.iCreateACustomField(valueType, name, entityType)
}

func (fc *FeatureContext) iCreateARegexCustomField(name, entityType, pattern string) error {
	body := fc.customFieldBody("regex", name, entityType)
	body["validation_regex"] = pattern
	response, err := fc.apiDriver.CreateCustomField(body)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iGetTheCustomFieldByItsID() error {
	response, err := fc.apiDriver.GetCustomField(fc.customFieldID)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iDeleteTheCustomField() error {
	response, err := fc.apiDriver.DeleteCustomField(fc.customFieldID)
	fc.responseData = fc.expectStatus(response, err, http.StatusOK)
	return nil
}

func (fc *FeatureContext) iRequestTheCustomFieldUsage() error {
	response, err := fc.apiDriver.GetCustomFieldUsage(fc.customFieldID)
	fc.responseData = fc.expectStatus(response, err, http.StatusOK)
	return nil
}

func (fc *FeatureContext) theDeletionModeShouldBe(mode string) error {
	fc.require.Equal(mode, fc.responseData["deletion_mode"])
	return nil
}

func (fc *FeatureContext) theCustomFieldShouldBeListedOnlyWhenDeletedFieldsAreIncluded() error {
	fc.require.False(fc.listContainsCustomField(false), "soft deleted field should be hidden by default")
	fc.require.True(fc.listContainsCustomField(true), "soft deleted field should be listed when included")
	return nil
}

func (fc *FeatureContext) listContainsCustomField(includeDeleted bool) bool {
	response, err := fc.apiDriver.ListCustomFields(includeDeleted)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusOK, response.StatusCode)

	var fields []map[string]any
	fc.require.NoError(fc.decodeBody(response.Body, &fields))
	for _, field := range fields {
		if field["id"] == fc.customFieldID {
			fc.require.Equal(includeDeleted, field["is_deleted"])
			return true
		}
	}
	return false
}

func (fc *FeatureContext) theTotalUsageCountShouldBe(count int) error {
	fc.require.EqualValues(count, fc.responseData["total_usage_count"])
	return nil
}

func (fc *FeatureContext) theValueDistributionShouldCount(count int, value string) error {
	distribution, ok := fc.responseData["value_distribution"].(map[string]any)
	fc.require.True(ok, "value_distribution should be an object")
	fc.require.EqualValues(count, distribution[value])
	return nil
}
