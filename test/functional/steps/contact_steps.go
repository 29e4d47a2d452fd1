package steps

import (
	"net/http"
	"strings"
)

func (fc *FeatureContext) contactBody(email string) map[string]any {
	local := strings.Split(email, "@")[0]
	return map[string]any{
		"first_name": local,
		"last_name":  "Functional",
		"email":      fc.uniqueEmail(email),
	}
}

func (fc *FeatureContext) aContactExistsWithTwoValues(email, firstField, firstValue, secondField, secondValue string) error {
	body := fc.contactBody(email)
	body["custom_field_values"] = map[string]string{
		fc.fieldIDs[firstField]:  firstValue,
		fc.fieldIDs[secondField]: secondValue,
	}

	response, err := fc.apiDriver.CreateContact(body)
	data := fc.expectStatus(response, err, http.StatusCreated)
	fc.contactID = data["id"].(string)
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) aPrimaryContactExists(email string) error {
	body := fc.contactBody(email)
	body["is_primary"] = true

	response, err := fc.apiDriver.CreateContact(body)
	data := fc.expectStatus(response, err, http.StatusCreated)
	fc.contactID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) iUpdateTheContactSettingOnly(field, value string) error {
	body := map[string]any{
		"first_name":          fc.responseData["first_name"],
		"last_name":           fc.responseData["last_name"],
		"email":               fc.responseData["email"],
		"custom_field_values": map[string]string{fc.fieldIDs[field]: value},
	}

	response, err := fc.apiDriver.UpdateContact(fc.contactID, body)
	fc.responseData = fc.expectStatus(response, err, http.StatusOK)
	return nil
}

func (fc *FeatureContext) iDeleteTheContact() error {
	response, err := fc.apiDriver.DeleteContact(fc.contactID)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) contactValues() []any {
	response, err := fc.apiDriver.GetContact(fc.contactID)
	data := fc.expectStatus(response, err, http.StatusOK)

	values, ok := data["custom_field_values"].([]any)
	fc.require.True(ok, "custom_field_values should be a list")
	return values
}

func (fc *FeatureContext) theContactShouldHaveCustomFieldValues(count int) error {
	fc.require.Len(fc.contactValues(), count)
	return nil
}

func (fc *FeatureContext) theContactShouldNotHaveAValueFor(field string) error {
	for _, raw := range fc.contactValues() {
		value := raw.(map[string]any)
		fc.require.NotEqual(fc.fieldIDs[field], value["custom_field_id"])
	}
	return nil
}
