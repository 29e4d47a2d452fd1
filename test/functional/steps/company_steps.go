package steps

import (
	"net/http"
)

func (fc *FeatureContext) aCompanyExistsWithTheCustomFieldSetTo(name, value string) error {
	response, err := fc.apiDriver.CreateCompany(fc.unique(name), map[string]*string{fc.customFieldID: &value})
	fc.responseData = fc.expectStatus(response, err, http.StatusCreated)
	return nil
}

func (fc *FeatureContext) iCreateACompanyWithTheCustomFieldSetTo(name, value string) error {
	response, err := fc.apiDriver.CreateCompany(fc.unique(name), map[string]*string{fc.customFieldID: &value})
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iListCompaniesWhoseCustomFieldEquals(value string) error {
	response, err := fc.apiDriver.ListCompaniesByCustomField(fc.customFieldID, value)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusOK, response.StatusCode)
	fc.response = response

	var companies []map[string]any
	fc.require.NoError(fc.decodeBody(response.Body, &companies))
	fc.responseListData = companies
	return nil
}

func (fc *FeatureContext) theCompanyListShouldContainExactly(name string) error {
	fc.require.Len(fc.responseListData, 1)
	fc.require.Equal(fc.unique(name), fc.responseListData[0]["name"])
	return nil
}
