package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"crm-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Pagination struct {
		Page       int `json:"page"`
		Limit      int `json:"limit"`
		Total      int `json:"total"`
		TotalPages int `json:"total_pages"`
	} `json:"pagination"`
}

type FeatureContext struct {
	apiDriver        *driver.APIDriver
	response         *http.Response
	responseData     map[string]any
	responseListData []map[string]any
	fieldIDs         map[string]string
	suffix           string
	customFieldID    string
	contactID        string
	require          *require.Assertions
	t                godog.TestingT
}

func NewFeatureContext(baseURL string) *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver(baseURL),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Step(`^wait for (.*)$`, fc.waitForDuration)
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)
	ctx.Then(`^the error should mention the field "([^"]*)"$`, fc.theErrorShouldMentionTheField)

	// Health steps
	ctx.When(`^I call the healthz endpoint$`, fc.iCallTheHealthzEndpoint)
	ctx.Then(`^the health status should be "([^"]*)"$`, fc.theHealthStatusShouldBe)

	// Custom field steps
	ctx.Given(`^a "([^"]*)" custom field named "([^"]*)" exists for "([^"]*)"$`, fc.aCustomFieldExists)
	ctx.Given(`^a "([^"]*)" custom field named "([^"]*)" exists for "([^"]*)" with allowed values "([^"]*)"$`, fc.aCustomFieldWithAllowedValuesExists)
	ctx.When(`^I create a "([^"]*)" custom field named "([^"]*)" for "([^"]*)"$`, fc.iCreateACustomField)
	ctx.When(`^I create a "([^"]*)" custom field named "([^"]*)" for "([^"]*)" without allowed values$`, fc.iCreateACustomFieldWithoutAllowedValues)
	ctx.When(`^I create a regex custom field named "([^"]*)" for "([^"]*)" with pattern "([^"]*)"$`, fc.iCreateARegexCustomField)
	ctx.When(`^I get the custom field by its ID$`, fc.iGetTheCustomFieldByItsID)
	ctx.When(`^I delete the custom field$`, fc.iDeleteTheCustomField)
	ctx.When(`^I request the custom field usage$`, fc.iRequestTheCustomFieldUsage)
	ctx.Then(`^the deletion mode should be "([^"]*)"$`, fc.theDeletionModeShouldBe)
	ctx.Then(`^the custom field should be listed only when deleted fields are included$`, fc.theCustomFieldShouldBeListedOnlyWhenDeletedFieldsAreIncluded)
	ctx.Then(`^the total usage count should be (\d+)$`, fc.theTotalUsageCountShouldBe)
	ctx.Then(`^the value distribution should count (\d+) for "([^"]*)"$`, fc.theValueDistributionShouldCount)

	// Company steps
	ctx.Given(`^a company "([^"]*)" exists with the custom field set to "([^"]*)"$`, fc.aCompanyExistsWithTheCustomFieldSetTo)
	ctx.When(`^I create a company "([^"]*)" with the custom field set to "([^"]*)"$`, fc.iCreateACompanyWithTheCustomFieldSetTo)
	ctx.When(`^I list companies whose custom field equals "([^"]*)"$`, fc.iListCompaniesWhoseCustomFieldEquals)
	ctx.Then(`^the company list should contain exactly "([^"]*)"$`, fc.theCompanyListShouldContainExactly)

	// Contact steps
	ctx.Given(`^a contact "([^"]*)" exists with "([^"]*)" set to "([^"]*)" and "([^"]*)" set to "([^"]*)"$`, fc.aContactExistsWithTwoValues)
	ctx.Given(`^a primary contact "([^"]*)" exists$`, fc.aPrimaryContactExists)
	ctx.When(`^I update the contact setting only "([^"]*)" to "([^"]*)"$`, fc.iUpdateTheContactSettingOnly)
	ctx.When(`^I delete the contact$`, fc.iDeleteTheContact)
	ctx.Then(`^the contact should have (\d+) custom field values?$`, fc.theContactShouldHaveCustomFieldValues)
	ctx.Then(`^the contact should not have a value for "([^"]*)"$`, fc.theContactShouldNotHaveAValueFor)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.responseData = nil
	fc.responseListData = nil
	fc.fieldIDs = make(map[string]string)
	fc.suffix = uuid.NewString()[:8]
	fc.customFieldID = ""
	fc.contactID = ""
}

// unique keeps names and emails distinct across scenarios sharing one server.
func (fc *FeatureContext) unique(name string) string {
	return name + " " + fc.suffix
}

func (fc *FeatureContext) uniqueEmail(email string) string {
	return fc.suffix + "." + email
}

func (fc *FeatureContext) decodeBody(body io.ReadCloser, target any) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(target)
}

func (fc *FeatureContext) decodePaginatedResponse(response *http.Response) ([]map[string]any, error) {
	var paginatedResp PaginatedResponse[map[string]any]
	if err := fc.decodeBody(response.Body, &paginatedResp); err != nil {
		return nil, fmt.Errorf("failed to decode paginated response: %w", err)
	}
	return paginatedResp.Data, nil
}

func (fc *FeatureContext) expectStatus(response *http.Response, err error, code int) map[string]any {
	fc.require.NoError(err)
	fc.response = response

	var data map[string]any
	fc.require.NoError(fc.decodeBody(response.Body, &data))
	fc.require.Equal(code, response.StatusCode, "unexpected status code: %v", data)
	return data
}
